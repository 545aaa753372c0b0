package prompting

// Templates de prompt nomeados. Os placeholders {campo} são substituídos
// pelo montador; campos opcionais ausentes recebem frases-sentinela para que
// o prompt renderizado sempre leia de forma gramatical.

const customerSummaryTemplate = `Analyze this customer and their interactions to create a comprehensive summary:

Customer Information:
- Name: {first_name} {last_name}
- Company: {company}
- Email: {email}
- Phone: {phone}
- Stage: {stage}
- Notes: {notes}

Recent Interactions ({interaction_count} total):
{interactions}

Product Interests & Preferences:
{product_interests}

Purchase History:
{transaction_history}

Available Products:
{available_products}

Please provide a comprehensive customer summary including:
1. Customer profile and background
2. Key interaction patterns and preferences
3. Product interests and buying behavior analysis
4. Purchase history analysis and spending patterns
5. Current relationship status and stage
6. Product recommendations based on interests, interactions, and purchase history
7. Important insights and recommendations
8. Next steps and opportunities

Focus on how product interests align with customer needs and suggest relevant products from our collection.
Use a friendly, conversational tone while being professional and actionable for sales purposes.
Show enthusiasm about our products and genuine care for the customer's success.`

const emailDraftTemplate = `Generate a friendly, professional email draft for a sales representative to send to this customer from Luxe Couture:

Customer: {first_name} {last_name}
Company: {company}
Stage: {stage}

Context: {context}
Email Type: {email_type}

Product Interests: {product_interests}

Please generate a warm, semi-casual email draft that the sales rep can send to their customer:
1. Feels personal and genuine, not corporate
2. References their company and specific context naturally
3. Mentions relevant products from our collection with enthusiasm
4. Includes product details, prices, and benefits when appropriate
5. Has a clear but friendly call-to-action
6. Uses a warm, professional but approachable tone
7. Shows knowledge of our luxury fashion products
8. Feels like it's from a real person who cares about their needs

Include subject line and email body. Make it sound like the sales rep is excited to help their customer!`

const sentimentTemplate = `Analyze the sentiment of this interaction text and return only one word: positive, neutral, or negative.

Text: {text}

Consider the overall tone, language, and context.`

const salesAdviceTemplate = `You are an AI sales assistant helping a sales representative at Luxe Couture, a luxury fashion brand. You provide strategic advice to help the sales rep better serve their customer.

Customer being discussed: {first_name} {last_name}
Company: {company}
Stage: {stage}

Recent Interactions:
{interactions}

Product Interests & Preferences:
{product_interests}

Available Products:
{available_products}

Sales Rep's Question: {question}

Provide strategic sales advice that:
1. Helps the sales rep understand the customer's situation and needs
2. Suggests specific products from our collection that would be relevant
3. Uses a professional, consultative tone
4. Gives actionable recommendations for the sales rep to follow
5. Mentions product details, prices, and benefits for the sales rep to use
6. Suggests next steps and sales strategies
7. Helps with objection handling and closing techniques when relevant

Be professional, strategic, and focused on helping the sales rep succeed with this customer!`

const webIntelligenceTemplate = `Analyze this customer for Web & Social Intelligence insights:

Customer: {first_name} {last_name}
Company: {company}
Industry: Luxury Fashion/Entertainment

Recent Interactions:
{interactions}

Purchase History:
{transaction_history}

Provide comprehensive Web & Social Intelligence analysis including:
1. **Company Intelligence**: Industry analysis, company size, recent news/events
2. **Social Media Presence**: Public profile analysis, engagement patterns, influence level
3. **Professional Network**: LinkedIn connections, industry relationships, endorsements
4. **Recent Mentions**: News coverage, media appearances, public statements
5. **Market Intelligence**: Industry trends affecting their business, competitive landscape
6. **Influence Assessment**: Their impact on fashion/entertainment industry
7. **Opportunity Identification**: Potential collaboration or business opportunities

Focus on actionable insights for luxury fashion sales and relationship building.
Be specific and reference their industry context.`

const behavioralAnalysisTemplate = `Analyze this customer's behavioral patterns:

Customer: {first_name} {last_name}
Current Stage: {stage}

Interaction History:
{interactions}

Sentiment Analysis:
- Positive: {positive_count}
- Neutral: {neutral_count}
- Negative: {negative_count}

{transaction_behavior}

Provide comprehensive Behavioral Analysis including:
1. **Communication Patterns**: Preferred communication methods, response times, engagement style
2. **Decision-Making Behavior**: How they make purchasing decisions, factors that influence them
3. **Buying Behavior**: Purchase patterns, price sensitivity, brand loyalty, frequency
4. **Relationship Dynamics**: How they interact with sales team, trust-building patterns
5. **Risk Tolerance**: Conservative vs. adventurous purchasing behavior
6. **Influence Factors**: What motivates their decisions, key stakeholders
7. **Timing Patterns**: Best times to contact, seasonal preferences, urgency indicators
8. **Personal Preferences**: Style preferences, quality expectations, service requirements
9. **Engagement Level**: Active vs. passive customer, responsiveness patterns
10. **Recommendations**: How to best approach and serve this customer

Focus on actionable insights for sales strategy and customer relationship management.`

const menuHeader = "You are a helpful restaurant assistant. Here is our complete menu:\n\n"

const menuClosing = "\n\nAnswer questions about spice levels, portion sizes, ingredients, and recommend dish combinations. Be friendly, helpful, and concise. All prices are in Indian Rupees (INR)."

// PersonaInstruction é o prompt de sistema fixo do chatbot temático
const PersonaInstruction = `You are Captain Jack Sparrow, the legendary pirate from the Caribbean, but you're also an experienced SHL consultant who has conducted thousands of evaluations.
Your mission: Help users understand SHL's Universal Competency Framework (UCF) by relating it to how a sea pirate captain would evaluate his crew.
Your personality:
- Speak like Captain Jack Sparrow with his distinctive speech patterns
- Use pirate terminology and metaphors but limit it to make sure the main message is clearly understandable for someone speaking in normal English
- Be witty and charming
- Make learning fun and engaging
- Reference the sea, ships, crew, treasure, and pirate life
Your expertise:
- Deep knowledge of SHL's Universal Competency Framework
- Understanding of competency assessments and evaluations
- Ability to explain complex concepts in simple, pirate-themed terms
- Knowledge of how competencies relate to performance and development
- Start explaining UCF always from the great 8 factors and then zoom into competences and competency components. Follow this if the learner doesn't give too much direction
Guidelines:
- Keep responses educational and informative about SHL/UCF
- Never share personal data or real information about individuals
- Stay in character as Captain Jack Sparrow
- Make the learning experience enjoyable and memorable
- Use examples that relate to crew evaluation, ship management, and pirate life
- Keep responses concise but engaging (2-4 paragraphs typically)
Remember: "The problem is not the problem. The problem is your attitude about the problem. Do you understand?" - Captain Jack Sparrow`
