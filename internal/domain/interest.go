package domain

import (
	"strings"
	"time"
)

// interestContextBudget limita o trecho de contexto embutido em cada
// interesse para manter os prompts curtos
const interestContextBudget = 200

// Interest é uma associação derivada entre cliente e produto, inferida por
// menção textual nas interações. Nunca é persistida: é recalculada sob
// demanda a partir das interações atuais.
type Interest struct {
	Product         *Product        `json:"product"`
	InteractionID   int             `json:"interaction_id"`
	InteractionType InteractionType `json:"interaction_type"`
	InteractionDate time.Time       `json:"interaction_date"`
	Sentiment       Sentiment       `json:"sentiment"`
	Context         string          `json:"context"`
}

// ExtractInterests varre o histórico de interações (da mais recente para a
// mais antiga) procurando menções ao nome ou à categoria de cada produto do
// catálogo, por substring case-insensitive no conteúdo ou no assunto.
//
// A primeira interação da lista de entrada que menciona um produto vence;
// menções posteriores ao mesmo produto são ignoradas, garantindo no máximo
// um registro por produto. O casamento por substring é uma heurística
// assumida: nomes curtos podem gerar falsos positivos.
func ExtractInterests(interactions []*Interaction, products []*Product) []*Interest {
	interests := make([]*Interest, 0)
	seen := make(map[int]struct{})

	for _, interaction := range interactions {
		content := strings.ToLower(interaction.Content)
		subject := strings.ToLower(interaction.Subject)

		for _, product := range products {
			if _, ok := seen[product.ID]; ok {
				continue
			}

			name := strings.ToLower(product.Name)
			category := strings.ToLower(product.Category)

			mentioned := (name != "" && (strings.Contains(content, name) || strings.Contains(subject, name))) ||
				(category != "" && (strings.Contains(content, category) || strings.Contains(subject, category)))
			if !mentioned {
				continue
			}

			seen[product.ID] = struct{}{}
			interests = append(interests, &Interest{
				Product:         product,
				InteractionID:   interaction.ID,
				InteractionType: interaction.Type,
				InteractionDate: interaction.Date,
				Sentiment:       interaction.Sentiment,
				Context:         TruncateText(interaction.Content, interestContextBudget),
			})
		}
	}

	return interests
}

// TruncateText corta o texto no limite de caracteres e sufixa "...".
// Textos dentro do limite são reproduzidos na íntegra.
func TruncateText(text string, budget int) string {
	runes := []rune(text)
	if len(runes) <= budget {
		return text
	}
	return string(runes[:budget]) + "..."
}

func normalizeEnumText(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
