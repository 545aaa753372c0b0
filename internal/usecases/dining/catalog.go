package dining

import (
	"github.com/nvieira96/aicrm-api/internal/domain"
)

// Catalog retorna o cardápio do restaurante. O cardápio é estático e vive no
// binário: muda junto com o deploy, não em runtime. Preços em rúpias (INR).
func Catalog() []domain.MenuCategory {
	return []domain.MenuCategory{
		{
			Name: "Appetizers",
			Items: []domain.MenuItem{
				{
					Name:        "Vegetable Spring Rolls",
					Price:       "₹249",
					Spice:       "Mild",
					Portion:     "4 pieces",
					Description: "Crispy vegetable spring rolls with sweet chili dipping sauce",
				},
				{
					Name:        "Paneer Tikka",
					Price:       "₹329",
					Spice:       "Medium",
					Portion:     "6 pieces",
					Description: "Grilled cottage cheese marinated in tandoori spices",
				},
				{
					Name:        "Chicken 65",
					Price:       "₹399",
					Spice:       "Hot",
					Portion:     "8 pieces",
					Description: "Spicy deep-fried chicken with curry leaves and green chilies",
				},
				{
					Name:        "Garlic Bread",
					Price:       "₹199",
					Spice:       "None",
					Portion:     "6 slices",
					Description: "Toasted baguette with garlic butter and herbs",
				},
			},
		},
		{
			Name: "Main Courses",
			Items: []domain.MenuItem{
				{
					Name:        "Butter Chicken",
					Price:       "₹449",
					Spice:       "Mild",
					Portion:     "Serves 1-2, comes with 2 naan",
					Description: "Tender chicken in creamy tomato gravy with butter and cream",
				},
				{
					Name:        "Paneer Butter Masala",
					Price:       "₹399",
					Spice:       "Mild",
					Portion:     "Serves 1-2, comes with 2 naan",
					Description: "Cottage cheese cubes in rich tomato and cashew gravy",
				},
				{
					Name:        "Biryani (Chicken)",
					Price:       "₹499",
					Spice:       "Medium",
					Portion:     "Full plate with raita",
					Description: "Fragrant basmati rice layered with spiced chicken and saffron",
				},
				{
					Name:        "Biryani (Vegetable)",
					Price:       "₹399",
					Spice:       "Medium",
					Portion:     "Full plate with raita",
					Description: "Aromatic rice with mixed vegetables, herbs and spices",
				},
				{
					Name:        "Dal Makhani",
					Price:       "₹349",
					Spice:       "Mild",
					Portion:     "Large bowl, serves 2",
					Description: "Black lentils slow-cooked with butter, cream and tomatoes",
				},
				{
					Name:        "Tandoori Chicken (Half)",
					Price:       "₹549",
					Spice:       "Medium",
					Portion:     "Half chicken with mint chutney",
					Description: "Chicken marinated in yogurt and spices, cooked in tandoor",
				},
				{
					Name:        "Chole Bhature",
					Price:       "₹299",
					Spice:       "Medium",
					Portion:     "2 bhature with chickpea curry",
					Description: "Spicy chickpea curry served with fluffy fried bread",
				},
				{
					Name:        "Palak Paneer",
					Price:       "₹379",
					Spice:       "Mild",
					Portion:     "Serves 1-2",
					Description: "Cottage cheese in creamy spinach gravy with aromatic spices",
				},
			},
		},
		{
			Name: "Rice & Breads",
			Items: []domain.MenuItem{
				{
					Name:        "Jeera Rice",
					Price:       "₹149",
					Spice:       "None",
					Portion:     "Single serving",
					Description: "Basmati rice tempered with cumin seeds",
				},
				{
					Name:        "Naan (Plain)",
					Price:       "₹49",
					Spice:       "None",
					Portion:     "1 piece",
					Description: "Soft leavened bread baked in tandoor",
				},
				{
					Name:        "Garlic Naan",
					Price:       "₹69",
					Spice:       "None",
					Portion:     "1 piece",
					Description: "Naan topped with garlic and coriander",
				},
				{
					Name:        "Butter Naan",
					Price:       "₹59",
					Spice:       "None",
					Portion:     "1 piece",
					Description: "Naan brushed with melted butter",
				},
			},
		},
		{
			Name: "Desserts",
			Items: []domain.MenuItem{
				{
					Name:        "Gulab Jamun",
					Price:       "₹129",
					Spice:       "None",
					Portion:     "2 pieces",
					Description: "Soft milk dumplings soaked in rose-flavored sugar syrup",
				},
				{
					Name:        "Ras Malai",
					Price:       "₹149",
					Spice:       "None",
					Portion:     "2 pieces",
					Description: "Cottage cheese dumplings in sweetened, thickened milk",
				},
				{
					Name:        "Ice Cream (Kulfi)",
					Price:       "₹99",
					Spice:       "None",
					Portion:     "1 piece",
					Description: "Traditional Indian ice cream with cardamom and pistachios",
				},
			},
		},
		{
			Name: "Beverages",
			Items: []domain.MenuItem{
				{
					Name:        "Masala Chai",
					Price:       "₹49",
					Spice:       "Mild (cardamom, ginger)",
					Portion:     "1 cup",
					Description: "Indian spiced tea with milk",
				},
				{
					Name:        "Mango Lassi",
					Price:       "₹129",
					Spice:       "None",
					Portion:     "300ml",
					Description: "Creamy yogurt drink blended with sweet mango",
				},
				{
					Name:        "Fresh Lime Soda",
					Price:       "₹79",
					Spice:       "None",
					Portion:     "300ml",
					Description: "Freshly squeezed lime with soda water",
				},
				{
					Name:        "Buttermilk (Chaas)",
					Price:       "₹59",
					Spice:       "Mild",
					Portion:     "300ml",
					Description: "Spiced yogurt drink with cumin and mint",
				},
			},
		},
	}
}
