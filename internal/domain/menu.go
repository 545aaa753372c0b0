package domain

// MenuItem é um prato do cardápio estático, carregado na inicialização.
// O nome é único dentro da sua categoria.
type MenuItem struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Spice       string `json:"spice"`
	Portion     string `json:"portion"`
	Description string `json:"description"`
}

// MenuCategory agrupa os pratos de uma seção do cardápio
type MenuCategory struct {
	Name  string     `json:"name"`
	Items []MenuItem `json:"items"`
}
