package domain

// City representa uma cidade disponível para filtro
type City struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Branch representa uma filial disponível para filtro
type Branch struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	CityID int64  `json:"city_id"`
}

// Category representa uma categoria de produtos disponível para filtro
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// FilterOptions lista os valores disponíveis para os filtros do dashboard
type FilterOptions struct {
	Cities     []City     `json:"cities"`
	Branches   []Branch   `json:"branches"`
	Categories []Category `json:"categories"`
}
