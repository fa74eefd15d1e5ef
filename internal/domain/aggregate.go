package domain

import "github.com/shopspring/decimal"

// SaleAggregate é um balde mensal de vendas. Period no formato yyyy-mm
type SaleAggregate struct {
	Period    string          `json:"period"`
	Revenue   decimal.Decimal `json:"revenue"`
	UnitCount int64           `json:"unit_count"`
}

// BranchAggregate agrega as vendas de uma filial no período
type BranchAggregate struct {
	BranchName       string          `json:"branch_name"`
	CityName         string          `json:"city_name"`
	Revenue          decimal.Decimal `json:"revenue"`
	TransactionCount int64           `json:"transaction_count"`
	AverageBasket    decimal.Decimal `json:"average_basket"`
}

// DistrictAggregate agrega as vendas de um bairro/distrito no período
type DistrictAggregate struct {
	DistrictName  string          `json:"district_name"`
	CityName      string          `json:"city_name"`
	Population    int64           `json:"population"`
	BranchCount   int64           `json:"branch_count"`
	RegionRevenue decimal.Decimal `json:"region_revenue"`
}

// CategoryAggregate agrega a receita de uma categoria em uma janela de tempo
type CategoryAggregate struct {
	CategoryName string          `json:"category_name"`
	Revenue      decimal.Decimal `json:"revenue"`
}

// ProductAggregate agrega as vendas de um produto
type ProductAggregate struct {
	ProductName  string          `json:"product_name"`
	CategoryName string          `json:"category_name"`
	UnitsSold    int64           `json:"units_sold"`
	Revenue      decimal.Decimal `json:"revenue"`
}

// NamedRevenue é uma linha genérica (nome, receita) usada nos rankings e breakdowns
type NamedRevenue struct {
	Name    string          `json:"name"`
	Revenue decimal.Decimal `json:"revenue"`
}

// SalesTotals é o total consolidado de vendas no período
type SalesTotals struct {
	Revenue decimal.Decimal `json:"revenue"`
	Units   int64           `json:"units"`
}
