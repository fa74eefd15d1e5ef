package domain

import "github.com/shopspring/decimal"

// Faixas de status usadas na classificação das filiais
const (
	StatusDanger  = "danger"
	StatusWarning = "warning"
	StatusInfo    = "info"
	StatusSuccess = "success"
)

// Sinais usados na classificação das regiões
const (
	SignalSuccess   = "success"
	SignalInfo      = "info"
	SignalSecondary = "secondary"
	SignalDanger    = "danger"
)

// Direções de tendência
const (
	DirectionUp   = "up"
	DirectionDown = "down"
)

// SummaryKPIs são os indicadores principais do dashboard
type SummaryKPIs struct {
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	TotalUnits     int64           `json:"total_units"`
	TopBranchName  string          `json:"top_branch_name"`
	TopProductName string          `json:"top_product_name"`
}

// Breakdown agrupa a receita por filial, categoria e cidade
type Breakdown struct {
	Branches   []NamedRevenue `json:"branches"`
	Categories []NamedRevenue `json:"categories"`
	Cities     []NamedRevenue `json:"cities"`
}

// BranchPerformance é o resultado do score de eficiência de uma filial
type BranchPerformance struct {
	BranchName      string          `json:"branch_name"`
	CityName        string          `json:"city_name"`
	Revenue         decimal.Decimal `json:"revenue"`
	AverageBasket   decimal.Decimal `json:"average_basket"`
	EfficiencyScore decimal.Decimal `json:"-"`
	Efficiency      int64           `json:"efficiency"` // Score arredondado para exibição
	Recommendation  string          `json:"recommendation"`
	Status          string          `json:"status"`
}

// LocationOpportunity é o resultado do índice de penetração de uma região
type LocationOpportunity struct {
	DistrictName     string          `json:"district_name"`
	CityName         string          `json:"city_name"`
	Population       int64           `json:"population"`
	BranchCount      int64           `json:"branch_count"`
	RegionRevenue    decimal.Decimal `json:"region_revenue"`
	RevenuePerCapita string          `json:"revenue_per_capita"` // Duas casas decimais
	PenetrationScore decimal.Decimal `json:"-"`
	PenetrationIndex int64           `json:"penetration_index"`
	Recommendation   string          `json:"recommendation"`
	Signal           string          `json:"signal"`
}

// CategoryTrend é a variação de receita de uma categoria entre duas janelas
type CategoryTrend struct {
	Name          string          `json:"name"`
	Current       decimal.Decimal `json:"current"`
	Previous      decimal.Decimal `json:"previous"`
	ChangePercent decimal.Decimal `json:"-"`
	Change        string          `json:"change"` // Uma casa decimal
	Direction     string          `json:"direction"`
}

// TrendReport lista as categorias que mais cresceram e as que mais caíram
type TrendReport struct {
	Risers  []CategoryTrend `json:"risers"`
	Fallers []CategoryTrend `json:"fallers"`
}

// HistoryPoint é um mês de receita realizada
type HistoryPoint struct {
	Period  string          `json:"period"`
	Revenue decimal.Decimal `json:"revenue"`
}

// ForecastPoint é um mês de receita projetada
type ForecastPoint struct {
	Period          string          `json:"period"`
	ForecastRevenue decimal.Decimal `json:"forecast_revenue"`
}

// ForecastResult é o pacote retornado pelo motor de previsão
type ForecastResult struct {
	History           []HistoryPoint  `json:"history"`
	Forecast          []ForecastPoint `json:"forecast"`
	GrowthRate        decimal.Decimal `json:"-"`           // Taxa em fração (0.10 = 10%)
	GrowthRatePercent string          `json:"growth_rate"` // Percentual com uma casa decimal
	Outlook           string          `json:"outlook"`
	Recommendation    string          `json:"recommendation"`
}
