// Package metrics transforma agregados de vendas em indicadores de decisão.
// Todas as funções são puras: a mesma entrada produz sempre a mesma saída.
package metrics

import "github.com/shopspring/decimal"

// Recomendações das filiais
const (
	RecommendationClosure    = "closure/downsizing candidate"
	RecommendationMonitoring = "needs monitoring/campaign support"
	RecommendationStar       = "star branch — reward"
	RecommendationNormal     = "normal"
)

// Recomendações das regiões
const (
	RecommendationHighOpportunity = "high opportunity"
	RecommendationSaturated       = "saturated market"
	RecommendationRoomToGrow      = "room to grow"
	RecommendationNeutral         = "neutral"
)

// Thresholds agrupa os limites usados nas classificações de filiais e regiões
type Thresholds struct {
	EfficiencyDanger  decimal.Decimal // abaixo: candidata a fechamento
	EfficiencyWarning decimal.Decimal // abaixo: precisa de acompanhamento
	EfficiencyStar    decimal.Decimal // acima: filial destaque

	PenetrationOpportunity decimal.Decimal // abaixo (com população grande): alta oportunidade
	PenetrationSaturated   decimal.Decimal // acima: mercado saturado
	PenetrationGrowth      decimal.Decimal // abaixo: espaço para crescer
	OpportunityPopulation  int64           // população mínima (exclusiva) para alta oportunidade
}

// DefaultThresholds retorna os limites padrão do motor
func DefaultThresholds() Thresholds {
	return Thresholds{
		EfficiencyDanger:       decimal.NewFromInt(70),
		EfficiencyWarning:      decimal.NewFromInt(90),
		EfficiencyStar:         decimal.NewFromInt(130),
		PenetrationOpportunity: decimal.NewFromInt(60),
		PenetrationSaturated:   decimal.NewFromInt(150),
		PenetrationGrowth:      decimal.NewFromInt(80),
		OpportunityPopulation:  250000,
	}
}

var hundred = decimal.NewFromInt(100)
