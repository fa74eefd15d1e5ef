package metrics

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/retail-insights-api/internal/domain"
	"github.com/vfg2006/retail-insights-api/internal/usecases/ranking"
)

var signalPriority = map[string]int{
	domain.SignalSuccess:   4,
	domain.SignalInfo:      3,
	domain.SignalSecondary: 2,
	domain.SignalDanger:    1,
}

// LocationPenetration calcula o índice de penetração de cada região comparando a
// receita per capita local com a receita per capita global. O resultado vem
// ordenado pela prioridade do sinal; empates mantêm a ordem de entrada.
func LocationPenetration(districts []domain.DistrictAggregate, thresholds Thresholds) []domain.LocationOpportunity {
	totalRevenue := decimal.Zero
	var totalPopulation int64
	for _, district := range districts {
		totalRevenue = totalRevenue.Add(district.RegionRevenue)
		totalPopulation += district.Population
	}

	// Sem população conhecida, a razão global colapsa para a receita total
	if totalPopulation <= 0 {
		totalPopulation = 1
	}
	globalPerCapita := totalRevenue.Div(decimal.NewFromInt(totalPopulation))

	results := make([]domain.LocationOpportunity, 0, len(districts))
	for _, district := range districts {
		population := district.Population
		if population <= 0 {
			population = 1
		}

		perCapita := district.RegionRevenue.Div(decimal.NewFromInt(population))
		index := decimal.Zero
		if !globalPerCapita.IsZero() {
			index = perCapita.Div(globalPerCapita).Mul(hundred)
		}

		recommendation, signal := classifyPenetration(population, index, thresholds)

		results = append(results, domain.LocationOpportunity{
			DistrictName:     district.DistrictName,
			CityName:         district.CityName,
			Population:       population,
			BranchCount:      district.BranchCount,
			RegionRevenue:    district.RegionRevenue,
			RevenuePerCapita: perCapita.StringFixed(2),
			PenetrationScore: index,
			PenetrationIndex: index.Round(0).IntPart(),
			Recommendation:   recommendation,
			Signal:           signal,
		})
	}

	ranking.SortByPriority(results, ranking.Descending, func(l domain.LocationOpportunity) int {
		return signalPriority[l.Signal]
	})

	return results
}

// classifyPenetration aplica os limites na ordem: oportunidade, saturado, crescimento, neutro
func classifyPenetration(population int64, index decimal.Decimal, thresholds Thresholds) (recommendation string, signal string) {
	switch {
	case population > thresholds.OpportunityPopulation && index.LessThan(thresholds.PenetrationOpportunity):
		return RecommendationHighOpportunity, domain.SignalSuccess
	case index.GreaterThan(thresholds.PenetrationSaturated):
		return RecommendationSaturated, domain.SignalDanger
	case index.LessThan(thresholds.PenetrationGrowth):
		return RecommendationRoomToGrow, domain.SignalInfo
	default:
		return RecommendationNeutral, domain.SignalSecondary
	}
}
