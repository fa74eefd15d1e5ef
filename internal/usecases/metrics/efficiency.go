package metrics

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/retail-insights-api/internal/domain"
	"github.com/vfg2006/retail-insights-api/internal/usecases/ranking"
)

type cityStats struct {
	total decimal.Decimal
	count int64
}

// BranchEfficiency calcula o score de eficiência de cada filial em relação à média
// das filiais da mesma cidade. O resultado vem ordenado do pior para o melhor score.
func BranchEfficiency(branches []domain.BranchAggregate, thresholds Thresholds) []domain.BranchPerformance {
	stats := make(map[string]*cityStats)
	for _, branch := range branches {
		city, exists := stats[branch.CityName]
		if !exists {
			city = &cityStats{total: decimal.Zero}
			stats[branch.CityName] = city
		}
		city.total = city.total.Add(branch.Revenue)
		city.count++
	}

	results := make([]domain.BranchPerformance, 0, len(branches))
	for _, branch := range branches {
		score := efficiencyScore(branch.Revenue, cityAverage(stats[branch.CityName]))
		recommendation, status := classifyEfficiency(score, thresholds)

		results = append(results, domain.BranchPerformance{
			BranchName:      branch.BranchName,
			CityName:        branch.CityName,
			Revenue:         branch.Revenue,
			AverageBasket:   branch.AverageBasket,
			EfficiencyScore: score,
			Efficiency:      score.Round(0).IntPart(),
			Recommendation:  recommendation,
			Status:          status,
		})
	}

	ranking.SortByKey(results, ranking.Ascending, func(b domain.BranchPerformance) decimal.Decimal {
		return b.EfficiencyScore
	})

	return results
}

func cityAverage(city *cityStats) decimal.Decimal {
	if city == nil || city.count == 0 {
		return decimal.Zero
	}
	return city.total.Div(decimal.NewFromInt(city.count))
}

// efficiencyScore retorna 0 quando a média da cidade é zero
func efficiencyScore(revenue, average decimal.Decimal) decimal.Decimal {
	if average.IsZero() {
		return decimal.Zero
	}
	return revenue.Div(average).Mul(hundred)
}

// classifyEfficiency aplica os limites na ordem: perigo, atenção, destaque, normal
func classifyEfficiency(score decimal.Decimal, thresholds Thresholds) (recommendation string, status string) {
	switch {
	case score.LessThan(thresholds.EfficiencyDanger):
		return RecommendationClosure, domain.StatusDanger
	case score.LessThan(thresholds.EfficiencyWarning):
		return RecommendationMonitoring, domain.StatusWarning
	case score.GreaterThan(thresholds.EfficiencyStar):
		return RecommendationStar, domain.StatusInfo
	default:
		return RecommendationNormal, domain.StatusSuccess
	}
}
