package metrics

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/retail-insights-api/internal/domain"
	"github.com/vfg2006/retail-insights-api/internal/usecases/ranking"
)

const trendListSize = 3

// TrendDelta compara a receita de cada categoria da janela atual com a janela anterior.
// Categorias sem receita anterior contam como crescimento de 100%.
func TrendDelta(current, previous []domain.CategoryAggregate) *domain.TrendReport {
	previousByName := make(map[string]decimal.Decimal, len(previous))
	for _, p := range previous {
		if _, exists := previousByName[p.CategoryName]; !exists {
			previousByName[p.CategoryName] = p.Revenue
		}
	}

	trends := make([]domain.CategoryTrend, 0, len(current))
	for _, c := range current {
		prev, exists := previousByName[c.CategoryName]
		if !exists {
			prev = decimal.Zero
		}

		change := changePercent(c.Revenue, prev)
		direction := domain.DirectionUp
		if change.IsNegative() {
			direction = domain.DirectionDown
		}

		trends = append(trends, domain.CategoryTrend{
			Name:          c.CategoryName,
			Current:       c.Revenue,
			Previous:      prev,
			ChangePercent: change,
			Change:        change.StringFixed(1),
			Direction:     direction,
		})
	}

	ranking.SortByKey(trends, ranking.Descending, func(t domain.CategoryTrend) decimal.Decimal {
		return t.ChangePercent
	})

	// Quedas que arredondam para -0.0 não contam
	falling := ranking.Filter(trends, func(t domain.CategoryTrend) bool {
		return t.ChangePercent.Round(1).IsNegative()
	})

	return &domain.TrendReport{
		Risers:  ranking.Top(trends, trendListSize),
		Fallers: ranking.Tail(falling, trendListSize),
	}
}

func changePercent(current, previous decimal.Decimal) decimal.Decimal {
	if !previous.IsPositive() {
		return hundred
	}
	return current.Sub(previous).Div(previous).Mul(hundred)
}
