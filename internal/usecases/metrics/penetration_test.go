package metrics

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-insights-api/internal/domain"
)

func district(name string, population int64, revenue int64) domain.DistrictAggregate {
	return domain.DistrictAggregate{
		DistrictName:  name,
		CityName:      "Curitiba",
		Population:    population,
		BranchCount:   1,
		RegionRevenue: decimal.NewFromInt(revenue),
	}
}

func findDistrict(t *testing.T, results []domain.LocationOpportunity, name string) domain.LocationOpportunity {
	t.Helper()
	for _, r := range results {
		if r.DistrictName == name {
			return r
		}
	}
	require.FailNow(t, "região não encontrada", name)
	return domain.LocationOpportunity{}
}

// balancedDistricts monta um cenário em que a receita per capita global é 1,
// de forma que o índice do distrito alvo é exatamente targetIndex.
func balancedDistricts(population int64, targetIndex int64) []domain.DistrictAggregate {
	targetRevenue := population * targetIndex / 100
	// O distrito de compensação tem a mesma população e completa a receita global
	return []domain.DistrictAggregate{
		district("Alvo", population, targetRevenue),
		district("Compensação", population, 2*population-targetRevenue),
	}
}

func TestLocationPenetration_Classification(t *testing.T) {
	tests := []struct {
		name           string
		population     int64
		index          int64
		expectedSignal string
		expectedLabel  string
	}{
		{"população grande e índice 59 é alta oportunidade", 300000, 59, domain.SignalSuccess, RecommendationHighOpportunity},
		{"população grande e índice 61 não é alta oportunidade", 300000, 61, domain.SignalInfo, RecommendationRoomToGrow},
		{"população pequena e índice 59 é espaço para crescer", 200000, 59, domain.SignalInfo, RecommendationRoomToGrow},
		{"população de exatamente 250000 não é alta oportunidade", 250000, 50, domain.SignalInfo, RecommendationRoomToGrow},
		{"índice 80 é neutro", 100000, 80, domain.SignalSecondary, RecommendationNeutral},
		{"índice 150 é neutro (limite estrito)", 100000, 150, domain.SignalSecondary, RecommendationNeutral},
		{"índice 151 é mercado saturado", 100000, 151, domain.SignalDanger, RecommendationSaturated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := LocationPenetration(balancedDistricts(tt.population, tt.index), DefaultThresholds())

			target := findDistrict(t, results, "Alvo")
			assert.Equal(t, tt.index, target.PenetrationIndex)
			assert.Equal(t, tt.expectedSignal, target.Signal)
			assert.Equal(t, tt.expectedLabel, target.Recommendation)
		})
	}
}

func TestLocationPenetration_SortsBySignalPriority(t *testing.T) {
	districts := []domain.DistrictAggregate{
		district("Saturado", 100000, 400000),    // per capita 4
		district("Neutro", 100000, 100000),      // per capita 1
		district("Oportunidade", 400000, 40000), // per capita 0.1
		district("Crescer", 100000, 50000),      // per capita 0.5
		district("Neutro 2", 100000, 100000),
	}

	results := LocationPenetration(districts, DefaultThresholds())

	require.Len(t, results, 5)
	names := make([]string, 0, len(results))
	for _, r := range results {
		names = append(names, r.DistrictName)
	}

	// global = 690000 / 800000 = 0.8625
	assert.Equal(t, []string{"Oportunidade", "Crescer", "Neutro", "Neutro 2", "Saturado"}, names)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, signalPriority[results[i-1].Signal], signalPriority[results[i].Signal])
	}
}

func TestLocationPenetration_ZeroPopulation(t *testing.T) {
	t.Run("total de população zero usa divisor 1", func(t *testing.T) {
		districts := []domain.DistrictAggregate{
			district("Sem dados", 0, 500),
			district("Sem dados 2", 0, 500),
		}

		results := LocationPenetration(districts, DefaultThresholds())

		// global = 1000 / 1; cada distrito: 500 / 1 -> índice 50
		for _, r := range results {
			assert.Equal(t, int64(1), r.Population)
			assert.Equal(t, int64(50), r.PenetrationIndex)
			assert.Equal(t, "500.00", r.RevenuePerCapita)
		}
	})

	t.Run("distrito sem população usa 1 no per capita", func(t *testing.T) {
		districts := []domain.DistrictAggregate{
			district("Conhecido", 1000, 1000),
			district("Desconhecido", 0, 10),
		}

		results := LocationPenetration(districts, DefaultThresholds())

		unknown := findDistrict(t, results, "Desconhecido")
		assert.Equal(t, int64(1), unknown.Population)
		assert.Equal(t, "10.00", unknown.RevenuePerCapita)
		assert.Equal(t, domain.SignalDanger, unknown.Signal)
	})

	t.Run("receita global zero não gera divisão por zero", func(t *testing.T) {
		results := LocationPenetration([]domain.DistrictAggregate{district("Zero", 1000, 0)}, DefaultThresholds())

		require.Len(t, results, 1)
		assert.Equal(t, int64(0), results[0].PenetrationIndex)
		assert.Equal(t, "0.00", results[0].RevenuePerCapita)
	})
}

func TestLocationPenetration_Idempotent(t *testing.T) {
	districts := balancedDistricts(300000, 59)

	assert.Equal(t,
		LocationPenetration(districts, DefaultThresholds()),
		LocationPenetration(districts, DefaultThresholds()),
	)
}
