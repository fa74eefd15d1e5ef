package metrics

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/retail-insights-api/internal/domain"
)

func TestSummary(t *testing.T) {
	tests := []struct {
		name            string
		totals          *domain.SalesTotals
		topBranch       *domain.NamedRevenue
		topProduct      *domain.ProductAggregate
		expectedRevenue string
		expectedUnits   int64
		expectedBranch  string
		expectedProduct string
	}{
		{
			name:            "todas as linhas presentes",
			totals:          &domain.SalesTotals{Revenue: decimal.RequireFromString("15230.50"), Units: 420},
			topBranch:       &domain.NamedRevenue{Name: "Centro", Revenue: decimal.NewFromInt(9000)},
			topProduct:      &domain.ProductAggregate{ProductName: "Café 500g", UnitsSold: 80},
			expectedRevenue: "15230.5",
			expectedUnits:   420,
			expectedBranch:  "Centro",
			expectedProduct: "Café 500g",
		},
		{
			name:            "sem vendas no período",
			expectedRevenue: "0",
			expectedUnits:   0,
			expectedBranch:  "-",
			expectedProduct: "-",
		},
		{
			name:            "linhas com nome vazio viram traço",
			totals:          &domain.SalesTotals{Revenue: decimal.Zero},
			topBranch:       &domain.NamedRevenue{},
			topProduct:      &domain.ProductAggregate{},
			expectedRevenue: "0",
			expectedBranch:  "-",
			expectedProduct: "-",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kpis := Summary(tt.totals, tt.topBranch, tt.topProduct)

			assert.Equal(t, tt.expectedRevenue, kpis.TotalRevenue.String())
			assert.Equal(t, tt.expectedUnits, kpis.TotalUnits)
			assert.Equal(t, tt.expectedBranch, kpis.TopBranchName)
			assert.Equal(t, tt.expectedProduct, kpis.TopProductName)
		})
	}
}
