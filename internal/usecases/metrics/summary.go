package metrics

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/retail-insights-api/internal/domain"
)

const missingName = "-"

// Summary monta os KPIs principais. Linhas ausentes viram zero ou "-".
func Summary(totals *domain.SalesTotals, topBranch *domain.NamedRevenue, topProduct *domain.ProductAggregate) *domain.SummaryKPIs {
	kpis := &domain.SummaryKPIs{
		TotalRevenue:   decimal.Zero,
		TopBranchName:  missingName,
		TopProductName: missingName,
	}

	if totals != nil {
		kpis.TotalRevenue = totals.Revenue
		kpis.TotalUnits = totals.Units
	}

	if topBranch != nil && topBranch.Name != "" {
		kpis.TopBranchName = topBranch.Name
	}

	if topProduct != nil && topProduct.ProductName != "" {
		kpis.TopProductName = topProduct.ProductName
	}

	return kpis
}
