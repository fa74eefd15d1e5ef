package dashboard

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

import (
	"context"

	"github.com/vfg2006/retail-insights-api/internal/domain"
)

// AggregateFetcher consulta os agregados de vendas já filtrados pelo predicado
type AggregateFetcher interface {
	// GetTotals retorna a receita e as unidades totais
	GetTotals(ctx context.Context, predicate domain.Predicate) (*domain.SalesTotals, error)
	// GetTopBranch retorna a filial de maior receita, ou nil sem vendas
	GetTopBranch(ctx context.Context, predicate domain.Predicate) (*domain.NamedRevenue, error)
	// GetTopProduct retorna o produto mais vendido em unidades, ou nil sem vendas
	GetTopProduct(ctx context.Context, predicate domain.Predicate) (*domain.ProductAggregate, error)
	// GetMonthlySales retorna a série mensal ordenada por período
	GetMonthlySales(ctx context.Context, predicate domain.Predicate) ([]domain.SaleAggregate, error)
	GetBranchRevenue(ctx context.Context, predicate domain.Predicate) ([]domain.NamedRevenue, error)
	GetCategoryRevenue(ctx context.Context, predicate domain.Predicate) ([]domain.CategoryAggregate, error)
	GetCityRevenue(ctx context.Context, predicate domain.Predicate) ([]domain.NamedRevenue, error)
	GetBranchPerformance(ctx context.Context, predicate domain.Predicate) ([]domain.BranchAggregate, error)
	GetDistrictPerformance(ctx context.Context, predicate domain.Predicate) ([]domain.DistrictAggregate, error)
	GetTopProducts(ctx context.Context, predicate domain.Predicate, limit int) ([]domain.ProductAggregate, error)
	// GetFilterOptions retorna as listas de cidades, filiais e categorias
	GetFilterOptions(ctx context.Context) (*domain.FilterOptions, error)
}

// Analytics é a interface do serviço de dashboard consumida pelos handlers
type Analytics interface {
	GetStats(ctx context.Context, filter domain.Filter) (*domain.SummaryKPIs, error)
	GetSalesOverTime(ctx context.Context, filter domain.Filter) ([]domain.SaleAggregate, error)
	GetBreakdown(ctx context.Context, filter domain.Filter) (*domain.Breakdown, error)
	GetForecast(ctx context.Context, filter domain.Filter) (*domain.ForecastResult, error)
	GetTopProducts(ctx context.Context, filter domain.Filter) ([]domain.ProductAggregate, error)

	GetBranchPerformance(ctx context.Context, filter domain.Filter) ([]domain.BranchPerformance, error)
	GetLocationAnalysis(ctx context.Context, filter domain.Filter) ([]domain.LocationOpportunity, error)
	GetTrendAnalysis(ctx context.Context, filter domain.Filter) (*domain.TrendReport, error)

	GetFilterOptions(ctx context.Context) (*domain.FilterOptions, error)
}
