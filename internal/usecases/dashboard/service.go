// Package dashboard orquestra as consultas e os cálculos de cada requisição do dashboard
package dashboard

import (
	"context"
	"time"

	"github.com/vfg2006/retail-insights-api/internal/domain"
	"github.com/vfg2006/retail-insights-api/internal/usecases/filtering"
	"github.com/vfg2006/retail-insights-api/internal/usecases/forecasting"
	"github.com/vfg2006/retail-insights-api/internal/usecases/metrics"
	"github.com/vfg2006/retail-insights-api/pkg/apiErrors"
	"github.com/vfg2006/retail-insights-api/pkg/log"
	"golang.org/x/sync/errgroup"
)

// Janelas padrão, em meses, quando o filtro não define período
const (
	BranchPerformanceMonths = 6
	LocationAnalysisMonths  = 12
	ForecastHistoryMonths   = 24

	TopProductsLimit = 10
)

// Service implementa a interface Analytics
type Service struct {
	fetcher    AggregateFetcher
	resolver   *filtering.Resolver
	engine     *forecasting.Engine
	thresholds metrics.Thresholds
}

// Option configura o Service
type Option func(*Service)

// WithThresholds define os limites de classificação de filiais e regiões
func WithThresholds(thresholds metrics.Thresholds) Option {
	return func(s *Service) {
		s.thresholds = thresholds
	}
}

// WithForecastEngine define o motor de previsão
func WithForecastEngine(engine *forecasting.Engine) Option {
	return func(s *Service) {
		s.engine = engine
	}
}

// WithResolver define o resolvedor de filtros
func WithResolver(resolver *filtering.Resolver) Option {
	return func(s *Service) {
		s.resolver = resolver
	}
}

// NewService cria uma nova instância do serviço de dashboard
func NewService(fetcher AggregateFetcher, opts ...Option) *Service {
	s := &Service{
		fetcher:    fetcher,
		resolver:   filtering.NewResolver(),
		engine:     forecasting.NewEngine(forecasting.DefaultConfig()),
		thresholds: metrics.DefaultThresholds(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetStats retorna os KPIs de receita, unidades, filial e produto destaque
func (s *Service) GetStats(ctx context.Context, filter domain.Filter) (*domain.SummaryKPIs, error) {
	predicate := s.resolver.Resolve(filter)

	var (
		totals     *domain.SalesTotals
		topBranch  *domain.NamedRevenue
		topProduct *domain.ProductAggregate
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		totals, err = s.fetcher.GetTotals(gctx, predicate)
		return err
	})
	g.Go(func() (err error) {
		topBranch, err = s.fetcher.GetTopBranch(gctx, predicate)
		return err
	})
	g.Go(func() (err error) {
		topProduct, err = s.fetcher.GetTopProduct(gctx, predicate)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fetchError(ctx, "stats", err)
	}

	return metrics.Summary(totals, topBranch, topProduct), nil
}

// GetSalesOverTime retorna a série mensal de vendas
func (s *Service) GetSalesOverTime(ctx context.Context, filter domain.Filter) ([]domain.SaleAggregate, error) {
	sales, err := s.fetcher.GetMonthlySales(ctx, s.resolver.Resolve(filter))
	if err != nil {
		return nil, fetchError(ctx, "sales_over_time", err)
	}
	if sales == nil {
		sales = []domain.SaleAggregate{}
	}
	return sales, nil
}

// GetBreakdown retorna a receita agrupada por filial, categoria e cidade
func (s *Service) GetBreakdown(ctx context.Context, filter domain.Filter) (*domain.Breakdown, error) {
	predicate := s.resolver.Resolve(filter)

	var (
		branches   []domain.NamedRevenue
		categories []domain.CategoryAggregate
		cities     []domain.NamedRevenue
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		branches, err = s.fetcher.GetBranchRevenue(gctx, predicate)
		return err
	})
	g.Go(func() (err error) {
		categories, err = s.fetcher.GetCategoryRevenue(gctx, predicate)
		return err
	})
	g.Go(func() (err error) {
		cities, err = s.fetcher.GetCityRevenue(gctx, predicate)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fetchError(ctx, "breakdown", err)
	}

	breakdown := &domain.Breakdown{
		Branches:   nonNil(branches),
		Categories: make([]domain.NamedRevenue, 0, len(categories)),
		Cities:     nonNil(cities),
	}
	for _, c := range categories {
		breakdown.Categories = append(breakdown.Categories, domain.NamedRevenue{Name: c.CategoryName, Revenue: c.Revenue})
	}

	return breakdown, nil
}

// GetForecast projeta os próximos meses a partir dos últimos 24 meses de vendas.
// O período do filtro recorta apenas o histórico exibido.
func (s *Service) GetForecast(ctx context.Context, filter domain.Filter) (*domain.ForecastResult, error) {
	history, err := s.fetcher.GetMonthlySales(ctx, s.resolver.ResolveTrailing(filter, ForecastHistoryMonths))
	if err != nil {
		return nil, fetchError(ctx, "forecast", err)
	}

	result := s.engine.Forecast(history, forecasting.DisplayWindowFromFilter(filter))

	log.ForContext(ctx).WithFields(log.Fields{
		"history_months": len(history),
		"growth_rate":    result.GrowthRatePercent,
		"outlook":        result.Outlook,
	}).Debug("Previsão calculada")

	return result, nil
}

// GetTopProducts retorna os produtos mais vendidos em unidades
func (s *Service) GetTopProducts(ctx context.Context, filter domain.Filter) ([]domain.ProductAggregate, error) {
	products, err := s.fetcher.GetTopProducts(ctx, s.resolver.Resolve(filter), TopProductsLimit)
	if err != nil {
		return nil, fetchError(ctx, "top_products", err)
	}
	return nonNil(products), nil
}

// GetBranchPerformance calcula o score de eficiência das filiais dentro de cada cidade
func (s *Service) GetBranchPerformance(ctx context.Context, filter domain.Filter) ([]domain.BranchPerformance, error) {
	predicate := filtering.Scope(
		s.resolver.ResolveWithDefault(filter, BranchPerformanceMonths),
		filtering.DimensionCity|filtering.DimensionCategory,
	)

	branches, err := s.fetcher.GetBranchPerformance(ctx, predicate)
	if err != nil {
		return nil, fetchError(ctx, "branch_performance", err)
	}

	return metrics.BranchEfficiency(branches, s.thresholds), nil
}

// GetLocationAnalysis calcula o índice de penetração de cada região
func (s *Service) GetLocationAnalysis(ctx context.Context, filter domain.Filter) ([]domain.LocationOpportunity, error) {
	predicate := filtering.Scope(s.resolver.ResolveWithDefault(filter, LocationAnalysisMonths), filtering.DimensionCity)

	districts, err := s.fetcher.GetDistrictPerformance(ctx, predicate)
	if err != nil {
		return nil, fetchError(ctx, "location_analysis", err)
	}

	return metrics.LocationPenetration(districts, s.thresholds), nil
}

// GetTrendAnalysis compara a receita das categorias entre a janela atual e a anterior
func (s *Service) GetTrendAnalysis(ctx context.Context, filter domain.Filter) (*domain.TrendReport, error) {
	currentPredicate, previousPredicate := s.resolver.ResolveTrendWindows(filter)
	currentPredicate = filtering.Scope(currentPredicate, filtering.DimensionCity)
	previousPredicate = filtering.Scope(previousPredicate, filtering.DimensionCity)

	var current, previous []domain.CategoryAggregate

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		current, err = s.fetcher.GetCategoryRevenue(gctx, currentPredicate)
		return err
	})
	g.Go(func() (err error) {
		previous, err = s.fetcher.GetCategoryRevenue(gctx, previousPredicate)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fetchError(ctx, "trend_analysis", err)
	}

	return metrics.TrendDelta(current, previous), nil
}

// GetFilterOptions retorna as opções disponíveis para os filtros do dashboard
func (s *Service) GetFilterOptions(ctx context.Context) (*domain.FilterOptions, error) {
	start := time.Now()

	options, err := s.fetcher.GetFilterOptions(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar opções de filtro")
		return nil, NewDashboardError(err, ErrFetchFilterOptions, apiErrors.ErrDatabaseOperation, "filter_options", "")
	}
	if options == nil {
		options = &domain.FilterOptions{}
	}

	options.Cities = nonNil(options.Cities)
	options.Branches = nonNil(options.Branches)
	options.Categories = nonNil(options.Categories)

	log.ForContext(ctx).WithField("duration_ms", time.Since(start).Milliseconds()).Debug("Opções de filtro carregadas")

	return options, nil
}

func fetchError(ctx context.Context, operation string, err error) error {
	log.ForContext(ctx).WithError(err).WithField("operation", operation).Error("Erro ao consultar agregados de vendas")
	return NewDashboardError(err, ErrFetchAggregates, apiErrors.ErrDatabaseOperation, operation, "")
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
