package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-insights-api/internal/domain"
	"github.com/vfg2006/retail-insights-api/internal/usecases/dashboard/mocks"
	"github.com/vfg2006/retail-insights-api/internal/usecases/filtering"
	"github.com/vfg2006/retail-insights-api/internal/usecases/forecasting"
	"github.com/vfg2006/retail-insights-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 7, 15, 10, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func newTestService(t *testing.T) (*Service, *mocks.MockAggregateFetcher) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockAggregateFetcher(ctrl)

	service := NewService(
		fetcher,
		WithResolver(filtering.NewResolver(filtering.WithClock(clock))),
		WithForecastEngine(forecasting.NewEngine(forecasting.DefaultConfig(), forecasting.WithClock(clock))),
	)
	return service, fetcher
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func sincePredicate(months int) domain.Predicate {
	return domain.Predicate{Time: domain.TimePredicate{
		Kind:   domain.TimeSince,
		Column: "s.sale_date",
		Start:  fixedNow.AddDate(0, -months, 0),
	}}
}

func TestService_GetStats(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(f *mocks.MockAggregateFetcher)
		expected *domain.SummaryKPIs
	}{
		{
			name: "KPIs com vendas no período",
			setup: func(f *mocks.MockAggregateFetcher) {
				f.EXPECT().GetTotals(gomock.Any(), gomock.Any()).
					Return(&domain.SalesTotals{Revenue: dec(15000), Units: 320}, nil)
				f.EXPECT().GetTopBranch(gomock.Any(), gomock.Any()).
					Return(&domain.NamedRevenue{Name: "Centro", Revenue: dec(9000)}, nil)
				f.EXPECT().GetTopProduct(gomock.Any(), gomock.Any()).
					Return(&domain.ProductAggregate{ProductName: "Camiseta", UnitsSold: 80}, nil)
			},
			expected: &domain.SummaryKPIs{
				TotalRevenue:   dec(15000),
				TotalUnits:     320,
				TopBranchName:  "Centro",
				TopProductName: "Camiseta",
			},
		},
		{
			name: "Sem vendas retorna zero e traço",
			setup: func(f *mocks.MockAggregateFetcher) {
				f.EXPECT().GetTotals(gomock.Any(), gomock.Any()).Return(nil, nil)
				f.EXPECT().GetTopBranch(gomock.Any(), gomock.Any()).Return(nil, nil)
				f.EXPECT().GetTopProduct(gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			expected: &domain.SummaryKPIs{
				TotalRevenue:   decimal.Zero,
				TotalUnits:     0,
				TopBranchName:  "-",
				TopProductName: "-",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, fetcher := newTestService(t)
			tt.setup(fetcher)

			result, err := service.GetStats(context.Background(), domain.Filter{Period: "all"})

			require.NoError(t, err)
			assert.True(t, tt.expected.TotalRevenue.Equal(result.TotalRevenue))
			assert.Equal(t, tt.expected.TotalUnits, result.TotalUnits)
			assert.Equal(t, tt.expected.TopBranchName, result.TopBranchName)
			assert.Equal(t, tt.expected.TopProductName, result.TopProductName)
		})
	}
}

func TestService_GetStats_FetchFailureAborts(t *testing.T) {
	service, fetcher := newTestService(t)
	dbErr := errors.New("connection refused")

	fetcher.EXPECT().GetTotals(gomock.Any(), gomock.Any()).Return(nil, dbErr)
	fetcher.EXPECT().GetTopBranch(gomock.Any(), gomock.Any()).
		Return(&domain.NamedRevenue{Name: "Centro"}, nil).AnyTimes()
	fetcher.EXPECT().GetTopProduct(gomock.Any(), gomock.Any()).
		Return(&domain.ProductAggregate{ProductName: "Camiseta"}, nil).AnyTimes()

	result, err := service.GetStats(context.Background(), domain.Filter{})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.ErrorIs(t, err, ErrFetchAggregates)

	var dashErr *DashboardError
	require.ErrorAs(t, err, &dashErr)
	assert.Equal(t, apiErrors.ErrDatabaseOperation, dashErr.Code)
	assert.Equal(t, "stats", dashErr.Operation)
}

func TestService_GetSalesOverTime(t *testing.T) {
	service, fetcher := newTestService(t)
	filter := domain.Filter{Period: "3"}

	fetcher.EXPECT().GetMonthlySales(gomock.Any(), gomock.Eq(sincePredicate(3))).Return(nil, nil)

	result, err := service.GetSalesOverTime(context.Background(), filter)

	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestService_GetBreakdown(t *testing.T) {
	service, fetcher := newTestService(t)

	fetcher.EXPECT().GetBranchRevenue(gomock.Any(), gomock.Any()).
		Return([]domain.NamedRevenue{{Name: "Centro", Revenue: dec(500)}}, nil)
	fetcher.EXPECT().GetCategoryRevenue(gomock.Any(), gomock.Any()).
		Return([]domain.CategoryAggregate{{CategoryName: "Calçados", Revenue: dec(300)}, {CategoryName: "Roupas", Revenue: dec(200)}}, nil)
	fetcher.EXPECT().GetCityRevenue(gomock.Any(), gomock.Any()).Return(nil, nil)

	result, err := service.GetBreakdown(context.Background(), domain.Filter{})

	require.NoError(t, err)
	require.Len(t, result.Branches, 1)
	assert.Equal(t, "Centro", result.Branches[0].Name)
	require.Len(t, result.Categories, 2)
	assert.Equal(t, "Calçados", result.Categories[0].Name)
	assert.True(t, dec(200).Equal(result.Categories[1].Revenue))
	assert.NotNil(t, result.Cities)
	assert.Empty(t, result.Cities)
}

func TestService_GetBreakdown_FetchFailureAborts(t *testing.T) {
	service, fetcher := newTestService(t)
	dbErr := errors.New("timeout")

	fetcher.EXPECT().GetBranchRevenue(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	fetcher.EXPECT().GetCategoryRevenue(gomock.Any(), gomock.Any()).Return(nil, dbErr)
	fetcher.EXPECT().GetCityRevenue(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	result, err := service.GetBreakdown(context.Background(), domain.Filter{})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, dbErr)
}

func TestService_GetForecast(t *testing.T) {
	service, fetcher := newTestService(t)
	cityID := int64(3)
	filter := domain.Filter{Period: "2023", CityID: &cityID}

	expectedPredicate := sincePredicate(ForecastHistoryMonths)
	expectedPredicate.CityID = &cityID

	history := make([]domain.SaleAggregate, 0, 24)
	start := time.Date(2022, 7, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 24; i++ {
		history = append(history, domain.SaleAggregate{
			Period:  start.AddDate(0, i, 0).Format("2006-01"),
			Revenue: dec(1000),
		})
	}

	fetcher.EXPECT().GetMonthlySales(gomock.Any(), gomock.Eq(expectedPredicate)).Return(history, nil)

	result, err := service.GetForecast(context.Background(), filter)

	require.NoError(t, err)
	// O ano filtra apenas o histórico exibido
	assert.Len(t, result.History, 12)
	assert.Equal(t, "2023-01", result.History[0].Period)
	require.Len(t, result.Forecast, 6)
	assert.Equal(t, "2024-08", result.Forecast[0].Period)
	assert.Equal(t, forecasting.OutlookStable, result.Outlook)
}

func TestService_GetForecast_InsufficientHistory(t *testing.T) {
	service, fetcher := newTestService(t)

	fetcher.EXPECT().GetMonthlySales(gomock.Any(), gomock.Any()).
		Return([]domain.SaleAggregate{{Period: "2024-06", Revenue: dec(100)}}, nil)

	result, err := service.GetForecast(context.Background(), domain.Filter{})

	require.NoError(t, err)
	assert.Empty(t, result.Forecast)
	assert.Equal(t, forecasting.RecommendationInsufficient, result.Recommendation)
}

func TestService_GetTopProducts(t *testing.T) {
	service, fetcher := newTestService(t)

	fetcher.EXPECT().GetTopProducts(gomock.Any(), gomock.Any(), TopProductsLimit).
		Return([]domain.ProductAggregate{{ProductName: "Tênis", UnitsSold: 42}}, nil)

	result, err := service.GetTopProducts(context.Background(), domain.Filter{})

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Tênis", result[0].ProductName)
}

func TestService_GetBranchPerformance(t *testing.T) {
	t.Run("sem período usa os últimos 6 meses", func(t *testing.T) {
		service, fetcher := newTestService(t)

		fetcher.EXPECT().GetBranchPerformance(gomock.Any(), gomock.Eq(sincePredicate(BranchPerformanceMonths))).
			Return([]domain.BranchAggregate{
				{BranchName: "A", CityName: "Recife", Revenue: dec(60)},
				{BranchName: "B", CityName: "Recife", Revenue: dec(140)},
			}, nil)

		result, err := service.GetBranchPerformance(context.Background(), domain.Filter{Period: "all"})

		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "A", result[0].BranchName)
		assert.Equal(t, int64(60), result[0].Efficiency)
		assert.Equal(t, domain.StatusDanger, result[0].Status)
		assert.Equal(t, int64(140), result[1].Efficiency)
		assert.Equal(t, domain.StatusInfo, result[1].Status)
	})

	t.Run("erro na consulta", func(t *testing.T) {
		service, fetcher := newTestService(t)
		dbErr := errors.New("boom")

		fetcher.EXPECT().GetBranchPerformance(gomock.Any(), gomock.Any()).Return(nil, dbErr)

		result, err := service.GetBranchPerformance(context.Background(), domain.Filter{})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestService_GetLocationAnalysis(t *testing.T) {
	service, fetcher := newTestService(t)

	fetcher.EXPECT().GetDistrictPerformance(gomock.Any(), gomock.Eq(sincePredicate(LocationAnalysisMonths))).
		Return([]domain.DistrictAggregate{
			{DistrictName: "Boa Viagem", CityName: "Recife", Population: 100, RegionRevenue: dec(1000)},
			{DistrictName: "Casa Forte", CityName: "Recife", Population: 100, RegionRevenue: dec(1000)},
		}, nil)

	result, err := service.GetLocationAnalysis(context.Background(), domain.Filter{})

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, int64(100), result[0].PenetrationIndex)
	assert.Equal(t, domain.SignalSecondary, result[0].Signal)
	assert.Equal(t, "10.00", result[0].RevenuePerCapita)
}

func TestService_GetTrendAnalysis(t *testing.T) {
	service, fetcher := newTestService(t)

	current := sincePredicate(6)
	previous := domain.Predicate{Time: domain.TimePredicate{
		Kind:   domain.TimeRange,
		Column: "s.sale_date",
		Start:  fixedNow.AddDate(0, -12, 0),
		End:    fixedNow.AddDate(0, -6, 0),
	}}

	fetcher.EXPECT().GetCategoryRevenue(gomock.Any(), gomock.Eq(current)).
		Return([]domain.CategoryAggregate{
			{CategoryName: "Roupas", Revenue: dec(150)},
			{CategoryName: "Calçados", Revenue: dec(50)},
			{CategoryName: "Acessórios", Revenue: dec(10)},
		}, nil)
	fetcher.EXPECT().GetCategoryRevenue(gomock.Any(), gomock.Eq(previous)).
		Return([]domain.CategoryAggregate{
			{CategoryName: "Roupas", Revenue: dec(100)},
			{CategoryName: "Calçados", Revenue: dec(100)},
		}, nil)

	result, err := service.GetTrendAnalysis(context.Background(), domain.Filter{})

	require.NoError(t, err)
	require.Len(t, result.Risers, 3)
	assert.Equal(t, "Acessórios", result.Risers[0].Name)
	assert.Equal(t, "100.0", result.Risers[0].Change)
	assert.Equal(t, "Roupas", result.Risers[1].Name)
	assert.Equal(t, "50.0", result.Risers[1].Change)
	require.Len(t, result.Fallers, 1)
	assert.Equal(t, "Calçados", result.Fallers[0].Name)
	assert.Equal(t, domain.DirectionDown, result.Fallers[0].Direction)
}

func TestService_GetTrendAnalysis_FetchFailureAborts(t *testing.T) {
	service, fetcher := newTestService(t)
	dbErr := errors.New("canceling statement due to statement timeout")

	fetcher.EXPECT().GetCategoryRevenue(gomock.Any(), gomock.Eq(sincePredicate(6))).Return(nil, dbErr)
	fetcher.EXPECT().GetCategoryRevenue(gomock.Any(), gomock.Not(gomock.Eq(sincePredicate(6)))).
		Return([]domain.CategoryAggregate{{CategoryName: "Roupas", Revenue: dec(100)}}, nil).AnyTimes()

	result, err := service.GetTrendAnalysis(context.Background(), domain.Filter{})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.ErrorIs(t, err, ErrFetchAggregates)

	var dashErr *DashboardError
	require.ErrorAs(t, err, &dashErr)
	assert.Equal(t, "trend_analysis", dashErr.Operation)
}

// Filial e categoria não restringem as análises que comparam filiais e regiões entre si
func TestService_ComparativeAnalysesIgnoreNarrowFilters(t *testing.T) {
	cityID, branchID, categoryID := int64(3), int64(5), int64(7)
	filter := domain.Filter{CityID: &cityID, BranchID: &branchID, CategoryID: &categoryID}

	t.Run("desempenho das filiais mantém cidade e categoria", func(t *testing.T) {
		service, fetcher := newTestService(t)

		expected := sincePredicate(BranchPerformanceMonths)
		expected.CityID = &cityID
		expected.CategoryID = &categoryID

		fetcher.EXPECT().GetBranchPerformance(gomock.Any(), gomock.Eq(expected)).
			Return([]domain.BranchAggregate{
				{BranchName: "Fraca", CityName: "Recife", Revenue: dec(50)},
				{BranchName: "Forte", CityName: "Recife", Revenue: dec(150)},
			}, nil)

		result, err := service.GetBranchPerformance(context.Background(), filter)

		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "Fraca", result[0].BranchName)
		assert.Equal(t, int64(50), result[0].Efficiency)
		assert.Equal(t, domain.StatusDanger, result[0].Status)
	})

	t.Run("análise de regiões mantém apenas cidade", func(t *testing.T) {
		service, fetcher := newTestService(t)

		expected := sincePredicate(LocationAnalysisMonths)
		expected.CityID = &cityID

		fetcher.EXPECT().GetDistrictPerformance(gomock.Any(), gomock.Eq(expected)).
			Return([]domain.DistrictAggregate{}, nil)

		_, err := service.GetLocationAnalysis(context.Background(), filter)
		require.NoError(t, err)
	})

	t.Run("tendência mantém apenas cidade nas duas janelas", func(t *testing.T) {
		service, fetcher := newTestService(t)

		current := sincePredicate(6)
		current.CityID = &cityID
		previous := domain.Predicate{
			Time: domain.TimePredicate{
				Kind:   domain.TimeRange,
				Column: "s.sale_date",
				Start:  fixedNow.AddDate(0, -12, 0),
				End:    fixedNow.AddDate(0, -6, 0),
			},
			CityID: &cityID,
		}

		fetcher.EXPECT().GetCategoryRevenue(gomock.Any(), gomock.Eq(current)).Return([]domain.CategoryAggregate{}, nil)
		fetcher.EXPECT().GetCategoryRevenue(gomock.Any(), gomock.Eq(previous)).Return([]domain.CategoryAggregate{}, nil)

		_, err := service.GetTrendAnalysis(context.Background(), filter)
		require.NoError(t, err)
	})
}

func TestService_GetFilterOptions(t *testing.T) {
	t.Run("listas vazias quando não há cadastro", func(t *testing.T) {
		service, fetcher := newTestService(t)

		fetcher.EXPECT().GetFilterOptions(gomock.Any()).Return(&domain.FilterOptions{
			Cities: []domain.City{{ID: 1, Name: "Recife"}},
		}, nil)

		result, err := service.GetFilterOptions(context.Background())

		require.NoError(t, err)
		assert.Len(t, result.Cities, 1)
		assert.NotNil(t, result.Branches)
		assert.NotNil(t, result.Categories)
	})

	t.Run("erro na consulta", func(t *testing.T) {
		service, fetcher := newTestService(t)
		dbErr := errors.New("boom")

		fetcher.EXPECT().GetFilterOptions(gomock.Any()).Return(nil, dbErr)

		result, err := service.GetFilterOptions(context.Background())

		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrFetchFilterOptions)
		assert.ErrorIs(t, err, dbErr)
	})
}
