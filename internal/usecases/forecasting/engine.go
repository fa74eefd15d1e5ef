// Package forecasting projeta a receita dos próximos meses a partir do histórico mensal
package forecasting

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/retail-insights-api/internal/domain"
)

// Perspectivas retornadas junto com a recomendação
const (
	OutlookInsufficient = "insufficient"
	OutlookCaution      = "caution"
	OutlookGrowth       = "growth"
	OutlookStable       = "stable"
)

const (
	RecommendationInsufficient = "Not enough data: at least 12 months of history are required."
	RecommendationCaution      = "CAUTION: year-over-year sales are declining. Reduce inventory costs and clear out underperforming products."
	RecommendationGrowth       = "GROWTH: strong upward trend. Scale up inventory and run campaigns on popular products."
	RecommendationStable       = "STABLE: balanced growth. Keep the current strategy and focus on customer loyalty."
)

const periodLayout = "2006-01"

// Config define os parâmetros do modelo de previsão
type Config struct {
	MinHistoryMonths int             // histórico mínimo para projetar
	HorizonMonths    int             // meses projetados
	FallbackGrowth   decimal.Decimal // taxa assumida sem 12 meses anteriores comparáveis
	HighGrowth       decimal.Decimal // acima: recomendação de crescimento
	LowGrowth        decimal.Decimal // abaixo: recomendação de cautela
}

// DefaultConfig retorna os parâmetros padrão do modelo
func DefaultConfig() Config {
	return Config{
		MinHistoryMonths: 12,
		HorizonMonths:    6,
		FallbackGrowth:   decimal.RequireFromString("0.05"),
		HighGrowth:       decimal.RequireFromString("0.20"),
		LowGrowth:        decimal.Zero,
	}
}

// DisplayWindow recorta o histórico exibido, sem afetar o cálculo
type DisplayWindow struct {
	StartPeriod string // yyyy-mm inclusivo
	EndPeriod   string // yyyy-mm inclusivo
	Year        string
	LastMonths  int
}

// DisplayWindowFromFilter deriva a janela de exibição a partir do filtro da requisição
func DisplayWindowFromFilter(filter domain.Filter) DisplayWindow {
	if filter.DateRange != nil {
		return DisplayWindow{
			StartPeriod: filter.DateRange.Start.Format(periodLayout),
			EndPeriod:   filter.DateRange.End.Format(periodLayout),
		}
	}

	period := strings.TrimSpace(filter.Period)
	switch {
	case period == "" || period == domain.PeriodAll:
		return DisplayWindow{}
	case len(period) == 4:
		return DisplayWindow{Year: period}
	}

	months, err := strconv.Atoi(period)
	if err != nil || months <= 0 {
		return DisplayWindow{}
	}
	return DisplayWindow{LastMonths: months}
}

// Engine é o motor de previsão. Não guarda estado entre chamadas.
type Engine struct {
	cfg Config
	now func() time.Time
}

// Option configura o Engine
type Option func(*Engine)

// WithClock define o relógio usado para rotular os meses projetados
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// NewEngine cria o motor de previsão
func NewEngine(cfg Config, opts ...Option) *Engine {
	e := &Engine{cfg: cfg, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Forecast calcula a taxa de crescimento anual e projeta os próximos meses.
//
// Cada mês projetado parte da mesma base (o último mês realizado) multiplicada por
// (1 + taxa); não há composição mês a mês.
func (e *Engine) Forecast(history []domain.SaleAggregate, window DisplayWindow) *domain.ForecastResult {
	points := toHistoryPoints(history)

	if len(history) < e.cfg.MinHistoryMonths {
		return &domain.ForecastResult{
			History:           points,
			Forecast:          []domain.ForecastPoint{},
			GrowthRate:        decimal.Zero,
			GrowthRatePercent: "0.0",
			Outlook:           OutlookInsufficient,
			Recommendation:    RecommendationInsufficient,
		}
	}

	growth := e.GrowthRate(history)
	outlook, recommendation := e.classify(growth)

	base := history[len(history)-1].Revenue
	factor := decimal.NewFromInt(1).Add(growth)
	start := firstOfMonth(e.now())

	forecast := make([]domain.ForecastPoint, 0, e.cfg.HorizonMonths)
	for i := 1; i <= e.cfg.HorizonMonths; i++ {
		forecast = append(forecast, domain.ForecastPoint{
			Period:          start.AddDate(0, i, 0).Format(periodLayout),
			ForecastRevenue: base.Mul(factor),
		})
	}

	return &domain.ForecastResult{
		History:           window.apply(points),
		Forecast:          forecast,
		GrowthRate:        growth,
		GrowthRatePercent: growth.Mul(decimal.NewFromInt(100)).StringFixed(1),
		Outlook:           outlook,
		Recommendation:    recommendation,
	}
}

// GrowthRate compara os últimos 12 meses com os 12 anteriores. Sem meses anteriores
// (ou com soma zero) retorna a taxa padrão do modelo.
func (e *Engine) GrowthRate(history []domain.SaleAggregate) decimal.Decimal {
	const yearMonths = 12

	if len(history) <= yearMonths {
		return e.cfg.FallbackGrowth
	}

	last := history[len(history)-yearMonths:]
	previousStart := len(history) - 2*yearMonths
	if previousStart < 0 {
		previousStart = 0
	}
	previous := history[previousStart : len(history)-yearMonths]

	sumPrevious := sumRevenue(previous)
	if !sumPrevious.IsPositive() {
		return e.cfg.FallbackGrowth
	}

	return sumRevenue(last).Sub(sumPrevious).Div(sumPrevious)
}

func (e *Engine) classify(growth decimal.Decimal) (outlook string, recommendation string) {
	switch {
	case growth.LessThan(e.cfg.LowGrowth):
		return OutlookCaution, RecommendationCaution
	case growth.GreaterThan(e.cfg.HighGrowth):
		return OutlookGrowth, RecommendationGrowth
	default:
		return OutlookStable, RecommendationStable
	}
}

func (w DisplayWindow) apply(points []domain.HistoryPoint) []domain.HistoryPoint {
	switch {
	case w.StartPeriod != "" && w.EndPeriod != "":
		out := make([]domain.HistoryPoint, 0, len(points))
		for _, p := range points {
			if p.Period >= w.StartPeriod && p.Period <= w.EndPeriod {
				out = append(out, p)
			}
		}
		return out
	case w.Year != "":
		out := make([]domain.HistoryPoint, 0, len(points))
		for _, p := range points {
			if strings.HasPrefix(p.Period, w.Year) {
				out = append(out, p)
			}
		}
		return out
	case w.LastMonths > 0 && len(points) > w.LastMonths:
		return points[len(points)-w.LastMonths:]
	default:
		return points
	}
}

func toHistoryPoints(history []domain.SaleAggregate) []domain.HistoryPoint {
	points := make([]domain.HistoryPoint, 0, len(history))
	for _, h := range history {
		points = append(points, domain.HistoryPoint{Period: h.Period, Revenue: h.Revenue})
	}
	return points
}

func sumRevenue(history []domain.SaleAggregate) decimal.Decimal {
	total := decimal.Zero
	for _, h := range history {
		total = total.Add(h.Revenue)
	}
	return total
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
