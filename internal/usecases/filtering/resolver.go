// Package filtering converte os filtros da requisição em predicados tipados para a camada de dados
package filtering

import (
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/retail-insights-api/internal/domain"
)

const (
	defaultColumnPrefix = "s"
	dateColumn          = "sale_date"

	// Janela padrão da análise de tendência quando o período não é informado em meses
	defaultTrendMonths = 6
)

// Resolver normaliza filtros em predicados. Não guarda estado entre chamadas.
type Resolver struct {
	now    func() time.Time
	prefix string
}

// Option configura o Resolver
type Option func(*Resolver)

// WithClock define o relógio usado para períodos relativos
func WithClock(now func() time.Time) Option {
	return func(r *Resolver) {
		r.now = now
	}
}

// WithColumnPrefix define o alias da tabela de vendas usado na coluna de data
func WithColumnPrefix(prefix string) Option {
	return func(r *Resolver) {
		r.prefix = prefix
	}
}

// NewResolver cria um Resolver com relógio do sistema e prefixo "s"
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		now:    time.Now,
		prefix: defaultColumnPrefix,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Column retorna a coluna de data qualificada pelo prefixo
func (r *Resolver) Column() string {
	if r.prefix == "" {
		return dateColumn
	}
	return r.prefix + "." + dateColumn
}

// Resolve converte o filtro em predicado. Valores malformados de período
// resultam em ausência de recorte temporal.
func (r *Resolver) Resolve(filter domain.Filter) domain.Predicate {
	return domain.Predicate{
		Time:       r.timePredicate(filter),
		CityID:     filter.CityID,
		BranchID:   filter.BranchID,
		CategoryID: filter.CategoryID,
	}
}

// ResolveWithDefault funciona como Resolve, mas aplica os últimos months meses
// quando o filtro não produz recorte temporal
func (r *Resolver) ResolveWithDefault(filter domain.Filter, months int) domain.Predicate {
	predicate := r.Resolve(filter)
	if !predicate.Time.IsBounded() {
		predicate.Time = r.since(months)
	}
	return predicate
}

// ResolveTrailing ignora o recorte temporal do filtro e aplica sempre os últimos months meses
func (r *Resolver) ResolveTrailing(filter domain.Filter, months int) domain.Predicate {
	predicate := r.Resolve(filter)
	predicate.Time = r.since(months)
	return predicate
}

// Dimension identifica um filtro de dimensão do predicado
type Dimension int

const (
	DimensionCity Dimension = 1 << iota
	DimensionBranch
	DimensionCategory
)

// Scope mantém no predicado apenas as dimensões em keep. O recorte temporal não muda.
func Scope(predicate domain.Predicate, keep Dimension) domain.Predicate {
	if keep&DimensionCity == 0 {
		predicate.CityID = nil
	}
	if keep&DimensionBranch == 0 {
		predicate.BranchID = nil
	}
	if keep&DimensionCategory == 0 {
		predicate.CategoryID = nil
	}
	return predicate
}

// ResolveTrendWindows retorna a janela atual e a janela anterior de mesmo tamanho.
//
// Com intervalo de datas, a janela anterior termina antes do início e tem a mesma
// quantidade de dias do intervalo. Sem intervalo, usa o período em meses (padrão 6).
func (r *Resolver) ResolveTrendWindows(filter domain.Filter) (current domain.Predicate, previous domain.Predicate) {
	current = r.Resolve(filter)
	previous = current

	if filter.DateRange != nil {
		start := filter.DateRange.Start
		days := int(filter.DateRange.End.Sub(start).Hours() / 24)

		current.Time = domain.TimePredicate{
			Kind:   domain.TimeBetween,
			Column: r.Column(),
			Start:  start,
			End:    filter.DateRange.End,
		}
		previous.Time = domain.TimePredicate{
			Kind:   domain.TimeRange,
			Column: r.Column(),
			Start:  start.AddDate(0, 0, -days),
			End:    start,
		}
		return current, previous
	}

	months := defaultTrendMonths
	if n, ok := parseMonths(filter.Period); ok {
		months = n
	}

	now := r.now()
	current.Time = r.since(months)
	previous.Time = domain.TimePredicate{
		Kind:   domain.TimeRange,
		Column: r.Column(),
		Start:  now.AddDate(0, -2*months, 0),
		End:    now.AddDate(0, -months, 0),
	}
	return current, previous
}

func (r *Resolver) timePredicate(filter domain.Filter) domain.TimePredicate {
	if filter.DateRange != nil {
		return domain.TimePredicate{
			Kind:   domain.TimeBetween,
			Column: r.Column(),
			Start:  filter.DateRange.Start,
			End:    filter.DateRange.End,
		}
	}

	period := strings.TrimSpace(filter.Period)
	if period == "" || period == domain.PeriodAll {
		return domain.TimePredicate{Kind: domain.TimeUnbounded}
	}

	if year, ok := parseYear(period); ok {
		return domain.TimePredicate{
			Kind:   domain.TimeYear,
			Column: r.Column(),
			Year:   year,
		}
	}

	if len(period) == 4 {
		// 4 caracteres que não formam um ano
		return domain.TimePredicate{Kind: domain.TimeUnbounded}
	}

	if months, ok := parseMonths(period); ok {
		return r.since(months)
	}

	return domain.TimePredicate{Kind: domain.TimeUnbounded}
}

func (r *Resolver) since(months int) domain.TimePredicate {
	return domain.TimePredicate{
		Kind:   domain.TimeSince,
		Column: r.Column(),
		Start:  r.now().AddDate(0, -months, 0),
	}
}

// parseYear aceita exatamente 4 dígitos
func parseYear(period string) (int, bool) {
	if len(period) != 4 {
		return 0, false
	}

	year, err := strconv.Atoi(period)
	if err != nil || year <= 0 {
		return 0, false
	}

	return year, true
}

// parseMonths aceita um inteiro positivo que não seja um ano
func parseMonths(period string) (int, bool) {
	period = strings.TrimSpace(period)
	if period == "" || period == domain.PeriodAll || len(period) == 4 {
		return 0, false
	}

	months, err := strconv.Atoi(period)
	if err != nil || months <= 0 {
		return 0, false
	}

	return months, true
}
