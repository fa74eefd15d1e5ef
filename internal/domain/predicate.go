package domain

import "time"

// TimePredicateKind identifica o formato do recorte temporal
type TimePredicateKind int

const (
	// TimeUnbounded não aplica recorte de tempo
	TimeUnbounded TimePredicateKind = iota
	// TimeBetween aplica Column BETWEEN Start AND End (inclusivo)
	TimeBetween
	// TimeYear aplica year(Column) = Year
	TimeYear
	// TimeSince aplica Column >= Start
	TimeSince
	// TimeRange aplica Start <= Column < End
	TimeRange
)

func (k TimePredicateKind) String() string {
	switch k {
	case TimeBetween:
		return "between"
	case TimeYear:
		return "year"
	case TimeSince:
		return "since"
	case TimeRange:
		return "range"
	default:
		return "unbounded"
	}
}

// TimePredicate é a descrição tipada de um recorte temporal sobre uma coluna de data
type TimePredicate struct {
	Kind   TimePredicateKind
	Column string
	Start  time.Time
	End    time.Time
	Year   int
}

// IsBounded indica se existe recorte temporal
func (p TimePredicate) IsBounded() bool {
	return p.Kind != TimeUnbounded
}

// Predicate é a forma canônica dos filtros consumida pela camada de acesso a dados
type Predicate struct {
	Time       TimePredicate
	CityID     *int64
	BranchID   *int64
	CategoryID *int64
}

// HasCategory indica se a consulta precisa considerar os itens de venda
func (p Predicate) HasCategory() bool {
	return p.CategoryID != nil
}
