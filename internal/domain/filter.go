// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// PeriodAll indica que nenhum recorte de tempo deve ser aplicado
const PeriodAll = "all"

// DateRange representa um intervalo de datas fechado [Start, End]
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Filter representa os filtros informados pelo cliente em uma requisição de análise.
// Quando DateRange está presente ele tem precedência sobre Period.
type Filter struct {
	Period     string     `json:"period,omitempty"` // "all", ano com 4 dígitos ou quantidade de meses
	DateRange  *DateRange `json:"date_range,omitempty"`
	CityID     *int64     `json:"city_id,omitempty"`
	BranchID   *int64     `json:"branch_id,omitempty"`
	CategoryID *int64     `json:"category_id,omitempty"`
}

// HasDateRange indica se o filtro possui um intervalo de datas explícito
func (f Filter) HasDateRange() bool {
	return f.DateRange != nil
}
