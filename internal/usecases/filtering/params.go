package filtering

import (
	"strconv"
	"strings"

	"github.com/vfg2006/retail-insights-api/internal/domain"
	"github.com/vfg2006/retail-insights-api/pkg/utils"
)

// Params são os valores brutos dos filtros, como chegam na query string
type Params struct {
	Period     string
	StartDate  string
	EndDate    string
	CityID     string
	BranchID   string
	CategoryID string
}

// ParseFilter converte os parâmetros brutos em Filter.
// Valores vazios, "all" ou inválidos são tratados como ausentes.
func ParseFilter(params Params) domain.Filter {
	filter := domain.Filter{
		Period:     strings.TrimSpace(params.Period),
		CityID:     parseID(params.CityID),
		BranchID:   parseID(params.BranchID),
		CategoryID: parseID(params.CategoryID),
	}

	start, startOK := utils.ParseDate(params.StartDate)
	end, endOK := utils.ParseDate(params.EndDate)
	if startOK && endOK {
		filter.DateRange = &domain.DateRange{Start: start, End: end}
	}

	return filter
}

// HasPartialDateRange indica que apenas uma das datas foi informada ou que alguma é inválida
func (p Params) HasPartialDateRange() bool {
	if p.StartDate == "" && p.EndDate == "" {
		return false
	}
	_, startOK := utils.ParseDate(p.StartDate)
	_, endOK := utils.ParseDate(p.EndDate)
	return !startOK || !endOK
}

func parseID(value string) *int64 {
	value = strings.TrimSpace(value)
	if value == "" || value == domain.PeriodAll {
		return nil
	}

	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil
	}

	return &id
}
