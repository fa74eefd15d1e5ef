package dashboard

import (
	"errors"
	"fmt"
)

// Erros específicos do dashboard
var (
	// Erros de banco de dados
	ErrFetchAggregates    = errors.New("error fetching sales aggregates")
	ErrFetchFilterOptions = errors.New("error fetching filter options")
)

// DashboardError envolve a falha original de uma consulta com o contexto da operação
type DashboardError struct {
	Err       error  // Erro original retornado pela consulta
	Kind      error  // Erro sentinela da categoria
	Code      string // Código de erro para API
	Operation string // Operação do dashboard que falhou
	Details   string // Detalhes adicionais
}

// Error implementa a interface error
func (e *DashboardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s: %s", e.Operation, e.Details, e.Err.Error())
	}
	return fmt.Sprintf("%s: %s", e.Operation, e.Err.Error())
}

// Unwrap retorna o erro original sem modificação
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// Is permite comparar com o erro sentinela da categoria
func (e *DashboardError) Is(target error) bool {
	return e.Kind != nil && target == e.Kind
}

// NewDashboardError cria um novo DashboardError
func NewDashboardError(err error, kind error, code string, operation string, details string) *DashboardError {
	return &DashboardError{
		Err:       err,
		Kind:      kind,
		Code:      code,
		Operation: operation,
		Details:   details,
	}
}
