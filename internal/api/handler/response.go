package handler

import (
	"context"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/retail-insights-api/internal/domain"
	"github.com/vfg2006/retail-insights-api/internal/usecases/dashboard"
	"github.com/vfg2006/retail-insights-api/internal/usecases/filtering"
	"github.com/vfg2006/retail-insights-api/pkg/apiErrors"
	"github.com/vfg2006/retail-insights-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Parâmetros de filtro aceitos na query string
const (
	queryPeriod     = "period"
	queryStartDate  = "start_date"
	queryEndDate    = "end_date"
	queryCityID     = "city_id"
	queryBranchID   = "branch_id"
	queryCategoryID = "category_id"
)

// parseFilter lê os filtros da query string. Intervalo de datas incompleto ou
// inválido é descartado e registrado como aviso.
func parseFilter(r *http.Request) domain.Filter {
	query := r.URL.Query()
	params := filtering.Params{
		Period:     query.Get(queryPeriod),
		StartDate:  query.Get(queryStartDate),
		EndDate:    query.Get(queryEndDate),
		CityID:     query.Get(queryCityID),
		BranchID:   query.Get(queryBranchID),
		CategoryID: query.Get(queryCategoryID),
	}

	if params.HasPartialDateRange() {
		log.ForContext(r.Context()).WithFields(log.Fields{
			"start_date": params.StartDate,
			"end_date":   params.EndDate,
		}).Warn("Intervalo de datas incompleto ou inválido, ignorando filtro de datas")
	}

	return filtering.ParseFilter(params)
}

// analyticsHandler aplica o filtro da requisição a uma operação do dashboard e
// escreve o resultado em JSON
func analyticsHandler[T any](operation string, run func(ctx context.Context, filter domain.Filter) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Debugf("INIT - %s", operation)

		result, err := run(r.Context(), parseFilter(r))
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// handleServiceError trata os erros do dashboard e retorna a resposta apropriada
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		log.ForContext(r.Context()).WithError(err).Warn("Consulta interrompida antes de concluir")
		apiErrors.WriteError(w, apiErrors.ErrRequestCanceled, "Consulta cancelada ou expirada", nil)
		return
	}

	var dashErr *dashboard.DashboardError
	if errors.As(err, &dashErr) {
		apiErrors.WriteError(w, dashErr.Code, "Erro ao consultar dados de vendas", map[string]any{
			"operation": dashErr.Operation,
		})
		return
	}

	log.ForContext(r.Context()).WithError(err).Error("Erro inesperado no dashboard")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar a requisição", nil)
}
