package handler

import (
	"net/http"

	"github.com/vfg2006/retail-insights-api/internal/usecases/dashboard"
)

// GetStats retorna os KPIs principais do período
func GetStats(service dashboard.Analytics) http.HandlerFunc {
	return analyticsHandler("GetStats", service.GetStats)
}

// GetSalesOverTime retorna a série mensal de vendas
func GetSalesOverTime(service dashboard.Analytics) http.HandlerFunc {
	return analyticsHandler("GetSalesOverTime", service.GetSalesOverTime)
}

// GetBreakdown retorna a receita por filial, categoria e cidade
func GetBreakdown(service dashboard.Analytics) http.HandlerFunc {
	return analyticsHandler("GetBreakdown", service.GetBreakdown)
}

// GetForecast retorna a previsão de receita dos próximos meses
func GetForecast(service dashboard.Analytics) http.HandlerFunc {
	return analyticsHandler("GetForecast", service.GetForecast)
}

// GetTopProducts retorna os produtos mais vendidos
func GetTopProducts(service dashboard.Analytics) http.HandlerFunc {
	return analyticsHandler("GetTopProducts", service.GetTopProducts)
}

// GetBranchPerformance retorna o score de eficiência das filiais
func GetBranchPerformance(service dashboard.Analytics) http.HandlerFunc {
	return analyticsHandler("GetBranchPerformance", service.GetBranchPerformance)
}

// GetLocationAnalysis retorna o índice de penetração das regiões
func GetLocationAnalysis(service dashboard.Analytics) http.HandlerFunc {
	return analyticsHandler("GetLocationAnalysis", service.GetLocationAnalysis)
}

// GetTrendAnalysis retorna as categorias que mais cresceram e mais caíram
func GetTrendAnalysis(service dashboard.Analytics) http.HandlerFunc {
	return analyticsHandler("GetTrendAnalysis", service.GetTrendAnalysis)
}

// GetFilterOptions retorna as opções de cidade, filial e categoria
func GetFilterOptions(service dashboard.Analytics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		options, err := service.GetFilterOptions(r.Context())
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, options)
	}
}
