package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/retail-insights-api/pkg/apiErrors"
	"github.com/vfg2006/retail-insights-api/pkg/log"
)

// Pinger verifica a disponibilidade de uma dependência
type Pinger interface {
	Ping(ctx context.Context) error
}

const healthcheckTimeout = 2 * time.Second

// HealthcheckHandler responde com o horário atual e o estado do banco de dados
func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthcheckTimeout)
			defer cancel()

			if err := db.Ping(ctx); err != nil {
				log.ForContext(r.Context()).WithError(err).Warn("Banco de dados indisponível no healthcheck")
				apiErrors.WriteError(w, apiErrors.ErrServiceStatus, "Banco de dados indisponível", nil)
				return
			}
		}

		writeJSON(w, r, http.StatusOK, map[string]string{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})
}
