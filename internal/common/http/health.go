package http

import (
	"context"
	"net/http"
	"time"

	"github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/common/constants"
	"github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/common/logger"
)

type PingFunc func(ctx context.Context) error

type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}

// HealthHandler reports "ok", or "unavailable" with a 503 when ping fails.
func HealthHandler(log *logger.Logger, serviceName string, ping PingFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{
			Status:    "ok",
			Service:   serviceName,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}

		if ping != nil {
			ctx, cancel := context.WithTimeout(r.Context(), constants.HealthCheckTimeout)
			defer cancel()

			if err := ping(ctx); err != nil {
				log.WithFields(r.Context(), logger.Fields{"action": "health_check_failed"}).Warnf("store ping failed: %v", err)
				resp.Status = "unavailable"
				WriteJSON(w, http.StatusServiceUnavailable, resp)
				return
			}
		}

		WriteJSON(w, http.StatusOK, resp)
	}
}
