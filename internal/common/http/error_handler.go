package http

import (
	"net/http"
	"strconv"

	commonerrors "github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/common/errors"
	"github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/common/httpmetrics"
	"github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/common/logger"
	"github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/observability/metrics"
)

// ErrorHandler turns service errors into {"error": msg} responses. Domain
// errors keep their status and message; anything else becomes a generic 500.
// Causes are only ever logged.
type ErrorHandler struct {
	log *logger.Logger
}

func NewErrorHandler(log *logger.Logger) *ErrorHandler {
	return &ErrorHandler{log: log}
}

func (h *ErrorHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	domainErr, ok := commonerrors.AsDomainError(err)
	if !ok {
		domainErr = commonerrors.ErrInternalError.WithCause(err)
	}

	status := domainErr.HTTPStatus()
	logFields := logger.Fields{
		"error_code": domainErr.Code(),
		"category":   string(domainErr.Category()),
		"status":     status,
		"method":     r.Method,
		"path":       r.URL.Path,
	}

	switch {
	case status >= http.StatusInternalServerError:
		h.log.WithFields(r.Context(), logFields).Errorf("request failed: %v", err)
	case h.log.ShouldLog(logger.DEBUG):
		h.log.WithFields(r.Context(), logFields).Debugf("request rejected: %v", err)
	}

	metrics.DomainErrorsTotal.WithLabelValues(
		string(domainErr.Category()),
		domainErr.Code(),
		strconv.Itoa(status),
	).Inc()

	metrics.HTTPErrorsTotal.WithLabelValues(
		strconv.Itoa(status),
		httpmetrics.NormalizePath(r.URL.Path),
		r.Method,
	).Inc()

	WriteError(w, status, domainErr.Message())
}
