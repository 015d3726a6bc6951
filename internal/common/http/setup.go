package http

import (
	"net/http"

	"github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/common/httpmetrics"
	"github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/common/logger"
)

type BaseOptions struct {
	MaxRequestSize int64
	AllowedOrigins []string
	CSP            string
}

// BuildBaseHandler wraps handler with the middleware every route shares.
func BuildBaseHandler(log *logger.Logger, opts BaseOptions, handler http.Handler) http.Handler {
	recovery := RecoveryMiddleware(log)
	maxRequestSize := MaxRequestSizeMiddleware(opts.MaxRequestSize)
	cors := CORSMiddleware(opts.AllowedOrigins)
	csp := ContentSecurityPolicyMiddleware(opts.CSP)

	return SecurityHeadersMiddleware(csp(TraceIDMiddleware(cors(recovery(maxRequestSize(httpmetrics.Wrap(handler)))))))
}
