package http

import (
	"net/http"
	"time"

	commonhttp "github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/common/http"
	"github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/common/logger"
	"github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/tracker/service"
)

type Options struct {
	RequestTimeout time.Duration
	RateLimiter    *commonhttp.RateLimiter
}

type Handler struct {
	tracker service.Service
	log     *logger.Logger
	errors  *commonhttp.ErrorHandler
}

// RegisterRoutes mounts the /api/users endpoints on mux.
func RegisterRoutes(mux *http.ServeMux, tracker service.Service, log *logger.Logger, opts Options) {
	h := &Handler{
		tracker: tracker,
		log:     log,
		errors:  commonhttp.NewErrorHandler(log),
	}

	wrap := func(fn http.HandlerFunc) http.Handler {
		var handler http.Handler = fn
		handler = commonhttp.WithTimeout(opts.RequestTimeout)(handler)
		if opts.RateLimiter != nil {
			handler = opts.RateLimiter.Middleware(handler)
		}
		return handler
	}

	mux.Handle("POST /api/users", wrap(h.createUser))
	mux.Handle("GET /api/users", wrap(h.listUsers))
	mux.Handle("POST /api/users/{id}/exercises", wrap(h.addExercise))
	mux.Handle("GET /api/users/{id}/logs", wrap(h.getLogs))
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	fields, err := commonhttp.ReadFields(r, "username")
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	user, err := h.tracker.CreateUser(r.Context(), service.CreateUserInput{Username: fields["username"]})
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, toUserView(user))
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.tracker.ListUsers(r.Context())
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, toUserViews(users))
}

func (h *Handler) addExercise(w http.ResponseWriter, r *http.Request) {
	fields, err := commonhttp.ReadFields(r, "description", "duration", "date")
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	res, err := h.tracker.AddExercise(r.Context(), r.PathValue("id"), service.AddExerciseInput{
		Description: fields["description"],
		Duration:    fields["duration"],
		Date:        fields["date"],
	})
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, toExerciseView(res))
}

func (h *Handler) getLogs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	res, err := h.tracker.GetLogs(r.Context(), r.PathValue("id"), service.LogQuery{
		From:  query.Get("from"),
		To:    query.Get("to"),
		Limit: query.Get("limit"),
	})
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, toLogView(res))
}
