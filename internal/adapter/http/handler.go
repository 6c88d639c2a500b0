package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"casa-boost/internal/core/domain"
	"casa-boost/internal/core/port"
)

// Handler is the inbound HTTP adapter. It holds the promotion usecase, a
// request validator and a logger, and registers all routes on a chi.Router.
// Authentication is handled by the upstream gateway; the admin routes trust
// it.
type Handler struct {
	svc      port.PromotionUseCase
	validate *validator.Validate
	logger   *slog.Logger
	router   chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.PromotionUseCase, logger *slog.Logger) *Handler {
	h := &Handler{
		svc:      svc,
		validate: validator.New(),
		logger:   logger,
	}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/campaigns", h.handleSubmitCampaign)
		r.Get("/campaigns/{id}", h.handleGetCampaign)
		r.Get("/sponsored", h.handleSponsored)
		r.Get("/catalog", h.handleCatalog)

		r.Route("/admin", func(r chi.Router) {
			r.Get("/campaigns/pending", h.handlePendingCampaigns)
			r.Post("/campaigns/{id}/activate", h.handleActivateCampaign)
			r.Post("/campaigns/{id}/reject", h.handleRejectCampaign)
			r.Post("/accounts/{id}/agent-code", h.handleAllocateAgentCode)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// writeJSON encodes v with the given status. Encoding failures are logged;
// the status line has already been sent at that point.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps usecase errors onto HTTP statuses. Validation failures
// surface verbatim; a lost activate/reject race reads as "already handled";
// allocator contention and store faults are reported as transient.
func (h *Handler) writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidSlotOrDuration),
		errors.Is(err, port.ErrMissingPaymentReference):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, port.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, port.ErrAlreadyDecided):
		http.Error(w, "campaign already handled", http.StatusConflict)
	case errors.Is(err, port.ErrAllocationContention):
		h.logger.Warn(op+" contention", slog.Any("error", err))
		http.Error(w, "temporarily unavailable", http.StatusServiceUnavailable)
	default:
		h.logger.Error(op+" error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
