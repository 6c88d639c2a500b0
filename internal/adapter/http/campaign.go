package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"casa-boost/internal/core/domain"
	"casa-boost/internal/core/port"
)

// submitCampaignRequest is the submission payload. The price is never part
// of the request; it is quoted from the catalog on the server side.
type submitCampaignRequest struct {
	ListingID        int64  `json:"listing_id" validate:"required"`
	RequesterID      int64  `json:"requester_id" validate:"required"`
	SlotType         string `json:"slot_type" validate:"required,oneof=premium standard"`
	DurationDays     int    `json:"duration_days" validate:"required,oneof=1 7 14 30"`
	PaymentReference string `json:"payment_reference" validate:"required"`
}

// handleSubmitCampaign creates a pending campaign from the request body.
// Parsing and validation errors produce HTTP 400 before any store write.
// On success it returns HTTP 201 with the quoted campaign.
func (h *Handler) handleSubmitCampaign(w http.ResponseWriter, r *http.Request) {
	var req submitCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.svc.SubmitCampaign(r.Context(), port.SubmitCampaignReq{
		ListingID:        req.ListingID,
		RequesterID:      req.RequesterID,
		SlotType:         domain.SlotType(req.SlotType),
		DurationDays:     req.DurationDays,
		PaymentReference: req.PaymentReference,
	})
	if err != nil {
		h.writeError(w, "submit campaign", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, c)
}

// handleGetCampaign returns a single campaign with its derived status.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	c, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, "get campaign", err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}
