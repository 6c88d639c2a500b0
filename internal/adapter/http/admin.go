package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// activateCampaignRequest optionally overrides the requested duration. A
// missing body or zero days keeps what the requester asked for.
type activateCampaignRequest struct {
	Days int `json:"days" validate:"omitempty,gt=0"`
}

// handlePendingCampaigns lists campaigns awaiting a decision.
func (h *Handler) handlePendingCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.svc.ListPendingCampaigns(r.Context())
	if err != nil {
		h.writeError(w, "list pending campaigns", err)
		return
	}
	h.writeJSON(w, http.StatusOK, campaigns)
}

// handleActivateCampaign activates a pending campaign. A campaign decided
// by another admin in the meantime produces HTTP 409.
func (h *Handler) handleActivateCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}

	var req activateCampaignRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err = h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.svc.ActivateCampaign(r.Context(), id, req.Days)
	if err != nil {
		h.writeError(w, "activate campaign", err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

// handleRejectCampaign rejects a pending campaign under the same guard as
// activation.
func (h *Handler) handleRejectCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	if err = h.svc.RejectCampaign(r.Context(), id); err != nil {
		h.writeError(w, "reject campaign", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleAllocateAgentCode assigns an agent code to the account, returning
// the existing one when already assigned.
func (h *Handler) handleAllocateAgentCode(w http.ResponseWriter, r *http.Request) {
	accountID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid account id", http.StatusBadRequest)
		return
	}
	code, err := h.svc.AllocateAgentCode(r.Context(), accountID)
	if err != nil {
		h.writeError(w, "allocate agent code", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]int64{"agent_code": code})
}
