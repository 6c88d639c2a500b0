package httpadapter

import (
	"net/http"

	"casa-boost/internal/core/domain"
)

// handleSponsored runs slot admission for the home page. When no slot
// resolves it returns HTTP 204 and the page omits the sponsored section.
func (h *Handler) handleSponsored(w http.ResponseWriter, r *http.Request) {
	sel, err := h.svc.SelectSponsoredForHomepage(r.Context())
	if err != nil {
		h.writeError(w, "select sponsored", err)
		return
	}
	if sel == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	h.writeJSON(w, http.StatusOK, sel)
}

// catalogResponse exposes the pricing policy so the submission form renders
// prices without duplicating the matrix.
type catalogResponse struct {
	Slots     []domain.SlotInfo                    `json:"slots"`
	Durations []domain.DurationInfo                `json:"durations"`
	Prices    map[domain.SlotType]map[string]int64 `json:"prices"`
}

// handleCatalog returns slot types, durations and the price matrix.
func (h *Handler) handleCatalog(w http.ResponseWriter, r *http.Request) {
	resp := catalogResponse{
		Slots:     domain.SlotCatalog(),
		Durations: domain.DurationCatalog(),
		Prices:    make(map[domain.SlotType]map[string]int64),
	}
	for _, slot := range resp.Slots {
		prices := make(map[string]int64, len(resp.Durations))
		for _, d := range resp.Durations {
			price, err := domain.PriceOf(slot.Type, d.Days)
			if err != nil {
				continue
			}
			prices[d.Label] = price
		}
		resp.Prices[slot.Type] = prices
	}
	h.writeJSON(w, http.StatusOK, resp)
}
