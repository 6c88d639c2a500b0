package httpadapter

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"casa-boost/internal/core/domain"
	"casa-boost/internal/core/port"
	"casa-boost/internal/core/port/mocks"
)

func newTestHandler(t *testing.T) (*mocks.MockPromotionUseCase, http.Handler) {
	svc := mocks.NewMockPromotionUseCase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return svc, NewHandler(svc, logger).Router()
}

func TestSubmitCampaignEndpoint(t *testing.T) {
	svc, router := newTestHandler(t)

	id := uuid.New()
	svc.EXPECT().
		SubmitCampaign(mock.Anything, port.SubmitCampaignReq{
			ListingID:        1,
			RequesterID:      2,
			SlotType:         domain.SlotTypePremium,
			DurationDays:     7,
			PaymentReference: "MM-2026-0001",
		}).
		Return(&domain.Campaign{ID: id, Price: 8000, Status: domain.StatusPending}, nil)

	body := `{"listing_id":1,"requester_id":2,"slot_type":"premium","duration_days":7,"payment_reference":"MM-2026-0001"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/campaigns", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var got domain.Campaign
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, id, got.ID)
	require.Equal(t, int64(8000), got.Price)
}

func TestSubmitCampaignEndpointRejectsBadInput(t *testing.T) {
	_, router := newTestHandler(t)

	cases := []struct {
		name string
		body string
	}{
		{"invalid slot", `{"listing_id":1,"requester_id":2,"slot_type":"golden","duration_days":7,"payment_reference":"x"}`},
		{"invalid duration", `{"listing_id":1,"requester_id":2,"slot_type":"premium","duration_days":3,"payment_reference":"x"}`},
		{"missing payment reference", `{"listing_id":1,"requester_id":2,"slot_type":"premium","duration_days":7}`},
		{"not json", `{{`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/campaigns", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			require.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestActivateEndpointConflict(t *testing.T) {
	svc, router := newTestHandler(t)

	id := uuid.New()
	svc.EXPECT().
		ActivateCampaign(mock.Anything, id, 0).
		Return(nil, port.ErrAlreadyDecided)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/campaigns/"+id.String()+"/activate", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	require.Contains(t, rec.Body.String(), "already handled")
}

func TestActivateEndpointOverride(t *testing.T) {
	svc, router := newTestHandler(t)

	id := uuid.New()
	end := time.Date(2026, 3, 11, 10, 0, 0, 0, time.UTC)
	svc.EXPECT().
		ActivateCampaign(mock.Anything, id, 10).
		Return(&domain.Campaign{ID: id, Status: domain.StatusActive, EndAt: &end}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/campaigns/"+id.String()+"/activate", strings.NewReader(`{"days":10}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRejectEndpoint(t *testing.T) {
	svc, router := newTestHandler(t)

	id := uuid.New()
	svc.EXPECT().RejectCampaign(mock.Anything, id).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/campaigns/"+id.String()+"/reject", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestSponsoredEndpointEmpty(t *testing.T) {
	svc, router := newTestHandler(t)

	svc.EXPECT().SelectSponsoredForHomepage(mock.Anything).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sponsored", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Body.String())
}

func TestSponsoredEndpoint(t *testing.T) {
	svc, router := newTestHandler(t)

	sel := &port.SponsoredSelection{
		Premium: &port.SponsoredSlot{
			CampaignID: uuid.New(),
			SlotType:   domain.SlotTypePremium,
			EndAt:      time.Date(2026, 3, 11, 10, 0, 0, 0, time.UTC),
			Listing:    domain.ListingSummary{ID: 1, Title: "Penthouse", City: "Lisbon", Price: 450000},
		},
	}
	svc.EXPECT().SelectSponsoredForHomepage(mock.Anything).Return(sel, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sponsored", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got port.SponsoredSelection
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.NotNil(t, got.Premium)
	require.Equal(t, "Penthouse", got.Premium.Listing.Title)
	require.Nil(t, got.Standard)
}

func TestAgentCodeEndpoint(t *testing.T) {
	svc, router := newTestHandler(t)

	svc.EXPECT().AllocateAgentCode(mock.Anything, int64(42)).Return(int64(7), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/accounts/42/agent-code", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"agent_code":7}`, rec.Body.String())
}

func TestAgentCodeEndpointContention(t *testing.T) {
	svc, router := newTestHandler(t)

	svc.EXPECT().AllocateAgentCode(mock.Anything, int64(42)).Return(int64(0), port.ErrAllocationContention)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/accounts/42/agent-code", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestCatalogEndpoint(t *testing.T) {
	_, router := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got catalogResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Slots, 2)
	require.Len(t, got.Durations, 4)
	require.Equal(t, int64(8000), got.Prices[domain.SlotTypePremium]["7d"])
}
