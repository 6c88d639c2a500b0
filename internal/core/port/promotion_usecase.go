package port

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"casa-boost/internal/core/domain"
)

// ErrMissingPaymentReference is returned by SubmitCampaign when the payment
// confirmation code is empty. The reference is free text the admin verifies
// by eye; it is required but never parsed.
var ErrMissingPaymentReference = errors.New("payment reference is required")

// SubmitCampaignReq carries a new boost purchase attempt. The price is not
// part of the request; it is computed from the pricing catalog at submission.
type SubmitCampaignReq struct {
	ListingID        int64
	RequesterID      int64
	SlotType         domain.SlotType
	DurationDays     int
	PaymentReference string
}

// SponsoredSlot is one rendered advertising position: the winning campaign
// plus the listing it promotes.
type SponsoredSlot struct {
	CampaignID uuid.UUID             `json:"campaign_id"`
	SlotType   domain.SlotType       `json:"slot_type"`
	EndAt      time.Time             `json:"end_at"`
	Listing    domain.ListingSummary `json:"listing"`
}

// SponsoredSelection is the outcome of slot admission for the home page.
// Either slot may be nil; callers omit the sponsored section entirely when
// both are.
type SponsoredSelection struct {
	Premium  *SponsoredSlot `json:"premium,omitempty"`
	Standard *SponsoredSlot `json:"standard,omitempty"`
}

// PromotionUseCase is the inbound port exposing the boost campaign engine
// to the rest of the application. Mock implementations are generated from
// this interface for testing.
type PromotionUseCase interface {
	// SubmitCampaign validates the request, prices it once from the catalog
	// and persists a pending campaign.
	SubmitCampaign(ctx context.Context, req SubmitCampaignReq) (*domain.Campaign, error)

	// GetCampaign returns the campaign with its derived status applied
	// (an overrun active campaign reads as expired).
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)

	// ListPendingCampaigns returns campaigns awaiting an admin decision.
	ListPendingCampaigns(ctx context.Context) ([]domain.Campaign, error)

	// ActivateCampaign moves a pending campaign to active. A positive days
	// value overrides the requested duration; days <= 0 keeps it. Racing
	// decisions lose with ErrAlreadyDecided.
	ActivateCampaign(ctx context.Context, id uuid.UUID, days int) (*domain.Campaign, error)

	// RejectCampaign moves a pending campaign to rejected under the same
	// guard as ActivateCampaign.
	RejectCampaign(ctx context.Context, id uuid.UUID) error

	// SelectSponsoredForHomepage runs slot admission over the currently
	// live campaigns and enriches the winners with their listings. It
	// returns (nil, nil) when no slot resolves.
	SelectSponsoredForHomepage(ctx context.Context) (*SponsoredSelection, error)

	// AllocateAgentCode hands the account a unique agent code, or returns
	// the existing one. Idempotent per account.
	AllocateAgentCode(ctx context.Context, accountID int64) (int64, error)
}
