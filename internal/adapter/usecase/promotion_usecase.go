package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"casa-boost/internal/core/domain"
	"casa-boost/internal/core/port"
)

// maxAllocRetries bounds the transparent retry loop around agent code
// allocation before the contention is surfaced to the caller.
const maxAllocRetries = 3

// candidateLimit caps how many live campaigns are fetched for slot
// admission. Two slots are filled; the margin absorbs dropped slots from
// dangling listing references.
const candidateLimit = 50

// PromotionUseCase implements port.PromotionUseCase. It orchestrates the
// campaign lifecycle, the slot admission selector and the agent code
// allocator over the repository port.
type PromotionUseCase struct {
	repo     port.PromotionRepository
	listings port.ListingResolver
	cache    port.SponsoredCache // may be nil; selection then always hits the store

	// now is the clock; swapped in tests to exercise derived expiry.
	now func() time.Time
}

// NewPromotionUseCase creates the usecase. cache may be nil.
func NewPromotionUseCase(repo port.PromotionRepository, listings port.ListingResolver, cache port.SponsoredCache) *PromotionUseCase {
	return &PromotionUseCase{
		repo:     repo,
		listings: listings,
		cache:    cache,
		now:      time.Now,
	}
}

// SubmitCampaign validates the request, prices it once and persists a
// pending campaign. Validation failures are returned before any store
// write.
func (u *PromotionUseCase) SubmitCampaign(ctx context.Context, req port.SubmitCampaignReq) (*domain.Campaign, error) {
	if !req.SlotType.Valid() || !domain.ValidDuration(req.DurationDays) {
		return nil, domain.ErrInvalidSlotOrDuration
	}
	if strings.TrimSpace(req.PaymentReference) == "" {
		return nil, port.ErrMissingPaymentReference
	}
	price, err := domain.PriceOf(req.SlotType, req.DurationDays)
	if err != nil {
		return nil, err
	}

	c := &domain.Campaign{
		ID:               uuid.New(),
		ListingID:        req.ListingID,
		RequesterID:      req.RequesterID,
		SlotType:         req.SlotType,
		DurationDays:     req.DurationDays,
		RequestedDays:    req.DurationDays,
		Price:            price,
		PaymentReference: strings.TrimSpace(req.PaymentReference),
		Status:           domain.StatusPending,
		CreatedAt:        u.now().UTC(),
	}
	if err := u.repo.CreateCampaign(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// GetCampaign returns the campaign with the derived status applied for
// display. The stored status is never rewritten here.
func (u *PromotionUseCase) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	c, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, port.ErrNotFound
	}
	c.Status = c.EffectiveStatus(u.now())
	return c, nil
}

// ListPendingCampaigns returns campaigns awaiting an admin decision.
func (u *PromotionUseCase) ListPendingCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	pending := domain.StatusPending
	return u.repo.ListCampaigns(ctx, port.CampaignFilter{Status: &pending})
}

// ActivateCampaign moves a pending campaign to active. The conditional
// write in the repository is the sole guard: if another admin decided the
// campaign first, the repository reports ErrAlreadyDecided and no fields
// are written.
func (u *PromotionUseCase) ActivateCampaign(ctx context.Context, id uuid.UUID, days int) (*domain.Campaign, error) {
	c, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, port.ErrNotFound
	}
	if c.Status != domain.StatusPending {
		return nil, port.ErrAlreadyDecided
	}
	if days <= 0 {
		days = c.RequestedDays
	}

	start := u.now().UTC()
	end := start.AddDate(0, 0, days)
	tr := port.StatusTransition{
		Status:        domain.StatusActive,
		StartAt:       &start,
		EndAt:         &end,
		RequestedDays: &days,
	}
	if err := u.repo.TransitionStatus(ctx, id, domain.StatusPending, tr); err != nil {
		return nil, err
	}

	c.Status = domain.StatusActive
	c.StartAt = &start
	c.EndAt = &end
	c.RequestedDays = days
	return c, nil
}

// RejectCampaign moves a pending campaign to rejected under the same guard
// as ActivateCampaign. Resubmission requires a brand-new campaign.
func (u *PromotionUseCase) RejectCampaign(ctx context.Context, id uuid.UUID) error {
	return u.repo.TransitionStatus(ctx, id, domain.StatusPending, port.StatusTransition{
		Status: domain.StatusRejected,
	})
}

// SelectSponsoredForHomepage runs slot admission over the live campaigns
// and enriches the winners with their listings. A winner whose listing no
// longer exists is dropped rather than failing the whole selection; when
// neither slot resolves the result is (nil, nil) and the caller omits the
// sponsored section. The cache, when configured, is best effort.
func (u *PromotionUseCase) SelectSponsoredForHomepage(ctx context.Context) (*port.SponsoredSelection, error) {
	if u.cache != nil {
		if sel, err := u.cache.Get(ctx); err == nil && sel != nil {
			return sel, nil
		}
	}

	now := u.now().UTC()
	active := domain.StatusActive
	candidates, err := u.repo.ListCampaigns(ctx, port.CampaignFilter{
		Status:   &active,
		EndAfter: &now,
		Limit:    candidateLimit,
	})
	if err != nil {
		return nil, err
	}

	premium, standard := selectSlots(candidates)

	sel := &port.SponsoredSelection{}
	if sel.Premium, err = u.enrich(ctx, premium); err != nil {
		return nil, err
	}
	if sel.Standard, err = u.enrich(ctx, standard); err != nil {
		return nil, err
	}
	if sel.Premium == nil && sel.Standard == nil {
		return nil, nil
	}

	if u.cache != nil {
		_ = u.cache.Set(ctx, sel)
	}
	return sel, nil
}

// enrich resolves the campaign's listing into a rendered slot. A dangling
// reference drops the slot; store failures propagate.
func (u *PromotionUseCase) enrich(ctx context.Context, c *domain.Campaign) (*port.SponsoredSlot, error) {
	if c == nil {
		return nil, nil
	}
	listing, err := u.listings.GetListingSummary(ctx, c.ListingID)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, nil
	}
	return &port.SponsoredSlot{
		CampaignID: c.ID,
		SlotType:   c.SlotType,
		EndAt:      *c.EndAt,
		Listing:    *listing,
	}, nil
}

// AllocateAgentCode hands the account a unique agent code, or returns the
// one it already holds. Serialization conflicts inside the store are
// retried transparently up to maxAllocRetries before surfacing as
// ErrAllocationContention.
func (u *PromotionUseCase) AllocateAgentCode(ctx context.Context, accountID int64) (int64, error) {
	acct, err := u.repo.GetAccount(ctx, accountID)
	if err != nil {
		return 0, err
	}
	if acct == nil {
		return 0, port.ErrNotFound
	}
	if acct.AgentCode != nil {
		return *acct.AgentCode, nil
	}

	for attempt := 0; attempt < maxAllocRetries; attempt++ {
		code, err := u.repo.AllocateAgentCode(ctx, accountID)
		if err == nil {
			return code, nil
		}
		if !errors.Is(err, port.ErrAllocationConflict) {
			return 0, err
		}
	}
	return 0, port.ErrAllocationContention
}
