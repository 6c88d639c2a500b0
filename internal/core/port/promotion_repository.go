package port

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"casa-boost/internal/core/domain"
)

var (
	// ErrNotFound indicates the referenced campaign or account does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyDecided is returned by TransitionStatus when the campaign
	// exists but is no longer pending. The loser of an activate/reject race
	// observes this error.
	ErrAlreadyDecided = errors.New("campaign already decided")
	// ErrAllocationConflict is a retryable serialization failure inside
	// AllocateAgentCode. Callers retry a bounded number of times.
	ErrAllocationConflict = errors.New("agent code allocation conflict")
	// ErrAllocationContention is surfaced after the retry budget for
	// ErrAllocationConflict is exhausted.
	ErrAllocationContention = errors.New("agent code allocation contention")
)

// CampaignFilter narrows ListCampaigns. Rows are always ordered by end_at
// ascending (nulls last), then created_at ascending, so the soonest-to-expire
// campaign comes first.
type CampaignFilter struct {
	Status   *domain.CampaignStatus
	EndAfter *time.Time
	Limit    int
}

// StatusTransition carries the fields written alongside a guarded status
// change. Nil pointers leave the stored value untouched.
type StatusTransition struct {
	Status        domain.CampaignStatus
	StartAt       *time.Time
	EndAt         *time.Time
	RequestedDays *int
}

// PromotionRepository is the outbound persistence port for the promotion
// engine. Implementations must make TransitionStatus an atomic conditional
// write and AllocateAgentCode a single atomic unit across the counter and
// the account row.
type PromotionRepository interface {
	// CreateCampaign persists a new campaign record.
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	// GetCampaign returns the campaign or (nil, nil) when absent.
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	// ListCampaigns returns campaigns matching the filter, soonest-to-expire
	// first.
	ListCampaigns(ctx context.Context, f CampaignFilter) ([]domain.Campaign, error)
	// TransitionStatus applies tr only if the stored status equals expected.
	// It returns ErrAlreadyDecided when the precondition fails and
	// ErrNotFound when no such campaign exists.
	TransitionStatus(ctx context.Context, id uuid.UUID, expected domain.CampaignStatus, tr StatusTransition) error

	// GetAccount returns the account or (nil, nil) when absent.
	GetAccount(ctx context.Context, id int64) (*domain.Account, error)
	// AllocateAgentCode assigns the next agent code to the account and
	// returns it, or returns the already assigned code unchanged. The
	// counter bump and the account write happen in one transaction; on
	// serialization failure it returns ErrAllocationConflict.
	AllocateAgentCode(ctx context.Context, accountID int64) (int64, error)
}

// ListingResolver resolves a listing reference during slot enrichment. A
// dangling reference yields (nil, nil), never an error.
type ListingResolver interface {
	GetListingSummary(ctx context.Context, listingID int64) (*domain.ListingSummary, error)
}

// SponsoredCache is an optional TTL cache for the homepage selection,
// backing the client-side refresh poll. It is advisory: implementations may
// miss or fail and callers fall through to the store.
type SponsoredCache interface {
	// Get returns the cached selection or (nil, nil) on a miss.
	Get(ctx context.Context) (*SponsoredSelection, error)
	// Set stores the selection for the cache's TTL.
	Set(ctx context.Context, sel *SponsoredSelection) error
}
