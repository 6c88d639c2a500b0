package domain

import (
	"time"

	"github.com/google/uuid"
)

// SlotType identifies which advertising slot on the home page a campaign
// competes for.
type SlotType string

const (
	SlotTypePremium  SlotType = "premium"
	SlotTypeStandard SlotType = "standard"
)

// Valid reports whether the slot type is part of the catalog.
func (s SlotType) Valid() bool {
	return s == SlotTypePremium || s == SlotTypeStandard
}

// CampaignStatus is the lifecycle state of a boost campaign. Only pending,
// active and rejected are ever persisted; expired is derived at read time
// from EndAt and never written to storage.
type CampaignStatus string

const (
	StatusPending  CampaignStatus = "pending"
	StatusActive   CampaignStatus = "active"
	StatusRejected CampaignStatus = "rejected"
	StatusExpired  CampaignStatus = "expired"
)

// Campaign represents one paid promotion of a listing into a sponsored
// slot. Price is stored in integer minor units and is computed exactly once
// at submission; later pricing changes never touch an already quoted
// campaign. StartAt and EndAt are set on activation only.
type Campaign struct {
	ID               uuid.UUID      `json:"id"`
	ListingID        int64          `json:"listing_id"`
	RequesterID      int64          `json:"requester_id"`
	SlotType         SlotType       `json:"slot_type"`
	DurationDays     int            `json:"duration_days"`
	RequestedDays    int            `json:"requested_days"`
	Price            int64          `json:"price"`
	PaymentReference string         `json:"payment_reference,omitempty"`
	Status           CampaignStatus `json:"status"`
	StartAt          *time.Time     `json:"start_at,omitempty"`
	EndAt            *time.Time     `json:"end_at,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
}

// EffectiveStatus returns the status to report to callers: an active
// campaign whose EndAt has passed is expired. Pure; never writes back.
func (c *Campaign) EffectiveStatus(now time.Time) CampaignStatus {
	if c.Status == StatusActive && c.EndAt != nil && c.EndAt.Before(now) {
		return StatusExpired
	}
	return c.Status
}

// Live reports whether the campaign is eligible for slot admission at the
// given instant.
func (c *Campaign) Live(now time.Time) bool {
	return c.Status == StatusActive && c.EndAt != nil && c.EndAt.After(now)
}
