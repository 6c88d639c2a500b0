package usecase

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"casa-boost/internal/core/domain"
)

func campaignAt(slot domain.SlotType, end time.Time) domain.Campaign {
	return domain.Campaign{
		ID:       uuid.New(),
		SlotType: slot,
		Status:   domain.StatusActive,
		EndAt:    &end,
	}
}

// TestSelectSlotsPrefersTypeOverOrder: a premium campaign wins the premium
// slot even when a standard one expires sooner, and the standard campaign
// keeps the standard slot.
func TestSelectSlotsPrefersTypeOverOrder(t *testing.T) {
	t1 := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.AddDate(0, 0, 3)
	a := campaignAt(domain.SlotTypeStandard, t1)
	b := campaignAt(domain.SlotTypePremium, t2)

	premium, standard := selectSlots([]domain.Campaign{a, b})
	require.NotNil(t, premium)
	require.NotNil(t, standard)
	require.Equal(t, b.ID, premium.ID)
	require.Equal(t, a.ID, standard.ID)
}

// TestSelectSlotsPremiumFallback: with only a standard campaign available,
// it falls into the premium slot and the standard slot stays empty.
func TestSelectSlotsPremiumFallback(t *testing.T) {
	a := campaignAt(domain.SlotTypeStandard, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

	premium, standard := selectSlots([]domain.Campaign{a})
	require.NotNil(t, premium)
	require.Equal(t, a.ID, premium.ID)
	require.Nil(t, standard)
}

// TestSelectSlotsStandardFallback: two premium campaigns fill both slots;
// the soonest-to-expire one takes premium and the other falls into standard.
func TestSelectSlotsStandardFallback(t *testing.T) {
	t1 := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	a := campaignAt(domain.SlotTypePremium, t1)
	b := campaignAt(domain.SlotTypePremium, t1.AddDate(0, 0, 1))

	premium, standard := selectSlots([]domain.Campaign{a, b})
	require.Equal(t, a.ID, premium.ID)
	require.Equal(t, b.ID, standard.ID)
}

// TestSelectSlotsSoonestToExpireFirst: among same-type candidates the input
// order (end_at ascending) decides, so the soonest to expire is shown.
func TestSelectSlotsSoonestToExpireFirst(t *testing.T) {
	t1 := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	first := campaignAt(domain.SlotTypeStandard, t1)
	second := campaignAt(domain.SlotTypeStandard, t1.AddDate(0, 0, 2))
	third := campaignAt(domain.SlotTypeStandard, t1.AddDate(0, 0, 4))

	premium, standard := selectSlots([]domain.Campaign{first, second, third})
	require.Equal(t, first.ID, premium.ID)
	require.Equal(t, second.ID, standard.ID)
}

func TestSelectSlotsEmpty(t *testing.T) {
	premium, standard := selectSlots(nil)
	require.Nil(t, premium)
	require.Nil(t, standard)
}

// TestSelectSlotsNeverDoubleBooks: one campaign can hold at most one slot.
func TestSelectSlotsNeverDoubleBooks(t *testing.T) {
	a := campaignAt(domain.SlotTypePremium, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

	premium, standard := selectSlots([]domain.Campaign{a})
	require.Equal(t, a.ID, premium.ID)
	require.Nil(t, standard)
}
