package domain

import "errors"

// ErrInvalidSlotOrDuration is returned by PriceOf for a slot type or
// duration outside the catalog.
var ErrInvalidSlotOrDuration = errors.New("invalid slot type or duration")

// priceMatrix maps (slot type, duration in days) to a price in integer
// minor units. The matrix is fixed; quoted campaigns carry their own copy
// of the price so edits here never reprice an existing request.
var priceMatrix = map[SlotType]map[int]int64{
	SlotTypePremium: {
		1:  1500,
		7:  8000,
		14: 14000,
		30: 25000,
	},
	SlotTypeStandard: {
		1:  800,
		7:  4500,
		14: 8000,
		30: 14000,
	},
}

// durations lists the purchasable campaign lengths, in days.
var durations = []DurationInfo{
	{Days: 1, Label: "1d"},
	{Days: 7, Label: "7d"},
	{Days: 14, Label: "14d"},
	{Days: 30, Label: "30d"},
}

// SlotInfo describes one slot type in the catalog. MaxConcurrent is the
// number of positions of that type on the home page; it is advisory data
// for the admin UI and is not enforced at activation.
type SlotInfo struct {
	Type          SlotType `json:"type"`
	MaxConcurrent int      `json:"max_concurrent"`
}

// DurationInfo describes one purchasable duration.
type DurationInfo struct {
	Days  int    `json:"days"`
	Label string `json:"label"`
}

// PriceOf returns the price in minor units for the given slot type and
// duration. It is a pure lookup over the fixed matrix.
func PriceOf(slot SlotType, days int) (int64, error) {
	byDuration, ok := priceMatrix[slot]
	if !ok {
		return 0, ErrInvalidSlotOrDuration
	}
	price, ok := byDuration[days]
	if !ok {
		return 0, ErrInvalidSlotOrDuration
	}
	return price, nil
}

// SlotCatalog enumerates the valid slot types.
func SlotCatalog() []SlotInfo {
	return []SlotInfo{
		{Type: SlotTypePremium, MaxConcurrent: 1},
		{Type: SlotTypeStandard, MaxConcurrent: 1},
	}
}

// DurationCatalog enumerates the valid durations.
func DurationCatalog() []DurationInfo {
	out := make([]DurationInfo, len(durations))
	copy(out, durations)
	return out
}

// ValidDuration reports whether days is a purchasable duration.
func ValidDuration(days int) bool {
	for _, d := range durations {
		if d.Days == days {
			return true
		}
	}
	return false
}
