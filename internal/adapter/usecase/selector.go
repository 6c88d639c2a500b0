package usecase

import "casa-boost/internal/core/domain"

// selectSlots performs slot admission over candidates, which must be the
// live campaigns ordered by end_at ascending (soonest-to-expire first; that
// ordering is the tie-break and is relied on here, not re-sorted).
//
// The premium slot takes the first premium candidate, falling back to the
// first candidate of any type. The standard slot takes the first standard
// candidate not already holding the premium slot, falling back to the first
// remaining candidate of any type. Pure over its input.
func selectSlots(candidates []domain.Campaign) (premium, standard *domain.Campaign) {
	if len(candidates) == 0 {
		return nil, nil
	}

	for i := range candidates {
		if candidates[i].SlotType == domain.SlotTypePremium {
			premium = &candidates[i]
			break
		}
	}
	if premium == nil {
		premium = &candidates[0]
	}

	for i := range candidates {
		if candidates[i].ID == premium.ID {
			continue
		}
		if candidates[i].SlotType == domain.SlotTypeStandard {
			standard = &candidates[i]
			break
		}
	}
	if standard == nil {
		for i := range candidates {
			if candidates[i].ID != premium.ID {
				standard = &candidates[i]
				break
			}
		}
	}
	return premium, standard
}
