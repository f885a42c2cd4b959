package scoring

import "github.com/clanfrenzy/frenzybot/internal/domain"

// RecomputeTotals recomputes a catalog's aggregate points bottom-up (item →
// source → tier → team), refreshing every cached subtotal in place.
//
// Subtotals are assigned, never incremented, so repeated calls with no
// intervening mutation are idempotent. The function is safe on a Clone,
// which is how before/after submission deltas are produced.
func RecomputeTotals(c *domain.Catalog) float64 {
	total := 0.0
	for _, tier := range c.Tiers {
		tier.PointsSubtotal = 0
		for _, source := range tier.Sources {
			factor := EffectiveFactor(source, c.Multipliers)
			subtotal := 0.0
			for _, item := range source.Items {
				subtotal += ItemPoints(item) * factor
			}
			source.PointsSubtotal = subtotal
			tier.PointsSubtotal += subtotal
		}
		total += tier.PointsSubtotal
	}
	c.TotalPoints = total
	return total
}

// ParticipantPoints recomputes one participant's total from scratch: each
// obtained item scored at the participant's own count, weighted by the
// product of currently unlocked multipliers for that item's source. The
// completion bonus is team-wide and never applies at the individual level.
//
// Unresolvable item keys are skipped; the catalog is never mutated.
func ParticipantPoints(p *domain.Participant, c *domain.Catalog) float64 {
	total := 0.0
	for key, count := range p.ObtainedItems {
		if count <= 0 {
			continue
		}
		tier, source, item, ok := domain.SplitItemKey(key)
		if !ok {
			continue
		}
		ref, err := c.FindItem(tier, source, item)
		if err != nil {
			continue
		}
		total += ItemPointsAt(ref.Item, count) * UnlockedFactor(source, c.Multipliers)
	}
	return total
}
