package scoring

import (
	"log/slog"

	"github.com/clanfrenzy/frenzybot/internal/domain"
)

// UnlockedFactor is the product of all unlocked multipliers affecting the
// named source. Multiplication is commutative, so iteration order only
// matters for debug-trace readability; the ordered slice keeps it stable.
func UnlockedFactor(sourceName string, multipliers []*domain.Multiplier) float64 {
	factor := 1.0
	for _, m := range multipliers {
		if m.Unlocked && m.AffectsSource(sourceName) {
			factor *= m.Factor
		}
	}
	return factor
}

// EffectiveFactor compounds the unlocked multipliers for a source and applies
// the automatic completion bonus when every item in the source has been
// obtained at least once. The bonus is suppressed when any applied multiplier
// carries completion semantics of its own, and is re-evaluated from scratch
// on every call rather than cached as an unlock flag.
func EffectiveFactor(source *domain.Source, multipliers []*domain.Multiplier) float64 {
	factor := 1.0
	specialApplied := false
	for _, m := range multipliers {
		if m.Unlocked && m.AffectsSource(source.Name) {
			factor *= m.Factor
			if IsSpecialCompletionName(m.Name) {
				specialApplied = true
			}
		}
	}

	if sourceCompleted(source) && !specialApplied {
		factor *= CompletionBonusFactor
	}
	return factor
}

// sourceCompleted reports whether every item in the source has been obtained
// at least once. An empty source is never completed.
func sourceCompleted(source *domain.Source) bool {
	if len(source.Items) == 0 {
		return false
	}
	for _, it := range source.Items {
		if it.Obtained <= 0 {
			return false
		}
	}
	return true
}

// CheckUnlocks flips the unlocked flag on every multiplier whose requirement
// items have all been obtained at least once somewhere in the catalog, and
// returns the names that were locked in the before snapshot but are unlocked
// now. Unlocks are monotonic; a multiplier is never re-locked even if its
// requirements were to regress.
func CheckUnlocks(c *domain.Catalog, before *domain.Catalog) []string {
	counts := c.ObtainedCounts()

	lockedBefore := make(map[string]bool, len(c.Multipliers))
	if before != nil {
		for _, m := range before.Multipliers {
			if !m.Unlocked {
				lockedBefore[m.Name] = true
			}
		}
	}

	var newlyUnlocked []string
	for _, m := range c.Multipliers {
		if m.Unlocked {
			continue
		}
		met := true
		for _, required := range m.Requirement {
			if counts[required] == 0 {
				met = false
				break
			}
		}
		if !met {
			continue
		}
		m.Unlocked = true
		if before == nil || lockedBefore[m.Name] {
			newlyUnlocked = append(newlyUnlocked, m.Name)
			slog.Debug(LogMsgMultiplierUnlocked, "multiplier", m.Name, "factor", m.Factor)
		}
	}
	return newlyUnlocked
}

// SourceFactors reports the effective factor currently applied to every
// source in the catalog with the contributing multiplier names, for the
// per-source multiplier listing.
func SourceFactors(c *domain.Catalog) []domain.SourceFactor {
	var factors []domain.SourceFactor
	for tierName, tier := range c.Tiers {
		for _, source := range tier.Sources {
			sf := domain.SourceFactor{
				Tier:      tierName,
				Source:    source.Name,
				Factor:    EffectiveFactor(source, c.Multipliers),
				Completed: sourceCompleted(source),
			}
			for _, m := range c.Multipliers {
				if m.Unlocked && m.AffectsSource(source.Name) {
					sf.AppliedBy = append(sf.AppliedBy, m.Name)
				}
			}
			factors = append(factors, sf)
		}
	}
	return factors
}
