package scoring

import (
	"log/slog"

	"github.com/clanfrenzy/frenzybot/internal/domain"
)

// ItemPoints converts one item's configuration and current obtained count
// into a point value. Pure and deterministic; multipliers are applied one
// layer up, uniformly per source.
func ItemPoints(item *domain.Item) float64 {
	return ItemPointsAt(item, item.Obtained)
}

// ItemPointsAt scores an item as if its obtained count were the given value.
// The participant recalculation pass uses this with per-participant counts.
//
// Unique and duplicate awards are independent and additive. The half-credit
// rule applies only when the relevant required count is exactly 2 and the
// progress toward it is exactly 1.
func ItemPointsAt(item *domain.Item, obtained int) float64 {
	uniqueRequired := item.UniqueRequired
	duplicateRequired := item.DuplicateRequired

	// Operator data-entry errors are normalized, not rejected. Callers log
	// the signal; the engine stays total over well-formed and malformed
	// configuration alike.
	if uniqueRequired < 1 {
		slog.Debug(LogMsgThresholdNormalized, "item", item.Name, "field", "required", "value", item.UniqueRequired)
		uniqueRequired = 1
	}
	if duplicateRequired < 1 {
		slog.Debug(LogMsgThresholdNormalized, "item", item.Name, "field", "duplicate_required", "value", item.DuplicateRequired)
		duplicateRequired = 1
	}

	var points float64

	switch {
	case obtained >= uniqueRequired:
		points += item.BasePoints
	case uniqueRequired == HalfCreditThreshold && obtained == 1:
		points += item.BasePoints / 2
	}

	beyondUnique := obtained - uniqueRequired
	switch {
	case beyondUnique >= duplicateRequired:
		points += item.DuplicatePoints
	case duplicateRequired == HalfCreditThreshold && beyondUnique == 1:
		points += item.DuplicatePoints / 2
	}

	return points
}
