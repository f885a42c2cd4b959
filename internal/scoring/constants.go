package scoring

// CompletionBonusFactor is applied to a source once every item in it has been
// obtained at least once, unless one of the applied multipliers already
// carries completion semantics (see specialCompletionNames).
const CompletionBonusFactor = 1.25

// HalfCreditThreshold is the only required-count for which a one-short count
// earns half credit. This is a deliberate event rule for items needing
// exactly two copies; it does not generalize to other thresholds.
const HalfCreditThreshold = 2

// specialCompletionNames are multipliers that supersede the automatic
// completion bonus: they already represent "this source is done", so the two
// must never stack.
var specialCompletionNames = map[string]struct{}{
	"Banana Split":              {},
	"Demon Slayer II":           {},
	"Oscar Worthy":              {},
	"How to Smelt Your Dragon":  {},
	"Raining Blood":             {},
	"The Zarosian Candidate":    {},
	"Rock Solid":                {},
	"Shape of Italy":            {},
	"Mystic Pizza":              {},
	"Eye of the Beholder":       {},
	"Lord of Bones":             {},
	"Man Purse":                 {},
	"Gonna Need a Bigger Boat":  {},
	"Kitchen Nightmares":        {},
	"Rogue One":                 {},
	"Throwing Shade":            {},
	"Get to the Chompa!":        {},
	"Return the Slab":           {},
	"Deadliest Catch":           {},
	"What's in the Box?!":       {},
	"Rag and Bone Man III":      {},
	"Agent of Chaos":            {},
	"The Blade that was Broken": {},
	"Tzhaar Wars":               {},
	"CANNONBALL!":               {},
}

// IsSpecialCompletionName reports whether a multiplier name supersedes the
// automatic completion bonus.
func IsSpecialCompletionName(name string) bool {
	_, ok := specialCompletionNames[name]
	return ok
}

// Log message constants
const (
	LogMsgThresholdNormalized = "item threshold below 1, normalized"
	LogMsgMultiplierUnlocked  = "multiplier unlocked"
)
