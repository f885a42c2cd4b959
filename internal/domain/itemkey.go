package domain

import "strings"

// ItemKey builds the fully-qualified item key used in participant ledgers.
func ItemKey(tier, source, item string) string {
	return tier + "." + source + "." + item
}

// SplitItemKey splits a tier.source.item key into its parts. Keys with a
// part count other than three are malformed ledger entries and reported as
// not ok.
func SplitItemKey(key string) (tier, source, item string, ok bool) {
	parts := strings.Split(key, ".")
	if len(parts) != 3 {
		return "", "", "", false
	}
	return parts[0], parts[1], parts[2], true
}
