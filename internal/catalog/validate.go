package catalog

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/clanfrenzy/frenzybot/internal/domain"
)

var validate = validator.New()

// Validate checks a catalog's structural integrity at the persistence
// boundary: struct tags via the validator, plus the invariants the tags
// cannot express (item names unique within a source, source names unique
// within a tier).
func Validate(c *domain.Catalog) error {
	if c == nil {
		return fmt.Errorf("nil catalog")
	}
	if err := validate.Struct(c); err != nil {
		return err
	}
	for tierName, tier := range c.Tiers {
		seenSources := make(map[string]struct{}, len(tier.Sources))
		for _, source := range tier.Sources {
			if _, dup := seenSources[source.Name]; dup {
				return fmt.Errorf("tier %q: duplicate source %q", tierName, source.Name)
			}
			seenSources[source.Name] = struct{}{}

			seenItems := make(map[string]struct{}, len(source.Items))
			for _, item := range source.Items {
				if _, dup := seenItems[item.Name]; dup {
					return fmt.Errorf("source %q: duplicate item %q", source.Name, item.Name)
				}
				seenItems[item.Name] = struct{}{}
			}
		}
	}
	return nil
}
