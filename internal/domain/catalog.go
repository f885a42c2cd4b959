package domain

// Catalog is the root scoring aggregate for one team. It is provisioned once
// at configuration time and mutated only by the submission service afterwards
// (obtained counters, unlock flags, cached subtotals).
type Catalog struct {
	Team        string           `json:"associated_team" validate:"required"`
	Tiers       map[string]*Tier `json:"tiers" validate:"required,dive"`
	Multipliers []*Multiplier    `json:"multipliers" validate:"dive"`

	// TotalPoints is a derived cache. It is recomputable from the tiers at
	// any time and must never be treated as authoritative.
	TotalPoints float64 `json:"total_gained"`
}

// Tier groups sources under a named content category.
type Tier struct {
	Sources        []*Source `json:"sources" validate:"dive"`
	PointsSubtotal float64   `json:"points_gained"`
}

// Source is a named drop table, boss or activity within a tier.
type Source struct {
	Name           string  `json:"name" validate:"required"`
	Items          []*Item `json:"items" validate:"dive"`
	PointsSubtotal float64 `json:"source_gained"`
}

// Item is the atomic scorable unit.
type Item struct {
	Name            string  `json:"name" validate:"required"`
	BasePoints      float64 `json:"points" validate:"gte=0"`
	DuplicatePoints float64 `json:"duplicate_points" validate:"gte=0"`

	// UniqueRequired is the obtained-count threshold for the base award.
	// DuplicateRequired is the additional count beyond UniqueRequired for
	// the duplicate award. Values below 1 are normalized to 1 by the
	// scoring layer.
	UniqueRequired    int `json:"required"`
	DuplicateRequired int `json:"duplicate_required"`

	// Obtained is monotonically non-decreasing and mutated only through
	// Catalog.IncrementObtained.
	Obtained int `json:"obtained" validate:"gte=0"`
}

// MaxObtainable reports the count past which an item can award no further
// points, accounting for sub-1 configured thresholds.
func (i *Item) MaxObtainable() int {
	unique := i.UniqueRequired
	if unique < 1 {
		unique = 1
	}
	dup := i.DuplicateRequired
	if dup < 1 {
		dup = 1
	}
	return unique + dup
}

// Multiplier is a team-wide, requirement-gated bonus. Unlocked is monotonic:
// once true it never flips back, even if a requirement item's counter were
// hypothetically reset.
type Multiplier struct {
	Name        string   `json:"name" validate:"required"`
	Factor      float64  `json:"factor" validate:"gt=0"`
	Affects     []string `json:"affects"`
	Requirement []string `json:"requirement"`
	Unlocked    bool     `json:"unlocked"`
}

// AffectsSource reports whether the multiplier applies to the named source.
func (m *Multiplier) AffectsSource(source string) bool {
	for _, s := range m.Affects {
		if s == source {
			return true
		}
	}
	return false
}

// ItemRef identifies one item inside a catalog together with its enclosing
// groupings so callers can give precise feedback.
type ItemRef struct {
	TierName string
	Tier     *Tier
	Source   *Source
	Item     *Item
}

// Key returns the fully-qualified item key used in participant ledgers.
func (r ItemRef) Key() string {
	return r.TierName + "." + r.Source.Name + "." + r.Item.Name
}

// FindItem resolves a tier/source/item path with exact, case-sensitive name
// matching. Absence at each level is reported distinctly.
func (c *Catalog) FindItem(tier, source, item string) (*ItemRef, error) {
	t, ok := c.Tiers[tier]
	if !ok {
		return nil, ErrTierNotFound
	}
	for _, s := range t.Sources {
		if s.Name != source {
			continue
		}
		for _, it := range s.Items {
			if it.Name == item {
				return &ItemRef{TierName: tier, Tier: t, Source: s, Item: it}, nil
			}
		}
		return nil, ErrItemNotFound
	}
	return nil, ErrSourceNotFound
}

// IncrementObtained bumps an item's obtained counter by exactly one and
// returns the new count. Submissions always represent a single unit.
func (c *Catalog) IncrementObtained(tier, source, item string) (int, error) {
	ref, err := c.FindItem(tier, source, item)
	if err != nil {
		return 0, err
	}
	ref.Item.Obtained++
	return ref.Item.Obtained, nil
}

// ObtainedCounts builds an item-name → obtained-count index across the whole
// catalog, used by the multiplier unlock check.
func (c *Catalog) ObtainedCounts() map[string]int {
	counts := make(map[string]int)
	for _, t := range c.Tiers {
		for _, s := range t.Sources {
			for _, it := range s.Items {
				counts[it.Name] = it.Obtained
			}
		}
	}
	return counts
}

// Clone returns a structural deep copy. Snapshot clones feed the before/after
// delta computation and must never alias the live catalog.
func (c *Catalog) Clone() *Catalog {
	cp := &Catalog{
		Team:        c.Team,
		Tiers:       make(map[string]*Tier, len(c.Tiers)),
		Multipliers: make([]*Multiplier, len(c.Multipliers)),
		TotalPoints: c.TotalPoints,
	}
	for name, t := range c.Tiers {
		tc := &Tier{
			Sources:        make([]*Source, len(t.Sources)),
			PointsSubtotal: t.PointsSubtotal,
		}
		for i, s := range t.Sources {
			sc := &Source{
				Name:           s.Name,
				Items:          make([]*Item, len(s.Items)),
				PointsSubtotal: s.PointsSubtotal,
			}
			for j, it := range s.Items {
				itemCopy := *it
				sc.Items[j] = &itemCopy
			}
			tc.Sources[i] = sc
		}
		cp.Tiers[name] = tc
	}
	for i, m := range c.Multipliers {
		mc := *m
		mc.Affects = append([]string(nil), m.Affects...)
		mc.Requirement = append([]string(nil), m.Requirement...)
		cp.Multipliers[i] = &mc
	}
	return cp
}
