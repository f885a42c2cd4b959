package catalog

import (
	"sort"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/clanfrenzy/frenzybot/internal/domain"
)

// nameIndex is the precomputed tier/source/item name listing for one team,
// consumed by autocompletion. Names are sorted for stable suggestion order.
type nameIndex struct {
	Tiers []string
	// Sources is keyed by tier name; Items by "tier.source".
	Sources map[string][]string
	Items   map[string][]string
}

// nameIndexCache is a read-through LRU keyed by team with TTL expiry and
// explicit invalidation on catalog mutation. It replaces the ungated global
// autocomplete registries of earlier iterations of the event tooling.
type nameIndexCache struct {
	lru *expirable.LRU[string, *nameIndex]
}

func newNameIndexCache(size int, ttl time.Duration) *nameIndexCache {
	return &nameIndexCache{
		lru: expirable.NewLRU[string, *nameIndex](size, nil, ttl),
	}
}

func (c *nameIndexCache) Get(team string) (*nameIndex, bool) {
	return c.lru.Get(team)
}

func (c *nameIndexCache) Set(team string, idx *nameIndex) {
	c.lru.Add(team, idx)
}

func (c *nameIndexCache) Invalidate(team string) {
	c.lru.Remove(team)
}

func buildNameIndex(c *domain.Catalog) *nameIndex {
	idx := &nameIndex{
		Sources: make(map[string][]string, len(c.Tiers)),
		Items:   make(map[string][]string),
	}
	for tierName, tier := range c.Tiers {
		idx.Tiers = append(idx.Tiers, tierName)
		sources := make([]string, 0, len(tier.Sources))
		for _, source := range tier.Sources {
			sources = append(sources, source.Name)
			items := make([]string, 0, len(source.Items))
			for _, item := range source.Items {
				items = append(items, item.Name)
			}
			sort.Strings(items)
			idx.Items[tierName+"."+source.Name] = items
		}
		sort.Strings(sources)
		idx.Sources[tierName] = sources
	}
	sort.Strings(idx.Tiers)
	return idx
}
