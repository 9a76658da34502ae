package catalog

import (
	"fmt"
	"sort"
	"time"
)

// Catalog is the persisted container for one platform (or the unified
// master file). Influencers are kept in ranking order.
type Catalog struct {
	GeneratedAt time.Time    `json:"generated_at"`
	Count       int          `json:"count"`
	Influencers []Influencer `json:"influencers"`
}

// New builds a catalog from the given records: it ranks them descending by
// followers (stable, ties keep input order) and stamps the generation time.
func New(records []Influencer) *Catalog {
	c := &Catalog{
		GeneratedAt: time.Now().UTC(),
		Influencers: records,
	}
	c.Rank()
	return c
}

// Rank sorts the influencer list descending by followers. The sort is
// stable and uses no secondary key.
func (c *Catalog) Rank() {
	sort.SliceStable(c.Influencers, func(i, j int) bool {
		return c.Influencers[i].Followers > c.Influencers[j].Followers
	})
	c.Count = len(c.Influencers)
}

// Validate checks the catalog invariants: count matches the list length,
// ids are unique, followers are non-negative and tiers match the
// classifier thresholds.
func (c *Catalog) Validate() error {
	if c.Count != len(c.Influencers) {
		return fmt.Errorf("catalog count %d does not match list length %d", c.Count, len(c.Influencers))
	}
	seen := make(map[string]struct{}, len(c.Influencers))
	for _, inf := range c.Influencers {
		if _, dup := seen[inf.ID]; dup {
			return fmt.Errorf("duplicate id %q in catalog", inf.ID)
		}
		seen[inf.ID] = struct{}{}
		if inf.Followers < 0 {
			return fmt.Errorf("record %q has negative followers %d", inf.ID, inf.Followers)
		}
		if inf.Tier != Classify(inf.Followers) {
			return fmt.Errorf("record %q tier %q inconsistent with followers %d", inf.ID, inf.Tier, inf.Followers)
		}
	}
	return nil
}
