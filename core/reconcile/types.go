package reconcile

import (
	"context"

	"influencer-scout/core/catalog"
)

// EnrichBatchSize is the number of identity keys sent per enrichment call.
const EnrichBatchSize = 50

// Discovery is one candidate account surfaced by a discovery unit.
type Discovery struct {
	// Key is the identity key (handle or channel id). Discoveries with an
	// empty key are skipped.
	Key string

	// Record is the canonical record when the provider delivers full
	// account data in the discovery phase (one-phase providers). Nil when
	// the key still needs enrichment.
	Record *catalog.Influencer
}

// Source is implemented once per platform. It owns all provider-specific
// transport and canonicalization; the engine owns the reconciliation
// algorithm.
type Source interface {
	// Platform identifies the catalog this source feeds.
	Platform() catalog.Platform

	// Units returns the configured discovery units (search terms or
	// hashtags) in execution order.
	Units() []string

	// Discover surfaces candidate accounts for one unit.
	Discover(ctx context.Context, unit string) ([]Discovery, error)

	// Enrich fetches detail records for a batch of identity keys. Only
	// called for keys whose Discovery carried no record; one-phase sources
	// never see it.
	Enrich(ctx context.Context, keys []string) ([]catalog.Influencer, error)
}

// Filters holds the numeric eligibility rules applied to the merged
// catalog before ranking. Bounds are inclusive; MaxFollowers == 0 means
// unbounded, MinContentCount == 0 disables the content check.
type Filters struct {
	MinFollowers    int `json:"min_followers"`
	MaxFollowers    int `json:"max_followers"`
	MinContentCount int `json:"min_content_count"`
}

// Keep reports whether a record passes the filters.
func (f Filters) Keep(inf *catalog.Influencer) bool {
	if inf.Followers < f.MinFollowers {
		return false
	}
	if f.MaxFollowers > 0 && inf.Followers > f.MaxFollowers {
		return false
	}
	if f.MinContentCount > 0 && inf.ContentCount < f.MinContentCount {
		return false
	}
	return true
}

// Summary aggregates the outcome of one reconciliation run.
type Summary struct {
	Platform    catalog.Platform
	Units       int
	UnitsFailed int
	// Discovered counts every candidate surfaced, including ones skipped
	// as already known.
	Discovered int
	// New counts records canonicalized for the first time this run.
	New int
	// Kept is the post-filter catalog size that was persisted.
	Kept int
}
