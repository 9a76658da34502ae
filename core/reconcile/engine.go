package reconcile

import (
	"context"
	"fmt"

	"influencer-scout/core/apify"
	"influencer-scout/core/catalog"

	"go.uber.org/zap"
)

// Engine runs the incremental reconciliation for one platform at a time.
// It is single-writer by construction: one run owns its existing/found
// mappings exclusively, so no locking is needed.
type Engine struct {
	store     *catalog.FileStore
	filters   Filters
	batchSize int
	log       *zap.Logger
}

// NewEngine creates an engine over the given store and filter set.
func NewEngine(store *catalog.FileStore, filters Filters, log *zap.Logger) *Engine {
	return &Engine{
		store:     store,
		filters:   filters,
		batchSize: EnrichBatchSize,
		log:       log,
	}
}

// Run executes the full pipeline for one source: load existing catalog,
// discover per unit, enrich only the genuinely new keys, merge, filter,
// rank, persist. It returns a summary of what happened.
func (e *Engine) Run(ctx context.Context, src Source) (*Summary, error) {
	platform := src.Platform()
	fileName := platform.FileName()
	log := e.log.With(zap.String("platform", string(platform)))

	existingCat, err := e.store.Load(fileName)
	if err != nil {
		return nil, err
	}
	var existingList []catalog.Influencer
	if existingCat != nil {
		existingList = existingCat.Influencers
	}
	existing := make(map[string]struct{}, len(existingList))
	for i := range existingList {
		existing[existingList[i].Key()] = struct{}{}
	}
	log.Info("existing catalog loaded", zap.Int("accounts", len(existingList)))

	summary := &Summary{Platform: platform, Units: len(src.Units())}

	// Discovery phase: collect new identity keys unit by unit. Records
	// delivered inline (one-phase providers) are accepted as-is; bare keys
	// queue up for enrichment.
	alreadyFound := make(map[string]struct{})
	var newRecords []catalog.Influencer
	var pendingKeys []string

	for _, unit := range src.Units() {
		log.Info("discovering", zap.String("unit", unit))
		discoveries, err := src.Discover(ctx, unit)
		if err != nil {
			if apify.IsRecoverable(err) {
				summary.UnitsFailed++
				log.Warn("discovery unit failed, continuing",
					zap.String("unit", unit),
					zap.Error(err),
				)
				continue
			}
			return nil, fmt.Errorf("discover %s %q: %w", platform, unit, err)
		}

		newInUnit := 0
		for _, d := range discoveries {
			summary.Discovered++
			if d.Key == "" {
				continue
			}
			if _, known := existing[d.Key]; known {
				continue
			}
			if _, found := alreadyFound[d.Key]; found {
				continue
			}
			alreadyFound[d.Key] = struct{}{}
			newInUnit++
			if d.Record != nil {
				newRecords = append(newRecords, *d.Record)
			} else {
				pendingKeys = append(pendingKeys, d.Key)
			}
		}
		log.Info("unit finished",
			zap.String("unit", unit),
			zap.Int("new", newInUnit),
			zap.Int("skipped", len(discoveries)-newInUnit),
		)
	}

	// Enrichment phase: only keys never seen before reach the expensive
	// detail lookups, in fixed-size batches. A failed batch is recovered
	// the same way as a failed unit.
	for start := 0; start < len(pendingKeys); start += e.batchSize {
		end := start + e.batchSize
		if end > len(pendingKeys) {
			end = len(pendingKeys)
		}
		batch := pendingKeys[start:end]
		log.Info("enriching batch", zap.Int("keys", len(batch)))

		records, err := src.Enrich(ctx, batch)
		if err != nil {
			if apify.IsRecoverable(err) {
				log.Warn("enrichment batch failed, continuing",
					zap.Int("keys", len(batch)),
					zap.Error(err),
				)
				continue
			}
			return nil, fmt.Errorf("enrich %s: %w", platform, err)
		}
		newRecords = append(newRecords, records...)
	}
	summary.New = len(newRecords)

	merged := mergeNewOverExisting(existingList, newRecords)

	kept := make([]catalog.Influencer, 0, len(merged))
	for i := range merged {
		if e.filters.Keep(&merged[i]) {
			kept = append(kept, merged[i])
		}
	}

	cat := catalog.New(kept)
	summary.Kept = cat.Count
	if err := e.store.Save(fileName, cat); err != nil {
		return nil, err
	}

	log.Info("catalog persisted",
		zap.Int("new", summary.New),
		zap.Int("kept", summary.Kept),
		zap.String("file", e.store.Path(fileName)),
	)
	return summary, nil
}

// mergeNewOverExisting applies the per-platform conflict policy: a
// rediscovered key keeps its position in the existing list but takes the
// freshly fetched data; genuinely new keys append in discovery order.
// Accounts not rediscovered pass through unchanged.
func mergeNewOverExisting(existing, incoming []catalog.Influencer) []catalog.Influencer {
	fresh := make(map[string]catalog.Influencer, len(incoming))
	for i := range incoming {
		key := incoming[i].Key()
		if _, dup := fresh[key]; !dup {
			fresh[key] = incoming[i]
		}
	}

	merged := make([]catalog.Influencer, 0, len(existing)+len(incoming))
	for i := range existing {
		key := existing[i].Key()
		if rec, ok := fresh[key]; ok {
			merged = append(merged, rec)
			delete(fresh, key)
		} else {
			merged = append(merged, existing[i])
		}
	}
	for i := range incoming {
		key := incoming[i].Key()
		if _, pending := fresh[key]; pending {
			merged = append(merged, incoming[i])
			delete(fresh, key)
		}
	}
	return merged
}
