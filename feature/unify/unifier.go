package unify

import (
	"influencer-scout/core/catalog"

	"go.uber.org/zap"
)

// DefaultPriority is the fixed platform precedence for unification.
var DefaultPriority = []catalog.Platform{
	catalog.PlatformYouTube,
	catalog.PlatformInstagram,
	catalog.PlatformTikTok,
}

// Unifier merges already-persisted platform catalogs into the master file.
type Unifier struct {
	store *catalog.FileStore
	log   *zap.Logger
}

// New creates a unifier over the given store.
func New(store *catalog.FileStore, log *zap.Logger) *Unifier {
	return &Unifier{store: store, log: log}
}

// Unify reads the platform catalogs in priority order, keeps the first
// record per id, ranks the result and persists it as the master catalog.
// Missing platform files are skipped with a warning.
func (u *Unifier) Unify(priority []catalog.Platform) (*catalog.Catalog, error) {
	seen := make(map[string]struct{})
	var all []catalog.Influencer

	for _, platform := range priority {
		cat, err := u.store.Load(platform.FileName())
		if err != nil {
			return nil, err
		}
		if cat == nil {
			u.log.Warn("platform catalog missing, skipping",
				zap.String("platform", string(platform)),
			)
			continue
		}

		added := 0
		for _, inf := range cat.Influencers {
			if _, dup := seen[inf.ID]; dup {
				continue
			}
			seen[inf.ID] = struct{}{}
			all = append(all, inf)
			added++
		}
		u.log.Info("platform catalog merged",
			zap.String("platform", string(platform)),
			zap.Int("added", added),
			zap.Int("skipped", cat.Count-added),
		)
	}

	master := catalog.New(all)
	if err := u.store.Save(catalog.UnifiedFileName, master); err != nil {
		return nil, err
	}
	u.log.Info("master catalog persisted",
		zap.Int("total", master.Count),
		zap.String("file", u.store.Path(catalog.UnifiedFileName)),
	)
	return master, nil
}
