package directory

import (
	"context"
	"errors"

	"influencer-scout/core/catalog"
	"influencer-scout/core/ledger"

	"go.uber.org/zap"
)

// ErrNotFound is returned when a requested catalog has not been generated
// yet.
var ErrNotFound = errors.New("catalog not generated yet")

// ErrLedgerDisabled is returned for run-history requests without a ledger.
var ErrLedgerDisabled = errors.New("run ledger not enabled")

// Service reads catalogs and run history for the HTTP handlers.
type Service struct {
	store    *catalog.FileStore
	recorder *ledger.Recorder
	logger   *zap.Logger
}

// NewService creates the directory service. recorder may be nil when the
// ledger is disabled.
func NewService(store *catalog.FileStore, recorder *ledger.Recorder, logger *zap.Logger) *Service {
	return &Service{store: store, recorder: recorder, logger: logger}
}

// PlatformCatalog loads one platform's persisted catalog.
func (s *Service) PlatformCatalog(platform catalog.Platform) (*catalog.Catalog, error) {
	cat, err := s.store.Load(platform.FileName())
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, ErrNotFound
	}
	return cat, nil
}

// UnifiedCatalog loads the master catalog.
func (s *Service) UnifiedCatalog() (*catalog.Catalog, error) {
	cat, err := s.store.Load(catalog.UnifiedFileName)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, ErrNotFound
	}
	return cat, nil
}

// RecentRuns returns the latest ledger entries, newest first.
func (s *Service) RecentRuns(ctx context.Context, limit int) ([]ledger.Run, error) {
	if s.recorder == nil {
		return nil, ErrLedgerDisabled
	}
	return s.recorder.Recent(ctx, limit)
}
