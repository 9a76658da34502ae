package cmd

import (
	"context"
	"fmt"

	"influencer-scout/core/catalog"
	"influencer-scout/core/config"
	"influencer-scout/core/ledger"
	"influencer-scout/core/logger"
	"influencer-scout/core/storage"

	"go.uber.org/zap"
)

// setup loads the configuration and builds the logger every pipeline
// command starts from.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("initialize logger: %w", err)
	}
	zap.ReplaceGlobals(logg)

	return cfg, logg, nil
}

// openRecorder connects the optional run ledger. A broken ledger is logged
// and skipped so it can never block a pipeline run.
func openRecorder(cfg ledger.Config, logg *zap.Logger) *ledger.Recorder {
	if !cfg.Enabled {
		return nil
	}
	db, err := ledger.Connect(cfg)
	if err != nil {
		logg.Warn("optional ledger connection failed", zap.Error(err))
		return nil
	}
	logg.Info("run ledger connected", zap.String("driver", cfg.Driver))
	return ledger.NewRecorder(db)
}

// newPublisher builds the optional object storage publisher.
func newPublisher(cfg storage.Config, logg *zap.Logger) *storage.Publisher {
	if !cfg.Enabled {
		return nil
	}
	client, err := storage.NewClient(cfg)
	if err != nil {
		logg.Warn("optional storage connection failed", zap.Error(err))
		return nil
	}
	return storage.NewPublisher(client, cfg, logg)
}

// recordRun writes one ledger row. Catalog data is already persisted at
// this point, so a failed insert is only warned about.
func recordRun(ctx context.Context, rec *ledger.Recorder, run *ledger.Run, logg *zap.Logger) {
	if rec == nil {
		return
	}
	if err := rec.Record(ctx, run); err != nil {
		logg.Warn("ledger insert failed", zap.Error(err))
	}
}

// publishFile mirrors one persisted catalog file to object storage. The
// local file stays the source of truth, so upload failures are only warned
// about.
func publishFile(ctx context.Context, pub *storage.Publisher, store *catalog.FileStore, name string, logg *zap.Logger) {
	if pub == nil {
		return
	}
	data, err := store.ReadRaw(name)
	if err != nil {
		logg.Warn("catalog read for publication failed",
			zap.String("file", name),
			zap.Error(err),
		)
		return
	}
	if err := pub.Publish(ctx, name, data); err != nil {
		logg.Warn("catalog publication failed",
			zap.String("file", name),
			zap.Error(err),
		)
	}
}
