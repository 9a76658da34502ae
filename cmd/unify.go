package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"influencer-scout/core/catalog"
	"influencer-scout/core/ledger"
	"influencer-scout/feature/unify"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// unifyCmd merges the persisted platform catalogs into the master file.
var unifyCmd = &cobra.Command{
	Use:   "unify",
	Short: "Merge platform catalogs into the master directory",
	Long: `Reads the persisted platform catalogs in fixed priority order
(youtube, instagram, tiktok), keeps the first record per id and writes the
ranked result as the master directory file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := setup()
		if err != nil {
			return err
		}
		defer logg.Sync()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		store := catalog.NewFileStore(cfg.Catalog.Dir)
		recorder := openRecorder(cfg.Ledger, logg)
		publisher := newPublisher(cfg.Storage, logg)

		runID := uuid.NewString()
		runLog := logg.With(zap.String("run_id", runID))
		started := time.Now().UTC()

		master, unifyErr := unify.New(store, runLog).Unify(unify.DefaultPriority)

		run := &ledger.Run{
			ID:         runID,
			Command:    "unify",
			StartedAt:  started,
			FinishedAt: time.Now().UTC(),
		}
		if unifyErr != nil {
			run.Status = ledger.StatusFailed
			run.Error = unifyErr.Error()
			recordRun(ctx, recorder, run, runLog)
			return fmt.Errorf("unify: %w", unifyErr)
		}
		run.Status = ledger.StatusSucceeded
		run.Kept = master.Count
		recordRun(ctx, recorder, run, runLog)

		publishFile(ctx, publisher, store, catalog.UnifiedFileName, runLog)

		runLog.Info("unify finished", zap.Int("total", master.Count))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(unifyCmd)
}
