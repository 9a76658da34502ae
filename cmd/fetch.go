package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"influencer-scout/core/apify"
	"influencer-scout/core/catalog"
	"influencer-scout/core/config"
	"influencer-scout/core/ledger"
	"influencer-scout/core/reconcile"
	"influencer-scout/feature/instagram"
	"influencer-scout/feature/tiktok"
	"influencer-scout/feature/youtube"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// fetchCmd groups the per-platform fetchers.
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Discover accounts and refresh a platform catalog",
	Long: `Runs the discovery and reconciliation pipeline for one platform
(or all of them): discover accounts per configured keyword or hashtag,
enrich the genuinely new ones, merge into the existing catalog, filter,
rank and persist.`,
}

var fetchYouTubeCmd = &cobra.Command{
	Use:   "youtube",
	Short: "Refresh the YouTube catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFetch(cmd, []catalog.Platform{catalog.PlatformYouTube})
	},
}

var fetchInstagramCmd = &cobra.Command{
	Use:   "instagram",
	Short: "Refresh the Instagram catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFetch(cmd, []catalog.Platform{catalog.PlatformInstagram})
	},
}

var fetchTikTokCmd = &cobra.Command{
	Use:   "tiktok",
	Short: "Refresh the TikTok catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFetch(cmd, []catalog.Platform{catalog.PlatformTikTok})
	},
}

var fetchAllCmd = &cobra.Command{
	Use:   "all",
	Short: "Refresh every platform catalog in sequence",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFetch(cmd, []catalog.Platform{
			catalog.PlatformYouTube,
			catalog.PlatformInstagram,
			catalog.PlatformTikTok,
		})
	},
}

// runFetch executes the pipeline for each requested platform in order. The
// first fatal error aborts the remaining platforms; catalogs already
// persisted stay in place.
func runFetch(cmd *cobra.Command, platforms []catalog.Platform) error {
	cfg, logg, err := setup()
	if err != nil {
		return err
	}
	defer logg.Sync()

	sources, err := config.LoadSources(cfg.Catalog.Sources)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Validate credentials and units for every requested platform up front,
	// so a misconfigured later platform aborts before any network call.
	planned := make([]reconcile.Source, 0, len(platforms))
	for _, platform := range platforms {
		if len(sources.UnitsFor(platform)) == 0 {
			return fmt.Errorf("sources file %s: no units configured for %s",
				cfg.Catalog.Sources, platform)
		}
		src, err := buildSource(platform, cfg, sources, logg)
		if err != nil {
			return err
		}
		planned = append(planned, src)
	}

	store := catalog.NewFileStore(cfg.Catalog.Dir)
	recorder := openRecorder(cfg.Ledger, logg)
	publisher := newPublisher(cfg.Storage, logg)

	for _, src := range planned {
		platform := src.Platform()
		runID := uuid.NewString()
		runLog := logg.With(
			zap.String("run_id", runID),
			zap.String("platform", string(platform)),
		)
		started := time.Now().UTC()
		runLog.Info("fetch started", zap.Int("units", len(src.Units())))

		engine := reconcile.NewEngine(store, sources.Filters, runLog)
		summary, runErr := engine.Run(ctx, src)

		run := &ledger.Run{
			ID:        runID,
			Command:   "fetch",
			Platform:  string(platform),
			StartedAt: started,
		}
		if summary != nil {
			run.Units = summary.Units
			run.UnitsFailed = summary.UnitsFailed
			run.Discovered = summary.Discovered
			run.NewAccounts = summary.New
			run.Kept = summary.Kept
		}
		run.FinishedAt = time.Now().UTC()

		if runErr != nil {
			run.Status = ledger.StatusFailed
			run.Error = runErr.Error()
			recordRun(ctx, recorder, run, runLog)
			return fmt.Errorf("fetch %s: %w", platform, runErr)
		}
		run.Status = ledger.StatusSucceeded
		recordRun(ctx, recorder, run, runLog)

		publishFile(ctx, publisher, store, platform.FileName(), runLog)

		runLog.Info("fetch finished",
			zap.Int("discovered", summary.Discovered),
			zap.Int("new", summary.New),
			zap.Int("kept", summary.Kept),
			zap.Int("units_failed", summary.UnitsFailed),
		)
	}
	return nil
}

// buildSource wires one platform's source from the loaded configuration,
// checking the credential it needs before any network call.
func buildSource(p catalog.Platform, cfg *config.Config, sources *config.Sources, logg *zap.Logger) (reconcile.Source, error) {
	switch p {
	case catalog.PlatformYouTube:
		if cfg.YouTube.ApiKey == "" {
			return nil, fmt.Errorf("%w: YOUTUBE_API_KEY", config.ErrMissingCredential)
		}
		client := youtube.NewClient(cfg.YouTube, logg)
		return youtube.NewSource(client,
			sources.YouTube.Keywords,
			sources.YouTube.MaxResultsPerKeyword,
			sources.Category,
		), nil

	case catalog.PlatformInstagram:
		if cfg.Apify.Token == "" {
			return nil, fmt.Errorf("%w: APIFY_TOKEN", config.ErrMissingCredential)
		}
		runner := apify.NewClient(cfg.Apify, logg)
		return instagram.NewSource(runner,
			sources.Instagram.Hashtags,
			sources.Instagram.MaxResultsPerHashtag,
			sources.Category,
		), nil

	case catalog.PlatformTikTok:
		if cfg.Apify.Token == "" {
			return nil, fmt.Errorf("%w: APIFY_TOKEN", config.ErrMissingCredential)
		}
		runner := apify.NewClient(cfg.Apify, logg)
		return tiktok.NewSource(runner,
			sources.TikTok.Hashtags,
			sources.TikTok.MaxResultsPerHashtag,
			sources.Category,
		), nil

	default:
		return nil, fmt.Errorf("unknown platform %q", p)
	}
}

func init() {
	fetchCmd.AddCommand(fetchYouTubeCmd)
	fetchCmd.AddCommand(fetchInstagramCmd)
	fetchCmd.AddCommand(fetchTikTokCmd)
	fetchCmd.AddCommand(fetchAllCmd)
	RootCmd.AddCommand(fetchCmd)
}
