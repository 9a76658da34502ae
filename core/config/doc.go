// Package config provides configuration management for Influencer Scout.
//
// Two inputs are combined:
//
//   - Environment variables (plus an optional .env file), loaded through
//     Viper with reflection-driven defaults from `default:` struct tags.
//     Credentials live here: APIFY_TOKEN and YOUTUBE_API_KEY map to
//     apify.token and youtube.api_key.
//   - A JSON sources file (data/config.json by default) listing the
//     discovery units per platform, the eligibility filters and the
//     category tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application
// settings, divided into subsections:
//   - Catalog: store directory and sources file location
//   - Apify: async job provider credentials and poll policy
//   - YouTube: Data API key and pacing
//   - Log: logging level and format
//   - Storage: optional S3/MinIO catalog publication
//   - Ledger: optional run-history database
//   - Server: directory HTTP server settings
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sources, err := config.LoadSources(cfg.Catalog.Sources)
package config
