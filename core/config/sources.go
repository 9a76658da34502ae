package config

import (
	"encoding/json"
	"fmt"
	"os"

	"influencer-scout/core/catalog"
	"influencer-scout/core/reconcile"
)

// KeywordSources lists the discovery units for the keyword-driven search
// API (YouTube).
type KeywordSources struct {
	Keywords             []string `json:"keywords"`
	MaxResultsPerKeyword int      `json:"max_results_per_keyword"`
}

// HashtagSources lists the discovery units for the hashtag-driven
// scrapers (Instagram, TikTok).
type HashtagSources struct {
	Hashtags             []string `json:"hashtags"`
	MaxResultsPerHashtag int      `json:"max_results_per_hashtag"`
}

// Sources is the JSON document describing what to discover and which
// records to keep. It lives next to the catalog files so a scheduled run
// needs no arguments.
type Sources struct {
	YouTube   KeywordSources    `json:"youtube"`
	Instagram HashtagSources    `json:"instagram"`
	TikTok    HashtagSources    `json:"tiktok"`
	Filters   reconcile.Filters `json:"filters"`
	// Category is the topic tag list stamped on every canonicalized
	// record.
	Category []string `json:"category"`
}

// Default result caps when the sources file omits them.
const (
	defaultMaxResultsPerKeyword = 20
	defaultMaxResultsPerHashtag = 30
)

// LoadSources reads and validates the sources file. Missing or malformed
// files are configuration errors and abort before any network call.
func LoadSources(path string) (*Sources, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sources file %s: %w", path, err)
	}

	var s Sources
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode sources file %s: %w", path, err)
	}

	if s.YouTube.MaxResultsPerKeyword <= 0 {
		s.YouTube.MaxResultsPerKeyword = defaultMaxResultsPerKeyword
	}
	if s.Instagram.MaxResultsPerHashtag <= 0 {
		s.Instagram.MaxResultsPerHashtag = defaultMaxResultsPerHashtag
	}
	if s.TikTok.MaxResultsPerHashtag <= 0 {
		s.TikTok.MaxResultsPerHashtag = defaultMaxResultsPerHashtag
	}
	if s.Filters.MinFollowers < 0 || s.Filters.MaxFollowers < 0 {
		return nil, fmt.Errorf("sources file %s: negative follower bound", path)
	}
	if s.Filters.MaxFollowers > 0 && s.Filters.MaxFollowers < s.Filters.MinFollowers {
		return nil, fmt.Errorf("sources file %s: max_followers below min_followers", path)
	}
	if len(s.Category) == 0 {
		s.Category = catalog.DefaultCategory
	}
	return &s, nil
}

// UnitsFor returns the discovery units configured for a platform.
func (s *Sources) UnitsFor(p catalog.Platform) []string {
	switch p {
	case catalog.PlatformYouTube:
		return s.YouTube.Keywords
	case catalog.PlatformInstagram:
		return s.Instagram.Hashtags
	case catalog.PlatformTikTok:
		return s.TikTok.Hashtags
	default:
		return nil
	}
}
