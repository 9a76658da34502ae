package tiktok

import (
	"context"
	"encoding/json"

	"influencer-scout/core/catalog"
	"influencer-scout/core/reconcile"
)

// hashtagActor is the Apify actor id.
const hashtagActor = "clockworks~tiktok-hashtag-scraper"

// Runner executes one Apify actor run to completion.
type Runner interface {
	RunActor(ctx context.Context, actorID string, input any) ([]json.RawMessage, error)
}

// hashtagInput is the hashtag scraper's job spec.
type hashtagInput struct {
	Hashtags          []string `json:"hashtags"`
	ResultsPerPage    int      `json:"resultsPerPage"`
	MaxRequestRetries int      `json:"maxRequestRetries"`
}

// Source adapts the one-phase TikTok scraper to the reconcile engine.
type Source struct {
	runner     Runner
	hashtags   []string
	maxPerUnit int
	category   []string
}

// NewSource builds a source over the configured hashtags.
func NewSource(runner Runner, hashtags []string, maxPerUnit int, category []string) *Source {
	return &Source{
		runner:     runner,
		hashtags:   hashtags,
		maxPerUnit: maxPerUnit,
		category:   category,
	}
}

// Platform identifies the catalog this source feeds.
func (s *Source) Platform() catalog.Platform { return catalog.PlatformTikTok }

// Units returns the configured hashtags.
func (s *Source) Units() []string { return s.hashtags }

// Discover runs the hashtag scraper for one hashtag. The author data is
// embedded in the video items, so every discovery carries its full
// canonical record.
func (s *Source) Discover(ctx context.Context, unit string) ([]reconcile.Discovery, error) {
	videos, err := s.runner.RunActor(ctx, hashtagActor, hashtagInput{
		Hashtags:          []string{unit},
		ResultsPerPage:    s.maxPerUnit,
		MaxRequestRetries: 3,
	})
	if err != nil {
		return nil, err
	}

	accounts := extractAccounts(videos, s.category)
	discoveries := make([]reconcile.Discovery, 0, len(accounts))
	for i := range accounts {
		discoveries = append(discoveries, reconcile.Discovery{
			Key:    accounts[i].Key(),
			Record: &accounts[i],
		})
	}
	return discoveries, nil
}

// Enrich is never called for a one-phase source: every discovery already
// carries its record.
func (s *Source) Enrich(ctx context.Context, keys []string) ([]catalog.Influencer, error) {
	return nil, nil
}
