package instagram

import (
	"context"
	"encoding/json"

	"influencer-scout/core/catalog"
	"influencer-scout/core/reconcile"
)

// Apify actor ids.
const (
	hashtagActor = "apify~instagram-hashtag-scraper"
	profileActor = "apify~instagram-profile-scraper"
)

// Runner executes one Apify actor run to completion.
type Runner interface {
	RunActor(ctx context.Context, actorID string, input any) ([]json.RawMessage, error)
}

// hashtagInput is the hashtag scraper's job spec.
type hashtagInput struct {
	Hashtags      []string `json:"hashtags"`
	ResultsLimit  int      `json:"resultsLimit"`
	AddParentData bool     `json:"addParentData"`
}

// profileInput is the profile scraper's job spec.
type profileInput struct {
	Usernames []string `json:"usernames"`
}

// Source adapts the two-phase Instagram actors to the reconcile engine.
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
func (s *Source) Platform() catalog.Platform { return catalog.PlatformInstagram }

// Units returns the configured hashtags.
func (s *Source) Units() []string { return s.hashtags }

// Discover runs the hashtag scraper for one hashtag and extracts the post
// owners as enrichment candidates.
func (s *Source) Discover(ctx context.Context, unit string) ([]reconcile.Discovery, error) {
	posts, err := s.runner.RunActor(ctx, hashtagActor, hashtagInput{
		Hashtags:      []string{unit},
		ResultsLimit:  s.maxPerUnit,
		AddParentData: false,
	})
	if err != nil {
		return nil, err
	}

	discoveries := make([]reconcile.Discovery, 0, len(posts))
	for _, post := range posts {
		var p struct {
			OwnerUsername string `json:"ownerUsername"`
		}
		if err := json.Unmarshal(post, &p); err != nil {
			continue
		}
		if p.OwnerUsername == "" {
			continue
		}
		discoveries = append(discoveries, reconcile.Discovery{Key: p.OwnerUsername})
	}
	return discoveries, nil
}

// Enrich runs the profile scraper for a batch of new handles and
// canonicalizes the results.
func (s *Source) Enrich(ctx context.Context, keys []string) ([]catalog.Influencer, error) {
	profiles, err := s.runner.RunActor(ctx, profileActor, profileInput{Usernames: keys})
	if err != nil {
		return nil, err
	}
	return canonicalizeProfiles(profiles, s.category), nil
}
