package youtube

import (
	"context"

	"influencer-scout/core/catalog"
	"influencer-scout/core/reconcile"
)

// Source adapts the Data API client to the reconcile engine. Discovery
// yields bare channel ids; details come from the enrichment phase.
type Source struct {
	client     *Client
	keywords   []string
	maxPerUnit int
	category   []string
}

// NewSource builds a source over the configured keywords.
func NewSource(client *Client, keywords []string, maxPerUnit int, category []string) *Source {
	return &Source{
		client:     client,
		keywords:   keywords,
		maxPerUnit: maxPerUnit,
		category:   category,
	}
}

// Platform identifies the catalog this source feeds.
func (s *Source) Platform() catalog.Platform { return catalog.PlatformYouTube }

// Units returns the configured search keywords.
func (s *Source) Units() []string { return s.keywords }

// Discover searches channels for one keyword and returns their ids as
// enrichment candidates.
func (s *Source) Discover(ctx context.Context, unit string) ([]reconcile.Discovery, error) {
	ids, err := s.client.SearchChannelIDs(ctx, unit, s.maxPerUnit)
	if err != nil {
		return nil, err
	}
	discoveries := make([]reconcile.Discovery, 0, len(ids))
	for _, id := range ids {
		discoveries = append(discoveries, reconcile.Discovery{Key: id})
	}
	return discoveries, nil
}

// Enrich fetches channel details for a batch of ids and canonicalizes
// them.
func (s *Source) Enrich(ctx context.Context, keys []string) ([]catalog.Influencer, error) {
	items, err := s.client.FetchChannels(ctx, keys)
	if err != nil {
		return nil, err
	}
	return canonicalizeBatch(items, s.category), nil
}
