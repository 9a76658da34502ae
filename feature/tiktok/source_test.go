package tiktok

import (
	"context"
	"encoding/json"
	"testing"

	"influencer-scout/core/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	actorIDs []string
	inputs   []any
	items    []json.RawMessage
}

func (f *fakeRunner) RunActor(_ context.Context, actorID string, input any) ([]json.RawMessage, error) {
	f.actorIDs = append(f.actorIDs, actorID)
	f.inputs = append(f.inputs, input)
	return f.items, nil
}

func TestSource_Discover(t *testing.T) {
	runner := &fakeRunner{items: raw(
		`{"authorMeta": {"name": "skinfluencer", "fans": 250000}}`,
		`{"authorMeta": {"name": "glossygirl", "fans": 8000}}`,
	)}
	src := NewSource(runner, []string{"skincare"}, 25, nil)

	assert.Equal(t, catalog.PlatformTikTok, src.Platform())
	assert.Equal(t, []string{"skincare"}, src.Units())

	discoveries, err := src.Discover(context.Background(), "skincare")
	require.NoError(t, err)
	require.Len(t, discoveries, 2)

	// One-phase: every discovery carries its full record.
	assert.Equal(t, "skinfluencer", discoveries[0].Key)
	require.NotNil(t, discoveries[0].Record)
	assert.Equal(t, 250_000, discoveries[0].Record.Followers)

	assert.Equal(t, []string{hashtagActor}, runner.actorIDs)
	input, ok := runner.inputs[0].(hashtagInput)
	require.True(t, ok)
	assert.Equal(t, []string{"skincare"}, input.Hashtags)
	assert.Equal(t, 25, input.ResultsPerPage)
	assert.Equal(t, 3, input.MaxRequestRetries)
}

func TestSource_EnrichIsNoop(t *testing.T) {
	src := NewSource(&fakeRunner{}, nil, 0, nil)
	records, err := src.Enrich(context.Background(), []string{"anything"})
	assert.NoError(t, err)
	assert.Nil(t, records)
}
