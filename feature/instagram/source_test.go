package instagram

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
	results  map[string][]json.RawMessage
	err      error
}

func (f *fakeRunner) RunActor(_ context.Context, actorID string, input any) ([]json.RawMessage, error) {
	f.actorIDs = append(f.actorIDs, actorID)
	f.inputs = append(f.inputs, input)
	if f.err != nil {
		return nil, f.err
	}
	return f.results[actorID], nil
}

func TestSource_Discover(t *testing.T) {
	runner := &fakeRunner{results: map[string][]json.RawMessage{
		hashtagActor: raw(
			`{"ownerUsername": "glowup.daily"}`,
			`{"ownerUsername": ""}`,
			`{"caption": "no owner"}`,
			`{"ownerUsername": "skin.care.kr"}`,
		),
	}}
	src := NewSource(runner, []string{"skincare", "kbeauty"}, 30, nil)

	assert.Equal(t, catalog.PlatformInstagram, src.Platform())
	assert.Equal(t, []string{"skincare", "kbeauty"}, src.Units())

	discoveries, err := src.Discover(context.Background(), "skincare")
	require.NoError(t, err)
	require.Len(t, discoveries, 2)
	assert.Equal(t, "glowup.daily", discoveries[0].Key)
	assert.Equal(t, "skin.care.kr", discoveries[1].Key)
	assert.Nil(t, discoveries[0].Record, "profiles come from the enrichment phase")

	require.Len(t, runner.inputs, 1)
	input, ok := runner.inputs[0].(hashtagInput)
	require.True(t, ok)
	assert.Equal(t, []string{"skincare"}, input.Hashtags)
	assert.Equal(t, 30, input.ResultsLimit)
	assert.False(t, input.AddParentData)
}

func TestSource_Enrich(t *testing.T) {
	runner := &fakeRunner{results: map[string][]json.RawMessage{
		profileActor: raw(`{"username": "glowup.daily", "followersCount": 85000}`),
	}}
	src := NewSource(runner, []string{"skincare"}, 30, []string{"beauty"})

	records, err := src.Enrich(context.Background(), []string{"glowup.daily", "skin.care.kr"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "ig_glowup.daily", records[0].ID)
	assert.Equal(t, []string{"beauty"}, records[0].Category)

	assert.Equal(t, []string{profileActor}, runner.actorIDs)
	input, ok := runner.inputs[0].(profileInput)
	require.True(t, ok)
	assert.Equal(t, []string{"glowup.daily", "skin.care.kr"}, input.Usernames)
}
