package unify

import (
	"testing"

	"influencer-scout/core/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func account(id string, platform catalog.Platform, followers int) catalog.Influencer {
	return catalog.Influencer{
		ID:        id,
		Platform:  platform,
		Handle:    id,
		Followers: followers,
		Tier:      catalog.Classify(followers),
	}
}

func TestUnifier_MergesAllPlatforms(t *testing.T) {
	store := catalog.NewFileStore(t.TempDir())
	require.NoError(t, store.Save("youtube.json", catalog.New([]catalog.Influencer{
		account("yt_UC1", catalog.PlatformYouTube, 500_000),
	})))
	require.NoError(t, store.Save("instagram.json", catalog.New([]catalog.Influencer{
		account("ig_glowup", catalog.PlatformInstagram, 85_000),
	})))
	require.NoError(t, store.Save("tiktok.json", catalog.New([]catalog.Influencer{
		account("tt_skin", catalog.PlatformTikTok, 2_000_000),
	})))

	master, err := New(store, zap.NewNop()).Unify(DefaultPriority)
	require.NoError(t, err)

	assert.Equal(t, 3, master.Count)
	assert.Equal(t, "tt_skin", master.Influencers[0].ID, "master is ranked across platforms")
	assert.Equal(t, "yt_UC1", master.Influencers[1].ID)
	assert.Equal(t, "ig_glowup", master.Influencers[2].ID)

	persisted, err := store.Load(catalog.UnifiedFileName)
	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.Equal(t, 3, persisted.Count)
}

func TestUnifier_SkipsMissingCatalogs(t *testing.T) {
	store := catalog.NewFileStore(t.TempDir())
	require.NoError(t, store.Save("tiktok.json", catalog.New([]catalog.Influencer{
		account("tt_skin", catalog.PlatformTikTok, 10),
	})))

	master, err := New(store, zap.NewNop()).Unify(DefaultPriority)
	require.NoError(t, err, "missing platform files are skipped, not fatal")
	assert.Equal(t, 1, master.Count)
}

func TestUnifier_FirstPriorityWinsOnDuplicateID(t *testing.T) {
	store := catalog.NewFileStore(t.TempDir())

	winner := account("shared_id", catalog.PlatformYouTube, 111)
	loser := account("shared_id", catalog.PlatformInstagram, 999)
	require.NoError(t, store.Save("youtube.json", catalog.New([]catalog.Influencer{winner})))
	require.NoError(t, store.Save("instagram.json", catalog.New([]catalog.Influencer{loser})))

	master, err := New(store, zap.NewNop()).Unify(DefaultPriority)
	require.NoError(t, err)

	require.Equal(t, 1, master.Count)
	assert.Equal(t, catalog.PlatformYouTube, master.Influencers[0].Platform)
	assert.Equal(t, 111, master.Influencers[0].Followers)
}

func TestUnifier_EmptyStore(t *testing.T) {
	store := catalog.NewFileStore(t.TempDir())

	master, err := New(store, zap.NewNop()).Unify(DefaultPriority)
	require.NoError(t, err)
	assert.Equal(t, 0, master.Count)
	assert.FileExists(t, store.Path(catalog.UnifiedFileName),
		"an empty master file is still written")
}
