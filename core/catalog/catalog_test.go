package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func record(id string, followers int) Influencer {
	return Influencer{
		ID:        id,
		Platform:  PlatformTikTok,
		Handle:    id,
		Followers: followers,
		Tier:      Classify(followers),
	}
}

func TestNew_RanksDescending(t *testing.T) {
	c := New([]Influencer{
		record("tt_a", 5_000),
		record("tt_b", 900_000),
		record("tt_c", 120_000),
	})

	assert.Equal(t, 3, c.Count)
	assert.False(t, c.GeneratedAt.IsZero())
	assert.Equal(t, []string{"tt_b", "tt_c", "tt_a"}, ids(c))
}

func TestRank_StableOnTies(t *testing.T) {
	c := New([]Influencer{
		record("tt_first", 1_000),
		record("tt_second", 1_000),
		record("tt_third", 1_000),
	})

	// Equal followers keep their input order.
	assert.Equal(t, []string{"tt_first", "tt_second", "tt_third"}, ids(c))
}

func TestValidate(t *testing.T) {
	t.Run("valid catalog", func(t *testing.T) {
		c := New([]Influencer{record("tt_a", 10_000), record("tt_b", 50)})
		assert.NoError(t, c.Validate())
	})

	t.Run("count mismatch", func(t *testing.T) {
		c := New([]Influencer{record("tt_a", 10)})
		c.Count = 2
		assert.Error(t, c.Validate())
	})

	t.Run("duplicate id", func(t *testing.T) {
		c := New([]Influencer{record("tt_a", 10), record("tt_a", 20)})
		assert.Error(t, c.Validate())
	})

	t.Run("negative followers", func(t *testing.T) {
		bad := record("tt_a", 10)
		bad.Followers = -1
		c := &Catalog{Count: 1, Influencers: []Influencer{bad}}
		assert.Error(t, c.Validate())
	})

	t.Run("stale tier", func(t *testing.T) {
		bad := record("tt_a", 2_000_000)
		bad.Tier = TierNano
		c := &Catalog{Count: 1, Influencers: []Influencer{bad}}
		assert.Error(t, c.Validate())
	})
}

func TestInfluencer_Key(t *testing.T) {
	yt := Influencer{
		Handle:  "@beautylab",
		YouTube: &YouTubeExtra{ChannelID: "UCabc123"},
	}
	assert.Equal(t, "UCabc123", yt.Key(), "youtube identity is the channel id")

	ig := Influencer{Handle: "glowup.daily"}
	assert.Equal(t, "glowup.daily", ig.Key(), "everything else keys on the handle")
}

func TestNewID(t *testing.T) {
	assert.Equal(t, "yt_UCabc123", NewID(PlatformYouTube, "UCabc123"))
	assert.Equal(t, "ig_glowup.daily", NewID(PlatformInstagram, "glowup.daily"))
	assert.Equal(t, "tt_skinfluencer", NewID(PlatformTikTok, "skinfluencer"))
}

func ids(c *Catalog) []string {
	out := make([]string, 0, len(c.Influencers))
	for _, inf := range c.Influencers {
		out = append(out, inf.ID)
	}
	return out
}
