package instagram

import (
	"encoding/json"
	"strings"
	"testing"

	"influencer-scout/core/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func raw(items ...string) []json.RawMessage {
	out := make([]json.RawMessage, 0, len(items))
	for _, it := range items {
		out = append(out, json.RawMessage(it))
	}
	return out
}

func TestCanonicalizeProfiles(t *testing.T) {
	records := canonicalizeProfiles(raw(`{
		"username": "glowup.daily",
		"fullName": "Glow Up Daily",
		"followersCount": 85000,
		"followsCount": 120,
		"postsCount": 340,
		"profilePicUrl": "http://img/pic.jpg",
		"biography": "Skincare tips",
		"verified": true
	}`), []string{"skincare"})

	require.Len(t, records, 1)
	rec := records[0]
	assert.Equal(t, "ig_glowup.daily", rec.ID)
	assert.Equal(t, catalog.PlatformInstagram, rec.Platform)
	assert.Equal(t, "glowup.daily", rec.Handle)
	assert.Equal(t, "Glow Up Daily", rec.Name)
	assert.Equal(t, "https://www.instagram.com/glowup.daily/", rec.ProfileURL)
	assert.Equal(t, 85_000, rec.Followers)
	assert.Equal(t, 340, rec.ContentCount)
	assert.Equal(t, catalog.TierMid, rec.Tier)
	assert.Equal(t, []string{"skincare"}, rec.Category)

	require.NotNil(t, rec.Instagram)
	assert.Equal(t, 120, rec.Instagram.Following)
	assert.Equal(t, "Skincare tips", rec.Instagram.Bio)
	assert.True(t, rec.Instagram.IsVerified)
}

func TestCanonicalizeProfiles_Fallbacks(t *testing.T) {
	t.Run("handle falls back to handle field", func(t *testing.T) {
		records := canonicalizeProfiles(raw(`{"handle": "alt.handle"}`), nil)
		require.Len(t, records, 1)
		assert.Equal(t, "alt.handle", records[0].Handle)
	})

	t.Run("name falls back to handle", func(t *testing.T) {
		records := canonicalizeProfiles(raw(`{"username": "noname"}`), nil)
		require.Len(t, records, 1)
		assert.Equal(t, "noname", records[0].Name)
	})

	t.Run("followers falls back and clamps", func(t *testing.T) {
		records := canonicalizeProfiles(raw(
			`{"username": "a", "followers": 777}`,
			`{"username": "b", "followersCount": -5}`,
		), nil)
		require.Len(t, records, 2)
		assert.Equal(t, 777, records[0].Followers)
		assert.Equal(t, 0, records[1].Followers)
	})

	t.Run("bio is truncated by runes", func(t *testing.T) {
		bio := strings.Repeat("피", 150)
		records := canonicalizeProfiles(raw(`{"username": "a", "biography": "`+bio+`"}`), nil)
		require.Len(t, records, 1)
		assert.Equal(t, bioMaxLen, len([]rune(records[0].Instagram.Bio)))
	})
}

func TestCanonicalizeProfiles_Skips(t *testing.T) {
	records := canonicalizeProfiles(raw(
		`{"fullName": "no handle at all"}`,
		`not even json`,
		`{"username": "kept", "followersCount": 10}`,
		`{"username": "kept", "followersCount": 99}`,
	), nil)

	require.Len(t, records, 1)
	assert.Equal(t, "kept", records[0].Handle)
	assert.Equal(t, 10, records[0].Followers, "first occurrence of a handle wins")
}
