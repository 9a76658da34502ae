package instagram

import (
	"encoding/json"

	"influencer-scout/core/catalog"
	"influencer-scout/core/utils"
)

// bioMaxLen bounds the free-text biography.
const bioMaxLen = 100

// rawProfile carries every candidate source field of the profile scraper
// output; the fallback chains below pick the first non-empty one per
// canonical field.
type rawProfile struct {
	Username        string `json:"username"`
	Handle          string `json:"handle"`
	FullName        string `json:"fullName"`
	FollowersCount  int    `json:"followersCount"`
	Followers       int    `json:"followers"`
	FollowsCount    int    `json:"followsCount"`
	PostsCount      int    `json:"postsCount"`
	ProfilePicURL   string `json:"profilePicUrl"`
	ProfilePicURLHD string `json:"profilePicUrlHD"`
	Biography       string `json:"biography"`
	Verified        bool   `json:"verified"`
}

// canonicalizeProfiles maps raw profile records to canonical records.
// Records without a resolvable handle are skipped; within the batch the
// first occurrence of a handle wins and later duplicates are discarded.
func canonicalizeProfiles(items []json.RawMessage, category []string) []catalog.Influencer {
	seen := make(map[string]struct{}, len(items))
	records := make([]catalog.Influencer, 0, len(items))

	for _, item := range items {
		var p rawProfile
		if err := json.Unmarshal(item, &p); err != nil {
			continue
		}

		handle := utils.First(p.Username, p.Handle)
		if handle == "" {
			continue
		}
		if _, dup := seen[handle]; dup {
			continue
		}
		seen[handle] = struct{}{}

		followers := utils.First(p.FollowersCount, p.Followers)
		if followers < 0 {
			followers = 0
		}

		records = append(records, catalog.Influencer{
			ID:           catalog.NewID(catalog.PlatformInstagram, handle),
			Platform:     catalog.PlatformInstagram,
			Handle:       handle,
			Name:         utils.First(p.FullName, handle),
			ProfileURL:   "https://www.instagram.com/" + handle + "/",
			ProfileImage: utils.First(p.ProfilePicURL, p.ProfilePicURLHD),
			Followers:    followers,
			ContentCount: p.PostsCount,
			Tier:         catalog.Classify(followers),
			Category:     category,
			LastUpdated:  catalog.Today(),
			Instagram: &catalog.InstagramExtra{
				Following:  p.FollowsCount,
				Bio:        utils.Truncate(p.Biography, bioMaxLen),
				IsVerified: p.Verified,
			},
		})
	}
	return records
}
