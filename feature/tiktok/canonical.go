package tiktok

import (
	"encoding/json"

	"influencer-scout/core/catalog"
	"influencer-scout/core/utils"
)

// rawVideo is one hashtag scraper item; the author block has appeared
// under both keys across actor versions.
type rawVideo struct {
	AuthorMeta *rawAuthor `json:"authorMeta"`
	Author     *rawAuthor `json:"author"`
}

// rawAuthor carries every candidate source field seen in scraper output;
// the fallback chains below pick the first non-empty one per canonical
// field.
type rawAuthor struct {
	Name           string `json:"name"`
	UniqueID       string `json:"uniqueId"`
	Fans           int    `json:"fans"`
	Followers      int    `json:"followers"`
	FollowersCount int    `json:"followersCount"`
	Following      int    `json:"following"`
	FollowingCount int    `json:"followingCount"`
	Heart          int    `json:"heart"`
	Digg           int    `json:"digg"`
	Video          int    `json:"video"`
	VideoCount     int    `json:"videoCount"`
	NickName       string `json:"nickName"`
	Nickname       string `json:"nickname"`
	Avatar         string `json:"avatar"`
	AvatarLarger   string `json:"avatarLarger"`
	Verified       bool   `json:"verified"`
}

// extractAccounts pulls the author account out of every video item and
// canonicalizes it. Items without a resolvable handle are skipped; within
// the batch the first occurrence of a handle wins.
func extractAccounts(items []json.RawMessage, category []string) []catalog.Influencer {
	seen := make(map[string]struct{}, len(items))
	records := make([]catalog.Influencer, 0, len(items))

	for _, item := range items {
		var v rawVideo
		if err := json.Unmarshal(item, &v); err != nil {
			continue
		}
		author := v.AuthorMeta
		if author == nil {
			author = v.Author
		}
		if author == nil {
			continue
		}

		handle := utils.First(author.Name, author.UniqueID)
		if handle == "" {
			continue
		}
		if _, dup := seen[handle]; dup {
			continue
		}
		seen[handle] = struct{}{}

		followers := utils.First(author.Fans, author.Followers, author.FollowersCount)
		if followers < 0 {
			followers = 0
		}
		videoCount := utils.First(author.Video, author.VideoCount)

		records = append(records, catalog.Influencer{
			ID:           catalog.NewID(catalog.PlatformTikTok, handle),
			Platform:     catalog.PlatformTikTok,
			Handle:       handle,
			Name:         utils.First(author.NickName, author.Nickname, handle),
			ProfileURL:   "https://www.tiktok.com/@" + handle,
			ProfileImage: utils.First(author.Avatar, author.AvatarLarger),
			Followers:    followers,
			ContentCount: videoCount,
			Tier:         catalog.Classify(followers),
			Category:     category,
			LastUpdated:  catalog.Today(),
			TikTok: &catalog.TikTokExtra{
				Following:  utils.First(author.Following, author.FollowingCount),
				TotalLikes: utils.First(author.Heart, author.Digg),
				IsVerified: author.Verified,
			},
		})
	}
	return records
}
