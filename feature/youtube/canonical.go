package youtube

import (
	"math"
	"strconv"

	"influencer-scout/core/catalog"
	"influencer-scout/core/utils"
)

// descriptionMaxLen bounds the free-text channel description.
const descriptionMaxLen = 200

// canonicalize maps one channel item to the canonical record. Channels
// without an id are skipped by the caller; every other absent field falls
// back to its documented default.
func canonicalize(item channelItem, category []string) catalog.Influencer {
	subscribers := atoi(item.Statistics.SubscriberCount)
	viewCount := atoi(item.Statistics.ViewCount)
	videoCount := atoi(item.Statistics.VideoCount)

	avgViews := 0
	if videoCount > 0 {
		avgViews = int(math.Round(float64(viewCount) / float64(videoCount)))
	}

	// Thumbnail fallback: high, then medium, then default.
	profileImage := utils.First(
		item.Snippet.Thumbnails["high"].URL,
		item.Snippet.Thumbnails["medium"].URL,
		item.Snippet.Thumbnails["default"].URL,
	)

	handle := utils.First(item.Snippet.CustomURL, item.ID)

	return catalog.Influencer{
		ID:           catalog.NewID(catalog.PlatformYouTube, item.ID),
		Platform:     catalog.PlatformYouTube,
		Handle:       handle,
		Name:         item.Snippet.Title,
		ProfileURL:   "https://www.youtube.com/channel/" + item.ID,
		ProfileImage: profileImage,
		Followers:    subscribers,
		ContentCount: videoCount,
		Tier:         catalog.Classify(subscribers),
		Category:     category,
		LastUpdated:  catalog.Today(),
		YouTube: &catalog.YouTubeExtra{
			ChannelID:        item.ID,
			Description:      utils.Truncate(item.Snippet.Description, descriptionMaxLen),
			Country:          item.Snippet.Country,
			Language:         item.Snippet.DefaultLanguage,
			Keywords:         item.BrandingSettings.Channel.Keywords,
			ViewCount:        viewCount,
			AvgViewsPerVideo: avgViews,
		},
	}
}

// canonicalizeBatch converts a batch of channel items, dropping items
// without an id and keeping the first occurrence of each channel.
func canonicalizeBatch(items []channelItem, category []string) []catalog.Influencer {
	seen := make(map[string]struct{}, len(items))
	records := make([]catalog.Influencer, 0, len(items))
	for _, item := range items {
		if item.ID == "" {
			continue
		}
		if _, dup := seen[item.ID]; dup {
			continue
		}
		seen[item.ID] = struct{}{}
		records = append(records, canonicalize(item, category))
	}
	return records
}

// atoi parses the API's string counters, defaulting absent or malformed
// values to 0.
func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
