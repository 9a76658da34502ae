package catalog

import "time"

// Platform identifies the social network a record was discovered on.
type Platform string

const (
	PlatformYouTube   Platform = "youtube"
	PlatformInstagram Platform = "instagram"
	PlatformTikTok    Platform = "tiktok"
)

// IsValid reports whether the platform is one of the supported values.
func (p Platform) IsValid() bool {
	switch p {
	case PlatformYouTube, PlatformInstagram, PlatformTikTok:
		return true
	default:
		return false
	}
}

// IDPrefix returns the short prefix used to build record ids.
func (p Platform) IDPrefix() string {
	switch p {
	case PlatformYouTube:
		return "yt"
	case PlatformInstagram:
		return "ig"
	case PlatformTikTok:
		return "tt"
	default:
		return string(p)
	}
}

// FileName returns the catalog file name for the platform.
func (p Platform) FileName() string {
	return string(p) + ".json"
}

// NewID builds the deterministic record id for a platform and identity key.
// The same (platform, key) pair always yields the same id, which is what
// makes overwrite-on-rediscovery safe.
func NewID(p Platform, key string) string {
	return p.IDPrefix() + "_" + key
}

// DefaultCategory is the topic tag list applied when the sources file does
// not configure one.
var DefaultCategory = []string{"skincare", "beauty"}

// Influencer is the canonical record stored in every catalog.
//
// Text fields use the empty string, not null, as the "unknown" value.
// EngagementRate stays nil for providers that never supply it.
type Influencer struct {
	ID           string   `json:"id"`
	Platform     Platform `json:"platform"`
	Handle       string   `json:"handle"`
	Name         string   `json:"name"`
	ProfileURL   string   `json:"profile_url"`
	ProfileImage string   `json:"profile_image"`

	// Followers is the primary ranking and filtering key. Non-negative.
	Followers int `json:"followers"`

	// ContentCount is the number of videos/posts, 0 when the provider
	// does not report one. Used by the min-content filter.
	ContentCount int `json:"content_count"`

	// EngagementRate is nil (JSON null) when unset; none of the current
	// providers supply it.
	EngagementRate *float64 `json:"engagement_rate"`

	// Tier is derived from Followers at canonicalization time and is
	// never stored independently of a recomputation.
	Tier Tier `json:"tier"`

	Category    []string `json:"category"`
	LastUpdated string   `json:"last_updated"`

	// Platform extensions; exactly one is non-nil.
	YouTube   *YouTubeExtra   `json:"youtube,omitempty"`
	Instagram *InstagramExtra `json:"instagram,omitempty"`
	TikTok    *TikTokExtra    `json:"tiktok,omitempty"`
}

// YouTubeExtra carries the channel fields only the YouTube API provides.
type YouTubeExtra struct {
	ChannelID        string `json:"channel_id"`
	Description      string `json:"description"`
	Country          string `json:"country"`
	Language         string `json:"language"`
	Keywords         string `json:"keywords"`
	ViewCount        int    `json:"view_count"`
	AvgViewsPerVideo int    `json:"avg_views_per_video"`
}

// InstagramExtra carries the profile fields only Instagram provides.
type InstagramExtra struct {
	Following  int    `json:"following"`
	Bio        string `json:"bio"`
	IsVerified bool   `json:"is_verified"`
}

// TikTokExtra carries the author fields only TikTok provides.
type TikTokExtra struct {
	Following  int  `json:"following"`
	TotalLikes int  `json:"total_likes"`
	IsVerified bool `json:"is_verified"`
}

// Key returns the identity key used to detect the same account across runs
// and sources: the channel id for YouTube records, the handle otherwise.
func (i *Influencer) Key() string {
	if i.YouTube != nil && i.YouTube.ChannelID != "" {
		return i.YouTube.ChannelID
	}
	return i.Handle
}

// Today returns the current UTC calendar date in the format used by
// LastUpdated.
func Today() string {
	return time.Now().UTC().Format("2006-01-02")
}
