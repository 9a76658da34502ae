package youtube

// Config holds the Data API settings.
type Config struct {
	// BaseURL is the API root.
	BaseURL string `mapstructure:"base_url" default:"https://www.googleapis.com/youtube/v3"`
	// ApiKey is the Data API v3 key. Required by the youtube fetcher.
	ApiKey string `mapstructure:"api_key" default:""`
	// RequestTimeoutSeconds is the per-request network timeout.
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" default:"10"`
	// SearchDelayMillis is the pause between search calls, to stay well
	// inside the API quota.
	SearchDelayMillis int `mapstructure:"search_delay_millis" default:"300"`
	// MaxRetries is the number of additional attempts for transient
	// transport failures.
	MaxRetries int `mapstructure:"max_retries" default:"3"`
	// RelevanceLanguage biases search results toward a language.
	RelevanceLanguage string `mapstructure:"relevance_language" default:"ko"`
}
