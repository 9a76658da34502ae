package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// searchPageSize is the API's maximum page size for search and channel
// lookups.
const searchPageSize = 50

// channelItem is the subset of the channels endpoint response the
// canonicalizer consumes. Statistics counters are strings on the wire.
type channelItem struct {
	ID      string `json:"id"`
	Snippet struct {
		Title           string `json:"title"`
		Description     string `json:"description"`
		CustomURL       string `json:"customUrl"`
		Country         string `json:"country"`
		DefaultLanguage string `json:"defaultLanguage"`
		Thumbnails      map[string]struct {
			URL string `json:"url"`
		} `json:"thumbnails"`
	} `json:"snippet"`
	Statistics struct {
		SubscriberCount string `json:"subscriberCount"`
		ViewCount       string `json:"viewCount"`
		VideoCount      string `json:"videoCount"`
	} `json:"statistics"`
	BrandingSettings struct {
		Channel struct {
			Keywords string `json:"keywords"`
		} `json:"channel"`
	} `json:"brandingSettings"`
}

// Client is the synchronous Data API client. Calls block until response
// or the per-request timeout; transport failures are retried a bounded
// number of times and are fatal afterwards.
type Client struct {
	cfg  Config
	http *http.Client
	log  *zap.Logger
}

// NewClient creates a client from the configuration.
func NewClient(cfg Config, log *zap.Logger) *Client {
	timeout := cfg.RequestTimeoutSeconds
	if timeout <= 0 {
		timeout = 10
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: time.Duration(timeout) * time.Second},
		log:  log,
	}
}

// SearchChannelIDs searches channels for a keyword and returns their ids.
// It pauses briefly afterwards so back-to-back keyword searches stay
// inside the quota.
func (c *Client) SearchChannelIDs(ctx context.Context, keyword string, maxResults int) ([]string, error) {
	if maxResults > searchPageSize {
		maxResults = searchPageSize
	}
	params := url.Values{
		"part":       {"snippet"},
		"q":          {keyword},
		"type":       {"channel"},
		"maxResults": {strconv.Itoa(maxResults)},
	}
	if c.cfg.RelevanceLanguage != "" {
		params.Set("relevanceLanguage", c.cfg.RelevanceLanguage)
	}

	var resp struct {
		Items []struct {
			Snippet struct {
				ChannelID string `json:"channelId"`
			} `json:"snippet"`
		} `json:"items"`
	}
	if err := c.doGet(ctx, "search", params, &resp); err != nil {
		return nil, fmt.Errorf("search channels %q: %w", keyword, err)
	}

	ids := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Snippet.ChannelID != "" {
			ids = append(ids, item.Snippet.ChannelID)
		}
	}

	if c.cfg.SearchDelayMillis > 0 {
		select {
		case <-ctx.Done():
			return ids, ctx.Err()
		case <-time.After(time.Duration(c.cfg.SearchDelayMillis) * time.Millisecond):
		}
	}
	return ids, nil
}

// FetchChannels retrieves channel details for up to 50 ids in one call.
func (c *Client) FetchChannels(ctx context.Context, ids []string) ([]channelItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	params := url.Values{
		"part": {"snippet,statistics,brandingSettings"},
		"id":   {strings.Join(ids, ",")},
	}
	var resp struct {
		Items []channelItem `json:"items"`
	}
	if err := c.doGet(ctx, "channels", params, &resp); err != nil {
		return nil, fmt.Errorf("fetch channels: %w", err)
	}
	return resp.Items, nil
}

// doGet performs one API call with bounded retry of transient failures,
// mirroring the job client's transport policy.
func (c *Client) doGet(ctx context.Context, endpoint string, params url.Values, out any) error {
	params.Set("key", c.cfg.ApiKey)
	fullURL := c.cfg.BaseURL + "/" + endpoint + "?" + params.Encode()

	var lastErr error
	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(1<<(attempt-1)) * 500 * time.Millisecond
			c.log.Warn("transient transport failure, retrying",
				zap.String("endpoint", endpoint),
				zap.Int("attempt", attempt),
				zap.Error(lastErr),
			)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return fmt.Errorf("build request: %w", err)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		data, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("status %d: %s", resp.StatusCode, data)
			continue
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("status %d: %s", resp.StatusCode, data)
		}
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	}
	return fmt.Errorf("transport failed after %d attempts: %w", c.cfg.MaxRetries+1, lastErr)
}
