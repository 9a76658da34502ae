package apify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// Actor run statuses reported by the API.
const (
	StatusRunning   = "RUNNING"
	StatusSucceeded = "SUCCEEDED"
	StatusFailed    = "FAILED"
	StatusAborted   = "ABORTED"
	StatusTimedOut  = "TIMED-OUT"
)

// ErrPollTimeout is returned when the poll attempt budget is exhausted
// without observing a terminal status. Treated the same as a failed run:
// recovered, never fatal.
var ErrPollTimeout = errors.New("apify: poll attempts exhausted")

// RunError reports an actor run that reached a terminal failure status.
// It is a recovered error: the discovery unit yields zero records and the
// pipeline continues.
type RunError struct {
	RunID  string
	Status string
}

func (e *RunError) Error() string {
	return fmt.Sprintf("apify: run %s ended with status %s", e.RunID, e.Status)
}

// IsRecoverable reports whether err is a per-unit job failure (terminal
// failure status or poll timeout) rather than a fatal transport problem.
func IsRecoverable(err error) bool {
	var runErr *RunError
	return errors.As(err, &runErr) || errors.Is(err, ErrPollTimeout)
}

// RunHandle identifies a submitted actor run.
type RunHandle struct {
	ID               string `json:"id"`
	DefaultDatasetID string `json:"defaultDatasetId"`
	Status           string `json:"status"`
}

// Client talks to the Apify v2 API. All calls block the caller; the only
// wait behavior is the fixed-interval poll loop.
type Client struct {
	cfg    Config
	policy PollPolicy
	http   *http.Client
	log    *zap.Logger
}

// NewClient creates a client from the configuration.
func NewClient(cfg Config, log *zap.Logger) *Client {
	timeout := cfg.RequestTimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	return &Client{
		cfg:    cfg,
		policy: cfg.PollPolicy(),
		http:   &http.Client{Timeout: time.Duration(timeout) * time.Second},
		log:    log,
	}
}

// RunActor submits the actor with the given input, polls the run to a
// terminal state and fetches the dataset items. Returned errors are either
// recoverable (RunError, ErrPollTimeout) or fatal transport/validation
// failures; IsRecoverable distinguishes them.
func (c *Client) RunActor(ctx context.Context, actorID string, input any) ([]json.RawMessage, error) {
	handle, err := c.Submit(ctx, actorID, input)
	if err != nil {
		return nil, err
	}
	c.log.Info("actor run started",
		zap.String("actor", actorID),
		zap.String("run_id", handle.ID),
	)

	if err := c.Poll(ctx, handle.ID); err != nil {
		return nil, err
	}

	return c.FetchResults(ctx, handle.DefaultDatasetID)
}

// Submit creates a new actor run and returns its handle. Fatal on
// transport or validation errors.
func (c *Client) Submit(ctx context.Context, actorID string, input any) (*RunHandle, error) {
	var resp struct {
		Data RunHandle `json:"data"`
	}
	endpoint := fmt.Sprintf("%s/acts/%s/runs", c.cfg.BaseURL, url.PathEscape(actorID))
	if err := c.doJSON(ctx, http.MethodPost, endpoint, input, &resp); err != nil {
		return nil, fmt.Errorf("submit actor %s: %w", actorID, err)
	}
	if resp.Data.ID == "" {
		return nil, fmt.Errorf("submit actor %s: response missing run id", actorID)
	}
	return &resp.Data, nil
}

// Poll blocks until the run reaches a terminal state or the attempt budget
// runs out. A nil return means the run SUCCEEDED.
func (c *Client) Poll(ctx context.Context, runID string) error {
	for attempt := 0; attempt < c.policy.MaxAttempts; attempt++ {
		if err := sleepCtx(ctx, c.policy.Interval); err != nil {
			return err
		}

		status, err := c.Status(ctx, runID)
		if err != nil {
			return err
		}

		switch status {
		case StatusSucceeded:
			return nil
		case StatusFailed, StatusAborted, StatusTimedOut:
			return &RunError{RunID: runID, Status: status}
		}
	}
	return fmt.Errorf("run %s: %w", runID, ErrPollTimeout)
}

// Status queries the current run status.
func (c *Client) Status(ctx context.Context, runID string) (string, error) {
	var resp struct {
		Data RunHandle `json:"data"`
	}
	endpoint := fmt.Sprintf("%s/actor-runs/%s", c.cfg.BaseURL, url.PathEscape(runID))
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
		return "", fmt.Errorf("run status %s: %w", runID, err)
	}
	return resp.Data.Status, nil
}

// FetchResults retrieves the dataset items of a finished run as raw JSON
// objects; the feature canonicalizers own their shapes. Fatal on transport
// errors, same policy as Submit.
func (c *Client) FetchResults(ctx context.Context, datasetID string) ([]json.RawMessage, error) {
	var items []json.RawMessage
	endpoint := fmt.Sprintf("%s/datasets/%s/items?format=json", c.cfg.BaseURL, url.PathEscape(datasetID))
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &items); err != nil {
		return nil, fmt.Errorf("fetch dataset %s: %w", datasetID, err)
	}
	return items, nil
}

// doJSON performs one API call with bounded retry of transient failures.
// Network errors, 429 and 5xx responses are retried with exponential
// backoff; other non-2xx statuses are permanent and abort immediately.
func (c *Client) doJSON(ctx context.Context, method, endpoint string, body any, out any) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("parse url: %w", err)
	}
	q := u.Query()
	q.Set("token", c.cfg.Token)
	u.RawQuery = q.Encode()

	var payload []byte
	if body != nil {
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	var lastErr error
	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(1<<(attempt-1)) * 500 * time.Millisecond
			c.log.Warn("transient transport failure, retrying",
				zap.Int("attempt", attempt),
				zap.Duration("backoff", backoff),
				zap.Error(lastErr),
			)
			if err := sleepCtx(ctx, backoff); err != nil {
				return err
			}
		}

		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
		if err != nil {
			return fmt.Errorf("build request: %w", err)
		}
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
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
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return fmt.Errorf("status %d: %s", resp.StatusCode, data)
		}

		if out == nil {
			return nil
		}
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	}
	return fmt.Errorf("transport failed after %d attempts: %w", c.cfg.MaxRetries+1, lastErr)
}

// sleepCtx waits for d or until the context is cancelled.
func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
