package counter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrCounterUnavailable wraps any failure to read the external scan
// counter: network errors, rejected credentials, bad responses. Callers
// recover by falling back to locally logged scan events.
var ErrCounterUnavailable = errors.New("scan counter unavailable")

type counterResponse struct {
	TotalScans  int64 `json:"total_scans"`
	UniqueScans int64 `json:"unique_scans"`
}

// Client reads the QR provider's cumulative scan counters.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// FetchCounter returns the provider's current cumulative total and
// unique scan counts.
func (c *Client) FetchCounter(ctx context.Context) (total, unique int64, err error) {
	if c.baseURL == "" || c.apiKey == "" {
		return 0, 0, fmt.Errorf("%w: not configured", ErrCounterUnavailable)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/scans/summary", nil)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrCounterUnavailable, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrCounterUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, 0, fmt.Errorf("%w: status %d", ErrCounterUnavailable, resp.StatusCode)
	}

	var body counterResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrCounterUnavailable, err)
	}

	return body.TotalScans, body.UniqueScans, nil
}
