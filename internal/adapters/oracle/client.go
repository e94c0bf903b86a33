// Package oracle fetches rate snapshots from the external rate feed.
package oracle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/centavohq/centavo_backend/internal/apperrors"
)

// Snapshot is the document served by the rate feed. Rates is keyed either
// by a bare currency code ("ARS", implies type "official") or by
// "<CCY>_<type>" ("ARS_blue"). Values are left untyped so one malformed
// entry cannot fail the whole decode; the sync service skips non-numeric
// values entry by entry.
type Snapshot struct {
	UpdatedAt string         `json:"updatedAt"`
	Base      string         `json:"base"`
	Rates     map[string]any `json:"rates"`
}

// Client fetches snapshots over HTTPS with a bounded timeout.
type Client struct {
	feedURL    string
	timeout    time.Duration
	httpClient *http.Client
}

// NewClient creates a rate feed client. The timeout bounds the whole
// fetch, connection included.
func NewClient(feedURL string, timeout time.Duration) *Client {
	return &Client{
		feedURL:    feedURL,
		timeout:    timeout,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchSnapshot retrieves the current snapshot. Expired deadlines are
// classified as apperrors.ErrSyncTimeout so the sync can report them as
// transient rather than malformed.
func (c *Client) FetchSnapshot(ctx context.Context) (*Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building rate feed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrSyncTimeout, err)
		}
		return nil, fmt.Errorf("fetching rate feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rate feed returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrSyncTimeout, err)
		}
		return nil, fmt.Errorf("reading rate feed response: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(body, &snapshot); err != nil {
		return nil, fmt.Errorf("parsing rate feed response: %w", err)
	}
	if snapshot.Rates == nil {
		return nil, fmt.Errorf("%w: missing rates object", apperrors.ErrEmptyPayload)
	}

	return &snapshot, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
