package heartbeat

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

const discardLimit int64 = 128 * 1024

// URLHeartbeat pings a dead-man-switch URL. Handy when the audit runs from
// cron and silence should page somebody.
type URLHeartbeat struct {
	url    string
	client *http.Client
}

func NewURLHeartbeat(url string) *URLHeartbeat {
	return &URLHeartbeat{
		url:    url,
		client: &http.Client{},
	}
}

func (b *URLHeartbeat) Beat(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.url, nil)
	if err != nil {
		return err
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return err
	}
	defer cleanupBody(resp.Body)

	if resp.StatusCode >= 400 {
		return fmt.Errorf("heartbeat endpoint responded with status %s", resp.Status)
	}

	return nil
}

// Does cleanup of HTTP response in order to make it reusable by keep-alive
// logic of HTTP client
func cleanupBody(body io.ReadCloser) {
	io.Copy(io.Discard, &io.LimitedReader{
		R: body,
		N: discardLimit,
	})
	body.Close()
}
