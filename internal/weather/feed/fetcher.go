package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/sony/gobreaker"

	"github.com/i474232898/fo-weather-stations/internal/metrics"
)

var (
	// ErrTimeout is returned when the per-request deadline elapses.
	ErrTimeout = errors.New("feed request timed out")
	// ErrNetwork is returned for transport failures, non-success statuses
	// and an open circuit breaker; the underlying cause is wrapped.
	ErrNetwork = errors.New("feed request failed")
)

// DefaultTimeout is the per-request deadline of the lv.fo feed.
const DefaultTimeout = 10 * time.Second

// Fetcher issues rate-unaware, single-shot requests for a station's
// current-day spreadsheet document. It performs exactly one network round
// trip per call; retry policy belongs to the caching layer above.
type Fetcher struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
	circuit *gobreaker.CircuitBreaker
}

// NewFetcher creates a Fetcher for the given feed endpoint. A timeout of 0
// falls back to DefaultTimeout.
func NewFetcher(client *http.Client, baseURL string, timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "lv-feed",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})
	return &Fetcher{
		baseURL: baseURL,
		client:  client,
		timeout: timeout,
		circuit: cb,
	}
}

// Fetch retrieves the raw feed document for a station on the given calendar
// day (year/month/day of the requesting moment, not of data content).
func (f *Fetcher) Fetch(ctx context.Context, stationID string, day time.Time) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	// The feed expects non-padded calendar components.
	u := fmt.Sprintf("%s?station=%s&year=%d&month=%d&day=%d",
		f.baseURL, url.QueryEscape(stationID), day.Year(), int(day.Month()), day.Day())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	// Requesting gzip explicitly disables net/http's transparent
	// decompression, so the response is inflated below.
	req.Header.Set("Accept-Encoding", "gzip")

	start := time.Now()
	result, err := f.circuit.Execute(func() (interface{}, error) {
		resp, execErr := f.client.Do(req)
		if execErr != nil {
			return nil, execErr
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			io.Copy(io.Discard, resp.Body)
			return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
		}

		var body io.Reader = resp.Body
		if resp.Header.Get("Content-Encoding") == "gzip" {
			zr, zerr := gzip.NewReader(resp.Body)
			if zerr != nil {
				return nil, fmt.Errorf("gzip response: %w", zerr)
			}
			defer zr.Close()
			body = zr
		}
		return io.ReadAll(body)
	})
	if err != nil {
		metrics.ObserveFetch(stationID, time.Since(start), false)
		return nil, classify(err)
	}

	metrics.ObserveFetch(stationID, time.Since(start), true)
	return result.([]byte), nil
}

// classify maps transport-level failures onto the fetch error taxonomy.
func classify(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: circuit breaker open: %v", ErrNetwork, err)
	}
	return fmt.Errorf("%w: %v", ErrNetwork, err)
}
