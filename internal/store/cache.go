package store

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/i474232898/fo-weather-stations/internal/metrics"
	"github.com/i474232898/fo-weather-stations/internal/weather"
)

// DefaultWindow is the minimum interval between fetch attempts per station.
const DefaultWindow = 5 * time.Minute

// entry tracks one station's cache state: the last good record, the last
// failure, and when the last fetch attempt completed.
type entry struct {
	record      weather.StationRecord
	hasRecord   bool
	lastErr     error
	lastAttempt time.Time
}

// Cache holds the most recent successfully parsed record per station. It
// throttles refreshes to one attempt per window and collapses concurrent
// callers onto a single in-flight fetch per station.
type Cache struct {
	fetcher weather.Fetcher
	parser  weather.Parser
	window  time.Duration
	now     func() time.Time

	mu      sync.Mutex
	entries map[string]*entry
	flights singleflight.Group
}

// NewCache creates a Cache. A window of 0 falls back to DefaultWindow.
func NewCache(fetcher weather.Fetcher, parser weather.Parser, window time.Duration) *Cache {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Cache{
		fetcher: fetcher,
		parser:  parser,
		window:  window,
		now:     time.Now,
		entries: make(map[string]*entry),
	}
}

// GetOrRefresh returns the station's current record. Within the throttle
// window it serves the last good record unchanged (or the last failure if no
// record exists yet). Outside the window it runs one fetch+parse, which
// concurrent callers join instead of issuing duplicate requests. On failure
// the previous record is retained and the error goes to the callers of the
// failed attempt only.
func (c *Cache) GetOrRefresh(ctx context.Context, stationID string) (weather.StationRecord, error) {
	c.mu.Lock()
	if e, ok := c.entries[stationID]; ok && c.now().Sub(e.lastAttempt) < c.window {
		defer c.mu.Unlock()
		metrics.CountServe(stationID, "cached")
		if e.hasRecord {
			return e.record, nil
		}
		return weather.StationRecord{}, e.lastErr
	}
	c.mu.Unlock()

	ch := c.flights.DoChan(stationID, func() (interface{}, error) {
		return c.refresh(stationID)
	})

	// A caller that stops waiting releases only itself; the flight still
	// completes and its result is cached for the next eligible caller.
	select {
	case <-ctx.Done():
		return weather.StationRecord{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return weather.StationRecord{}, res.Err
		}
		return res.Val.(weather.StationRecord), nil
	}
}

// Latest returns the last good record without triggering a refresh.
func (c *Cache) Latest(stationID string) (weather.StationRecord, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[stationID]
	if !ok || !e.hasRecord {
		return weather.StationRecord{}, false
	}
	return e.record, true
}

// refresh runs one fetch+parse cycle on a context detached from any single
// caller; the fetcher's own timeout bounds it.
func (c *Cache) refresh(stationID string) (weather.StationRecord, error) {
	// Re-check under the lock: a flight that completed between the caller's
	// throttle check and joining this one must not trigger another fetch.
	c.mu.Lock()
	if e, ok := c.entries[stationID]; ok && c.now().Sub(e.lastAttempt) < c.window {
		defer c.mu.Unlock()
		if e.hasRecord {
			return e.record, nil
		}
		return weather.StationRecord{}, e.lastErr
	}
	c.mu.Unlock()

	raw, err := c.fetcher.Fetch(context.Background(), stationID, c.now())

	var rec weather.StationRecord
	if err == nil {
		rec, err = c.parser.Parse(stationID, raw)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[stationID]
	if !ok {
		e = &entry{}
		c.entries[stationID] = e
	}
	e.lastAttempt = c.now()

	if err != nil {
		// Keep the previous good record; throttled callers keep getting it.
		e.lastErr = err
		metrics.CountServe(stationID, "error")
		return weather.StationRecord{}, err
	}

	e.record = rec
	e.hasRecord = true
	e.lastErr = nil
	metrics.CountServe(stationID, "refreshed")
	return rec, nil
}
