package weather

import (
	"context"
	"time"
)

// Fetcher retrieves the raw current-day feed document for a station.
type Fetcher interface {
	Fetch(ctx context.Context, stationID string, day time.Time) ([]byte, error)
}

// Parser decodes raw feed bytes into a station record.
type Parser interface {
	Parse(stationID string, raw []byte) (StationRecord, error)
}

// RecordProvider is the contract the caching layer must satisfy: return the
// current record for a station, refreshing it when the throttle window allows.
type RecordProvider interface {
	GetOrRefresh(ctx context.Context, stationID string) (StationRecord, error)
}
