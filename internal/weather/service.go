package weather

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

var (
	// ErrUnknownStation is returned for station keys outside the configured set.
	ErrUnknownStation = errors.New("unknown station")
	// ErrUnknownSensor is returned for sensor kinds outside the descriptor table.
	ErrUnknownSensor = errors.New("unknown sensor")
)

// Service orchestrates the record cache and the field projector for the
// configured stations.
type Service struct {
	records  RecordProvider
	stations map[string]Station
	ordered  []Station
	units    UnitSystem
}

// NewService creates a new Service. units is the default unit system applied
// when a caller does not select one.
func NewService(records RecordProvider, stations []Station, units UnitSystem) *Service {
	byKey := make(map[string]Station, len(stations))
	for _, st := range stations {
		byKey[st.Key] = st
	}
	return &Service{
		records:  records,
		stations: byKey,
		ordered:  stations,
		units:    units,
	}
}

// Stations returns the configured stations in configuration order.
func (s *Service) Stations() []Station {
	return s.ordered
}

func (s *Service) station(key string) (Station, error) {
	st, ok := s.stations[key]
	if !ok {
		return Station{}, fmt.Errorf("%w: %s", ErrUnknownStation, key)
	}
	return st, nil
}

// Record returns the current record for a station, refreshing it through the
// cache when the throttle window allows.
func (s *Service) Record(ctx context.Context, key string) (StationRecord, error) {
	st, err := s.station(key)
	if err != nil {
		return StationRecord{}, err
	}
	return s.records.GetOrRefresh(ctx, st.StationID)
}

// Sensors projects every descriptor against the station's current record.
// A failed field extraction yields an unavailable sensor value; it never
// aborts the remaining sensors of the same record.
func (s *Service) Sensors(ctx context.Context, key string, system UnitSystem) ([]SensorValue, error) {
	st, err := s.station(key)
	if err != nil {
		return nil, err
	}
	rec, err := s.records.GetOrRefresh(ctx, st.StationID)
	if err != nil {
		return nil, err
	}

	descriptors := Descriptors()
	out := make([]SensorValue, 0, len(descriptors))
	for _, d := range descriptors {
		sv, err := Project(rec, d, s.unitsOr(system))
		if err != nil {
			slog.Warn("sensor projection failed",
				"station", st.Key, "sensor", d.Kind, "error", err)
		}
		out = append(out, s.decorate(sv, st))
	}
	return out, nil
}

// Sensor projects a single descriptor against the station's current record.
// A missing source field is reported as an unavailable sensor, not an error.
func (s *Service) Sensor(ctx context.Context, key, kind string, system UnitSystem) (SensorValue, error) {
	st, err := s.station(key)
	if err != nil {
		return SensorValue{}, err
	}
	d, ok := LookupDescriptor(kind)
	if !ok {
		return SensorValue{}, fmt.Errorf("%w: %s", ErrUnknownSensor, kind)
	}
	rec, err := s.records.GetOrRefresh(ctx, st.StationID)
	if err != nil {
		return SensorValue{}, err
	}

	sv, err := Project(rec, d, s.unitsOr(system))
	if err != nil {
		slog.Warn("sensor projection failed",
			"station", st.Key, "sensor", d.Kind, "error", err)
	}
	return s.decorate(sv, st), nil
}

// Refresh forces a throttle-eligible refresh for one station. Used by the
// background scheduler; failures are returned for the caller to log.
func (s *Service) Refresh(ctx context.Context, key string) error {
	st, err := s.station(key)
	if err != nil {
		return err
	}
	_, err = s.records.GetOrRefresh(ctx, st.StationID)
	return err
}

func (s *Service) unitsOr(system UnitSystem) UnitSystem {
	if system == "" {
		return s.units
	}
	return system
}

// decorate stamps station-scoped identity onto a projected sensor value.
func (s *Service) decorate(sv SensorValue, st Station) SensorValue {
	sv.Name = fmt.Sprintf("%s (%s)", sv.Name, st.Name)
	sv.UniqueID = fmt.Sprintf("%s,%s,%s", st.Source, st.Key, sv.Kind)
	return sv
}
