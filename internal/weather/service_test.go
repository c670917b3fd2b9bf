package weather

import (
	"context"
	"errors"
	"testing"
)

// fakeRecords is a canned RecordProvider.
type fakeRecords struct {
	record StationRecord
	err    error
	calls  int
}

func (f *fakeRecords) GetOrRefresh(ctx context.Context, stationID string) (StationRecord, error) {
	f.calls++
	if f.err != nil {
		return StationRecord{}, f.err
	}
	rec := f.record
	rec.StationID = stationID
	return rec, nil
}

func testStations() []Station {
	return []Station{
		{Key: "lv_sund", Name: "Sund", Source: "lv", StationID: "F-21"},
		{Key: "lv_klaksvik", Name: "Klaksvík", Source: "lv", StationID: "F-24"},
	}
}

func TestServiceSensorsIsolatesMissingFields(t *testing.T) {
	records := &fakeRecords{record: testRecord()} // has temp2 but no rain
	svc := NewService(records, testStations(), UnitsMetric)

	sensors, err := svc.Sensors(context.Background(), "lv_sund", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sensors) != len(Descriptors()) {
		t.Fatalf("got %d sensors, want %d", len(sensors), len(Descriptors()))
	}

	byKind := make(map[string]SensorValue, len(sensors))
	for _, sv := range sensors {
		byKind[sv.Kind] = sv
	}
	if !byKind["temp"].Available {
		t.Error("temp should be available")
	}
	if byKind["precipRate"].Available {
		t.Error("precipRate should be unavailable (no rain field)")
	}
	if byKind["precipTotal"].Available {
		t.Error("precipTotal should be unavailable (no rainsum field)")
	}
}

func TestServiceSensorDecoration(t *testing.T) {
	records := &fakeRecords{record: testRecord()}
	svc := NewService(records, testStations(), UnitsMetric)

	sv, err := svc.Sensor(context.Background(), "lv_sund", "temp", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sv.Name != "Temperature (Sund)" {
		t.Errorf("name = %q", sv.Name)
	}
	if sv.UniqueID != "lv,lv_sund,temp" {
		t.Errorf("uniqueId = %q", sv.UniqueID)
	}
}

func TestServiceUnitSystemSelection(t *testing.T) {
	records := &fakeRecords{record: testRecord()}
	svc := NewService(records, testStations(), UnitsMetric)

	sv, err := svc.Sensor(context.Background(), "lv_sund", "temp", UnitsImperial)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sv.Unit != "°F" {
		t.Errorf("explicit imperial: unit = %q, want °F", sv.Unit)
	}

	sv, err = svc.Sensor(context.Background(), "lv_sund", "temp", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sv.Unit != "°C" {
		t.Errorf("default system: unit = %q, want °C", sv.Unit)
	}
}

func TestServiceUnknownLookups(t *testing.T) {
	records := &fakeRecords{record: testRecord()}
	svc := NewService(records, testStations(), UnitsMetric)

	if _, err := svc.Record(context.Background(), "lv_atlantis"); !errors.Is(err, ErrUnknownStation) {
		t.Errorf("expected ErrUnknownStation, got %v", err)
	}
	if _, err := svc.Sensor(context.Background(), "lv_sund", "moonPhase", ""); !errors.Is(err, ErrUnknownSensor) {
		t.Errorf("expected ErrUnknownSensor, got %v", err)
	}
	if records.calls != 0 {
		t.Errorf("unknown lookups must not hit the record provider, got %d calls", records.calls)
	}
}

func TestServiceRecordPropagatesProviderError(t *testing.T) {
	failure := errors.New("feed request failed: boom")
	svc := NewService(&fakeRecords{err: failure}, testStations(), UnitsMetric)

	if _, err := svc.Record(context.Background(), "lv_sund"); !errors.Is(err, failure) {
		t.Errorf("expected provider error, got %v", err)
	}
	if _, err := svc.Sensors(context.Background(), "lv_sund", ""); !errors.Is(err, failure) {
		t.Errorf("expected provider error from Sensors, got %v", err)
	}
}

func TestServiceRefreshUsesStationID(t *testing.T) {
	records := &fakeRecords{record: testRecord()}
	svc := NewService(records, testStations(), UnitsMetric)

	if err := svc.Refresh(context.Background(), "lv_klaksvik"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if records.calls != 1 {
		t.Errorf("expected exactly one provider call, got %d", records.calls)
	}
}

func TestLookupStationRegistry(t *testing.T) {
	st, ok := LookupStation("lv_kambsdalur")
	if !ok {
		t.Fatal("lv_kambsdalur missing from registry")
	}
	if st.StationID != "F-10" || st.Source != "lv" {
		t.Errorf("unexpected registry entry: %+v", st)
	}
	if _, ok := LookupStation("lv_nowhere"); ok {
		t.Error("unknown key should not resolve")
	}

	all := Stations()
	if len(all) != 25 {
		t.Errorf("registry has %d stations, want 25", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Key >= all[i].Key {
			t.Fatalf("stations not sorted by key: %q before %q", all[i-1].Key, all[i].Key)
		}
	}
}
