package weather

import (
	"encoding/json"
	"time"
)

// ValueType tags the payload kind of a parsed spreadsheet cell.
type ValueType string

const (
	ValueText   ValueType = "text"
	ValueNumber ValueType = "number"
)

// Value is one typed cell value from the feed. Text always carries the raw
// payload; Number is populated only for numeric cells.
type Value struct {
	Type   ValueType `json:"type"`
	Text   string    `json:"text,omitempty"`
	Number float64   `json:"number,omitempty"`
}

// TextValue wraps a string payload as a Value.
func TextValue(s string) Value {
	return Value{Type: ValueText, Text: s}
}

// NumberValue wraps a numeric payload as a Value, keeping the raw text.
func NumberValue(raw string, f float64) Value {
	return Value{Type: ValueNumber, Text: raw, Number: f}
}

// MarshalJSON renders the value as a bare JSON string or number.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.Type == ValueNumber {
		return json.Marshal(v.Number)
	}
	return json.Marshal(v.Text)
}

// Station is one entry of the Landsverk station registry.
type Station struct {
	Key       string `json:"key"`
	Name      string `json:"name"`
	Source    string `json:"source"`
	StationID string `json:"stationId"`
}

// StationRecord is the flat field->value mapping parsed from one feed fetch.
// It is treated as read-only after construction; a new fetch produces a new
// record that replaces the previous one in the cache.
type StationRecord struct {
	StationID  string           `json:"stationId"`
	Fields     map[string]Value `json:"fields"`
	ObservedAt time.Time        `json:"observedAt"`
}

// Field looks up a named field in the record.
func (r StationRecord) Field(name string) (Value, bool) {
	v, ok := r.Fields[name]
	return v, ok
}

// UnitSystem selects how unit categories resolve to display units.
type UnitSystem string

const (
	UnitsMetric   UnitSystem = "metric"
	UnitsImperial UnitSystem = "imperial"
)

// SensorValue is one projected sensor reading with its display metadata.
// Available is false when the source field could not be extracted from the
// record; the remaining metadata is still populated so the sensor can be
// listed as unavailable rather than dropped.
type SensorValue struct {
	Kind        string            `json:"kind"`
	Name        string            `json:"name"`
	UniqueID    string            `json:"uniqueId,omitempty"`
	Value       *Value            `json:"value,omitempty"`
	Unit        string            `json:"unit,omitempty"`
	Icon        string            `json:"icon,omitempty"`
	DeviceClass string            `json:"deviceClass,omitempty"`
	Available   bool              `json:"available"`
	Attributes  map[string]string `json:"attributes,omitempty"`
}
