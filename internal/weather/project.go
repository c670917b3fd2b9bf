package weather

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrFieldMissing is returned when a descriptor's source field is not
	// present in the record. It is scoped to the single projection; sibling
	// sensors of the same record are unaffected.
	ErrFieldMissing = errors.New("field not present in record")
)

// Attribution is attached to every projected sensor value.
const Attribution = "Data provided by the Landverk (lv.fo)"

// Project reads one descriptor's source field out of a record and returns the
// sensor value with its resolved display metadata. On failure the returned
// SensorValue still carries the metadata with Available false, so callers can
// list the sensor as unavailable without aborting the record's other sensors.
func Project(rec StationRecord, d SensorDescriptor, system UnitSystem) (SensorValue, error) {
	sv := SensorValue{
		Kind:        d.Kind,
		Name:        d.Name,
		Unit:        resolveUnit(d, system),
		Icon:        d.Icon,
		DeviceClass: d.DeviceClass,
		Attributes:  map[string]string{"attribution": Attribution},
	}
	applyAttrs(&sv, rec, d)

	val, ok := rec.Field(d.SourceField)
	if !ok {
		return sv, fmt.Errorf("%w: %s", ErrFieldMissing, d.SourceField)
	}

	if d.Transform == TransformCompass {
		if val.Type != ValueNumber {
			return sv, fmt.Errorf("%w: %s is not numeric", ErrFieldMissing, d.SourceField)
		}
		val = TextValue(WindDirectionName(val.Number))
	}

	sv.Value = &val
	sv.Available = true
	return sv, nil
}

func resolveUnit(d SensorDescriptor, system UnitSystem) string {
	if d.Category == UnitNone {
		return d.LiteralUnit
	}
	return UnitFor(d.Category, system)
}

// applyAttrs evaluates the descriptor's attribute rule. Rule failures drop
// the attribute instead of failing the projection.
func applyAttrs(sv *SensorValue, rec StationRecord, d SensorDescriptor) {
	switch d.Attrs {
	case AttrObservationDate:
		if rec.ObservedAt.IsZero() {
			return
		}
		sv.Attributes["date"] = rec.ObservedAt.Format(time.RFC3339)
	}
}
