package weather

// unitTable resolves a unit category to its display unit per unit system.
var unitTable = map[UnitCategory]map[UnitSystem]string{
	UnitTemperature: {UnitsMetric: "°C", UnitsImperial: "°F"},
	UnitLength:      {UnitsMetric: "mm", UnitsImperial: "in"},
	UnitAltitude:    {UnitsMetric: "m", UnitsImperial: "ft"},
	UnitSpeed:       {UnitsMetric: "km/h", UnitsImperial: "mph"},
	UnitPressure:    {UnitsMetric: "mbar", UnitsImperial: "inHg"},
	UnitRate:        {UnitsMetric: "mm/h", UnitsImperial: "in/h"},
	UnitPercentage:  {UnitsMetric: "%", UnitsImperial: "%"},
}

// UnitFor resolves a category and unit system to a display unit string.
// Unknown categories or systems resolve to the empty unit rather than failing.
func UnitFor(cat UnitCategory, system UnitSystem) string {
	return unitTable[cat][system]
}
