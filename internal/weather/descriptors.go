package weather

// UnitCategory is an abstract measurement kind resolved to a concrete unit
// string by the active unit system. UnitNone means the descriptor carries a
// literal unit instead.
type UnitCategory int

const (
	UnitNone UnitCategory = iota
	UnitTemperature
	UnitLength
	UnitAltitude
	UnitSpeed
	UnitPressure
	UnitRate
	UnitPercentage
)

// AttributeRule selects how extra attributes are derived for a sensor.
type AttributeRule int

const (
	// AttrNone attaches nothing beyond the attribution.
	AttrNone AttributeRule = iota
	// AttrObservationDate attaches the record's observation time under "date".
	AttrObservationDate
)

// ValueTransform selects an optional post-lookup value transformation.
type ValueTransform int

const (
	TransformNone ValueTransform = iota
	// TransformCompass maps a wind-direction degree value to a compass point.
	TransformCompass
)

// SensorDescriptor is static configuration for one derivable sensor value.
type SensorDescriptor struct {
	Kind        string
	Name        string
	SourceField string
	Category    UnitCategory
	LiteralUnit string // used when Category is UnitNone
	Icon        string
	DeviceClass string
	Attrs       AttributeRule
	Transform   ValueTransform
}

// sensorTypes maps sensor kind to its descriptor. The table is process-wide,
// read-only configuration; feed column names (temp2, press1, ...) are the
// literal header values published by lv.fo.
var sensorTypes = []SensorDescriptor{
	{Kind: "temp", Name: "Temperature", SourceField: "temp2", Category: UnitTemperature, Icon: "mdi:thermometer", DeviceClass: "temperature", Attrs: AttrObservationDate},
	{Kind: "dewpt", Name: "Dew point", SourceField: "dew", Category: UnitTemperature, Icon: "mdi:water", Attrs: AttrObservationDate},
	{Kind: "pressure", Name: "Pressure", SourceField: "press1", Category: UnitPressure, Icon: "mdi:gauge", DeviceClass: "pressure", Attrs: AttrObservationDate},
	{Kind: "windSpeed", Name: "Wind speed", SourceField: "mean1", Category: UnitSpeed, Icon: "mdi:weather-windy", Attrs: AttrObservationDate},
	{Kind: "windGust", Name: "Wind gust", SourceField: "gust2", Category: UnitSpeed, Icon: "mdi:weather-windy", Attrs: AttrObservationDate},
	{Kind: "precipRate", Name: "Precipitation rate", SourceField: "rain", Category: UnitLength, Icon: "mdi:umbrella", Attrs: AttrObservationDate},
	{Kind: "precipTotal", Name: "Precipitation today", SourceField: "rainsum", Category: UnitLength, Icon: "mdi:umbrella", Attrs: AttrObservationDate},
	{Kind: "humidity", Name: "Relative Humidity", SourceField: "hum", LiteralUnit: "%", Icon: "mdi:water-percent", DeviceClass: "humidity", Attrs: AttrObservationDate},
	{Kind: "winddir", Name: "Wind Direction", SourceField: "dir", LiteralUnit: "°", Icon: "mdi:weather-windy", Attrs: AttrObservationDate},
	{Kind: "windDirectionName", Name: "Wind Direction", SourceField: "dir", Icon: "mdi:weather-windy", Attrs: AttrObservationDate, Transform: TransformCompass},
}

// Descriptors returns the full sensor descriptor table in declaration order.
func Descriptors() []SensorDescriptor {
	return sensorTypes
}

// LookupDescriptor resolves a sensor kind against the descriptor table.
func LookupDescriptor(kind string) (SensorDescriptor, bool) {
	for _, d := range sensorTypes {
		if d.Kind == kind {
			return d, true
		}
	}
	return SensorDescriptor{}, false
}
