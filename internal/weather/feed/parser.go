package feed

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/i474232898/fo-weather-stations/internal/weather"
)

var (
	// ErrMalformedDocument is returned when the payload is not well-formed XML.
	ErrMalformedDocument = errors.New("malformed feed document")
	// ErrStructure is returned when the worksheet or table element is absent.
	ErrStructure = errors.New("unexpected document structure")
	// ErrInsufficientRows is returned when the table has fewer than two rows.
	ErrInsufficientRows = errors.New("insufficient rows in document")
	// ErrInvalidNumericCell is returned when a Number cell's payload does not
	// parse as a floating-point value.
	ErrInvalidNumericCell = errors.New("invalid numeric cell")
	// ErrFieldAlignment is returned when the header and value rows differ in
	// length, which would silently misalign field names and values. Dataless
	// cells are skipped during reduction, so a mismatch in either direction
	// means positional pairing can no longer be trusted.
	ErrFieldAlignment = errors.New("header and value rows misaligned")
)

// observationField is the feed column carrying the station's own clock time.
const observationField = "time"

// Spreadsheet-XML structure of the lv.fo feed: Worksheet/Table/Row/Cell/Data
// nesting in the Microsoft spreadsheet namespace, with a namespaced Type
// attribute on each Data element. The feed also declares an HTML-compat
// namespace that carries no data.
type xmlDocument struct {
	Worksheets []xmlWorksheet `xml:"urn:schemas-microsoft-com:office:spreadsheet Worksheet"`
}

type xmlWorksheet struct {
	Tables []xmlTable `xml:"urn:schemas-microsoft-com:office:spreadsheet Table"`
}

type xmlTable struct {
	Rows []xmlRow `xml:"urn:schemas-microsoft-com:office:spreadsheet Row"`
}

type xmlRow struct {
	Cells []xmlCell `xml:"urn:schemas-microsoft-com:office:spreadsheet Cell"`
}

type xmlCell struct {
	Data *xmlData `xml:"urn:schemas-microsoft-com:office:spreadsheet Data"`
}

type xmlData struct {
	Type string `xml:"urn:schemas-microsoft-com:office:spreadsheet Type,attr"`
	Text string `xml:",chardata"`
}

// Parser reduces a spreadsheet-XML feed document to a flat station record:
// row 0 supplies field names, row 1 the values, paired positionally.
type Parser struct {
	now func() time.Time
}

// NewParser creates a Parser using the wall clock.
func NewParser() *Parser {
	return &Parser{now: time.Now}
}

// Parse decodes raw feed bytes into an immutable StationRecord.
func (p *Parser) Parse(stationID string, raw []byte) (weather.StationRecord, error) {
	var doc xmlDocument
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return weather.StationRecord{}, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	if len(doc.Worksheets) == 0 {
		return weather.StationRecord{}, fmt.Errorf("%w: no worksheet element", ErrStructure)
	}
	ws := doc.Worksheets[0]
	if len(ws.Tables) == 0 {
		return weather.StationRecord{}, fmt.Errorf("%w: worksheet has no table element", ErrStructure)
	}

	rows, err := reduceRows(ws.Tables[0])
	if err != nil {
		return weather.StationRecord{}, err
	}
	if len(rows) < 2 {
		return weather.StationRecord{}, fmt.Errorf("%w: got %d, need 2", ErrInsufficientRows, len(rows))
	}

	header, values := rows[0], rows[1]
	if len(header) != len(values) {
		return weather.StationRecord{}, fmt.Errorf("%w: %d header cells, %d value cells",
			ErrFieldAlignment, len(header), len(values))
	}

	fields := make(map[string]weather.Value, len(header))
	for i, h := range header {
		name := h.Text
		if name == "undef" {
			continue
		}
		fields[name] = values[i]
	}

	return weather.StationRecord{
		StationID:  stationID,
		Fields:     fields,
		ObservedAt: p.observationTime(fields),
	}, nil
}

// reduceRows walks the table's rows and cells in document order, inferring
// each cell's type from the Data element's Type attribute. Cells with no
// Data element contribute no value.
func reduceRows(table xmlTable) ([][]weather.Value, error) {
	rows := make([][]weather.Value, 0, len(table.Rows))
	for ri, row := range table.Rows {
		values := make([]weather.Value, 0, len(row.Cells))
		for ci, cell := range row.Cells {
			if cell.Data == nil {
				continue
			}
			switch cell.Data.Type {
			case "Number":
				f, err := strconv.ParseFloat(strings.TrimSpace(cell.Data.Text), 64)
				if err != nil {
					return nil, fmt.Errorf("%w: row %d cell %d: %q",
						ErrInvalidNumericCell, ri, ci, cell.Data.Text)
				}
				values = append(values, weather.NumberValue(cell.Data.Text, f))
			default:
				// String, and any type tag the feed invents, kept as text.
				values = append(values, weather.TextValue(cell.Data.Text))
			}
		}
		rows = append(rows, values)
	}
	return rows, nil
}

// observationTime derives the record timestamp from the feed's "time" column
// (a clock time on the fetch day) and falls back to the fetch wall-clock time
// when the column is absent or unparseable.
func (p *Parser) observationTime(fields map[string]weather.Value) time.Time {
	now := p.now()
	v, ok := fields[observationField]
	if !ok || v.Type != weather.ValueText {
		return now
	}
	for _, layout := range []string{"15:04:05", "15:04"} {
		t, err := time.Parse(layout, strings.TrimSpace(v.Text))
		if err != nil {
			continue
		}
		return time.Date(now.Year(), now.Month(), now.Day(),
			t.Hour(), t.Minute(), t.Second(), 0, now.Location())
	}
	return now
}
