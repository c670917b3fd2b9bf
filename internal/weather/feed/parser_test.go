package feed

import (
	"errors"
	"testing"
	"time"

	"github.com/i474232898/fo-weather-stations/internal/weather"
)

const feedDoc = `<?xml version="1.0"?>
<Workbook xmlns="urn:schemas-microsoft-com:office:spreadsheet"
 xmlns:ss="urn:schemas-microsoft-com:office:spreadsheet"
 xmlns:html="http://www.w3.org/TR/REC-html40">
 <Worksheet ss:Name="Sheet1">
  <Table>
   <Row>
    <Cell><Data ss:Type="String">time</Data></Cell>
    <Cell><Data ss:Type="String">temp2</Data></Cell>
    <Cell><Data ss:Type="String">press1</Data></Cell>
    <Cell><Data ss:Type="String">undef</Data></Cell>
    <Cell><Data ss:Type="String">hum</Data></Cell>
   </Row>
   <Row>
    <Cell><Data ss:Type="String">14:50</Data></Cell>
    <Cell><Data ss:Type="Number">10.5</Data></Cell>
    <Cell><Data ss:Type="Number">1013.2</Data></Cell>
    <Cell><Data ss:Type="Number">99.9</Data></Cell>
    <Cell><Data ss:Type="Number">87.0</Data></Cell>
   </Row>
  </Table>
 </Worksheet>
</Workbook>`

// fixedParser pins the parser clock for deterministic fallback timestamps.
func fixedParser(now time.Time) *Parser {
	p := NewParser()
	p.now = func() time.Time { return now }
	return p
}

func TestParseValidDocument(t *testing.T) {
	now := time.Date(2026, 8, 29, 16, 1, 0, 0, time.UTC)
	rec, err := fixedParser(now).Parse("F-21", []byte(feedDoc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.StationID != "F-21" {
		t.Errorf("stationID = %q", rec.StationID)
	}
	if len(rec.Fields) != 4 {
		t.Fatalf("got %d fields, want 4: %v", len(rec.Fields), rec.Fields)
	}
	if _, ok := rec.Fields["undef"]; ok {
		t.Error("undef column must be dropped")
	}

	// Positional pairing must survive the dropped undef column.
	if v := rec.Fields["temp2"]; v.Type != weather.ValueNumber || v.Number != 10.5 {
		t.Errorf("temp2 = %+v", v)
	}
	if v := rec.Fields["press1"]; v.Number != 1013.2 {
		t.Errorf("press1 = %+v", v)
	}
	if v := rec.Fields["hum"]; v.Number != 87.0 {
		t.Errorf("hum = %+v", v)
	}
	if v := rec.Fields["time"]; v.Type != weather.ValueText || v.Text != "14:50" {
		t.Errorf("time = %+v", v)
	}

	// Observation time comes from the feed's time column on the fetch day.
	want := time.Date(2026, 8, 29, 14, 50, 0, 0, time.UTC)
	if !rec.ObservedAt.Equal(want) {
		t.Errorf("observedAt = %v, want %v", rec.ObservedAt, want)
	}
}

func TestParseFallbackObservationTime(t *testing.T) {
	doc := `<Workbook xmlns="urn:schemas-microsoft-com:office:spreadsheet" xmlns:ss="urn:schemas-microsoft-com:office:spreadsheet">
 <Worksheet><Table>
  <Row><Cell><Data ss:Type="String">temp2</Data></Cell></Row>
  <Row><Cell><Data ss:Type="Number">3.2</Data></Cell></Row>
 </Table></Worksheet>
</Workbook>`

	now := time.Date(2026, 8, 29, 16, 1, 0, 0, time.UTC)
	rec, err := fixedParser(now).Parse("F-10", []byte(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rec.ObservedAt.Equal(now) {
		t.Errorf("observedAt = %v, want fetch time %v", rec.ObservedAt, now)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{
			name: "malformed xml",
			doc:  `<Workbook><Worksheet>`,
			want: ErrMalformedDocument,
		},
		{
			name: "no worksheet",
			doc:  `<Workbook xmlns="urn:schemas-microsoft-com:office:spreadsheet"></Workbook>`,
			want: ErrStructure,
		},
		{
			name: "worksheet in wrong namespace",
			doc:  `<Workbook><Worksheet><Table/></Worksheet></Workbook>`,
			want: ErrStructure,
		},
		{
			name: "no table",
			doc:  `<Workbook xmlns="urn:schemas-microsoft-com:office:spreadsheet"><Worksheet/></Workbook>`,
			want: ErrStructure,
		},
		{
			name: "header row only",
			doc: `<Workbook xmlns="urn:schemas-microsoft-com:office:spreadsheet" xmlns:ss="urn:schemas-microsoft-com:office:spreadsheet">
 <Worksheet><Table>
  <Row><Cell><Data ss:Type="String">temp2</Data></Cell></Row>
 </Table></Worksheet></Workbook>`,
			want: ErrInsufficientRows,
		},
		{
			name: "empty table",
			doc: `<Workbook xmlns="urn:schemas-microsoft-com:office:spreadsheet">
 <Worksheet><Table></Table></Worksheet></Workbook>`,
			want: ErrInsufficientRows,
		},
		{
			name: "non-numeric number cell",
			doc: `<Workbook xmlns="urn:schemas-microsoft-com:office:spreadsheet" xmlns:ss="urn:schemas-microsoft-com:office:spreadsheet">
 <Worksheet><Table>
  <Row><Cell><Data ss:Type="String">temp2</Data></Cell></Row>
  <Row><Cell><Data ss:Type="Number">n/a</Data></Cell></Row>
 </Table></Worksheet></Workbook>`,
			want: ErrInvalidNumericCell,
		},
		{
			name: "header longer than value row",
			doc: `<Workbook xmlns="urn:schemas-microsoft-com:office:spreadsheet" xmlns:ss="urn:schemas-microsoft-com:office:spreadsheet">
 <Worksheet><Table>
  <Row>
   <Cell><Data ss:Type="String">temp2</Data></Cell>
   <Cell><Data ss:Type="String">hum</Data></Cell>
  </Row>
  <Row><Cell><Data ss:Type="Number">10.5</Data></Cell></Row>
 </Table></Worksheet></Workbook>`,
			want: ErrFieldAlignment,
		},
		{
			name: "value row longer than header",
			doc: `<Workbook xmlns="urn:schemas-microsoft-com:office:spreadsheet" xmlns:ss="urn:schemas-microsoft-com:office:spreadsheet">
 <Worksheet><Table>
  <Row><Cell><Data ss:Type="String">temp2</Data></Cell></Row>
  <Row>
   <Cell><Data ss:Type="Number">10.5</Data></Cell>
   <Cell><Data ss:Type="Number">999</Data></Cell>
  </Row>
 </Table></Worksheet></Workbook>`,
			want: ErrFieldAlignment,
		},
		{
			name: "dataless header cell shifts alignment",
			doc: `<Workbook xmlns="urn:schemas-microsoft-com:office:spreadsheet" xmlns:ss="urn:schemas-microsoft-com:office:spreadsheet">
 <Worksheet><Table>
  <Row>
   <Cell><Data ss:Type="String">temp2</Data></Cell>
   <Cell></Cell>
   <Cell><Data ss:Type="String">hum</Data></Cell>
  </Row>
  <Row>
   <Cell><Data ss:Type="Number">1</Data></Cell>
   <Cell><Data ss:Type="Number">2</Data></Cell>
   <Cell><Data ss:Type="Number">3</Data></Cell>
  </Row>
 </Table></Worksheet></Workbook>`,
			want: ErrFieldAlignment,
		},
		{
			name: "dataless value cell shifts alignment",
			doc: `<Workbook xmlns="urn:schemas-microsoft-com:office:spreadsheet" xmlns:ss="urn:schemas-microsoft-com:office:spreadsheet">
 <Worksheet><Table>
  <Row>
   <Cell><Data ss:Type="String">temp2</Data></Cell>
   <Cell><Data ss:Type="String">hum</Data></Cell>
  </Row>
  <Row>
   <Cell></Cell>
   <Cell><Data ss:Type="Number">87.0</Data></Cell>
  </Row>
 </Table></Worksheet></Workbook>`,
			want: ErrFieldAlignment,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewParser().Parse("F-21", []byte(tc.doc))
			if !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestParseUnknownTypeTagKeptAsText(t *testing.T) {
	doc := `<Workbook xmlns="urn:schemas-microsoft-com:office:spreadsheet" xmlns:ss="urn:schemas-microsoft-com:office:spreadsheet">
 <Worksheet><Table>
  <Row><Cell><Data ss:Type="String">stamp</Data></Cell></Row>
  <Row><Cell><Data ss:Type="DateTime">2026-08-29T14:50:00</Data></Cell></Row>
 </Table></Worksheet></Workbook>`

	rec, err := NewParser().Parse("F-21", []byte(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, ok := rec.Fields["stamp"]
	if !ok || v.Type != weather.ValueText || v.Text != "2026-08-29T14:50:00" {
		t.Errorf("unknown type tag should project as text, got %+v", v)
	}
}

