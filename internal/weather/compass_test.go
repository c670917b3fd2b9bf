package weather

import "testing"

func TestWindDirectionName(t *testing.T) {
	cases := []struct {
		degrees float64
		want    string
	}{
		{-1.0, ""},
		{-0.01, ""},
		{0, "N"},
		{5.0, "N"},
		{11.24, "N"},
		{11.25, "NNE"},
		{33.75, "NE"},
		{45, "NE"},
		{90, "E"},
		{120, "ESE"},
		{135, "SE"},
		{168.75, "S"},
		{190.0, "S"},
		{225, "SW"},
		{270, "W"},
		{303.75, "NW"},
		{326.25, "NNW"},
		{348.74, "NNW"},
		{348.75, "N"},
		{349.0, "N"},
		{359.99, "N"},
	}

	for _, tc := range cases {
		if got := WindDirectionName(tc.degrees); got != tc.want {
			t.Errorf("WindDirectionName(%v) = %q, want %q", tc.degrees, got, tc.want)
		}
	}
}

// Every bucket is 22.5 degrees wide and the 16 buckets tile [0, 360) without
// gaps: stepping the full circle in small increments must only ever move
// forward through the compass ring.
func TestWindDirectionNameBucketsAreContiguous(t *testing.T) {
	prev := WindDirectionName(0)
	if prev != "N" {
		t.Fatalf("expected N at 0 degrees, got %q", prev)
	}

	transitions := 0
	for d := 0.0; d < 360; d += 0.05 {
		name := WindDirectionName(d)
		if name == "" {
			t.Fatalf("empty name for non-negative degrees %v", d)
		}
		if name != prev {
			transitions++
			prev = name
		}
	}
	// 15 forward transitions plus the wrap back to N at 348.75.
	if transitions != 16 {
		t.Errorf("expected 16 bucket transitions over the circle, got %d", transitions)
	}
}
