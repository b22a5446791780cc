// AngelaMos | 2026
// types_test.go

package core

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateMarshalJSON(t *testing.T) {
	d := NewDate(2024, time.January, 1)

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	if got := string(data); got != `"2024-01-01"` {
		t.Errorf("marshal = %s, want \"2024-01-01\"", got)
	}
}

func TestDateUnmarshalJSON(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"2025-12-31"`), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := NewDate(2025, time.December, 31)
	if !d.Equal(want.Time) {
		t.Errorf("date = %v, want %v", d, want)
	}

	if err := json.Unmarshal([]byte(`"31/12/2025"`), &d); err == nil {
		t.Error("non-ISO date must fail to unmarshal")
	}
}

func TestDateScan(t *testing.T) {
	var d Date

	if err := d.Scan(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("scan time.Time: %v", err)
	}
	if d.String() != "2024-06-15" {
		t.Errorf("scan time.Time = %s", d)
	}

	if err := d.Scan("2024-07-01"); err != nil {
		t.Fatalf("scan string: %v", err)
	}
	if d.String() != "2024-07-01" {
		t.Errorf("scan string = %s", d)
	}

	if err := d.Scan([]byte("2024-08-01")); err != nil {
		t.Fatalf("scan bytes: %v", err)
	}
	if d.String() != "2024-08-01" {
		t.Errorf("scan bytes = %s", d)
	}

	if err := d.Scan(nil); err != nil {
		t.Fatalf("scan nil: %v", err)
	}
	if !d.IsZero() {
		t.Error("scan nil should zero the date")
	}

	if err := d.Scan(42); err == nil {
		t.Error("scan int must fail")
	}
}

func TestDateValue(t *testing.T) {
	d := NewDate(2024, time.March, 5)

	v, err := d.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if v != "2024-03-05" {
		t.Errorf("value = %v, want 2024-03-05", v)
	}
}

func TestNumericMarshalDropsTrailingZero(t *testing.T) {
	var n Numeric
	if err := n.Scan("12.50"); err != nil {
		t.Fatalf("scan: %v", err)
	}

	data, err := json.Marshal(n)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	// numeric(12,2) "12.50" comes back on the wire as the JSON number 12.5.
	if got := string(data); got != "12.5" {
		t.Errorf("marshal = %s, want 12.5", got)
	}
}

func TestNumericScan(t *testing.T) {
	tests := []struct {
		name string
		src  any
		want float64
	}{
		{"float64", float64(99.99), 99.99},
		{"int64", int64(100), 100},
		{"string", "42.75", 42.75},
		{"bytes", []byte("0.01"), 0.01},
		{"padded string", " 7 ", 7},
		{"nil", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n Numeric
			if err := n.Scan(tt.src); err != nil {
				t.Fatalf("scan: %v", err)
			}
			if n.Float64() != tt.want {
				t.Errorf("scan = %v, want %v", n.Float64(), tt.want)
			}
		})
	}

	var n Numeric
	if err := n.Scan("not a number"); err == nil {
		t.Error("scan of garbage must fail")
	}
	if err := n.Scan(true); err == nil {
		t.Error("scan bool must fail")
	}
}
