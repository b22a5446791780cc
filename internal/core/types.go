// AngelaMos | 2026
// types.go

package core

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date column. It scans Postgres date values and renders
// on the wire as an ISO-8601 string ("2024-01-01"). Nullable columns use *Date.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.Format(dateLayout))), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("unmarshal date: %w", err)
	}

	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("unmarshal date %q: %w", s, err)
	}

	d.Time = t
	return nil
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = v
		return nil
	case string:
		return d.parse(v)
	case []byte:
		return d.parse(string(v))
	case nil:
		d.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("scan date: unsupported type %T", src)
	}
}

func (d *Date) parse(s string) error {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("scan date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return d.Format(dateLayout), nil
}

// Numeric is an arbitrary-precision decimal column carried on the wire as a
// JSON number. "12.50" in storage serializes as 12.5.
type Numeric float64

func (n *Numeric) Scan(src any) error {
	switch v := src.(type) {
	case float64:
		*n = Numeric(v)
		return nil
	case int64:
		*n = Numeric(v)
		return nil
	case string:
		return n.parse(v)
	case []byte:
		return n.parse(string(v))
	case nil:
		*n = 0
		return nil
	default:
		return fmt.Errorf("scan numeric: unsupported type %T", src)
	}
}

func (n *Numeric) parse(s string) error {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("scan numeric %q: %w", s, err)
	}
	*n = Numeric(f)
	return nil
}

func (n Numeric) Value() (driver.Value, error) {
	return float64(n), nil
}

func (n Numeric) Float64() float64 {
	return float64(n)
}
