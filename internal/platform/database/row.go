package database

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/timekeeper/internal/domain"
)

// Row is one result row keyed by column name. Values are whatever the driver
// produced; read them through a RowReader.
type Row map[string]any

// Reader returns a RowReader over r.
func (r Row) Reader() *RowReader {
	return &RowReader{row: r}
}

// RowReader converts driver values into Go types. The first failure is kept
// and every later read returns a zero value, so a mapper can read all columns
// and check Err once:
//
//	rr := row.Reader()
//	e := employee.Employee{ID: rr.Int64("id"), Name: rr.String("name")}
//	if err := rr.Err(); err != nil { ... }
//
// A missing column or a value of the wrong type is a malformed row, reported
// as domain.Fatal.
type RowReader struct {
	row Row
	err error
}

// Err returns the first conversion failure.
func (rr *RowReader) Err() error {
	return rr.err
}

func (rr *RowReader) fail(col string, v any, want string) {
	if rr.err == nil {
		rr.err = domain.Fatal(fmt.Sprintf("malformed row: column %q holds %T, want %s", col, v, want), nil)
	}
}

func (rr *RowReader) value(col string) (any, bool) {
	if rr.err != nil {
		return nil, false
	}
	v, ok := rr.row[col]
	if !ok {
		rr.err = domain.Fatal(fmt.Sprintf("malformed row: missing column %q", col), nil)
		return nil, false
	}
	return v, true
}

// Int64 reads a non-null integer column.
func (rr *RowReader) Int64(col string) int64 {
	v, ok := rr.value(col)
	if !ok {
		return 0
	}
	n, ok := toInt64(v)
	if !ok {
		rr.fail(col, v, "integer")
	}
	return n
}

// NullInt64 reads a nullable integer column.
func (rr *RowReader) NullInt64(col string) *int64 {
	v, ok := rr.value(col)
	if !ok || v == nil {
		return nil
	}
	n, ok := toInt64(v)
	if !ok {
		rr.fail(col, v, "integer")
		return nil
	}
	return &n
}

// String reads a text column. NULL reads as "".
func (rr *RowReader) String(col string) string {
	v, ok := rr.value(col)
	if !ok || v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case []byte:
		return string(s)
	default:
		rr.fail(col, v, "text")
		return ""
	}
}

// Float64 reads a non-null numeric column.
func (rr *RowReader) Float64(col string) float64 {
	v, ok := rr.value(col)
	if !ok {
		return 0
	}
	switch f := v.(type) {
	case float64:
		return f
	case float32:
		return float64(f)
	case int64:
		return float64(f)
	case []byte:
		if parsed, err := strconv.ParseFloat(string(f), 64); err == nil {
			return parsed
		}
	case string:
		if parsed, err := strconv.ParseFloat(f, 64); err == nil {
			return parsed
		}
	}
	rr.fail(col, v, "number")
	return 0
}

// Time reads a non-null timestamp column and returns it in UTC.
func (rr *RowReader) Time(col string) time.Time {
	v, ok := rr.value(col)
	if !ok {
		return time.Time{}
	}
	t, ok := toTime(v)
	if !ok {
		rr.fail(col, v, "timestamp")
		return time.Time{}
	}
	return t.UTC()
}

// Date reads a calendar date column as UTC midnight.
func (rr *RowReader) Date(col string) time.Time {
	t := rr.Time(col)
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// UUID reads a uuid column. NULL reads as uuid.Nil.
func (rr *RowReader) UUID(col string) uuid.UUID {
	v, ok := rr.value(col)
	if !ok || v == nil {
		return uuid.Nil
	}
	var (
		id  uuid.UUID
		err error
	)
	switch u := v.(type) {
	case string:
		id, err = uuid.Parse(u)
	case []byte:
		if len(u) == 16 {
			id, err = uuid.FromBytes(u)
		} else {
			id, err = uuid.ParseBytes(u)
		}
	case [16]byte:
		id = uuid.UUID(u)
	default:
		rr.fail(col, v, "uuid")
		return uuid.Nil
	}
	if err != nil {
		rr.fail(col, v, "uuid")
		return uuid.Nil
	}
	return id
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int32:
		return int64(n), true
	case int:
		return int64(n), true
	case []byte:
		parsed, err := strconv.ParseInt(string(n), 10, 64)
		return parsed, err == nil
	case string:
		parsed, err := strconv.ParseInt(n, 10, 64)
		return parsed, err == nil
	default:
		return 0, false
	}
}

// Layouts SQLite uses when a timestamp comes back as text.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func toTime(v any) (time.Time, bool) {
	var s string
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		s = t
	case []byte:
		s = string(t)
	default:
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
