package thought

import (
	"encoding/json"
	"fmt"
	"time"
)

func ParseTime(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// Timestamp wraps time.Time with RFC3339 string JSON encoding, matching the
// ISO-8601 strings the stored records use.
type Timestamp struct {
	time.Time
}

func (t Timestamp) SameDay(then time.Time, loc *time.Location) bool {
	a := t.In(loc)
	b := then.In(loc)
	return a.Day() == b.Day() && a.Month() == b.Month() && a.Year() == b.Year()
}

func (t Timestamp) SameMonth(then time.Time, loc *time.Location) bool {
	a := t.In(loc)
	b := then.In(loc)
	return a.Month() == b.Month() && a.Year() == b.Year()
}

func (t *Timestamp) MarshalJSON() ([]byte, error) {
	if t == nil || t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", t)), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var timestamp string
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}
	if timestamp == "" {
		t.Time = time.Time{}
		return nil
	}
	var err error
	t.Time, err = ParseTime(timestamp)
	return err
}

func (t Timestamp) String() string {
	return t.UTC().Format(time.RFC3339)
}

func FormatTime(v time.Time) string {
	return v.UTC().Format(time.RFC3339Nano)
}
