package calendar

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// UnmarshalJSON accepts the year as a string ("1969年") or a bare number.
func (h *HistoryBenchmark) UnmarshalJSON(b []byte) error {
	type plain HistoryBenchmark
	aux := struct {
		*plain
		Year json.RawMessage `json:"year"`
	}{plain: (*plain)(h)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	year, err := looseString(aux.Year)
	if err != nil {
		return fmt.Errorf("historyBenchmark.year: %w", err)
	}
	h.Year = year
	return nil
}

// UnmarshalJSON accepts generatedAt as an RFC 3339 string or as epoch
// milliseconds.
func (m *Metadata) UnmarshalJSON(b []byte) error {
	type plain Metadata
	aux := struct {
		*plain
		GeneratedAt json.RawMessage `json:"generatedAt"`
	}{plain: (*plain)(m)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	t, err := looseTime(aux.GeneratedAt)
	if err != nil {
		return fmt.Errorf("metadata.generatedAt: %w", err)
	}
	m.GeneratedAt = t
	return nil
}

func isNull(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

func looseString(raw json.RawMessage) (string, error) {
	if isNull(raw) {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("want string or number, got %s", raw)
	}
	return n.String(), nil
}

func looseTime(raw json.RawMessage) (time.Time, error) {
	if isNull(raw) {
		return time.Time{}, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if s == "" {
			return time.Time{}, nil
		}
		return time.Parse(time.RFC3339Nano, s)
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return time.Time{}, fmt.Errorf("want RFC 3339 string or epoch milliseconds, got %s", raw)
	}
	ms, err := n.Float64()
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(int64(ms)), nil
}
