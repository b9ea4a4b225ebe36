package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2026-08-20")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if date.Year() != 2026 || date.Month() != time.August || date.Day() != 20 {
		t.Errorf("unexpected date: %v", date)
	}

	if _, err := ParseDate("20/08/2026"); err == nil {
		t.Error("expected an error for a non-ISO date")
	}
}

func TestDateJSON(t *testing.T) {
	type doc struct {
		Date Date `json:"date"`
	}

	raw, err := json.Marshal(doc{Date: NewDate(2026, time.August, 20)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `{"date":"2026-08-20"}` {
		t.Errorf("got %s", raw)
	}

	raw, err = json.Marshal(doc{})
	if err != nil {
		t.Fatalf("marshal zero: %v", err)
	}
	if string(raw) != `{"date":""}` {
		t.Errorf("zero date marshals as %s", raw)
	}

	var decoded doc
	if err := json.Unmarshal([]byte(`{"date":"2026-08-20"}`), &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !decoded.Date.Equal(NewDate(2026, time.August, 20).Time) {
		t.Errorf("decoded %v", decoded.Date)
	}

	if err := json.Unmarshal([]byte(`{"date":""}`), &decoded); err != nil {
		t.Fatalf("unmarshal empty: %v", err)
	}
	if !decoded.Date.IsZero() {
		t.Errorf("empty string decoded to %v", decoded.Date)
	}
}

func TestDaysUntil(t *testing.T) {
	start := NewDate(2026, time.August, 1)

	tests := []struct {
		name  string
		other Date
		want  int
	}{
		{"same day", start, 0},
		{"thirty days out", NewDate(2026, time.August, 31), 30},
		{"past", NewDate(2026, time.July, 30), -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := start.DaysUntil(tt.other); got != tt.want {
				t.Errorf("DaysUntil = %d, want %d", got, tt.want)
			}
		})
	}
}
