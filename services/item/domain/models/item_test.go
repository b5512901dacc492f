package models

import (
	"testing"
	"time"
)

func TestItem_AgeDays(t *testing.T) {
	now := time.Date(2026, 6, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		createdAt time.Time
		want      int
	}{
		{"just created", now, 0},
		{"one second old", now.Add(-time.Second), 0},
		{"just under one day", now.Add(-24*time.Hour + time.Second), 0},
		{"exactly one day", now.Add(-24 * time.Hour), 1},
		{"four days and 23 hours", now.Add(-(4*24 + 23) * time.Hour), 4},
		{"exactly five days", now.Add(-5 * 24 * time.Hour), 5},
		{"five days minus one second", now.Add(-5*24*time.Hour + time.Second), 4},
		{"six days", now.Add(-6 * 24 * time.Hour), 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := &Item{ID: 1, Name: "Widget", CreatedAt: tt.createdAt}
			if got := item.AgeDays(now); got != tt.want {
				t.Fatalf("AgeDays: got %d, want %d", got, tt.want)
			}
		})
	}
}
