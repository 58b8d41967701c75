package event

import (
	"errors"
	"strings"
	"testing"
)

func validEvent() Event {
	return Event{
		ID:          "ev-001",
		Title:       "Tech Fest",
		Description: "An afternoon of demos and talks.",
		Date:        "2026-09-12",
		StartTime:   "13:00",
		EndTime:     "17:00",
		Location:    "Main Hall",
		Category:    "Technology",
	}
}

// TestValidate_Valid tests that a fully populated event passes.
func TestValidate_Valid(t *testing.T) {
	ev := validEvent()
	if err := ev.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

// TestValidate_RequiredFields tests each missing-field error.
func TestValidate_RequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Event)
		wantErr error
	}{
		{"empty title", func(e *Event) { e.Title = " " }, ErrEmptyTitle},
		{"empty date", func(e *Event) { e.Date = "" }, ErrEmptyDate},
		{"empty start time", func(e *Event) { e.StartTime = "" }, ErrEmptyStartTime},
		{"empty end time", func(e *Event) { e.EndTime = "" }, ErrEmptyEndTime},
		{"empty location", func(e *Event) { e.Location = "" }, ErrEmptyLocation},
		{"empty category", func(e *Event) { e.Category = "" }, ErrEmptyCategory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := validEvent()
			tt.mutate(&ev)
			if err := ev.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestValidate_TitleTooLong tests the title length bound.
func TestValidate_TitleTooLong(t *testing.T) {
	ev := validEvent()
	ev.Title = strings.Repeat("x", MaxTitleLength+1)
	if err := ev.Validate(); !errors.Is(err, ErrTitleTooLong) {
		t.Errorf("got %v, want %v", err, ErrTitleTooLong)
	}
}

// TestStatusLabel tests approval badge text.
func TestStatusLabel(t *testing.T) {
	ev := validEvent()
	if got := ev.StatusLabel(); got != "Pending Approval" {
		t.Errorf("got %q, want Pending Approval", got)
	}
	ev.IsApproved = true
	if got := ev.StatusLabel(); got != "Approved" {
		t.Errorf("got %q, want Approved", got)
	}
}
