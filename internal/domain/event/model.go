package event

import (
	"errors"
	"strings"
)

// Max length constants for user-editable fields.
const (
	MaxTitleLength       = 140
	MaxDescriptionLength = 5000
	MaxLocationLength    = 200
)

// Domain errors
var (
	ErrEmptyTitle     = errors.New("event title is required")
	ErrEmptyDate      = errors.New("event date is required")
	ErrEmptyStartTime = errors.New("start time is required")
	ErrEmptyEndTime   = errors.New("end time is required")
	ErrEmptyLocation  = errors.New("location is required")
	ErrEmptyCategory  = errors.New("category is required")
	ErrTitleTooLong   = errors.New("event title cannot exceed 140 characters")
)

// Event is the client-side copy of a backend event. It is never
// authoritative: IsApproved reflects the last fetch, not current server
// truth.
type Event struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Location    string `json:"location"`
	Category    string `json:"category"`
	EventImage  string `json:"eventImage"`
	IsApproved  bool   `json:"isApproved"`
	OrganizerID string `json:"organizer"`
}

// Validate runs the required-field checks a panel performs before
// submitting a create or update.
// PRE: Event struct is populated from a form
// POST: Returns nil if submittable, error otherwise
func (e *Event) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return ErrEmptyTitle
	}
	if len(e.Title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	if strings.TrimSpace(e.Date) == "" {
		return ErrEmptyDate
	}
	if strings.TrimSpace(e.StartTime) == "" {
		return ErrEmptyStartTime
	}
	if strings.TrimSpace(e.EndTime) == "" {
		return ErrEmptyEndTime
	}
	if strings.TrimSpace(e.Location) == "" {
		return ErrEmptyLocation
	}
	if strings.TrimSpace(e.Category) == "" {
		return ErrEmptyCategory
	}
	if len(e.Description) > MaxDescriptionLength {
		return errors.New("description cannot exceed 5000 characters")
	}
	return nil
}

// StatusLabel returns the approval badge text for lists.
// INVARIANT: Event fields are not mutated
func (e *Event) StatusLabel() string {
	if e.IsApproved {
		return "Approved"
	}
	return "Pending Approval"
}
