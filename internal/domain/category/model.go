package category

import (
	"errors"
	"strings"
)

// MaxNameLength bounds user-supplied category names.
const MaxNameLength = 60

var (
	ErrEmptyName   = errors.New("category name is required")
	ErrNameTooLong = errors.New("category name cannot exceed 60 characters")
)

// Category is read-mostly reference data used to populate event selectors.
type Category struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// Validate checks the Category before a create or rename is submitted.
func (c *Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	if len(c.Name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}
