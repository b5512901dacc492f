package models

import (
	"fmt"
	"strings"
)

// ItemName is a value object representing a valid item name.
// Validation trims surrounding whitespace only to decide validity; the
// original untrimmed value is what gets stored, so "  Widget " round-trips
// exactly as submitted.
type ItemName string

// NewItemName constructs a valid ItemName or returns an error if the trimmed
// form is empty.
func NewItemName(s string) (ItemName, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("item name must not be empty or only whitespace")
	}
	return ItemName(s), nil
}

// String returns the underlying string value.
func (n ItemName) String() string {
	return string(n)
}
