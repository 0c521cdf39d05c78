package models

import (
	"errors"
	"fmt"
	"strings"
)

// Category is one of the fixed gender-filter partitions of the candidate feed
type Category int

const (
	CategoryAll Category = iota
	CategoryMale
	CategoryFemale
	CategoryNonBinary
)

// ErrUnknownCategory is returned when a filter value is not one of the four categories
var ErrUnknownCategory = errors.New("unknown category")

// Categories lists every category in display order
var Categories = []Category{CategoryAll, CategoryMale, CategoryFemale, CategoryNonBinary}

var categoryNames = map[Category]string{
	CategoryAll:       "All",
	CategoryMale:      "Male",
	CategoryFemale:    "Female",
	CategoryNonBinary: "Non-Binary",
}

// String returns the value sent as genderFilter
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Valid reports whether c is one of the four categories
func (c Category) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

// ParseCategory maps a filter value ("Female", "non-binary", ...) onto a Category
func ParseCategory(value string) (Category, error) {
	for c, name := range categoryNames {
		if strings.EqualFold(name, strings.TrimSpace(value)) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, value)
}

// MarshalText keeps categories readable in JSON and logs
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCategory, int(c))
	}
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Matches reports whether a candidate with the given gender belongs in this category
func (c Category) Matches(gender string) bool {
	if c == CategoryAll {
		return true
	}
	return strings.EqualFold(categoryNames[c], strings.TrimSpace(gender))
}
