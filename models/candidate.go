package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Candidate is one profile returned by the directory service
type Candidate struct {
	ID         string    `dynamodbav:"id" json:"id"`                                     // ✅ Partition Key
	Name       string    `dynamodbav:"name,omitempty" json:"name,omitempty"`             // Display name
	Age        FlexInt   `dynamodbav:"age,omitempty" json:"age,omitempty"`               // Age in years
	Gender     string    `dynamodbav:"gender,omitempty" json:"gender,omitempty"`         // Matched against the category filter
	University string    `dynamodbav:"university,omitempty" json:"university,omitempty"` // Academic fields
	Major      string    `dynamodbav:"major,omitempty" json:"major,omitempty"`
	Year       string    `dynamodbav:"year,omitempty" json:"year,omitempty"`
	Residence  string    `dynamodbav:"residence,omitempty" json:"residence,omitempty"` // Dorm or neighbourhood
	Bio        string    `dynamodbav:"bio,omitempty" json:"bio,omitempty"`
	Hobbies    []string  `dynamodbav:"hobbies,omitempty" json:"hobbies,omitempty"` // Ordered, duplicates kept as sent
	Lifestyle  Lifestyle `dynamodbav:"lifestyle,omitempty" json:"lifestyle,omitempty"`
	ProfilePic *string   `dynamodbav:"profilePic,omitempty" json:"profilePic,omitempty"` // Absolute URL or S3 key
}

// Lifestyle holds the roommate preference answers. Every field is optional.
type Lifestyle struct {
	SleepSchedule Preference `dynamodbav:"sleepSchedule,omitempty" json:"sleepSchedule,omitempty"`
	Cleanliness   Preference `dynamodbav:"cleanliness,omitempty" json:"cleanliness,omitempty"`
	NoiseLevel    Preference `dynamodbav:"noiseLevel,omitempty" json:"noiseLevel,omitempty"`
	Guests        Preference `dynamodbav:"guests,omitempty" json:"guests,omitempty"`
	Smoking       Preference `dynamodbav:"smoking,omitempty" json:"smoking,omitempty"`
	Drinking      Preference `dynamodbav:"drinking,omitempty" json:"drinking,omitempty"`
	Pets          Preference `dynamodbav:"pets,omitempty" json:"pets,omitempty"`
	StudyHabits   Preference `dynamodbav:"studyHabits,omitempty" json:"studyHabits,omitempty"`
}

// Preference is an untyped answer kept as text. The server sends strings,
// numbers or booleans depending on the question, or nothing at all.
type Preference string

func (p *Preference) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*p = ""
	case string:
		*p = Preference(v)
	case bool:
		*p = Preference(strconv.FormatBool(v))
	case float64:
		*p = Preference(strconv.FormatFloat(v, 'f', -1, 64))
	default:
		// objects and arrays are kept verbatim
		*p = Preference(data)
	}
	return nil
}

// FlexInt is a whole number the server may send as a number or a numeric
// string. Anything else decodes as 0 instead of failing the whole feed.
type FlexInt int

func (n *FlexInt) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*n = 0
	switch v := raw.(type) {
	case float64:
		*n = FlexInt(v)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			*n = FlexInt(f)
		}
	}
	return nil
}

// Set reports whether the candidate answered this question
func (p Preference) Set() bool {
	return p != ""
}

// PictureRef returns the stored profile picture reference, empty when absent
func (c Candidate) PictureRef() string {
	if c.ProfilePic == nil {
		return ""
	}
	return *c.ProfilePic
}
