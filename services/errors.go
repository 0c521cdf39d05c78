package services

import (
	"errors"
	"fmt"

	"roomie_feed/models"
)

// APIError is returned when the remote API answers with a non-2xx status
type APIError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("api returned %s", e.Status)
	}
	return fmt.Sprintf("api returned %s: %s", e.Status, e.Body)
}

// MalformedResponseError means the directory answered 2xx but not with a candidate array
type MalformedResponseError struct {
	Reason string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed directory response: %s: %v", e.Reason, e.Err)
	}
	return "malformed directory response: " + e.Reason
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// FetchError is surfaced by a failed refresh. The category's cache is left untouched.
type FetchError struct {
	Category models.Category
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s candidates: %v", e.Category, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Malformed reports whether the fetch failed on the payload shape rather than transport
func (e *FetchError) Malformed() bool {
	var malformed *MalformedResponseError
	return errors.As(e.Err, &malformed)
}

// SwipeSubmissionError is reported after the local queue mutation already happened
type SwipeSubmissionError struct {
	Decision models.SwipeDecision
	Err      error
}

func (e *SwipeSubmissionError) Error() string {
	return fmt.Sprintf("failed to record %s swipe on %s: %v", e.Decision.Direction, e.Decision.CandidateUserID, e.Err)
}

func (e *SwipeSubmissionError) Unwrap() error { return e.Err }

// StatusCode returns the HTTP status behind err, or 0 when there is none
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
