package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SwipeDirection is the user's decision on a single candidate
type SwipeDirection int

const (
	SwipeLeft  SwipeDirection = iota // pass
	SwipeRight                       // interested
)

// String returns the path segment used by POST /swipes/{direction}
func (d SwipeDirection) String() string {
	switch d {
	case SwipeLeft:
		return "left"
	case SwipeRight:
		return "right"
	default:
		return fmt.Sprintf("SwipeDirection(%d)", int(d))
	}
}

// MarshalText keeps directions readable in JSON and logs
func (d SwipeDirection) MarshalText() ([]byte, error) {
	if d != SwipeLeft && d != SwipeRight {
		return nil, fmt.Errorf("unsupported swipe direction: %d", int(d))
	}
	return []byte(d.String()), nil
}

func (d *SwipeDirection) UnmarshalText(text []byte) error {
	parsed, err := ParseSwipeDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func ParseSwipeDirection(value string) (SwipeDirection, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "left":
		return SwipeLeft, nil
	case "right":
		return SwipeRight, nil
	default:
		return 0, fmt.Errorf("unsupported swipe direction: %q", value)
	}
}

// Session carries the authenticated user's identity. The token is opaque.
type Session struct {
	UserID string
	Token  string
}

// SwipeDecision is created when the gesture completes and submitted at most once
type SwipeDecision struct {
	ID              string         `json:"id"` // correlation id for logs and failure records
	SubjectUserID   string         `json:"subjectUserId"`
	CandidateUserID string         `json:"candidateUserId"`
	Direction       SwipeDirection `json:"direction"`
	Category        Category       `json:"category"`
	CreatedAt       time.Time      `json:"createdAt"`
}

// NewSwipeDecision stamps a decision with a fresh id
func NewSwipeDecision(subjectUserID, candidateUserID string, direction SwipeDirection, category Category, now time.Time) SwipeDecision {
	return SwipeDecision{
		ID:              uuid.NewString(),
		SubjectUserID:   subjectUserID,
		CandidateUserID: candidateUserID,
		Direction:       direction,
		Category:        category,
		CreatedAt:       now,
	}
}

// Swipe is the record the stub API keeps for a recorded decision
type Swipe struct {
	UserID         string `dynamodbav:"userId" json:"userId"`                 // ✅ Partition Key
	SwipedOnUserID string `dynamodbav:"swipedOnUserId" json:"swipedOnUserId"` // ✅ Sort Key
	Direction      string `dynamodbav:"direction" json:"direction"`           // left, right
	CreatedAt      string `dynamodbav:"createdAt" json:"createdAt"`
}

// SwipeFailure is the audit record written when a swipe never reached the server
type SwipeFailure struct {
	FailureID       string `dynamodbav:"failureId" json:"failureId"` // ✅ Partition Key
	DecisionID      string `dynamodbav:"decisionId" json:"decisionId"`
	UserID          string `dynamodbav:"userId" json:"userId"`
	CandidateUserID string `dynamodbav:"candidateUserId" json:"candidateUserId"`
	Direction       string `dynamodbav:"direction" json:"direction"`
	Category        string `dynamodbav:"category" json:"category"`
	StatusCode      int    `dynamodbav:"statusCode,omitempty" json:"statusCode,omitempty"`
	Error           string `dynamodbav:"error" json:"error"`
	SwipedAt        string `dynamodbav:"swipedAt" json:"swipedAt"`
	ReportedAt      string `dynamodbav:"reportedAt" json:"reportedAt"`
}

// MatchEvent is pushed to both users when a right swipe is reciprocated
type MatchEvent struct {
	MatchID   string `json:"matchId"`
	UserID    string `json:"userId"`
	MatchedID string `json:"matchedUserId"`
	CreatedAt string `json:"createdAt"`
}
