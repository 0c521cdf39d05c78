package services

import (
	"context"
	"errors"
	"log"
	"time"

	"roomie_feed/models"

	"github.com/google/uuid"
)

// SwipeFailureReporter receives swipes that were removed locally but never
// reached the server. Reporting must not retry or re-queue the candidate.
type SwipeFailureReporter interface {
	ReportSwipeFailure(ctx context.Context, failure *SwipeSubmissionError)
}

// LogFailureReporter writes failures to the standard logger
type LogFailureReporter struct{}

func (LogFailureReporter) ReportSwipeFailure(_ context.Context, failure *SwipeSubmissionError) {
	d := failure.Decision
	log.Printf("⚠️ Swipe %s lost: %s %s -> %s (%s): %v",
		d.ID, d.Direction, d.SubjectUserID, d.CandidateUserID, d.Category, failure.Err)
}

// DynamoFailureReporter keeps an audit trail of lost swipes in DynamoDB
type DynamoFailureReporter struct {
	Dynamo *DynamoService
	Table  string
	Now    func() time.Time
}

func NewDynamoFailureReporter(dynamo *DynamoService, table string) *DynamoFailureReporter {
	if table == "" {
		table = models.SwipeFailuresTable
	}
	return &DynamoFailureReporter{Dynamo: dynamo, Table: table, Now: time.Now}
}

func (r *DynamoFailureReporter) ReportSwipeFailure(ctx context.Context, failure *SwipeSubmissionError) {
	record := NewSwipeFailureRecord(failure, r.Now())
	if err := r.Dynamo.PutItem(ctx, r.Table, record); err != nil {
		log.Printf("❌ Failed to store swipe failure %s: %v", record.FailureID, err)
		return
	}
	log.Printf("📝 Stored swipe failure %s for decision %s", record.FailureID, record.DecisionID)
}

// NewSwipeFailureRecord flattens a submission error into its audit row
func NewSwipeFailureRecord(failure *SwipeSubmissionError, reportedAt time.Time) models.SwipeFailure {
	d := failure.Decision
	errText := "unknown error"
	if failure.Err != nil {
		errText = failure.Err.Error()
	}
	if errors.Is(failure.Err, context.DeadlineExceeded) {
		errText = "timeout: " + errText
	}
	return models.SwipeFailure{
		FailureID:       uuid.NewString(),
		DecisionID:      d.ID,
		UserID:          d.SubjectUserID,
		CandidateUserID: d.CandidateUserID,
		Direction:       d.Direction.String(),
		Category:        d.Category.String(),
		StatusCode:      StatusCode(failure.Err),
		Error:           errText,
		SwipedAt:        d.CreatedAt.UTC().Format(time.RFC3339),
		ReportedAt:      reportedAt.UTC().Format(time.RFC3339),
	}
}

// FanoutReporter forwards each failure to every reporter in order
type FanoutReporter []SwipeFailureReporter

func (f FanoutReporter) ReportSwipeFailure(ctx context.Context, failure *SwipeSubmissionError) {
	for _, r := range f {
		if r != nil {
			r.ReportSwipeFailure(ctx, failure)
		}
	}
}
