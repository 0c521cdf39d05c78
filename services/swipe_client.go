package services

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"roomie_feed/models"
)

// SwipeRecorder durably records a decision for a (user, candidate) pair
type SwipeRecorder interface {
	SubmitSwipe(ctx context.Context, session models.Session, decision models.SwipeDecision) error
}

// SwipeClient talks to POST /swipes/{direction}
type SwipeClient struct {
	API     *APIClient
	Timeout time.Duration
}

var _ SwipeRecorder = (*SwipeClient)(nil)

func NewSwipeClient(api *APIClient) *SwipeClient {
	return &SwipeClient{API: api, Timeout: models.DefaultRequestTimeout}
}

// SubmitSwipe sends the decision once. It never retries.
func (sc *SwipeClient) SubmitSwipe(ctx context.Context, session models.Session, decision models.SwipeDecision) error {
	if decision.Direction != models.SwipeLeft && decision.Direction != models.SwipeRight {
		return fmt.Errorf("unsupported swipe direction: %s", decision.Direction)
	}

	ctx, cancel := withTimeout(ctx, sc.Timeout)
	defer cancel()

	query := url.Values{}
	query.Set("userId", decision.SubjectUserID)
	query.Set("swipedOnUserId", decision.CandidateUserID)

	req, err := sc.API.newRequest(ctx, http.MethodPost, "/swipes/"+decision.Direction.String(), query, session.Token)
	if err != nil {
		return err
	}
	req.Header.Set("X-Request-ID", decision.ID)

	resp, err := sc.API.do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()

	log.Printf("✅ Recorded %s swipe %s -> %s", decision.Direction, decision.SubjectUserID, decision.CandidateUserID)
	return nil
}
