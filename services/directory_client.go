package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"roomie_feed/models"
)

const maxFeedBody = 8 << 20

// ProfileDirectory returns the ordered candidates for one category
type ProfileDirectory interface {
	FetchCandidates(ctx context.Context, session models.Session, category models.Category) ([]models.Candidate, error)
}

// DirectoryClient talks to GET /profiles
type DirectoryClient struct {
	API     *APIClient
	Timeout time.Duration
}

var _ ProfileDirectory = (*DirectoryClient)(nil)

func NewDirectoryClient(api *APIClient) *DirectoryClient {
	return &DirectoryClient{API: api, Timeout: models.DefaultRequestTimeout}
}

// FetchCandidates always asks the server to leave out candidates the user already swiped on
func (dc *DirectoryClient) FetchCandidates(ctx context.Context, session models.Session, category models.Category) ([]models.Candidate, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("%w: %d", models.ErrUnknownCategory, int(category))
	}

	ctx, cancel := withTimeout(ctx, dc.Timeout)
	defer cancel()

	query := url.Values{}
	query.Set("userId", session.UserID)
	query.Set("genderFilter", category.String())
	query.Set("filterOutSwipedOn", "true")

	req, err := dc.API.newRequest(ctx, http.MethodGet, "/profiles", query, session.Token)
	if err != nil {
		return nil, err
	}

	resp, err := dc.API.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBody))
	if err != nil {
		return nil, fmt.Errorf("failed to read profiles response: %w", err)
	}

	candidates, err := DecodeCandidates(body)
	if err != nil {
		return nil, err
	}
	log.Printf("✅ Fetched %d %s candidates for %s", len(candidates), category, session.UserID)
	return candidates, nil
}

// DecodeCandidates parses a directory payload. Anything but a JSON array of
// objects carrying unique, non-empty ids is a *MalformedResponseError.
func DecodeCandidates(body []byte) ([]models.Candidate, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, &MalformedResponseError{Reason: "expected a JSON array"}
	}

	var candidates []models.Candidate
	if err := json.Unmarshal(trimmed, &candidates); err != nil {
		return nil, &MalformedResponseError{Reason: "cannot decode candidates", Err: err}
	}

	seen := make(map[string]struct{}, len(candidates))
	for i, c := range candidates {
		if c.ID == "" {
			return nil, &MalformedResponseError{Reason: fmt.Sprintf("candidate at index %d has no id", i)}
		}
		if _, dup := seen[c.ID]; dup {
			return nil, &MalformedResponseError{Reason: fmt.Sprintf("candidate %s listed twice", c.ID)}
		}
		seen[c.ID] = struct{}{}
	}
	if candidates == nil {
		candidates = []models.Candidate{}
	}
	return candidates, nil
}
