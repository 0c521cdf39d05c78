package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"sort"
	"sync"
	"time"

	"roomie_feed/models"
	"roomie_feed/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ErrCandidateNotFound is returned when a swipe targets an unknown profile
var ErrCandidateNotFound = errors.New("candidate not found")

// CandidateStore backs the stub directory and swipe endpoints
type CandidateStore interface {
	ListCandidates(ctx context.Context, userID string, category models.Category, excludeSwiped bool) ([]models.Candidate, error)
	// RecordSwipe stores the swipe and reports whether it completed a mutual right swipe
	RecordSwipe(ctx context.Context, swipe models.Swipe) (bool, error)
}

// MemoryCandidateStore keeps everything in process, in insertion order
type MemoryCandidateStore struct {
	mu         sync.RWMutex
	candidates []models.Candidate
	swipes     map[string]map[string]string // userId -> swipedOnUserId -> direction
}

var _ CandidateStore = (*MemoryCandidateStore)(nil)

func NewMemoryCandidateStore(candidates ...models.Candidate) *MemoryCandidateStore {
	return &MemoryCandidateStore{
		candidates: append([]models.Candidate(nil), candidates...),
		swipes:     make(map[string]map[string]string),
	}
}

// AddCandidate appends a profile to the end of every feed it matches
func (s *MemoryCandidateStore) AddCandidate(c models.Candidate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.candidates = append(s.candidates, c)
}

func (s *MemoryCandidateStore) ListCandidates(_ context.Context, userID string, category models.Category, excludeSwiped bool) ([]models.Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	swiped := s.swipes[userID]
	result := []models.Candidate{}
	for _, c := range s.candidates {
		if c.ID == userID || !category.Matches(c.Gender) {
			continue
		}
		if _, done := swiped[c.ID]; excludeSwiped && done {
			continue
		}
		result = append(result, c)
	}
	return result, nil
}

func (s *MemoryCandidateStore) RecordSwipe(_ context.Context, swipe models.Swipe) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.knownLocked(swipe.SwipedOnUserID) {
		return false, fmt.Errorf("%w: %s", ErrCandidateNotFound, swipe.SwipedOnUserID)
	}
	if s.swipes[swipe.UserID] == nil {
		s.swipes[swipe.UserID] = make(map[string]string)
	}
	s.swipes[swipe.UserID][swipe.SwipedOnUserID] = swipe.Direction

	reverse := s.swipes[swipe.SwipedOnUserID][swipe.UserID]
	return swipe.Direction == "right" && reverse == "right", nil
}

func (s *MemoryCandidateStore) knownLocked(id string) bool {
	for _, c := range s.candidates {
		if c.ID == id {
			return true
		}
	}
	return false
}

// DynamoCandidateStore reads profiles from the Candidates table and keeps
// swipes in the Swipes table (PK userId, SK swipedOnUserId)
type DynamoCandidateStore struct {
	Dynamo          *DynamoService
	CandidatesTable string
	SwipesTable     string
}

var _ CandidateStore = (*DynamoCandidateStore)(nil)

func NewDynamoCandidateStore(dynamo *DynamoService, candidatesTable, swipesTable string) *DynamoCandidateStore {
	if candidatesTable == "" {
		candidatesTable = models.CandidatesTable
	}
	if swipesTable == "" {
		swipesTable = models.SwipesTable
	}
	return &DynamoCandidateStore{Dynamo: dynamo, CandidatesTable: candidatesTable, SwipesTable: swipesTable}
}

func (s *DynamoCandidateStore) ListCandidates(ctx context.Context, userID string, category models.Category, excludeSwiped bool) ([]models.Candidate, error) {
	var swiped map[string]struct{}
	if excludeSwiped {
		var err error
		if swiped, err = s.swipedBy(ctx, userID); err != nil {
			return nil, err
		}
	}

	matchFields := map[string]string{}
	if category != models.CategoryAll {
		matchFields["gender"] = category.String()
	}

	var candidates []models.Candidate
	err := s.Dynamo.ScanWithFilter(ctx, s.CandidatesTable, matchFields, func(item map[string]types.AttributeValue) bool {
		id := utils.ExtractString(item, "id")
		if id == "" || id == userID {
			return false
		}
		_, done := swiped[id]
		return !done
	}, &candidates)
	if err != nil {
		log.Printf("❌ Error scanning candidates: %v", err)
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}

	// Scan order is arbitrary, feeds are served by id
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].ID < candidates[j].ID })
	if candidates == nil {
		candidates = []models.Candidate{}
	}
	return candidates, nil
}

func (s *DynamoCandidateStore) swipedBy(ctx context.Context, userID string) (map[string]struct{}, error) {
	items, err := s.Dynamo.QueryItems(ctx, s.SwipesTable, "userId = :userId",
		map[string]types.AttributeValue{":userId": &types.AttributeValueMemberS{Value: userID}}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch swipes: %w", err)
	}

	var swipes []models.Swipe
	if err := attributevalue.UnmarshalListOfMaps(items, &swipes); err != nil {
		return nil, fmt.Errorf("failed to process swipes: %w", err)
	}
	swiped := make(map[string]struct{}, len(swipes))
	for _, sw := range swipes {
		swiped[sw.SwipedOnUserID] = struct{}{}
	}
	return swiped, nil
}

func (s *DynamoCandidateStore) RecordSwipe(ctx context.Context, swipe models.Swipe) (bool, error) {
	_, err := s.Dynamo.GetItem(ctx, s.CandidatesTable, map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: swipe.SwipedOnUserID},
	})
	if errors.Is(err, ErrItemNotFound) {
		return false, fmt.Errorf("%w: %s", ErrCandidateNotFound, swipe.SwipedOnUserID)
	}
	if err != nil {
		return false, err
	}

	if swipe.CreatedAt == "" {
		swipe.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	if err := s.Dynamo.PutItem(ctx, s.SwipesTable, swipe); err != nil {
		return false, fmt.Errorf("failed to record swipe: %w", err)
	}
	if swipe.Direction != "right" {
		return false, nil
	}

	item, err := s.Dynamo.GetItem(ctx, s.SwipesTable, map[string]types.AttributeValue{
		"userId":         &types.AttributeValueMemberS{Value: swipe.SwipedOnUserID},
		"swipedOnUserId": &types.AttributeValueMemberS{Value: swipe.UserID},
	})
	if errors.Is(err, ErrItemNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check mutual swipe: %w", err)
	}

	var reverse models.Swipe
	if err := attributevalue.UnmarshalMap(item, &reverse); err != nil {
		return false, fmt.Errorf("failed to unmarshal swipe: %w", err)
	}
	return reverse.Direction == "right", nil
}

// LoadCandidatesFile reads a JSON array of candidates, as served by GET /profiles
func LoadCandidatesFile(path string) ([]models.Candidate, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return DecodeCandidates(body)
}
