package controllers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"roomie_feed/models"
	"roomie_feed/services"

	"golang.org/x/sync/singleflight"
)

// PictureResolver turns a stored picture reference into a displayable URL
type PictureResolver interface {
	ResolveURL(ctx context.Context, ref string) (string, error)
}

// FeedConfig wires a ProfileFeedController. Directory and Swipes are required.
type FeedConfig struct {
	Session   models.Session
	Directory services.ProfileDirectory
	Swipes    services.SwipeRecorder
	Reporter  services.SwipeFailureReporter // defaults to services.LogFailureReporter
	Pictures  PictureResolver               // optional
	TTL       time.Duration                 // defaults to models.DefaultFeedTTL
	Timeout   time.Duration                 // per remote call, defaults to models.DefaultRequestTimeout
	Now       func() time.Time
}

// ProfileFeedController owns the candidate queue of every category for one
// authenticated session and mediates all swipes on them.
//
// Each category has its own lock; nothing here locks across categories.
// Refreshes of the same category are coalesced into one in-flight fetch, and
// a fetch always lands in the cache even when its caller stopped waiting.
type ProfileFeedController struct {
	session   models.Session
	directory services.ProfileDirectory
	swipes    services.SwipeRecorder
	reporter  services.SwipeFailureReporter
	pictures  PictureResolver
	ttl       time.Duration
	timeout   time.Duration
	now       func() time.Time

	slots map[models.Category]*categorySlot

	// candidates swiped during this session, never let back into a queue
	swipedMu sync.Mutex
	swiped   map[string]struct{}

	fetches singleflight.Group
	pending sync.WaitGroup
}

// NewProfileFeedController creates a controller with an empty cache for every category
func NewProfileFeedController(cfg FeedConfig) *ProfileFeedController {
	fc := &ProfileFeedController{
		session:   cfg.Session,
		directory: cfg.Directory,
		swipes:    cfg.Swipes,
		reporter:  cfg.Reporter,
		pictures:  cfg.Pictures,
		ttl:       cfg.TTL,
		timeout:   cfg.Timeout,
		now:       cfg.Now,
		slots:     make(map[models.Category]*categorySlot, len(models.Categories)),
		swiped:    make(map[string]struct{}),
	}
	if fc.reporter == nil {
		fc.reporter = services.LogFailureReporter{}
	}
	if fc.ttl <= 0 {
		fc.ttl = models.DefaultFeedTTL
	}
	if fc.timeout <= 0 {
		fc.timeout = models.DefaultRequestTimeout
	}
	if fc.now == nil {
		fc.now = time.Now
	}
	for _, c := range models.Categories {
		fc.slots[c] = &categorySlot{}
	}
	return fc
}

func (fc *ProfileFeedController) slot(category models.Category) (*categorySlot, error) {
	slot, ok := fc.slots[category]
	if !ok {
		return nil, fmt.Errorf("%w: %d", models.ErrUnknownCategory, int(category))
	}
	return slot, nil
}

// GetActiveQueue returns what can be shown for category right now. A category
// that was never fetched, has gone stale or was drained by swipes is refreshed
// in the background; until that lands the caller gets the cached queue,
// possibly empty. A category in FeedError is not retried here and needs an
// explicit Refresh.
func (fc *ProfileFeedController) GetActiveQueue(category models.Category) []models.Candidate {
	slot, err := fc.slot(category)
	if err != nil {
		log.Printf("❌ GetActiveQueue: %v", err)
		return []models.Candidate{}
	}

	queue, state := slot.snapshot(fc.now(), fc.ttl)
	if state == models.FeedUninitialized || state == models.FeedStale {
		fc.refreshInBackground(category)
	}
	return queue
}

func (fc *ProfileFeedController) refreshInBackground(category models.Category) {
	fc.pending.Add(1)
	go func() {
		defer fc.pending.Done()
		if _, err := fc.Refresh(context.Background(), category, false); err != nil {
			log.Printf("⚠️ Background refresh of %s failed: %v", category, err)
		}
	}()
}

// Refresh returns the category's queue, fetching it unless force is false and
// the cache is within TTL. On failure the cache is left as it was and a
// *services.FetchError is returned.
func (fc *ProfileFeedController) Refresh(ctx context.Context, category models.Category, force bool) ([]models.Candidate, error) {
	slot, err := fc.slot(category)
	if err != nil {
		return nil, &services.FetchError{Category: category, Err: err}
	}

	if !force {
		if queue, ok := slot.cached(fc.now(), fc.ttl); ok {
			services.FeedCacheHits.WithLabelValues(category.String()).Inc()
			return queue, nil
		}
	}

	result := fc.startFetch(category, slot)
	select {
	case res := <-result:
		if res.Err != nil {
			return nil, res.Err
		}
		return copyQueue(res.Val.([]models.Candidate)), nil
	case <-ctx.Done():
		// the fetch keeps running and still updates the cache
		return nil, &services.FetchError{Category: category, Err: ctx.Err()}
	}
}

// startFetch joins the in-flight fetch for category or starts one
func (fc *ProfileFeedController) startFetch(category models.Category, slot *categorySlot) <-chan singleflight.Result {
	fc.pending.Add(1)
	shared := fc.fetches.DoChan(category.String(), func() (interface{}, error) {
		return fc.fetch(category, slot)
	})

	out := make(chan singleflight.Result, 1)
	go func() {
		defer fc.pending.Done()
		out <- <-shared
	}()
	return out
}

func (fc *ProfileFeedController) fetch(category models.Category, slot *categorySlot) (interface{}, error) {
	log.Printf("🔄 Fetching %s candidates for %s", category, fc.session.UserID)
	slot.beginLoading()

	ctx, cancel := context.WithTimeout(context.Background(), fc.timeout)
	defer cancel()

	candidates, err := fc.directory.FetchCandidates(ctx, fc.session, category)
	if err != nil {
		slot.fail()
		fetchErr := &services.FetchError{Category: category, Err: err}
		if fetchErr.Malformed() {
			services.FeedFetches.WithLabelValues(category.String(), "malformed").Inc()
			log.Printf("❌ Directory sent a malformed %s feed: %v", category, err)
		} else {
			services.FeedFetches.WithLabelValues(category.String(), "failure").Inc()
			log.Printf("❌ Failed to fetch %s feed: %v", category, err)
		}
		return nil, fetchErr
	}

	queue := slot.replace(candidates, fc.notSwiped, fc.now())
	services.FeedFetches.WithLabelValues(category.String(), "success").Inc()
	if dropped := len(candidates) - len(queue); dropped > 0 {
		log.Printf("ℹ️ Dropped %d already swiped candidates from %s feed", dropped, category)
	}
	log.Printf("✅ %s feed now holds %d candidates", category, len(queue))
	return queue, nil
}

// RecordSwipe removes candidateID from the category's queue at once and
// submits the decision in the background. The submission is attempted once;
// a failure goes to the reporter and the candidate stays removed. Returns
// false, and sends nothing, when the candidate is not in the queue.
func (fc *ProfileFeedController) RecordSwipe(category models.Category, candidateID string, direction models.SwipeDirection) bool {
	slot, err := fc.slot(category)
	if err != nil {
		log.Printf("❌ RecordSwipe: %v", err)
		return false
	}
	if direction != models.SwipeLeft && direction != models.SwipeRight {
		log.Printf("❌ RecordSwipe: unsupported direction %s", direction)
		return false
	}

	removed := slot.remove(candidateID, func() { fc.markSwiped(candidateID) })
	if !removed {
		log.Printf("ℹ️ %s is not in the %s queue, ignoring swipe", candidateID, category)
		return false
	}

	decision := models.NewSwipeDecision(fc.session.UserID, candidateID, direction, category, fc.now())
	fc.pending.Add(1)
	go fc.submitSwipe(decision)
	return true
}

func (fc *ProfileFeedController) submitSwipe(decision models.SwipeDecision) {
	defer fc.pending.Done()

	ctx, cancel := context.WithTimeout(context.Background(), fc.timeout)
	err := fc.swipes.SubmitSwipe(ctx, fc.session, decision)
	cancel()
	if err == nil {
		services.SwipeSubmissions.WithLabelValues(decision.Direction.String(), "success").Inc()
		return
	}

	services.SwipeSubmissions.WithLabelValues(decision.Direction.String(), "failure").Inc()
	if errors.Is(err, context.DeadlineExceeded) {
		log.Printf("⚠️ Swipe %s timed out after %s", decision.ID, fc.timeout)
	}

	reportCtx, cancelReport := context.WithTimeout(context.Background(), fc.timeout)
	defer cancelReport()
	fc.reporter.ReportSwipeFailure(reportCtx, &services.SwipeSubmissionError{Decision: decision, Err: err})
}

func (fc *ProfileFeedController) markSwiped(id string) {
	fc.swipedMu.Lock()
	fc.swiped[id] = struct{}{}
	fc.swipedMu.Unlock()
}

func (fc *ProfileFeedController) notSwiped(id string) bool {
	fc.swipedMu.Lock()
	defer fc.swipedMu.Unlock()
	_, ok := fc.swiped[id]
	return !ok
}

// IsExhausted reports whether the queue is empty because the last successful
// refresh found nobody, as opposed to still loading or drained by swipes.
func (fc *ProfileFeedController) IsExhausted(category models.Category) bool {
	slot, err := fc.slot(category)
	if err != nil {
		return false
	}
	return slot.exhausted()
}

// State reports the category's lifecycle state
func (fc *ProfileFeedController) State(category models.Category) models.FeedState {
	slot, err := fc.slot(category)
	if err != nil {
		return models.FeedUninitialized
	}
	_, state := slot.snapshot(fc.now(), fc.ttl)
	return state
}

// PictureURL returns a displayable URL for the candidate's profile picture
func (fc *ProfileFeedController) PictureURL(ctx context.Context, candidate models.Candidate) (string, error) {
	ref := candidate.PictureRef()
	if fc.pictures == nil || ref == "" {
		return ref, nil
	}
	return fc.pictures.ResolveURL(ctx, ref)
}

// Wait blocks until every background refresh and swipe submission has finished
func (fc *ProfileFeedController) Wait() {
	fc.pending.Wait()
}
