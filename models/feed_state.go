package models

// FeedState describes where one category's queue is in its lifecycle
type FeedState int

const (
	FeedUninitialized FeedState = iota // no fetch attempted yet
	FeedLoading                        // fetch in flight, cached queue still shown
	FeedReady                          // queue non-empty and within TTL
	FeedStale                          // beyond TTL or drained by swipes, next read refreshes
	FeedExhausted                      // last fetch returned no candidates
	FeedError                          // last fetch failed, prior queue retained
)

var feedStateNames = [...]string{"Uninitialized", "Loading", "Ready", "Stale", "Exhausted", "Error"}

func (s FeedState) String() string {
	if s < 0 || int(s) >= len(feedStateNames) {
		return "Unknown"
	}
	return feedStateNames[s]
}
