package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Directory fetches by category and outcome
	FeedFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_directory_fetches_total",
			Help: "Total number of candidate directory fetches",
		},
		[]string{"category", "result"}, // result: success/failure/malformed
	)

	// Refreshes answered from the category cache
	FeedCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_cache_hits_total",
			Help: "Total number of refreshes served from cache",
		},
		[]string{"category"},
	)

	// Swipe submissions by direction and outcome
	SwipeSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_swipe_submissions_total",
			Help: "Total number of swipe submissions",
		},
		[]string{"direction", "result"},
	)

	// Swipes recorded by the stub API
	StubSwipesRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stub_swipes_recorded_total",
			Help: "Total number of swipes recorded by the stub API",
		},
		[]string{"direction"},
	)
)
