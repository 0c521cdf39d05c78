package models

import "time"

// ✅ Feed defaults
const (
	DefaultFeedTTL        = 10 * time.Minute // 600,000 ms
	DefaultRequestTimeout = 15 * time.Second
)

// ✅ Table names (overridable through config)
const (
	CandidatesTable    = "Candidates"
	SwipesTable        = "Swipes"
	SwipeFailuresTable = "SwipeFailures"
)

// ✅ Socket events
const (
	EventNewMatch = "newMatch"
	EventJoin     = "join"
)
