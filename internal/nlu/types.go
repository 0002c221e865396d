package nlu

import (
	"time"

	"taskbuddy/internal/difficulty"
	"taskbuddy/internal/router"
)

// TaskIntent is the structured interpretation of one utterance. It is a
// pure value produced fresh per call with no back-reference to the input.
//
// Invariants: Kind is always set; Deadline is set only when Kind == ADD and
// a temporal expression resolved; Difficulty is set only when Kind == ADD;
// Description is non-empty for ADD/COMPLETE/DELETE and empty otherwise.
type TaskIntent struct {
	Kind        router.Intent
	Description string
	Deadline    *time.Time
	Difficulty  difficulty.Level
	Confidence  int // classification confidence, 0-100

	// DueScope is the end of the temporal scope of a QUERY_DUE utterance
	// ("this week" -> end of week). Nil for every other kind.
	DueScope *time.Time
}
