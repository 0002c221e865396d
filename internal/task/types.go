package task

import (
	"time"

	"taskbuddy/internal/model"
)

// AddInput is the input for creating a single task from an interpreted
// utterance.
type AddInput struct {
	Description string
	Deadline    *time.Time
	Difficulty  string
	ChatID      int64
}

// MatchInput looks up stored tasks by description for COMPLETE/DELETE.
type MatchInput struct {
	Description string
}

// MatchOutput is the result of a completion or deletion attempt.
// When exactly one task matched it was acted on and Resolved holds it;
// when several matched, Candidates holds them for disambiguation and
// nothing was changed yet.
type MatchOutput struct {
	Resolved   *model.Task
	Candidates []model.Task
}

// ListOutput is a deadline-ordered view of pending tasks.
type ListOutput struct {
	Tasks []model.Task
}
