package nlu

import (
	"context"
	"time"
)

// Interpreter turns raw utterance text into a structured task intent.
// Implementations must be total: any input string yields a well-formed
// TaskIntent, never an error.
type Interpreter interface {
	Interpret(ctx context.Context, utterance string, referenceTime time.Time) TaskIntent
}
