package router

import (
	"context"

	"taskbuddy/internal/analyzer"
)

// Router is the interface for intent classification.
type Router interface {
	Classify(ctx context.Context, utterance string, tokens []analyzer.Token, hasTemporalScope bool) Output
}

// RuleRouter classifies user intent with lexical/structural rule tables.
// Stateless and deterministic; safe for concurrent use.
type RuleRouter struct{}

var _ Router = (*RuleRouter)(nil)

// New creates a new RuleRouter.
func New() *RuleRouter {
	return &RuleRouter{}
}
