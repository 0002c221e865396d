package nlu

import (
	"context"
	"time"

	"taskbuddy/internal/router"
	"taskbuddy/internal/temporal"
)

// Interpret runs the full pipeline over one utterance. Every ambiguity
// degrades to a fallback value (no deadline, default ADD, minimally
// stripped description) rather than an error.
func (p *Pipeline) Interpret(ctx context.Context, utterance string, referenceTime time.Time) TaskIntent {
	tokens := p.analyzer.Analyze(utterance)
	candidates := p.temporal.Extract(utterance, referenceTime)

	out := p.router.Classify(ctx, utterance, tokens, len(candidates) > 0)
	intent := TaskIntent{
		Kind:       out.Intent,
		Confidence: out.Confidence,
	}

	switch out.Intent {
	case router.IntentAdd:
		selected := temporal.Select(candidates)
		intent.Description = extractDescription(utterance, selected, out.Intent)
		if selected != nil {
			intent.Deadline = selected.Resolved
		}
		intent.Difficulty = p.difficulty.Classify(intent.Description)

	case router.IntentComplete, router.IntentDelete:
		intent.Description = extractDescription(utterance, temporal.Select(candidates), out.Intent)

	case router.IntentQueryDue:
		if selected := temporal.Select(candidates); selected != nil {
			intent.DueScope = selected.Resolved
		}
	}

	p.l.Debugf(ctx, "nlu: %q -> %s (confidence %d, deadline %v)",
		utterance, intent.Kind, intent.Confidence, intent.Deadline)

	return intent
}
