package router_test

import (
	"context"
	"testing"

	"taskbuddy/internal/analyzer"
	"taskbuddy/internal/router"
)

func TestClassify(t *testing.T) {
	r := router.New()
	a := analyzer.Default()
	ctx := context.Background()

	tests := []struct {
		name        string
		utterance   string
		hasTemporal bool
		want        router.Intent
	}{
		{name: "Obligation add", utterance: "I need to finish the report by tomorrow at 5pm", hasTemporal: true, want: router.IntentAdd},
		{name: "Reminder add", utterance: "Remind me to study for the math test next week", hasTemporal: true, want: router.IntentAdd},
		{name: "Explicit add command", utterance: "add buy groceries", want: router.IntentAdd},
		{name: "List", utterance: "Show me all my tasks", want: router.IntentList},
		{name: "List variant", utterance: "list tasks", want: router.IntentList},
		{name: "Query due with scope", utterance: "What's due this week?", hasTemporal: true, want: router.IntentQueryDue},
		{name: "Query due today", utterance: "what is due today", hasTemporal: true, want: router.IntentQueryDue},
		{name: "Complete perfective", utterance: "I've completed the python assignment", want: router.IntentComplete},
		{name: "Complete finished", utterance: "I finished the essay", want: router.IntentComplete},
		{name: "Complete trailing", utterance: "the report is done", want: router.IntentComplete},
		{name: "Obligation beats trailing done", utterance: "I need to get the laundry is done", want: router.IntentAdd},
		{name: "Delete command", utterance: "Delete math homework", want: router.IntentDelete},
		{name: "Remove command", utterance: "remove the dentist appointment", want: router.IntentDelete},
		{name: "Ambiguous defaults to add", utterance: "the quarterly numbers", want: router.IntentAdd},
		{name: "Empty defaults to add", utterance: "", want: router.IntentAdd},
		{name: "Punctuation defaults to add", utterance: "?!?!", want: router.IntentAdd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := a.Analyze(tt.utterance)
			got := r.Classify(ctx, tt.utterance, tokens, tt.hasTemporal)
			if got.Intent != tt.want {
				t.Errorf("Classify(%q) = %s (%s), want %s", tt.utterance, got.Intent, got.Reasoning, tt.want)
			}
			if got.Confidence <= 0 || got.Confidence > 100 {
				t.Errorf("Classify(%q) confidence = %d, want 1..100", tt.utterance, got.Confidence)
			}
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	r := router.New()
	a := analyzer.Default()
	ctx := context.Background()

	utterance := "I need to finish the report by tomorrow"
	tokens := a.Analyze(utterance)

	first := r.Classify(ctx, utterance, tokens, true)
	for i := 0; i < 10; i++ {
		if got := r.Classify(ctx, utterance, tokens, true); got != first {
			t.Fatalf("classification not deterministic: %+v vs %+v", got, first)
		}
	}
}
