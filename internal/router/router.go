package router

import (
	"context"
	"strings"

	"taskbuddy/internal/analyzer"
)

// Classify determines the user's intent from an utterance. It is total:
// every input, including empty or non-language text, maps to exactly one
// intent. hasTemporalScope tells the router whether the utterance carries a
// temporal phrase, which separates QUERY_DUE from LIST.
func (r *RuleRouter) Classify(ctx context.Context, utterance string, tokens []analyzer.Token, hasTemporalScope bool) Output {
	text := strings.ToLower(strings.TrimSpace(utterance))
	if text == "" {
		return Output{Intent: IntentAdd, Confidence: confidenceWeak, Reasoning: "empty utterance, default add"}
	}

	for _, re := range completionPatterns {
		if re.MatchString(text) {
			return Output{Intent: IntentComplete, Confidence: confidenceStrong, Reasoning: "completion indicator"}
		}
	}

	for _, prefix := range deletionPrefixes {
		if strings.HasPrefix(text, prefix) {
			return Output{Intent: IntentDelete, Confidence: confidenceStrong, Reasoning: "deletion command"}
		}
	}
	if hasDeletionPredicate(tokens) {
		return Output{Intent: IntentDelete, Confidence: confidenceDefault, Reasoning: "deletion predicate with object"}
	}

	obligation := containsTaskIndicator(text)

	if !obligation {
		for _, re := range queryPatterns {
			if re.MatchString(text) {
				if hasTemporalScope {
					return Output{Intent: IntentQueryDue, Confidence: confidenceStrong, Reasoning: "query with temporal scope"}
				}
				return Output{Intent: IntentList, Confidence: confidenceStrong, Reasoning: "listing query"}
			}
		}

		for _, re := range trailingCompletionPatterns {
			if re.MatchString(text) {
				return Output{Intent: IntentComplete, Confidence: confidenceDefault, Reasoning: "trailing completion marker"}
			}
		}
	}

	if obligation {
		return Output{Intent: IntentAdd, Confidence: confidenceStrong, Reasoning: "obligation indicator"}
	}
	for _, prefix := range addPrefixes {
		if strings.HasPrefix(text, prefix) {
			return Output{Intent: IntentAdd, Confidence: confidenceStrong, Reasoning: "add command"}
		}
	}

	return Output{Intent: IntentAdd, Confidence: confidenceWeak, Reasoning: "no rule fired, default add"}
}

// containsTaskIndicator reports whether the text carries an obligation
// phrasing ("i need to", "gotta", ...).
func containsTaskIndicator(text string) bool {
	for _, indicator := range taskIndicators {
		if strings.Contains(text, indicator) {
			return true
		}
	}
	return false
}

// hasDeletionPredicate checks the annotated tokens for a removal verb
// governing a task-like object ("please cancel the dentist task").
func hasDeletionPredicate(tokens []analyzer.Token) bool {
	seenDeletion := false
	for _, tok := range tokens {
		if tok.Role == analyzer.RolePredicate && deletionLemmas[tok.Lemma] {
			seenDeletion = true
			continue
		}
		if seenDeletion && tok.Role == analyzer.RoleObject {
			return true
		}
	}
	return false
}
