package nlu

import (
	"regexp"
	"strings"

	"taskbuddy/internal/router"
	"taskbuddy/internal/temporal"
)

var (
	reLeadingAddMarker = regexp.MustCompile(`^(?:please\s+)?(?:i\s+gotta|i\s+have\s+to|i\s+need\s+to|i\s+must|i\s+should|i\s+ought\s+to|i\s+will|i\s+wanna|i\s+plan\s+to|i\s+intend\s+to|i'?m\s+going\s+to|i'?ll|i'?d\s+like\s+to|gotta|need\s+to|have\s+to|ought\s+to|wanna|gonna|remind\s+me\s+to|don'?t\s+forget\s+to|add\s+task:?|add:?)\s+`)

	reLeadingCompleteMarker = regexp.MustCompile(`^(?:i\s+have\s+completed|i'?ve\s+completed|i\s+have\s+done|i'?ve\s+done|i\s+finished|i'?ve\s+finished|i\s+completed|i'?ve\s+accomplished|i\s+accomplished|i\s+managed\s+to(?:\s+finish)?|i'?ve\s+managed\s+to(?:\s+finish)?|i\s+wrapped\s+up|i'?ve\s+wrapped\s+up|i\s+handled|i'?ve\s+handled)\s+`)

	reLeadingDeleteMarker = regexp.MustCompile(`^(?:please\s+)?(?:delete|remove|cancel|drop)\s+(?:the\s+task\s+)?`)

	reTrailingCompletion = regexp.MustCompile(`\s+(?:is\s+)?(?:done|completed|finished)\s*$`)
	reTrailingConnective = regexp.MustCompile(`\s+(?:by|at|on|before|until|till|due)\s*$`)
	reLeadingDeterminer  = regexp.MustCompile(`^(?:the|a|an|my)\s+`)

	// Connective left dangling in front of a removed temporal span
	// ("... report by [tomorrow]").
	rePrecedingConnective = regexp.MustCompile(`(?i)\s*\b(?:due\s+by|due|by|at|on|before|until|till)\s*$`)
)

// extractDescription produces the normalized task description: the utterance
// with the selected temporal span removed, intent markers stripped from the
// edges, whitespace collapsed and case normalized. Never returns an empty
// string — it degrades to the minimally-stripped original instead.
func extractDescription(utterance string, selected *temporal.Expression, kind router.Intent) string {
	withoutSpan := removeSpan(utterance, selected)

	working := normalize(withoutSpan)
	switch kind {
	case router.IntentComplete:
		working = stripRepeatedly(working, reLeadingCompleteMarker)
		working = reTrailingCompletion.ReplaceAllString(working, "")
		working = reLeadingDeterminer.ReplaceAllString(working, "")
	case router.IntentDelete:
		working = reLeadingDeleteMarker.ReplaceAllString(working, "")
		working = reLeadingDeterminer.ReplaceAllString(working, "")
	default:
		working = stripRepeatedly(working, reLeadingAddMarker)
	}

	for {
		trimmed := reTrailingConnective.ReplaceAllString(working, "")
		if trimmed == working {
			break
		}
		working = trimmed
	}
	working = normalize(working)

	if working != "" {
		return working
	}
	// Stripping removed everything: fall back to the original minus only the
	// temporal span so the description is never empty.
	if fallback := normalize(withoutSpan); fallback != "" {
		return fallback
	}
	return normalize(utterance)
}

// removeSpan cuts the selected temporal span out of the utterance, together
// with a connective dangling right before it.
func removeSpan(utterance string, selected *temporal.Expression) string {
	if selected == nil {
		return utterance
	}
	start, end := selected.Start, selected.End
	if start < 0 || end > len(utterance) || start >= end {
		return utterance
	}
	if loc := rePrecedingConnective.FindStringIndex(utterance[:start]); loc != nil {
		start = loc[0]
	}
	return utterance[:start] + " " + utterance[end:]
}

// stripRepeatedly removes a leading marker until the text stabilizes, so
// stacked markers ("please remind me to") all go.
func stripRepeatedly(s string, re *regexp.Regexp) string {
	for {
		stripped := re.ReplaceAllString(s, "")
		if stripped == s {
			return s
		}
		s = stripped
	}
}

// normalize lowercases, collapses whitespace and trims edge punctuation.
func normalize(s string) string {
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return strings.Trim(s, " .,!?;:-\"'")
}

// keyArticles are dropped from storage keys so "finish the report" and
// "finish report" compare equal.
var keyArticles = map[string]bool{"the": true, "a": true, "an": true, "my": true}

// Key derives the storage/matching key for a description: case and
// whitespace insensitive, articles removed.
func Key(description string) string {
	var kept []string
	for _, w := range strings.Fields(strings.ToLower(description)) {
		w = strings.Trim(w, ".,!?;:-\"'")
		if w == "" || keyArticles[w] {
			continue
		}
		kept = append(kept, w)
	}
	return strings.Join(kept, " ")
}
