package temporal

import (
	"regexp"
	"time"
)

// Phrase grammar. Alternatives are ordered longest-first because Go regexp
// alternation is leftmost-first, and a day phrase greedily absorbs a
// trailing "at <clock>".
const (
	weekdayExpr = `(?:(?:this|next)\s+)?(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)`
	dayExpr     = `today|tonight|tomorrow|yesterday|` + weekdayExpr +
		`|in\s+\d+\s+(?:minute|hour|day|week|month)s?` +
		`|this\s+week(?:end)?|next\s+week|this\s+month|next\s+month` +
		`|end\s+of\s+(?:the\s+)?(?:day|week)|eod` +
		`|\d{4}-\d{2}-\d{2}` +
		`|(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{1,2}(?:st|nd|rd|th)?` +
		`|\d{1,2}/\d{1,2}(?:/\d{2,4})?`
	clockExpr = `\d{1,2}:\d{2}\s*(?:am|pm)?|\d{1,2}\s*(?:am|pm)|noon|midnight`
)

var rePhrase = regexp.MustCompile(
	`(?i)\b(?:(?:` + dayExpr + `)(?:\s+at\s+(?:` + clockExpr + `))?|(?:at\s+)?(?:` + clockExpr + `))\b`)

// Extract returns all temporal expression candidates in text, ordered by
// position of first occurrence. It never fails: phrases that look temporal
// but cannot be anchored come back with Resolved == nil.
func (e *Extractor) Extract(text string, referenceTime time.Time) []Expression {
	spans := rePhrase.FindAllStringIndex(text, -1)
	if len(spans) == 0 {
		return []Expression{}
	}

	candidates := make([]Expression, 0, len(spans))
	for _, span := range spans {
		phrase := text[span[0]:span[1]]
		expr := Expression{
			Text:  phrase,
			Start: span[0],
			End:   span[1],
		}

		if res, err := e.parser.Resolve(phrase, referenceTime); err == nil {
			at := res.At
			expr.Resolved = &at
			expr.AllDay = res.AllDay
			expr.Confidence = res.Confidence
		}

		candidates = append(candidates, expr)
	}
	return candidates
}

// Select applies the deadline selection policy: unresolved candidates are
// dropped, then the highest-confidence candidate wins, ties broken by
// earliest span position. Returns nil when nothing resolvable remains.
func Select(candidates []Expression) *Expression {
	var best *Expression
	for i := range candidates {
		c := &candidates[i]
		if c.Resolved == nil {
			continue
		}
		if best == nil || c.Confidence > best.Confidence {
			best = c
		}
	}
	return best
}
