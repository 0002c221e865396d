package datemath

import "time"

// Resolution holds the result of resolving a date/time phrase.
type Resolution struct {
	At         time.Time
	AllDay     bool    // phrase carried no time of day; At is the end of that day
	Confidence float64 // 0..1, how unambiguous the phrase family is
}

// Confidence tiers per phrase family. Candidate selection happens on these
// values, ties broken upstream by span position.
const (
	ConfidenceExact    = 0.9 // explicit dates and clock times
	ConfidenceRelative = 0.8 // "tomorrow", "in 3 days", weekday names
	ConfidenceNumeric  = 0.7 // slash dates (month/day ambiguity)
	ConfidenceFuzzy    = 0.6 // "this week", "end of day"
)
