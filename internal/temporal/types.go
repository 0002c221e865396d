package temporal

import "time"

// Expression is a contiguous span of an utterance matched as a date/time
// phrase. Resolved is nil when the phrase looked temporal but could not be
// anchored; such candidates are dropped before deadline selection.
type Expression struct {
	Text       string
	Start      int
	End        int
	Resolved   *time.Time
	AllDay     bool
	Confidence float64
}
