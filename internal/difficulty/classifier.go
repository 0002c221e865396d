package difficulty

import "strings"

// signalWeights scores words associated with multi-step or open-ended work.
// Weights are additive; the table plus the length bucket form the score.
var signalWeights = map[string]int{
	// Verbs implying multi-step work
	"build": 2, "design": 2, "research": 2, "develop": 2, "implement": 2,
	"analyze": 2, "organize": 2, "create": 1, "write": 1, "prepare": 1,
	"plan": 1, "study": 1, "review": 1, "revise": 1,
	// Nouns implying sizable deliverables
	"report": 1, "project": 2, "presentation": 2, "essay": 1, "thesis": 2,
	"assignment": 1, "exam": 1, "proposal": 1, "chapter": 1,
}

// Classifier assigns a difficulty level to a task description using a
// signal-word table and description length. Deterministic and total.
type Classifier struct {
	lowCutoff  int
	highCutoff int
}

// New creates a Classifier with the given score cutoffs: score < low is
// easy, score < high is medium, the rest is hard. low must not exceed high;
// callers validate that in config.
func New(lowCutoff, highCutoff int) *Classifier {
	return &Classifier{lowCutoff: lowCutoff, highCutoff: highCutoff}
}

// Classify maps a description to easy/medium/hard. Any input, including a
// single word or empty text, resolves to a label.
func (c *Classifier) Classify(description string) Level {
	score := c.Score(description)
	switch {
	case score < c.lowCutoff:
		return LevelEasy
	case score < c.highCutoff:
		return LevelMedium
	default:
		return LevelHard
	}
}

// Score computes the raw difficulty score. Monotonic: appending words never
// lowers it, since both the signal sum and the length bucket only grow.
func (c *Classifier) Score(description string) int {
	words := strings.Fields(strings.ToLower(description))

	score := lengthBucket(len(words))
	for _, w := range words {
		w = strings.Trim(w, ".,!?;:'\"")
		score += signalWeights[w]
	}
	return score
}

// lengthBucket maps token count to score points.
func lengthBucket(n int) int {
	switch {
	case n <= 3:
		return 0
	case n <= 6:
		return 1
	case n <= 10:
		return 2
	default:
		return 3
	}
}
