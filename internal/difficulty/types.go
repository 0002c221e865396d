package difficulty

// Level is a coarse complexity label for a task description.
type Level string

const (
	LevelEasy   Level = "easy"
	LevelMedium Level = "medium"
	LevelHard   Level = "hard"
)

// rank orders levels for comparisons (easy < medium < hard).
func rank(l Level) int {
	switch l {
	case LevelMedium:
		return 1
	case LevelHard:
		return 2
	default:
		return 0
	}
}

// AtLeast reports whether l is the same or a harder level than other.
func (l Level) AtLeast(other Level) bool {
	return rank(l) >= rank(other)
}
