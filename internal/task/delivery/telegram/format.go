package telegram

import (
	"fmt"
	"strings"
	"time"

	"taskbuddy/internal/difficulty"
	"taskbuddy/internal/model"
)

const deadlineFormat = "2006-01-02 15:04"

// formatTasks renders a task list reply ordered the way the repository
// returns it, with a countdown line per deadline.
func formatTasks(tasks []model.Task, now time.Time) string {
	if len(tasks) == 0 {
		return "Looks like your schedule is clear! 🎉"
	}

	var b strings.Builder
	b.WriteString("Here's what you've got on your plate:\n\n")
	for _, t := range tasks {
		fmt.Fprintf(&b, "• %s\n", t.Description)
		if t.Deadline != nil {
			fmt.Fprintf(&b, "  Due: %s\n", t.Deadline.Format(deadlineFormat))
		} else {
			b.WriteString("  No deadline set\n")
		}
		b.WriteString("  " + difficultyFlavor(t.Difficulty) + "\n")
		if t.Deadline != nil {
			b.WriteString("  " + countdown(now, *t.Deadline) + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func difficultyFlavor(level string) string {
	switch difficulty.Level(level) {
	case difficulty.LevelHard:
		return "This one's a bit challenging 💪"
	case difficulty.LevelMedium:
		return "Moderate effort needed 🎯"
	default:
		return "Should be pretty straightforward ✨"
	}
}

// countdown phrases how far away a deadline is, comparing calendar days
// rather than 24h windows.
func countdown(now, deadline time.Time) string {
	days := daysBetween(now, deadline)
	switch {
	case days < 0:
		return fmt.Sprintf("⚠️ Yikes! This is %d days overdue", -days)
	case days == 0:
		return "⏰ This is due today!"
	case days == 1:
		return "📅 Due tomorrow!"
	default:
		return fmt.Sprintf("✅ You've got %d days to nail this", days)
	}
}

func daysBetween(from, to time.Time) int {
	fromDate := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	toDate := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(toDate.Sub(fromDate) / (24 * time.Hour))
}

func formatAdded(t model.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📝 Task added: %s\n", t.Description)
	if t.Deadline != nil {
		fmt.Fprintf(&b, "  Due: %s\n", t.Deadline.Format(deadlineFormat))
	}
	b.WriteString("  " + difficultyFlavor(t.Difficulty))
	return b.String()
}

func formatCandidates(op pendingOp, candidates []model.Task) string {
	var b strings.Builder
	if op == pendingComplete {
		b.WriteString("I found a few tasks that could match. Which one did you complete?\n\n")
	} else {
		b.WriteString("I found a few tasks that could match. Which one should I delete?\n\n")
	}
	for i, t := range candidates {
		if t.Deadline != nil {
			fmt.Fprintf(&b, "%d. %s (due %s)\n", i+1, t.Description, t.Deadline.Format(deadlineFormat))
		} else {
			fmt.Fprintf(&b, "%d. %s\n", i+1, t.Description)
		}
	}
	b.WriteString("\nJust send me the number! 😊")
	return b.String()
}

func completionReply(description string) string {
	return fmt.Sprintf(pickReply(completionReplies), description)
}
