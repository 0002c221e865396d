package router

import "regexp"

// Rule tables. Classification is deterministic and total: rules are checked
// in a fixed order and every utterance maps to exactly one intent, with ADD
// as the fallback so user-entered tasks are never lost.

// completionPatterns mark first-person perfective phrasings. These win
// unconditionally.
var completionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`i\s+have\s+completed\s+`),
	regexp.MustCompile(`i'?ve\s+completed\s+`),
	regexp.MustCompile(`i\s+have\s+done\s+`),
	regexp.MustCompile(`i'?ve\s+done\s+`),
	regexp.MustCompile(`i\s+finished\s+`),
	regexp.MustCompile(`i'?ve\s+finished\s+`),
	regexp.MustCompile(`i\s+completed\s+`),
	regexp.MustCompile(`i'?ve\s+accomplished\s+`),
	regexp.MustCompile(`i\s+accomplished\s+`),
	regexp.MustCompile(`i\s+got\s+it\s+done`),
	regexp.MustCompile(`i'?ve\s+got\s+it\s+done`),
	regexp.MustCompile(`i\s+managed\s+to\s+`),
	regexp.MustCompile(`i'?ve\s+managed\s+to\s+`),
	regexp.MustCompile(`i\s+wrapped\s+up\s+`),
	regexp.MustCompile(`i'?ve\s+wrapped\s+up\s+`),
	regexp.MustCompile(`i'?ve\s+handled\s+`),
	regexp.MustCompile(`i\s+handled\s+`),
}

// trailingCompletionPatterns are weaker markers ("the report is done").
// They only fire when no obligation indicator is present, so "I need to get
// this done" still reads as a new task.
var trailingCompletionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`is\s+done\s*[.!?]*$`),
	regexp.MustCompile(`is\s+completed\s*[.!?]*$`),
	regexp.MustCompile(`is\s+finished\s*[.!?]*$`),
}

// deletionPrefixes mark explicit removal commands.
var deletionPrefixes = []string{"delete ", "remove ", "cancel ", "drop "}

// deletionLemmas identify removal predicates governing a task-like object.
var deletionLemmas = map[string]bool{"delete": true, "remove": true, "cancel": true}

// queryPatterns mark listing/"what's due" questions.
var queryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(show|list|display)\b`),
	regexp.MustCompile(`\bwhat\s+tasks\b`),
	regexp.MustCompile(`\b(my|all|pending|due)\s+tasks\b`),
	regexp.MustCompile(`\btasks?\s+due\b`),
	regexp.MustCompile(`\bwhat\s+is\s+due\b`),
	regexp.MustCompile(`\bwhat'?s\s+due\b`),
	regexp.MustCompile(`\bto-?do\s+list\b`),
}

// taskIndicators mark obligation phrasings that introduce a new task.
var taskIndicators = []string{
	"i gotta", "i have to", "i need to", "i must", "i should",
	"i ought to", "i will", "i wanna", "i plan to", "i intend to",
	"i'm going to", "i'll", "i'd like to",
	"gotta", "need to", "have to", "ought to",
	"wanna", "plan to", "intend to", "gonna",
	"remind me to", "don't forget to", "to do", "to complete",
}

// addPrefixes mark explicit add commands.
var addPrefixes = []string{"add ", "add:"}

const (
	confidenceStrong  = 90
	confidenceDefault = 70
	confidenceWeak    = 50
)
