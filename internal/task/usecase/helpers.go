package usecase

import (
	"strings"

	"taskbuddy/internal/model"
	"taskbuddy/internal/nlu"
)

// matchTasks finds pending tasks whose description shares at least one
// meaningful term with the query. Matching runs over normalized keys so
// "finish the report" finds a task stored as "finish report".
func matchTasks(description string, tasks []model.Task) []model.Task {
	queryTerms := strings.Fields(nlu.Key(description))
	if len(queryTerms) == 0 {
		return nil
	}

	var matched []model.Task
	for _, t := range tasks {
		taskTerms := termSet(nlu.Key(t.Description))
		for _, term := range queryTerms {
			if taskTerms[term] {
				matched = append(matched, t)
				break
			}
		}
	}
	return matched
}

func termSet(key string) map[string]bool {
	set := make(map[string]bool)
	for _, term := range strings.Fields(key) {
		set[term] = true
	}
	return set
}
