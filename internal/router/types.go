package router

// Intent represents the user's intention.
type Intent string

const (
	IntentAdd      Intent = "ADD"
	IntentList     Intent = "LIST"
	IntentQueryDue Intent = "QUERY_DUE"
	IntentComplete Intent = "COMPLETE"
	IntentDelete   Intent = "DELETE"
)

// Output is the structured classification result.
type Output struct {
	Intent     Intent `json:"intent"`
	Confidence int    `json:"confidence"` // 0-100
	Reasoning  string `json:"reasoning"`  // Which rule fired
}
