package temporal

import "taskbuddy/pkg/datemath"

// Extractor scans utterance text for temporal expressions and resolves them
// against a reference time. Stateless; safe for concurrent use.
type Extractor struct {
	parser *datemath.Parser
}

// New creates a new temporal expression extractor.
func New(parser *datemath.Parser) *Extractor {
	return &Extractor{parser: parser}
}
