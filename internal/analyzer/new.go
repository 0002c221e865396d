package analyzer

import (
	"sync"

	"github.com/jdkato/prose/v2"
)

// Analyzer wraps the linguistic model. The model is read-only once loaded,
// so a single Analyzer is safe for concurrent use.
type Analyzer struct{}

var (
	defaultAnalyzer *Analyzer
	initOnce        sync.Once
	initErr         error
)

// Init loads the linguistic model. Call once from main before the first
// Analyze; the underlying model load is expensive and must not race with
// request handling.
func Init() error {
	initOnce.Do(func() {
		// Warm-up document forces the tagger model to load now.
		_, initErr = prose.NewDocument("warm up", prose.WithExtraction(false))
		defaultAnalyzer = &Analyzer{}
	})
	return initErr
}

// Default returns the process-wide Analyzer, initializing it if main did not.
func Default() *Analyzer {
	_ = Init()
	return defaultAnalyzer
}
