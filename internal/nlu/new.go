package nlu

import (
	"taskbuddy/internal/analyzer"
	"taskbuddy/internal/difficulty"
	"taskbuddy/internal/router"
	"taskbuddy/internal/temporal"
	pkgLog "taskbuddy/pkg/log"
)

// Pipeline is the interpretation core: analyzer -> router -> temporal
// extraction -> description extraction -> difficulty. Each component is
// stateless, so one Pipeline serves concurrent invocations.
type Pipeline struct {
	l          pkgLog.Logger
	analyzer   *analyzer.Analyzer
	temporal   *temporal.Extractor
	router     router.Router
	difficulty *difficulty.Classifier
}

var _ Interpreter = (*Pipeline)(nil)

// New creates a new interpretation Pipeline.
func New(
	l pkgLog.Logger,
	a *analyzer.Analyzer,
	t *temporal.Extractor,
	r router.Router,
	d *difficulty.Classifier,
) *Pipeline {
	return &Pipeline{
		l:          l,
		analyzer:   a,
		temporal:   t,
		router:     r,
		difficulty: d,
	}
}
