package driver

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/typelab/randcheck/value"
)

// Reporter receives the driver's progress and outcome callbacks. The
// driver itself stays free of output formatting.
type Reporter interface {
	// Progress is invoked before each test with the number of tests
	// already completed and the total budget.
	Progress(done, total int)
	// Failure is invoked exactly once, with the first non-passing
	// result.
	Failure(res Result)
	// Success is invoked exactly once, when every test passed.
	Success()
}

// NopReporter discards all callbacks.
type NopReporter struct{}

func (NopReporter) Progress(int, int) {}
func (NopReporter) Failure(Result)    {}
func (NopReporter) Success()          {}

// LogReporter reports through logrus, rendering counterexample
// arguments with the evaluation collaborator.
type LogReporter struct {
	log      *logrus.Logger
	ev       value.Evaluator
	property string
}

func NewLogReporter(log *logrus.Logger, ev value.Evaluator, property string) *LogReporter {
	return &LogReporter{log: log, ev: ev, property: property}
}

func (r *LogReporter) Progress(done, total int) {
	r.log.WithFields(logrus.Fields{
		"property": r.property,
		"done":     done,
		"total":    total,
	}).Debug("running test")
}

func (r *LogReporter) Failure(res Result) {
	rendered := make([]string, len(res.Args))
	for i, a := range res.Args {
		rendered[i] = r.ev.Render(a)
	}
	fields := logrus.Fields{
		"property": r.property,
		"outcome":  res.Outcome.String(),
		"args":     strings.Join(rendered, ", "),
	}
	if res.Err != nil {
		fields["error"] = res.Err.Error()
	}
	r.log.WithFields(fields).Error("property failed")
}

func (r *LogReporter) Success() {
	r.log.WithFields(logrus.Fields{"property": r.property}).Info("property passed")
}
