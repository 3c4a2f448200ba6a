package bench

import (
	"fmt"
	"time"
)

// DefaultTrials is used when no trial count is given on the command line.
const DefaultTrials = 10

// Operation is the thing being measured. Its result is discarded.
type Operation func() error

type ReportMode string

const (
	ModeRunning ReportMode = "running"
	ModeSummary ReportMode = "summary"
)

type Unit string

const (
	UnitSeconds      Unit = "s"
	UnitMilliseconds Unit = "ms"
)

type ReportOptions struct {
	Mode      ReportMode
	Unit      Unit
	Precision int // decimals for seconds in running mode (4-6)
	Color     bool
}

type Config struct {
	Path   string
	Trials int
	Report ReportOptions
}

// Trial is one timed execution. Index is 1-based.
type Trial struct {
	Index   int
	Elapsed time.Duration
}

// Sequence holds trials in execution order.
type Sequence []Trial

func (s Sequence) Durations() []time.Duration {
	out := make([]time.Duration, len(s))
	for i, t := range s {
		out[i] = t.Elapsed
	}
	return out
}

type Summary struct {
	Count  int
	Total  time.Duration
	Min    time.Duration
	Median time.Duration
	Mean   time.Duration
	Max    time.Duration
}

// TrialError reports which trial aborted the run.
type TrialError struct {
	Trial  int
	Trials int
	Err    error
}

func (e *TrialError) Error() string {
	return fmt.Sprintf("trial %d/%d: %v", e.Trial, e.Trials, e.Err)
}

func (e *TrialError) Unwrap() error {
	return e.Err
}
