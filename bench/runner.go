package bench

import (
	"fmt"
	"time"
)

// Runner executes an Operation a fixed number of times and records how
// long each invocation took.
type Runner struct {
	Clock Clock

	// OnTrial, if set, is called after each successful trial once the
	// timer has stopped. Running-mode reporting hooks in here.
	OnTrial func(Trial)
}

func NewRunner(onTrial func(Trial)) *Runner {
	return &Runner{Clock: SystemClock, OnTrial: onTrial}
}

// Run invokes op exactly n times. The first failing trial aborts the run
// and its error is returned as a *TrialError; no partial sequence is
// returned in that case.
func (r *Runner) Run(op Operation, n int) (Sequence, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrNoTrials, n)
	}
	clock := r.Clock
	if clock == nil {
		clock = SystemClock
	}

	// n is user supplied; let append grow past the first chunk
	seq := make(Sequence, 0, min(n, 1024))
	for i := 1; i <= n; i++ {
		start := clock.Now()
		err := op()
		elapsed := clock.Now().Sub(start)
		if err != nil {
			return nil, &TrialError{Trial: i, Trials: n, Err: err}
		}
		if elapsed < 0 {
			elapsed = 0
		}

		t := Trial{Index: i, Elapsed: elapsed}
		seq = append(seq, t)
		if r.OnTrial != nil {
			r.OnTrial(t)
		}
	}
	return seq, nil
}

// Total sums the elapsed time of every trial.
func (s Sequence) Total() time.Duration {
	var sum time.Duration
	for _, t := range s {
		sum += t.Elapsed
	}
	return sum
}
