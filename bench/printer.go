package bench

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
)

// Reporter prints trial results in the configured ReportMode.
type Reporter struct {
	w     io.Writer
	opts  ReportOptions
	label *color.Color
}

// NewReporter creates a reporter writing to w. Colors are only emitted
// when opts.Color is set.
func NewReporter(w io.Writer, opts ReportOptions) *Reporter {
	label := color.New(color.FgCyan)
	if opts.Color {
		label.EnableColor()
	} else {
		label.DisableColor()
	}
	return &Reporter{w: w, opts: opts, label: label}
}

// Trial prints one running line. It does nothing in summary mode.
func (r *Reporter) Trial(t Trial) {
	if r.opts.Mode != ModeRunning {
		return
	}
	if r.opts.Unit == UnitMilliseconds {
		fmt.Fprintf(r.w, "%d: elapsed %d ms\n", t.Index, t.Elapsed.Milliseconds())
		return
	}
	fmt.Fprintf(r.w, "%d: elapsed %.*f seconds\n", t.Index, r.opts.Precision, t.Elapsed.Seconds())
}

// Report prints the closing statistics for a completed sequence.
func (r *Reporter) Report(seq Sequence) error {
	if len(seq) == 0 {
		return ErrEmptySequence
	}
	if r.opts.Mode == ModeSummary {
		return r.printSummary(seq)
	}
	r.printAverage(seq)
	return nil
}

func (r *Reporter) printAverage(seq Sequence) {
	mean := Mean(seq)
	if r.opts.Unit == UnitMilliseconds {
		fmt.Fprintf(r.w, "%s %d ms\n", r.label.Sprint("Average:"), mean.Milliseconds())
		return
	}
	fmt.Fprintf(r.w, "%s %.*f seconds\n", r.label.Sprint("Average:"), r.opts.Precision, mean.Seconds())
}

func (r *Reporter) printSummary(seq Sequence) error {
	s, err := Summarize(seq)
	if err != nil {
		return err
	}
	rows := []struct {
		name string
		d    time.Duration
	}{
		{"min:", s.Min},
		{"median:", s.Median},
		{"mean:", s.Mean},
		{"max:", s.Max},
	}
	for _, row := range rows {
		fmt.Fprintf(r.w, "%s%.4f\n", r.label.Sprintf("%-8s", row.name), row.d.Seconds())
	}
	return nil
}

// FmtDur renders a duration with a unit suited to its size, for logs.
func FmtDur(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	case d < time.Millisecond:
		return fmt.Sprintf("%.0fµs", float64(d.Nanoseconds())/1e3)
	case d < time.Second:
		return fmt.Sprintf("%.2fms", float64(d.Nanoseconds())/1e6)
	}
	return fmt.Sprintf("%.3fs", d.Seconds())
}
