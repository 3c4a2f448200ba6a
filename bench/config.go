package bench

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrNoTrials      = errors.New("trial count must be a positive integer")
	ErrEmptySequence = errors.New("no trials recorded")
)

// ValidModes lists the accepted --mode values.
var ValidModes = []ReportMode{ModeRunning, ModeSummary}

// ValidUnits lists the accepted --unit values.
var ValidUnits = []Unit{UnitSeconds, UnitMilliseconds}

const (
	MinPrecision = 4
	MaxPrecision = 6
)

func DefaultConfig() Config {
	return Config{
		Trials: DefaultTrials,
		Report: ReportOptions{
			Mode:      ModeRunning,
			Unit:      UnitSeconds,
			Precision: MaxPrecision,
		},
	}
}

// ParseTrials parses a trial count argument. Only positive integers pass.
func ParseTrials(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNoTrials, s)
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: %d", ErrNoTrials, n)
	}
	return n, nil
}

// ParseMode accepts "running", "running+average" and "summary".
func ParseMode(s string) (ReportMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "running", "running+average", "average":
		return ModeRunning, nil
	case "summary":
		return ModeSummary, nil
	}
	return "", fmt.Errorf("invalid mode %q: must be one of %v", s, ValidModes)
}

func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "s", "sec", "seconds":
		return UnitSeconds, nil
	case "ms", "millis", "milliseconds":
		return UnitMilliseconds, nil
	}
	return "", fmt.Errorf("invalid unit %q: must be one of %v", s, ValidUnits)
}

func (c Config) Validate() error {
	if c.Path == "" {
		return errors.New("target path is required")
	}
	if c.Trials < 1 {
		return fmt.Errorf("%w: %d", ErrNoTrials, c.Trials)
	}
	return c.Report.Validate()
}

func (o ReportOptions) Validate() error {
	if _, err := ParseMode(string(o.Mode)); err != nil {
		return err
	}
	if _, err := ParseUnit(string(o.Unit)); err != nil {
		return err
	}
	if o.Precision < MinPrecision || o.Precision > MaxPrecision {
		return fmt.Errorf("invalid precision %d: must be between %d and %d", o.Precision, MinPrecision, MaxPrecision)
	}
	return nil
}
