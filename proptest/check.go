package proptest

import (
	"os"
	"strconv"
	"time"
)

// Options controls a QuickCheck run. Zero values mean "use the default":
// a wall-clock seed (or PROPTEST_SEED if set), max size 200 (or
// PROPTEST_MAX_SIZE), and a Reporter that discards every event.
type Options struct {
	Seed     int64
	MaxSize  Size
	Reporter Reporter
}

// TrialEvent reports a single passing trial.
type TrialEvent struct {
	Property string
	SoFar    int
	NumTests int
}

// FailureEvent reports the first failing trial, before shrinking begins.
type FailureEvent struct {
	Property    string
	Result      TrialResult
	TrialNumber int
	FailingArgs []any
}

// Reporter receives structured events as a QuickCheck run progresses, per
// this package's reporter event schema. Implementations must not block the
// run; a slow reporter slows every trial.
type Reporter interface {
	Trial(TrialEvent)
	Failure(FailureEvent)
}

// NoopReporter discards every event. It is the default when
// Options.Reporter is left nil.
type NoopReporter struct{}

// Trial implements Reporter.
func (NoopReporter) Trial(TrialEvent) {}

// Failure implements Reporter.
func (NoopReporter) Failure(FailureEvent) {}

// FailureReport describes the minimal counterexample QuickCheck found,
// after shrinking.
type FailureReport struct {
	TrialNumber       int
	Args              []any
	Reason            string
	Exception         any
	TotalNodesVisited int
	Depth             int
}

// Report is QuickCheck's result: either every trial held (Failure is nil)
// or the first failure was found and shrunk.
type Report struct {
	NumTests int
	Seed     int64
	MaxSize  Size
	Failure  *FailureReport
}

// Passed reports whether every trial held.
func (r Report) Passed() bool {
	return r.Failure == nil
}

// effectiveSeed resolves Options.Seed against the PROPTEST_SEED
// environment variable and, failing that, the wall clock — following the
// precedent this repo's existing db/proptest/runner.go sets with
// getEffectiveSeed, generalized so an explicit Options.Seed always wins.
func effectiveSeed(opts Options) int64 {
	if opts.Seed != 0 {
		return opts.Seed
	}
	if raw := os.Getenv("PROPTEST_SEED"); raw != "" {
		if seed, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return seed
		}
	}
	return time.Now().UnixNano()
}

// effectiveMaxSize resolves Options.MaxSize against PROPTEST_MAX_SIZE and
// spec.md's default of 200.
func effectiveMaxSize(opts Options) Size {
	if opts.MaxSize > 0 {
		return opts.MaxSize
	}
	if raw := os.Getenv("PROPTEST_MAX_SIZE"); raw != "" {
		if size, err := strconv.Atoi(raw); err == nil && size > 0 {
			return Size(size)
		}
	}
	return 200
}

// QuickCheck runs property for n trials, splitting a fresh RNG stream for
// each one and cycling the size knob through 0..maxSize-1. The first
// failing trial stops the run and is shrunk via shrinkSearch; its minimal
// counterexample becomes the Report's Failure.
//
// Given the same (n, property, Options.Seed, Options.MaxSize), QuickCheck
// produces a byte-identical Report on every invocation — the determinism
// guarantee this package exists to provide.
func QuickCheck(n int, property Generator[TrialResult], opts Options) Report {
	reporter := opts.Reporter
	if reporter == nil {
		reporter = NoopReporter{}
	}
	seed := effectiveSeed(opts)
	maxSize := effectiveMaxSize(opts)
	rng := NewRNG(seed)

	report := Report{NumTests: n, Seed: seed, MaxSize: maxSize}

	for i := 0; i < n; i++ {
		var trialRNG RNG
		rng, trialRNG = rng.Split()
		size := Size(i) % maxSize

		tree := property(trialRNG, size)
		if !tree.Root.Failed() {
			reporter.Trial(TrialEvent{SoFar: i + 1, NumTests: n})
			continue
		}

		reporter.Failure(FailureEvent{
			Result:      tree.Root,
			TrialNumber: i + 1,
			FailingArgs: tree.Root.Args,
		})
		shrunk := shrinkSearch(tree)
		report.Failure = &FailureReport{
			TrialNumber:       i + 1,
			Args:              shrunk.Smallest.Args,
			Reason:            shrunk.Smallest.Verdict.Reason,
			Exception:         shrunk.Smallest.Exception,
			TotalNodesVisited: shrunk.TotalNodesVisited,
			Depth:             shrunk.Depth,
		}
		return report
	}
	return report
}
