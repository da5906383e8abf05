package proptest

import "log/slog"

// SlogReporter emits this package's reporter events as structured log/slog
// records, grounded on logging/logging.go's convention of attaching
// request-scoped fields to every log line rather than formatting a
// message string by hand.
type SlogReporter struct {
	Logger   *slog.Logger
	Property string

	// EveryN throttles trial-event logging to every Nth passing trial (0
	// or 1 logs every trial). Failures are always logged regardless.
	EveryN int
}

// Trial implements Reporter.
func (s SlogReporter) Trial(ev TrialEvent) {
	every := s.EveryN
	if every < 1 {
		every = 1
	}
	if ev.SoFar%every != 0 {
		return
	}
	s.Logger.Debug("proptest_trial",
		"property", s.propertyName(ev.Property),
		"so_far", ev.SoFar,
		"num_tests", ev.NumTests,
	)
}

// Failure implements Reporter.
func (s SlogReporter) Failure(ev FailureEvent) {
	s.Logger.Warn("proptest_failure",
		"property", s.propertyName(ev.Property),
		"trial_number", ev.TrialNumber,
		"failing_args", ev.FailingArgs,
		"reason", ev.Result.Verdict.Reason,
		"exception", ev.Result.Exception,
	)
}

func (s SlogReporter) propertyName(fromEvent string) string {
	if fromEvent != "" {
		return fromEvent
	}
	return s.Property
}
