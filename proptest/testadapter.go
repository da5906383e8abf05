package proptest

import "testing"

// Check runs property for n trials via QuickCheck and reports any failure
// through t.Errorf, including the seed needed to reproduce it. This is the
// thin go-test shell spec.md's external-collaborators carve-out allows —
// grounded on db/proptest/runner.go's original Check/QuickCheck
// testing.T adapters, updated to drive this package's QuickCheck instead
// of a bare boolean predicate loop.
func Check(t *testing.T, n int, property Generator[TrialResult], opts Options) Report {
	t.Helper()
	report := QuickCheck(n, property, opts)
	if !report.Passed() {
		t.Errorf("proptest: property failed on trial %d with args %+v (seed=%d, set PROPTEST_SEED=%d to reproduce): %s",
			report.Failure.TrialNumber, report.Failure.Args, report.Seed, report.Seed, report.Failure.Reason)
	}
	return report
}

// MustCheck is Check but calls t.Fatalf instead of t.Errorf, stopping the
// test immediately on failure.
func MustCheck(t *testing.T, n int, property Generator[TrialResult], opts Options) Report {
	t.Helper()
	report := QuickCheck(n, property, opts)
	if !report.Passed() {
		t.Fatalf("proptest: property failed on trial %d with args %+v (seed=%d, set PROPTEST_SEED=%d to reproduce): %s",
			report.Failure.TrialNumber, report.Failure.Args, report.Seed, report.Seed, report.Failure.Reason)
	}
	return report
}
