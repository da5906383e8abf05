package proptest

import "fmt"

// Verdict is a property's outcome for a single trial: either the predicate
// held, or it didn't — optionally carrying a human-readable reason that
// shows up in a failure report.
type Verdict struct {
	Held   bool
	Reason string
}

// VerdictOf converts a plain boolean predicate result into a Verdict with
// no explanatory reason attached.
func VerdictOf(held bool) Verdict {
	return Verdict{Held: held}
}

// Fail builds a failing Verdict with a formatted reason, for predicates
// that want to explain what went wrong beyond a bare false.
func Fail(format string, args ...any) Verdict {
	return Verdict{Held: false, Reason: fmt.Sprintf(format, args...)}
}

// TrialResult is what a property (a Generator[TrialResult] built by
// ForAllN) produces for one generated input: the arguments that were
// generated (kept around for reporting, not re-derivable from the verdict
// alone), the verdict the predicate reached, and — if the predicate
// panicked instead of returning — the recovered value.
type TrialResult struct {
	Args      []any
	Verdict   Verdict
	Exception any
}

// Failed reports whether this trial counts as a counterexample: either
// the predicate returned a non-holding Verdict, or it panicked.
func (tr TrialResult) Failed() bool {
	return tr.Exception != nil || !tr.Verdict.Held
}

// ForAll1 turns a generator and a one-argument predicate into a property:
// a Generator[TrialResult] whose rose tree has exactly the shape of ga's,
// so shrinking the property is shrinking ga's failing value.
func ForAll1[A any](ga Generator[A], pred func(A) Verdict) Generator[TrialResult] {
	return func(r RNG, s Size) RoseTree[TrialResult] {
		return MapRose(func(a A) TrialResult {
			return runTrial1(pred, a)
		}, ga(r, s))
	}
}

// ForAll2 is ForAll1 for two independently-shrinkable arguments, built on
// Tuple2 so each argument shrinks along its own axis.
func ForAll2[A, B any](ga Generator[A], gb Generator[B], pred func(A, B) Verdict) Generator[TrialResult] {
	return func(r RNG, s Size) RoseTree[TrialResult] {
		tree := Tuple2(ga, gb)(r, s)
		return MapRose(func(p Pair[A, B]) TrialResult {
			return runTrial2(pred, p.First, p.Second)
		}, tree)
	}
}

// ForAll3 is ForAll1 for three independently-shrinkable arguments, built
// on Tuple3.
func ForAll3[A, B, C any](ga Generator[A], gb Generator[B], gc Generator[C], pred func(A, B, C) Verdict) Generator[TrialResult] {
	return func(r RNG, s Size) RoseTree[TrialResult] {
		tree := Tuple3(ga, gb, gc)(r, s)
		return MapRose(func(tr Triple[A, B, C]) TrialResult {
			return runTrial3(pred, tr.First, tr.Second, tr.Third)
		}, tree)
	}
}

func runTrial1[A any](pred func(A) Verdict, a A) (result TrialResult) {
	result.Args = []any{a}
	defer recoverIntoResult(&result)
	result.Verdict = pred(a)
	return
}

func runTrial2[A, B any](pred func(A, B) Verdict, a A, b B) (result TrialResult) {
	result.Args = []any{a, b}
	defer recoverIntoResult(&result)
	result.Verdict = pred(a, b)
	return
}

func runTrial3[A, B, C any](pred func(A, B, C) Verdict, a A, b B, c C) (result TrialResult) {
	result.Args = []any{a, b, c}
	defer recoverIntoResult(&result)
	result.Verdict = pred(a, b, c)
	return
}

// recoverIntoResult catches a panicking predicate and folds it into result
// as a failing Verdict plus the recovered Exception, so a property that
// panics shrinks exactly like one that returns false.
func recoverIntoResult(result *TrialResult) {
	if rec := recover(); rec != nil {
		result.Exception = rec
		result.Verdict = Verdict{Held: false, Reason: fmt.Sprint(rec)}
	}
}
