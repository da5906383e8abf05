package proptest

import "golang.org/x/sync/errgroup"

// CheckParallel runs n trials of property across up to workers goroutines
// concurrently, addressing spec.md §5's note for embedders that add
// parallel trial execution: "each trial must receive an independently
// split-derived RNG, and only the first failure (by trial index) is
// shrunk." All n sub-streams are split up front, single-threaded, before
// any goroutine runs, so the set of streams used is independent of how
// many workers happen to be available.
func CheckParallel(n, workers int, property Generator[TrialResult], opts Options) Report {
	if workers < 1 {
		workers = 1
	}
	reporter := opts.Reporter
	if reporter == nil {
		reporter = NoopReporter{}
	}
	seed := effectiveSeed(opts)
	maxSize := effectiveMaxSize(opts)
	rng := NewRNG(seed)

	trialRNGs := make([]RNG, n)
	for i := 0; i < n; i++ {
		var next RNG
		rng, next = rng.Split()
		trialRNGs[i] = next
	}

	trees := make([]RoseTree[TrialResult], n)
	var g errgroup.Group
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			trees[i] = property(trialRNGs[i], Size(i)%maxSize)
			return nil
		})
	}
	_ = g.Wait()

	report := Report{NumTests: n, Seed: seed, MaxSize: maxSize}
	firstFailure := -1
	for i, t := range trees {
		if t.Root.Failed() {
			firstFailure = i
			break
		}
		reporter.Trial(TrialEvent{SoFar: i + 1, NumTests: n})
	}
	if firstFailure < 0 {
		return report
	}

	failingTree := trees[firstFailure]
	reporter.Failure(FailureEvent{
		Result:      failingTree.Root,
		TrialNumber: firstFailure + 1,
		FailingArgs: failingTree.Root.Args,
	})
	shrunk := shrinkSearch(failingTree)
	report.Failure = &FailureReport{
		TrialNumber:       firstFailure + 1,
		Args:              shrunk.Smallest.Args,
		Reason:            shrunk.Smallest.Verdict.Reason,
		Exception:         shrunk.Smallest.Exception,
		TotalNodesVisited: shrunk.TotalNodesVisited,
		Depth:             shrunk.Depth,
	}
	return report
}
