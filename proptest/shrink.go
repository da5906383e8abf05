package proptest

// ShrinkResult is the outcome of searching a failing trial's rose tree for
// a smaller counterexample.
type ShrinkResult struct {
	Smallest          TrialResult
	TotalNodesVisited int
	Depth             int
}

// shrinkSearch walks root — assumed already failing — to a
// locally-minimal counterexample. It is a non-exhaustive, non-backtracking
// depth-first walk: it commits to the first still-failing child it finds
// and descends into that child's children, never returning to the
// siblings it left behind. A still-failing child with no children of its
// own is recorded and the walk moves on to its next sibling. A passing
// child is skipped and never revisited. Depth counts the descents into a
// non-empty child list.
//
// This is neither a global-minimum search nor a leftmost-leaf search —
// this exact traversal order is the contract: re-running the same failing
// tree must walk it identically every time.
func shrinkSearch(root RoseTree[TrialResult]) ShrinkResult {
	nodes := root.Children()
	currentSmallest := root
	depth := 0
	visited := 0
	for len(nodes) > 0 {
		head := nodes[0]
		tail := nodes[1:]
		if !head.Root.Failed() {
			nodes = tail
			visited++
			continue
		}
		currentSmallest = head
		visited++
		if kids := head.Children(); len(kids) > 0 {
			nodes = kids
			depth++
		} else {
			nodes = tail
		}
	}
	return ShrinkResult{
		Smallest:          currentSmallest.Root,
		TotalNodesVisited: visited,
		Depth:             depth,
	}
}
