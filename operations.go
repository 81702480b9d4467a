package apta

import (
	"github.com/bits-and-blooms/bitset"
)

// Depth Returns the number of transitions on the longest breadth-first path from the start
// state, i.e. the highest BFS level reached. The start state alone has depth 0. States are
// visited at most once, so this terminates on cyclic automata too.
func (a *DFA) Depth() int {
	if a.start == -1 {
		return 0
	}

	seen := bitset.New(uint(len(a.states)))
	seen.Set(uint(a.start))
	current := []int{a.start}
	depth := 0

	for {
		next := make([]int, 0)
		for _, state := range current {
			for _, dest := range a.row(state) {
				if dest != -1 && !seen.Test(uint(dest)) {
					seen.Set(uint(dest))
					next = append(next, dest)
				}
			}
		}
		if len(next) == 0 {
			return depth
		}
		depth++
		current = next
	}
}

// Reachable Returns the set of states reachable from the start state, start included.
func (a *DFA) Reachable() *bitset.BitSet {
	live := bitset.New(uint(len(a.states)))
	if a.start == -1 {
		return live
	}

	workList := []int{a.start}
	live.Set(uint(a.start))
	for len(workList) > 0 {
		state := workList[0]
		workList = workList[1:]
		for _, dest := range a.row(state) {
			if dest != -1 && !live.Test(uint(dest)) {
				live.Set(uint(dest))
				workList = append(workList, dest)
			}
		}
	}
	return live
}

// UnreachableStates Returns the indexes of states not reachable from the start state.
func (a *DFA) UnreachableStates() []int {
	live := a.Reachable()
	unreachable := make([]int, 0)
	for s := range a.states {
		if !live.Test(uint(s)) {
			unreachable = append(unreachable, s)
		}
	}
	return unreachable
}

// IsTree Returns true if the states reachable from the start state form a tree rooted at the
// start state: no transition re-enters the start state and every other reachable state has
// exactly one incoming transition from a reachable state.
func (a *DFA) IsTree() bool {
	if a.start == -1 {
		return true
	}

	seen := bitset.New(uint(len(a.states)))
	seen.Set(uint(a.start))
	workList := []int{a.start}
	for len(workList) > 0 {
		state := workList[0]
		workList = workList[1:]
		for _, dest := range a.row(state) {
			if dest == -1 {
				continue
			}
			if seen.Test(uint(dest)) {
				// second way in, or a cycle
				return false
			}
			seen.Set(uint(dest))
			workList = append(workList, dest)
		}
	}
	return true
}

// CountLabel Returns how many states carry label.
func (a *DFA) CountLabel(label Label) int {
	count := 0
	for _, s := range a.states {
		if s.Label == label {
			count++
		}
	}
	return count
}

// LeavesCount Returns how many states have no outgoing transitions.
func (a *DFA) LeavesCount() int {
	count := 0
	for s := range a.states {
		leaf := true
		for _, dest := range a.row(s) {
			if dest != -1 {
				leaf = false
				break
			}
		}
		if leaf {
			count++
		}
	}
	return count
}
