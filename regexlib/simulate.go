package regexlib

import "github.com/bits-and-blooms/bitset"

// Match reports whether the automaton accepts the whole of input.
// It only reads the NFA and is safe for concurrent use.
func (a *NFA) Match(input string) bool {
	return a.MatchTrace(input, nil)
}

// MatchTrace is Match with a hook called with the frontier before the
// first character (pos 0) and after each consumed character.
func (a *NFA) MatchTrace(input string, visit func(pos int, frontier []int)) bool {
	n := uint(len(a.states))
	current := bitset.New(n)
	a.epsilonClosure(a.start, current)
	if visit != nil {
		visit(0, members(current))
	}
	next := bitset.New(n)
	for i := 0; i < len(input); i++ {
		a.step(current, Label(input[i]), next)
		current.ClearAll()
		for s, ok := next.NextSet(0); ok; s, ok = next.NextSet(s + 1) {
			a.epsilonClosure(int(s), current)
		}
		if visit != nil {
			visit(i+1, members(current))
		}
		if !current.Any() {
			return false
		}
	}
	return a.accepts(current)
}

// step fills next with the targets of set entered by c.
func (a *NFA) step(set *bitset.BitSet, c Label, next *bitset.BitSet) {
	next.ClearAll()
	if c == Epsilon {
		return
	}
	for s, ok := set.NextSet(0); ok; s, ok = set.NextSet(s + 1) {
		for _, t := range a.states[s].Next {
			if a.states[t].Label == c {
				next.Set(uint(t))
			}
		}
	}
}

// epsilonClosure adds s and every state reachable from it through epsilon
// states to set. set doubles as the visited guard.
func (a *NFA) epsilonClosure(s int, set *bitset.BitSet) {
	if set.Test(uint(s)) {
		return
	}
	set.Set(uint(s))
	stack := []int{s}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, t := range a.states[cur].Next {
			if a.states[t].Label == Epsilon && !set.Test(uint(t)) {
				set.Set(uint(t))
				stack = append(stack, t)
			}
		}
	}
}

func (a *NFA) accepts(set *bitset.BitSet) bool {
	for s, ok := set.NextSet(0); ok; s, ok = set.NextSet(s + 1) {
		if a.states[s].Accept {
			return true
		}
	}
	return false
}

func members(set *bitset.BitSet) []int {
	out := make([]int, 0, set.Count())
	for s, ok := set.NextSet(0); ok; s, ok = set.NextSet(s + 1) {
		out = append(out, int(s))
	}
	return out
}
