package regexlib

import (
	"github.com/bits-and-blooms/bitset"
	"go.uber.org/zap"
)

// Label is the character consumed when entering a state.
type Label byte

// Epsilon marks states entered without consuming input.
const Epsilon Label = 0

// State is one vertex of the automaton arena. Next holds arena indices.
type State struct {
	ID     int
	Label  Label
	Next   []int
	Accept bool
}

// NFA is a compiled automaton. Its topology is read-only once Build returns.
type NFA struct {
	states []State
	start  int
}

func (a *NFA) Start() int { return a.start }

func (a *NFA) Len() int { return len(a.states) }

// State returns a copy of state i.
func (a *NFA) State(i int) State {
	s := a.states[i]
	s.Next = append([]int(nil), s.Next...)
	return s
}

// Accepting lists the ids of accept states in id order.
func (a *NFA) Accepting() []int {
	var out []int
	for i := range a.states {
		if a.states[i].Accept {
			out = append(out, i)
		}
	}
	return out
}

// AcceptMode selects how the builder finds a fragment's live accept state.
type AcceptMode int

const (
	// AcceptExplicit tracks the accept index alongside every fragment.
	AcceptExplicit AcceptMode = iota
	// AcceptWalk rediscovers it by walking forward from the fragment start,
	// following the first unvisited target at each hop.
	AcceptWalk
)

type Option func(*Builder)

func WithLogger(log *zap.Logger) Option {
	return func(b *Builder) {
		if log != nil {
			b.log = log
		}
	}
}

func WithAcceptWalk() Option {
	return func(b *Builder) { b.mode = AcceptWalk }
}

type fragment struct {
	start, accept int
}

// Builder compiles one tree into an NFA by Thompson construction. It is
// single-use and must not be shared between goroutines.
type Builder struct {
	states []State
	stack  []fragment
	mode   AcceptMode
	log    *zap.Logger
	used   bool
}

func NewBuilder(opts ...Option) *Builder {
	b := &Builder{log: zap.NewNop()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Builder) newState(label Label, accept bool) int {
	id := len(b.states)
	b.states = append(b.states, State{ID: id, Label: label, Accept: accept})
	return id
}

func (b *Builder) link(from int, to ...int) {
	b.states[from].Next = append(b.states[from].Next, to...)
}

// acceptOf returns the fragment's single live accept state.
func (b *Builder) acceptOf(f fragment) int {
	if b.mode == AcceptWalk {
		return b.findAccept(f.start)
	}
	return f.accept
}

// findAccept walks forward from start taking the first unvisited target at
// each hop. It returns the first accept state met, or the state where the
// walk stalls.
func (b *Builder) findAccept(start int) int {
	visited := bitset.New(uint(len(b.states)))
	cur := start
	for {
		if b.states[cur].Accept {
			return cur
		}
		visited.Set(uint(cur))
		next := -1
		for _, t := range b.states[cur].Next {
			if !visited.Test(uint(t)) {
				next = t
				break
			}
		}
		if next < 0 {
			return cur
		}
		cur = next
	}
}

// demote clears the accept flag of f's live accept state and returns it.
func (b *Builder) demote(f fragment) int {
	acc := b.acceptOf(f)
	b.states[acc].Accept = false
	return acc
}

type frame struct {
	node     *Node
	expanded bool
	base     int
}

// Build compiles root. Children are compiled before their parent, so every
// subtree leaves exactly one more fragment on the stack than it found.
func (b *Builder) Build(root *Node) (*NFA, error) {
	if b.used {
		return nil, ErrBuilderReused
	}
	b.used = true
	work := []frame{{node: root}}
	for len(work) > 0 {
		fr := work[len(work)-1]
		work = work[:len(work)-1]
		if fr.node == nil {
			return nil, ErrNilNode
		}
		if !fr.expanded {
			work = append(work, frame{node: fr.node, expanded: true, base: len(b.stack)})
			for i := len(fr.node.Children) - 1; i >= 0; i-- {
				work = append(work, frame{node: fr.node.Children[i]})
			}
			continue
		}
		if err := b.compose(fr.node, fr.base); err != nil {
			return nil, err
		}
	}
	if len(b.stack) != 1 {
		return nil, &StructuralError{Kind: root.Kind, Required: 1, Available: len(b.stack)}
	}
	a := &NFA{states: b.states, start: b.stack[0].start}
	b.log.Debug("automaton built",
		zap.Int("states", len(a.states)),
		zap.Int("start", a.start),
		zap.Stringer("mode", b.mode))
	b.states, b.stack = nil, nil
	return a, nil
}

// compose pops the operands node's children left above base and pushes the
// composed fragment.
func (b *Builder) compose(n *Node, base int) error {
	lo, hi := n.Kind.arity()
	available := len(b.stack) - base
	if available < lo || (hi >= 0 && available > hi) {
		return &StructuralError{Kind: n.Kind, Required: lo, Available: available}
	}
	ops := append([]fragment(nil), b.stack[base:]...)
	b.stack = b.stack[:base]

	var f fragment
	switch n.Kind {
	case NodeLiteral:
		f.start = b.newState(Epsilon, false)
		f.accept = b.newState(Label(n.Value), true)
		b.link(f.start, f.accept)
	case NodeConcat:
		f = ops[0]
		for _, next := range ops[1:] {
			acc := b.demote(f)
			b.link(acc, next.start)
			f.accept = next.accept
		}
	case NodeAlternation:
		f.start = b.newState(Epsilon, false)
		f.accept = b.newState(Epsilon, true)
		b.link(f.start, ops[0].start, ops[1].start)
		left, right := b.demote(ops[0]), b.demote(ops[1])
		b.link(left, f.accept)
		b.link(right, f.accept)
	case NodeStar:
		f.start = b.newState(Epsilon, false)
		f.accept = b.newState(Epsilon, true)
		b.link(f.start, ops[0].start, f.accept)
		acc := b.demote(ops[0])
		b.link(acc, ops[0].start, f.accept)
	case NodePlus:
		f.start = b.newState(Epsilon, false)
		f.accept = b.newState(Epsilon, true)
		b.link(f.start, ops[0].start)
		acc := b.demote(ops[0])
		b.link(acc, ops[0].start, f.accept)
	case NodeOptional:
		f.start = b.newState(Epsilon, false)
		f.accept = b.newState(Epsilon, true)
		b.link(f.start, ops[0].start, f.accept)
		acc := b.demote(ops[0])
		b.link(acc, f.accept)
	case NodeGroup:
		f = ops[0]
	default:
		return &StructuralError{Kind: n.Kind, Required: lo, Available: available}
	}
	b.stack = append(b.stack, f)
	b.log.Debug("composed fragment",
		zap.Stringer("kind", n.Kind),
		zap.Int("start", f.start),
		zap.Int("states", len(b.states)),
		zap.Int("depth", len(b.stack)))
	return nil
}

func (m AcceptMode) String() string {
	if m == AcceptWalk {
		return "walk"
	}
	return "explicit"
}
