// Package regexlib compiles a small regular-expression language (letters,
// concatenation, '|', '(...)', '*', '+', '?') into a Thompson NFA and decides
// whole-string acceptance by epsilon-closure simulation.
package regexlib

// Compile parses pattern into a syntax tree.
func Compile(pattern string) (*Node, error) {
	return NewParser(pattern).Parse()
}

// Build compiles a syntax tree into an automaton with a fresh Builder.
func Build(root *Node, opts ...Option) (*NFA, error) {
	return NewBuilder(opts...).Build(root)
}

// CompileAndMatch compiles pattern and reports whether it accepts all of input.
func CompileAndMatch(pattern, input string, opts ...Option) (bool, error) {
	re, err := NewRegex(pattern, opts...)
	if err != nil {
		return false, err
	}
	return re.Match(input), nil
}

// Regex is a compiled pattern. Match may be called from several goroutines.
type Regex struct {
	pattern string
	ast     *Node
	nfa     *NFA
}

func NewRegex(pattern string, opts ...Option) (*Regex, error) {
	ast, err := Compile(pattern)
	if err != nil {
		return nil, err
	}
	a, err := Build(ast, opts...)
	if err != nil {
		return nil, err
	}
	return &Regex{pattern: pattern, ast: ast, nfa: a}, nil
}

func MustRegex(pattern string, opts ...Option) *Regex {
	re, err := NewRegex(pattern, opts...)
	if err != nil {
		panic(err)
	}
	return re
}

func (r *Regex) Match(input string) bool { return r.nfa.Match(input) }

func (r *Regex) String() string { return r.pattern }

func (r *Regex) AST() *Node { return r.ast }

func (r *Regex) NFA() *NFA { return r.nfa }
