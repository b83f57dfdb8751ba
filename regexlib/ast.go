package regexlib

import "strings"

type NodeKind int

const (
	NodeLiteral NodeKind = iota
	NodeConcat
	NodeAlternation
	NodeStar
	NodePlus
	NodeOptional
	NodeGroup // ( ... ), no semantics of its own
)

var nodeNames = [...]string{
	NodeLiteral:     "LITERAL",
	NodeConcat:      "CONCAT",
	NodeAlternation: "ALTERNATION",
	NodeStar:        "KLEENE_STAR",
	NodePlus:        "KLEENE_PLUS",
	NodeOptional:    "OPTIONAL",
	NodeGroup:       "GROUP",
}

func (k NodeKind) String() string {
	if k < 0 || int(k) >= len(nodeNames) {
		return "UNKNOWN"
	}
	return nodeNames[k]
}

// arity returns the minimum and maximum number of operands a node of kind k
// composes. hi is -1 when unbounded.
func (k NodeKind) arity() (lo, hi int) {
	switch k {
	case NodeLiteral:
		return 0, 0
	case NodeConcat:
		return 2, -1
	case NodeAlternation:
		return 2, 2
	default:
		return 1, 1
	}
}

// Node is one vertex of the parsed pattern. Value is the literal character
// for NodeLiteral and the operator character otherwise.
type Node struct {
	Kind     NodeKind
	Value    byte
	Children []*Node
}

func NewNode(kind NodeKind, value byte, children ...*Node) *Node {
	return &Node{Kind: kind, Value: value, Children: children}
}

func Literal(c byte) *Node { return &Node{Kind: NodeLiteral, Value: c} }

// String renders the tree as an s-expression, e.g. (concat a (star b)).
func (n *Node) String() string {
	var sb strings.Builder
	n.write(&sb)
	return sb.String()
}

func (n *Node) write(sb *strings.Builder) {
	if n == nil {
		sb.WriteString("<nil>")
		return
	}
	if n.Kind == NodeLiteral && len(n.Children) == 0 {
		sb.WriteByte(n.Value)
		return
	}
	sb.WriteByte('(')
	sb.WriteString(sexprNames[n.Kind])
	for _, c := range n.Children {
		sb.WriteByte(' ')
		c.write(sb)
	}
	sb.WriteByte(')')
}

var sexprNames = map[NodeKind]string{
	NodeLiteral:     "lit",
	NodeConcat:      "concat",
	NodeAlternation: "alt",
	NodeStar:        "star",
	NodePlus:        "plus",
	NodeOptional:    "opt",
	NodeGroup:       "group",
}
