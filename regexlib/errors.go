package regexlib

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrBuilderReused is returned when a Builder is asked to compile a second tree.
var ErrBuilderReused = errors.New("regexlib: builder already used")

// ErrNilNode is returned by Build for a nil root or a nil child.
var ErrNilNode = errors.New("regexlib: nil node in syntax tree")

// LexError reports a pattern character the lexer does not recognise.
type LexError struct {
	Char byte
	Pos  int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error: unexpected character %q at position %d", e.Char, e.Pos)
}

// ParseError reports a grammar violation at the token found in place of
// the expected one.
type ParseError struct {
	Expected TokenKind
	Found    TokenKind
	Pos      int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: expected %s, found %s at position %d",
		e.Expected, e.Found, e.Pos)
}

// StructuralError means the builder got a tree that breaks the node arity
// rules. The parser never produces one; hand-built trees can.
type StructuralError struct {
	Kind      NodeKind
	Required  int
	Available int
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("structural error: %s requires %d operand(s), %d available",
		e.Kind, e.Required, e.Available)
}
