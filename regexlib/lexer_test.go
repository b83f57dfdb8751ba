package regexlib

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLexerTokens(t *testing.T) {
	toks, err := Tokens("a(b|C)*d+e?")
	require.NoError(t, err)

	want := []TokenKind{
		TokenLiteral, TokenGroupStart, TokenLiteral, TokenAlternation, TokenLiteral,
		TokenGroupEnd, TokenStar, TokenLiteral, TokenPlus, TokenLiteral, TokenOptional,
	}
	require.Len(t, toks, len(want))
	for i, typ := range want {
		require.Equal(t, typ, toks[i].Kind, "token %d", i)
		require.Equal(t, i, toks[i].Pos, "token %d", i)
	}
	require.Equal(t, byte('C'), toks[4].Value)
}

func TestLexerInitialAndEOF(t *testing.T) {
	l := NewLexer("a")
	require.Equal(t, TokenNone, l.Current().Kind)

	require.NoError(t, l.Advance())
	require.Equal(t, Token{Kind: TokenLiteral, Value: 'a', Pos: 0}, l.Current())
	// Current does not consume.
	require.Equal(t, TokenLiteral, l.Current().Kind)

	for i := 0; i < 3; i++ {
		require.NoError(t, l.Advance())
		require.Equal(t, Token{Kind: TokenEOF, Pos: 1}, l.Current())
	}
}

func TestLexerRejectsUnknown(t *testing.T) {
	for pat, want := range map[string]LexError{
		"a#b": {Char: '#', Pos: 1},
		"1":   {Char: '1', Pos: 0},
		"ab.": {Char: '.', Pos: 2},
		"a b": {Char: ' ', Pos: 1},
		"[a]": {Char: '[', Pos: 0},
		"é":   {Char: 0xc3, Pos: 0},
	} {
		_, err := Tokens(pat)
		var lerr *LexError
		require.True(t, errors.As(err, &lerr), "pattern %q: %v", pat, err)
		require.Equal(t, want, *lerr, "pattern %q", pat)
	}
}

func TestTokenKindString(t *testing.T) {
	require.Equal(t, "KLEENE_STAR", TokenStar.String())
	require.Equal(t, "END_OF_INPUT", TokenEOF.String())
	require.Equal(t, "UNKNOWN", TokenKind(99).String())
}
