package regexlib

type TokenKind int

const (
	TokenNone        TokenKind = iota // before the first Advance
	TokenLiteral                      // a-z, A-Z
	TokenGroupStart                   // (
	TokenGroupEnd                     // )
	TokenStar                         // *
	TokenPlus                         // +
	TokenOptional                     // ?
	TokenAlternation                  // |
	TokenEOF
)

var tokenNames = [...]string{
	TokenNone:        "NONE",
	TokenLiteral:     "LITERAL",
	TokenGroupStart:  "GROUP_START",
	TokenGroupEnd:    "GROUP_END",
	TokenStar:        "KLEENE_STAR",
	TokenPlus:        "KLEENE_PLUS",
	TokenOptional:    "OPTIONAL",
	TokenAlternation: "ALTERNATION",
	TokenEOF:         "END_OF_INPUT",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(tokenNames) {
		return "UNKNOWN"
	}
	return tokenNames[k]
}

// Token is a single pattern character classified by the lexer. Pos is the
// byte offset of Value in the pattern, or len(pattern) for TokenEOF.
type Token struct {
	Kind  TokenKind
	Value byte
	Pos   int
}

// Lexer produces one token at a time with a single token of lookahead.
type Lexer struct {
	input string
	pos   int
	tok   Token
}

func NewLexer(pattern string) *Lexer { return &Lexer{input: pattern} }

// Current returns the most recently produced token without consuming input.
func (l *Lexer) Current() Token { return l.tok }

// Advance scans the next token. Once the pattern is exhausted every call
// yields TokenEOF.
func (l *Lexer) Advance() error {
	if l.pos >= len(l.input) {
		l.tok = Token{Kind: TokenEOF, Pos: len(l.input)}
		return nil
	}
	c := l.input[l.pos]
	var kind TokenKind
	switch {
	case isLetter(c):
		kind = TokenLiteral
	case c == '(':
		kind = TokenGroupStart
	case c == ')':
		kind = TokenGroupEnd
	case c == '*':
		kind = TokenStar
	case c == '+':
		kind = TokenPlus
	case c == '|':
		kind = TokenAlternation
	case c == '?':
		kind = TokenOptional
	default:
		return &LexError{Char: c, Pos: l.pos}
	}
	l.tok = Token{Kind: kind, Value: c, Pos: l.pos}
	l.pos++
	return nil
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// Tokens lexes the whole pattern and returns every token before TokenEOF.
func Tokens(pattern string) ([]Token, error) {
	l := NewLexer(pattern)
	var out []Token
	for {
		if err := l.Advance(); err != nil {
			return out, err
		}
		if l.Current().Kind == TokenEOF {
			return out, nil
		}
		out = append(out, l.Current())
	}
}
