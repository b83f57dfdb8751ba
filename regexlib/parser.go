package regexlib

// Parser is an LL(1) recursive-descent parser over the Lexer's token stream.
//
//	regex         := alternation EOF
//	alternation   := concatenation ( '|' alternation )?
//	concatenation := repetition+
//	repetition    := primary ( '*' | '+' | '?' )?
//	primary       := LITERAL | '(' alternation ')'
type Parser struct {
	lex *Lexer
}

func NewParser(pattern string) *Parser {
	return &Parser{lex: NewLexer(pattern)}
}

// Parse returns the root of the tree. The first lex or grammar error aborts
// the whole parse.
func (p *Parser) Parse() (*Node, error) {
	if err := p.lex.Advance(); err != nil {
		return nil, err
	}
	return p.parseRegex()
}

func (p *Parser) look() TokenKind { return p.lex.Current().Kind }

// match consumes the current token if it is of the expected kind.
func (p *Parser) match(expected TokenKind) error {
	tok := p.lex.Current()
	if tok.Kind != expected {
		return &ParseError{Expected: expected, Found: tok.Kind, Pos: tok.Pos}
	}
	return p.lex.Advance()
}

func (p *Parser) parseRegex() (*Node, error) {
	n, err := p.parseAlternation()
	if err != nil {
		return nil, err
	}
	if err := p.match(TokenEOF); err != nil {
		return nil, err
	}
	return n, nil
}

func (p *Parser) parseAlternation() (*Node, error) {
	left, err := p.parseConcatenation()
	if err != nil {
		return nil, err
	}
	if p.look() != TokenAlternation {
		return left, nil
	}
	if err := p.match(TokenAlternation); err != nil {
		return nil, err
	}
	right, err := p.parseAlternation()
	if err != nil {
		return nil, err
	}
	return NewNode(NodeAlternation, '|', left, right), nil
}

func (p *Parser) parseConcatenation() (*Node, error) {
	first, err := p.parseRepetition()
	if err != nil {
		return nil, err
	}
	nodes := []*Node{first}
	for p.look() == TokenLiteral || p.look() == TokenGroupStart {
		n, err := p.parseRepetition()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	if len(nodes) == 1 {
		return first, nil
	}
	return NewNode(NodeConcat, '.', nodes...), nil
}

func (p *Parser) parseRepetition() (*Node, error) {
	primary, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	var kind NodeKind
	switch p.look() {
	case TokenStar:
		kind = NodeStar
	case TokenPlus:
		kind = NodePlus
	case TokenOptional:
		kind = NodeOptional
	default:
		return primary, nil
	}
	op := p.lex.Current().Value
	if err := p.match(p.look()); err != nil {
		return nil, err
	}
	return NewNode(kind, op, primary), nil
}

func (p *Parser) parsePrimary() (*Node, error) {
	if tok := p.lex.Current(); tok.Kind == TokenLiteral {
		if err := p.match(TokenLiteral); err != nil {
			return nil, err
		}
		return Literal(tok.Value), nil
	}
	if err := p.match(TokenGroupStart); err != nil {
		return nil, err
	}
	inner, err := p.parseAlternation()
	if err != nil {
		return nil, err
	}
	if err := p.match(TokenGroupEnd); err != nil {
		return nil, err
	}
	return NewNode(NodeGroup, 'G', inner), nil
}
