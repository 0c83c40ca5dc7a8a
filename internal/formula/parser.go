package formula

import (
	"github.com/gnolang/ndcheck/internal/types"
)

// Precedence levels, lowest to highest:
//  1. ↔  (left-associative)
//  2. →  (right-associative)
//  3. ∧ ∨ (left-associative)
//
// ¬ and the quantifiers are prefix operators scoping over the
// immediately following subformula, so they bind tighter than any
// binary connective.
const (
	precNone = iota
	precIff
	precImplies
	precJunction
)

func tokenPrecedence(t TokenType) int {
	switch t {
	case TokenIff:
		return precIff
	case TokenImplies:
		return precImplies
	case TokenAnd, TokenOr:
		return precJunction
	default:
		return precNone
	}
}

var binaryOps = map[TokenType]Op{
	TokenAnd:     OpAnd,
	TokenOr:      OpOr,
	TokenImplies: OpImplies,
	TokenIff:     OpIff,
}

// Parser turns formula text into expression trees. It holds no state,
// so one Parser may be shared by any number of goroutines.
type Parser struct{}

// NewParser returns a formula parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse builds the expression tree of s. It fails with a
// KindMalformedFormula error when s is not a well-formed formula.
func (p *Parser) Parse(s string) (*Node, error) {
	tokens, err := NewLexer(s).Tokenize()
	if err != nil {
		return nil, err
	}
	if len(tokens) == 1 {
		return nil, types.Errorf(types.KindMalformedFormula, "empty formula")
	}

	st := &parseState{tokens: tokens}
	node, err := st.parseFormula(precIff)
	if err != nil {
		return nil, err
	}
	if tok := st.current(); tok.Type != TokenEOF {
		if tok.Type == TokenRParen {
			return nil, st.errorf("unbalanced parentheses: unexpected \")\"")
		}
		return nil, st.errorf("unexpected %s after complete formula", tok)
	}
	return node, nil
}

// MustParse is like Parse but panics on malformed input.
// It is meant for tests and for formulas known at compile time.
func (p *Parser) MustParse(s string) *Node {
	n, err := p.Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

// parseState is the cursor of a single Parse call.
type parseState struct {
	tokens []Token
	pos    int
}

func (st *parseState) current() Token {
	return st.tokens[st.pos]
}

func (st *parseState) advance() Token {
	tok := st.tokens[st.pos]
	if tok.Type != TokenEOF {
		st.pos++
	}
	return tok
}

func (st *parseState) errorf(format string, args ...any) error {
	return types.Errorf(types.KindMalformedFormula, format, args...)
}

func (st *parseState) parseFormula(minPrec int) (*Node, error) {
	left, err := st.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		tok := st.current()
		prec := tokenPrecedence(tok.Type)
		if prec == precNone || prec < minPrec {
			return left, nil
		}
		st.advance()

		nextPrec := prec + 1
		if tok.Type == TokenImplies {
			nextPrec = prec
		}

		if st.current().Type == TokenEOF {
			return nil, st.errorf("missing right operand of %s", tok.Type)
		}
		right, err := st.parseFormula(nextPrec)
		if err != nil {
			return nil, err
		}
		left = Binary(binaryOps[tok.Type], left, right)
	}
}

func (st *parseState) parseUnary() (*Node, error) {
	tok := st.current()
	switch tok.Type {
	case TokenNot:
		st.advance()
		if st.current().Type == TokenEOF {
			return nil, st.errorf("missing operand of ¬")
		}
		operand, err := st.parseUnary()
		if err != nil {
			return nil, err
		}
		return Not(operand), nil

	case TokenForall, TokenExists:
		st.advance()
		v := st.current()
		if v.Type != TokenTerm {
			return nil, st.errorf("%s must be followed by a variable", tok.Type)
		}
		if !IsVariableTerm(v.Value) {
			return nil, st.errorf("%s binds %q, which is a name, not a variable (s–z)", tok.Type, v.Value)
		}
		st.advance()
		if st.current().Type == TokenEOF {
			return nil, st.errorf("%s%s must be followed by a formula", tok.Type, v.Value)
		}
		body, err := st.parseUnary()
		if err != nil {
			return nil, err
		}
		op := OpForall
		if tok.Type == TokenExists {
			op = OpExists
		}
		return Quantified(op, v.Value, body), nil
	}

	return st.parsePrimary()
}

func (st *parseState) parsePrimary() (*Node, error) {
	tok := st.advance()
	switch tok.Type {
	case TokenLParen:
		if st.current().Type == TokenRParen {
			return nil, st.errorf("empty parentheses")
		}
		inner, err := st.parseFormula(precIff)
		if err != nil {
			return nil, err
		}
		if st.current().Type != TokenRParen {
			return nil, st.errorf("unbalanced parentheses: expected \")\" but found %s", st.current())
		}
		st.advance()
		return inner, nil

	case TokenPredicate:
		terms, err := st.parseTerms()
		if err != nil {
			return nil, err
		}
		return Atom(tok.Value, terms...), nil

	case TokenBottom:
		return Bottom(), nil

	case TokenEOF:
		return nil, st.errorf("missing operand")

	case TokenRParen:
		return nil, st.errorf("unbalanced parentheses: unexpected \")\"")

	case TokenTerm:
		return nil, st.errorf("term %q must follow a predicate", tok.Value)
	}

	return nil, st.errorf("missing operand before %s", tok.Type)
}

// parseTerms reads the arguments of a predicate, written either as
// juxtaposed letters (Pxa) or as a parenthesized list (P(x,a)).
func (st *parseState) parseTerms() ([]string, error) {
	var terms []string
	if st.current().Type == TokenLParen && st.peek().Type == TokenTerm {
		st.advance()
		for {
			t := st.advance()
			if t.Type != TokenTerm {
				return nil, st.errorf("expected a term in argument list, found %s", t)
			}
			terms = append(terms, t.Value)

			next := st.advance()
			if next.Type == TokenRParen {
				return terms, nil
			}
			if next.Type != TokenComma {
				return nil, st.errorf("unbalanced parentheses in argument list")
			}
		}
	}

	for st.current().Type == TokenTerm {
		terms = append(terms, st.advance().Value)
	}
	return terms, nil
}

func (st *parseState) peek() Token {
	if st.pos+1 < len(st.tokens) {
		return st.tokens[st.pos+1]
	}
	return st.tokens[len(st.tokens)-1]
}
