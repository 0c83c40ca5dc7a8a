package formula

import (
	"fmt"

	"github.com/gnolang/ndcheck/internal/types"
)

// TokenType defines the lexical classes of a formula.
type TokenType int

const (
	TokenPredicate TokenType = iota // uppercase letter
	TokenTerm                       // lowercase letter
	TokenNot                        // ¬
	TokenAnd                        // ∧
	TokenOr                         // ∨
	TokenImplies                    // →
	TokenIff                        // ↔
	TokenForall                     // ∀
	TokenExists                     // ∃
	TokenBottom                     // ⊥
	TokenLParen                     // (
	TokenRParen                     // )
	TokenComma                      // ,
	TokenEOF
)

func (t TokenType) String() string {
	switch t {
	case TokenPredicate:
		return "predicate"
	case TokenTerm:
		return "term"
	case TokenNot:
		return "¬"
	case TokenAnd:
		return "∧"
	case TokenOr:
		return "∨"
	case TokenImplies:
		return "→"
	case TokenIff:
		return "↔"
	case TokenForall:
		return "∀"
	case TokenExists:
		return "∃"
	case TokenBottom:
		return "⊥"
	case TokenLParen:
		return "("
	case TokenRParen:
		return ")"
	case TokenComma:
		return ","
	case TokenEOF:
		return "end of formula"
	default:
		return "?"
	}
}

// Token is a single lexical token of a formula.
type Token struct {
	Type     TokenType
	Value    string
	Position int // rune offset in the normalized input
}

var symbolTokens = map[rune]TokenType{
	'¬': TokenNot,
	'∧': TokenAnd,
	'∨': TokenOr,
	'→': TokenImplies,
	'↔': TokenIff,
	'∀': TokenForall,
	'∃': TokenExists,
	'⊥': TokenBottom,
	'(': TokenLParen,
	')': TokenRParen,
	',': TokenComma,
}

// Lexer scans a normalized formula into tokens.
type Lexer struct {
	input    []rune
	position int
	tokens   []Token
}

// NewLexer returns a Lexer over the normalized form of input.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input:  []rune(Normalize(input)),
		tokens: make([]Token, 0),
	}
}

// Tokenize processes the entire input. It fails on the first
// character that is not part of the formula alphabet.
func (l *Lexer) Tokenize() ([]Token, error) {
	for l.position < len(l.input) {
		c := l.input[l.position]
		switch {
		case c >= 'A' && c <= 'Z':
			l.addToken(TokenPredicate, string(c))
		case c >= 'a' && c <= 'z':
			l.addToken(TokenTerm, string(c))
		default:
			typ, ok := symbolTokens[c]
			if !ok {
				return nil, types.Errorf(types.KindMalformedFormula,
					"unknown symbol %q at position %d", c, l.position+1)
			}
			l.addToken(typ, string(c))
		}
		l.position++
	}
	l.addToken(TokenEOF, "")
	return l.tokens, nil
}

func (l *Lexer) addToken(typ TokenType, value string) {
	l.tokens = append(l.tokens, Token{Type: typ, Value: value, Position: l.position})
}

func (t Token) String() string {
	if t.Value == "" {
		return t.Type.String()
	}
	return fmt.Sprintf("%q", t.Value)
}
