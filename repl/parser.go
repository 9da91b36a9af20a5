package repl

import (
	"fmt"

	"github.com/lookbusy1344/bignum/bignum"
)

// Parser evaluates a tokenized expression using precedence climbing
// over *bignum.BigUInt values.
type Parser struct {
	tokens []Token
	pos    int
}

// NewParser creates a Parser over tokens (as produced by Tokenize).
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

func (p *Parser) current() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: TokenEOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) advance() Token {
	tok := p.current()
	p.pos++
	return tok
}

// operatorPrecedence ranks the binary operators this language supports;
// higher binds tighter. Shifts bind loosest, below both +/- and */, so
// a + b << c evaluates as (a + b) << c.
func operatorPrecedence(op string) int {
	switch op {
	case "<<", ">>":
		return 1
	case "+", "-":
		return 2
	case "*", "/", "%":
		return 3
	default:
		return 0
	}
}

// Parse evaluates the full token stream and returns the result.
func (p *Parser) Parse() (*bignum.BigUInt, error) {
	result, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	if p.current().Type != TokenEOF {
		return nil, fmt.Errorf("unexpected token %q at position %d", p.current().Value, p.current().Pos)
	}
	return result, nil
}

func (p *Parser) parseExpression(minPrec int) (*bignum.BigUInt, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		tok := p.current()
		if tok.Type != TokenOperator {
			break
		}
		prec := operatorPrecedence(tok.Value)
		if prec == 0 || prec < minPrec {
			break
		}
		p.advance()

		right, err := p.parseExpression(prec + 1)
		if err != nil {
			return nil, err
		}

		left, err = applyOperator(tok.Value, left, right)
		if err != nil {
			return nil, err
		}
	}

	return left, nil
}

func (p *Parser) parsePrimary() (*bignum.BigUInt, error) {
	tok := p.current()

	switch tok.Type {
	case TokenNumber:
		p.advance()
		n := bignum.New()
		n.SetString(tok.Value)
		return n, nil

	case TokenOperator:
		if tok.Value == "-" {
			return nil, fmt.Errorf("negative values are not supported at position %d", tok.Pos)
		}

	case TokenLParen:
		p.advance()
		inner, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		if p.current().Type != TokenRParen {
			return nil, fmt.Errorf("expected ')' at position %d", p.current().Pos)
		}
		p.advance()
		return inner, nil

	case TokenIdent:
		return p.parseCall(tok.Value)
	}

	return nil, fmt.Errorf("unexpected token %q at position %d", tok.Value, tok.Pos)
}

func (p *Parser) parseCall(name string) (*bignum.BigUInt, error) {
	p.advance() // consume the identifier

	if p.current().Type != TokenLParen {
		return nil, fmt.Errorf("expected '(' after %q", name)
	}
	p.advance()

	var args []*bignum.BigUInt
	for {
		arg, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		if p.current().Type == TokenComma {
			p.advance()
			continue
		}
		break
	}

	if p.current().Type != TokenRParen {
		return nil, fmt.Errorf("expected ')' to close call to %q", name)
	}
	p.advance()

	switch name {
	case "pow":
		if len(args) != 2 {
			return nil, fmt.Errorf("pow expects 2 arguments, got %d", len(args))
		}
		rop := bignum.New()
		rop.UiPowU32(args[0].GetU32(), args[1].GetU32())
		return rop, nil

	case "gcd":
		if len(args) != 2 {
			return nil, fmt.Errorf("gcd expects 2 arguments, got %d", len(args))
		}
		rop := bignum.New()
		bignum.Gcd(rop, args[0], args[1])
		return rop, nil

	default:
		return nil, fmt.Errorf("unknown function %q", name)
	}
}

// applyOperator evaluates a single binary operator. A fatal bignum
// contract violation (e.g. a negative Sub) propagates as a panic here;
// Evaluate recovers it at the top of the call stack.
func applyOperator(op string, left, right *bignum.BigUInt) (rop *bignum.BigUInt, err error) {
	rop = bignum.New()

	switch op {
	case "+":
		rop.Add(left, right)
	case "-":
		rop.Sub(left, right)
	case "*":
		rop.Mul(left, right)
	case "/":
		q, r := bignum.New(), bignum.New()
		bignum.FdivQR(q, r, left, right)
		rop = q
	case "%":
		q, r := bignum.New(), bignum.New()
		bignum.FdivQR(q, r, left, right)
		rop = r
	case "<<":
		rop.Mul2Exp(left, uint(right.GetU32()))
	case ">>":
		rop.FdivQ2Exp(left, uint(right.GetU32()))
	default:
		return nil, fmt.Errorf("unsupported operator %q", op)
	}

	return rop, nil
}
