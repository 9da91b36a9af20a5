package repl

import "testing"

func TestTokenizeSimpleExpression(t *testing.T) {
	tokens := Tokenize("12 + 34")

	want := []struct {
		typ TokenType
		val string
	}{
		{TokenNumber, "12"},
		{TokenOperator, "+"},
		{TokenNumber, "34"},
		{TokenEOF, ""},
	}

	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %#v", len(tokens), len(want), tokens)
	}
	for i, w := range want {
		if tokens[i].Type != w.typ || tokens[i].Value != w.val {
			t.Errorf("token %d = %+v, want type=%v value=%q", i, tokens[i], w.typ, w.val)
		}
	}
}

func TestTokenizeShiftOperators(t *testing.T) {
	tokens := Tokenize("1 << 2 >> 3")
	var ops []string
	for _, tok := range tokens {
		if tok.Type == TokenOperator {
			ops = append(ops, tok.Value)
		}
	}
	if len(ops) != 2 || ops[0] != "<<" || ops[1] != ">>" {
		t.Errorf("got operators %v, want [<< >>]", ops)
	}
}

func TestTokenizeFunctionCall(t *testing.T) {
	tokens := Tokenize("pow(2, 10)")
	wantTypes := []TokenType{TokenIdent, TokenLParen, TokenNumber, TokenComma, TokenNumber, TokenRParen, TokenEOF}
	if len(tokens) != len(wantTypes) {
		t.Fatalf("got %d tokens, want %d: %#v", len(tokens), len(wantTypes), tokens)
	}
	for i, wt := range wantTypes {
		if tokens[i].Type != wt {
			t.Errorf("token %d type = %v, want %v", i, tokens[i].Type, wt)
		}
	}
}

func TestTokenizeEmptyInputYieldsEOF(t *testing.T) {
	tokens := Tokenize("")
	if len(tokens) != 1 || tokens[0].Type != TokenEOF {
		t.Errorf("got %#v, want single EOF token", tokens)
	}
}
