package lexer

import (
	"reflect"
	"testing"
)

func kindsOf(chunk string) []int {
	l := NewLexer(chunk, "")
	var kinds []int
	for {
		token := l.NextToken()
		kinds = append(kinds, token.Kind)
		if token.Kind == TOKEN_EOF {
			return kinds
		}
	}
}

func TestLetTokens(t *testing.T) {
	kinds := kindsOf("let a: int = 10;")
	expect := []int{
		TOKEN_KW_LET, TOKEN_IDENTIFIER, TOKEN_SEP_COLON, TOKEN_TYPE,
		TOKEN_OP_ASSIGN, TOKEN_INT, TOKEN_SEP_SEMI, TOKEN_EOF,
	}
	if !reflect.DeepEqual(kinds, expect) {
		t.Fatalf("let tokens %v", kinds)
	}
}

func TestFnTokens(t *testing.T) {
	kinds := kindsOf("fn add(a: int) -> int { return a; }")
	expect := []int{
		TOKEN_KW_FN, TOKEN_IDENTIFIER, TOKEN_SEP_LPAREN, TOKEN_IDENTIFIER,
		TOKEN_SEP_COLON, TOKEN_TYPE, TOKEN_SEP_RPAREN, TOKEN_OP_ARROW,
		TOKEN_TYPE, TOKEN_SEP_LCURLY, TOKEN_KW_RETURN, TOKEN_IDENTIFIER,
		TOKEN_SEP_SEMI, TOKEN_SEP_RCURLY, TOKEN_EOF,
	}
	if !reflect.DeepEqual(kinds, expect) {
		t.Fatalf("fn tokens %v", kinds)
	}
}

func TestMultiCharOperators(t *testing.T) {
	kinds := kindsOf("== <= >= -> = < > -")
	expect := []int{
		TOKEN_OP_EQ, TOKEN_OP_LE, TOKEN_OP_GE, TOKEN_OP_ARROW,
		TOKEN_OP_ASSIGN, TOKEN_OP_LT, TOKEN_OP_GT, TOKEN_OP_SUB, TOKEN_EOF,
	}
	if !reflect.DeepEqual(kinds, expect) {
		t.Fatalf("operator tokens %v", kinds)
	}
}

func TestNumberLiterals(t *testing.T) {
	l := NewLexer("3 3.14 1.2.3", "")

	token := l.NextToken()
	if token.Kind != TOKEN_INT || token.Literal != "3" {
		t.Fatalf("int token %v %q", token.Kind, token.Literal)
	}
	token = l.NextToken()
	if token.Kind != TOKEN_FLOAT || token.Literal != "3.14" {
		t.Fatalf("float token %v %q", token.Kind, token.Literal)
	}
	token = l.NextToken()
	if token.Kind != TOKEN_ILLEGAL || token.Literal != "1.2.3" {
		t.Fatalf("double-dot token %v %q", token.Kind, token.Literal)
	}
}

func TestIllegalCharacter(t *testing.T) {
	l := NewLexer("@", "")
	token := l.NextToken()
	if token.Kind != TOKEN_ILLEGAL || token.Literal != "@" {
		t.Fatalf("illegal token %v %q", token.Kind, token.Literal)
	}
	if l.NextToken().Kind != TOKEN_EOF {
		t.Fatal("lexer did not keep going past the illegal character")
	}
}

func TestCommentsAndLines(t *testing.T) {
	l := NewLexer("let a: int = 1; // first\nlet b: int = 2;", "")
	var lines []int
	for {
		token := l.NextToken()
		if token.Kind == TOKEN_EOF {
			break
		}
		lines = append(lines, token.Line)
	}
	expect := []int{1, 1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 2, 2, 2}
	if !reflect.DeepEqual(lines, expect) {
		t.Fatalf("token lines %v", lines)
	}
}

func TestEOFIsSticky(t *testing.T) {
	l := NewLexer("", "")
	for i := 0; i < 3; i++ {
		if l.NextToken().Kind != TOKEN_EOF {
			t.Fatal("expected EOF")
		}
	}
}
