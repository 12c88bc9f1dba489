package parser

import (
	"reflect"
	"strconv"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/tidwall/gjson"

	"github.com/lollipopkit/lime/compiler/ast"
	"github.com/lollipopkit/lime/compiler/lexer"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func parseNoErr(t *testing.T, chunk string) *ast.Program {
	t.Helper()
	program, errs := Parse(chunk, "test")
	if len(errs) > 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	return program
}

func astJSON(t *testing.T, chunk string) string {
	t.Helper()
	j, err := json.Marshal(parseNoErr(t, chunk).JSON())
	if err != nil {
		t.Fatal(err)
	}
	return string(j)
}

// sexp renders an expression tree as op(left,right) for shape assertions.
func sexp(exp ast.Exp) string {
	switch e := exp.(type) {
	case *ast.BinopExp:
		return e.Operator + "(" + sexp(e.Left) + "," + sexp(e.Right) + ")"
	case *ast.IntegerExp:
		return strconv.FormatInt(e.Int, 10)
	case *ast.NameExp:
		return e.Name
	}
	return "?"
}

func firstExp(t *testing.T, chunk string) ast.Exp {
	t.Helper()
	program := parseNoErr(t, chunk)
	if len(program.Stats) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(program.Stats))
	}
	stat, ok := program.Stats[0].(*ast.ExpStat)
	if !ok {
		t.Fatalf("expected expression statement, got %T", program.Stats[0])
	}
	return stat.Exp
}

func TestProductBindsTighterThanSum(t *testing.T) {
	if s := sexp(firstExp(t, "1 + 2 * 3;")); s != "+(1,*(2,3))" {
		t.Fatalf("got %s", s)
	}
}

func TestSamePrecedenceIsLeftAssociative(t *testing.T) {
	if s := sexp(firstExp(t, "1 - 2 - 3;")); s != "-(-(1,2),3)" {
		t.Fatalf("got %s", s)
	}
}

func TestGroupingOverridesPrecedence(t *testing.T) {
	if s := sexp(firstExp(t, "(1 + 2) * 3;")); s != "*(+(1,2),3)" {
		t.Fatalf("got %s", s)
	}
}

func TestRelationalBelowSum(t *testing.T) {
	if s := sexp(firstExp(t, "a + 1 < b * 2;")); s != "<(+(a,1),*(b,2))" {
		t.Fatalf("got %s", s)
	}
}

func TestReparseIsDeterministic(t *testing.T) {
	chunk := `
let a: int = 10;
fn add() -> int {
	if (a < 20) { return a; } else { return 0; }
}
add();`
	if astJSON(t, chunk) != astJSON(t, chunk) {
		t.Fatal("re-parsing identical source produced a different AST")
	}
}

func TestLetStatement(t *testing.T) {
	program := parseNoErr(t, "let pi: float = 3.14;")
	stat, ok := program.Stats[0].(*ast.LetStat)
	if !ok {
		t.Fatalf("expected let statement, got %T", program.Stats[0])
	}
	if stat.Name != "pi" || stat.Type != "float" {
		t.Fatalf("let fields %q %q", stat.Name, stat.Type)
	}
	if _, ok := stat.Exp.(*ast.FloatExp); !ok {
		t.Fatalf("let value %T", stat.Exp)
	}
}

func TestAssignStatement(t *testing.T) {
	program := parseNoErr(t, "a = a + 1;")
	stat, ok := program.Stats[0].(*ast.AssignStat)
	if !ok {
		t.Fatalf("expected assign statement, got %T", program.Stats[0])
	}
	if stat.Name != "a" {
		t.Fatalf("assign name %q", stat.Name)
	}
}

func TestFunctionStatement(t *testing.T) {
	j := astJSON(t, "fn add(x: int, y: float) -> int { return 1; }")

	if typ := gjson.Get(j, "statements.0.type").String(); typ != "FunctionStatement" {
		t.Fatalf("statement type %s", typ)
	}
	if name := gjson.Get(j, "statements.0.name").String(); name != "add" {
		t.Fatalf("fn name %s", name)
	}
	params := gjson.Get(j, "statements.0.parameters")
	if len(params.Array()) != 2 {
		t.Fatalf("params %s", params.Raw)
	}
	if typ := gjson.Get(j, "statements.0.parameters.1.type").String(); typ != "float" {
		t.Fatalf("param type %s", typ)
	}
	if ret := gjson.Get(j, "statements.0.return_type").String(); ret != "int" {
		t.Fatalf("return type %s", ret)
	}
}

func TestIfElseStatement(t *testing.T) {
	program := parseNoErr(t, "if (a < b) { a = 1; } else { a = 2; }")
	stat, ok := program.Stats[0].(*ast.IfStat)
	if !ok {
		t.Fatalf("expected if statement, got %T", program.Stats[0])
	}
	if stat.Else == nil {
		t.Fatal("alternative missing")
	}
	if len(stat.Then.Stats) != 1 || len(stat.Else.Stats) != 1 {
		t.Fatalf("branch sizes %d %d", len(stat.Then.Stats), len(stat.Else.Stats))
	}

	program = parseNoErr(t, "if (a == 1) { a = 2; }")
	if program.Stats[0].(*ast.IfStat).Else != nil {
		t.Fatal("unexpected alternative")
	}
}

func TestCallArgumentsAreParsed(t *testing.T) {
	exp := firstExp(t, "add(1, 2 + 3);")
	call, ok := exp.(*ast.FuncCallExp)
	if !ok {
		t.Fatalf("expected call expression, got %T", exp)
	}
	if call.Callee != "add" || len(call.Args) != 2 {
		t.Fatalf("call %q with %d args", call.Callee, len(call.Args))
	}
	if _, ok := call.Args[1].(*ast.BinopExp); !ok {
		t.Fatalf("second arg %T", call.Args[1])
	}
}

func TestErrorsAccumulate(t *testing.T) {
	// two malformed lets, each missing its `=`
	_, errs := Parse("let x: int 5; let y: float 3.2;", "test")
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(errs), errs)
	}
}

func TestParserReachesEOFPastErrors(t *testing.T) {
	program, errs := Parse("let x: int 5; let ok: int = 1;", "test")
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %v", errs)
	}
	// the healthy statement after the broken one still parses
	found := false
	for _, stat := range program.Stats {
		if let, ok := stat.(*ast.LetStat); ok && let.Name == "ok" {
			found = true
		}
	}
	if !found {
		t.Fatal("statement after the malformed let was lost")
	}
}

func TestNoPrefixRuleError(t *testing.T) {
	_, errs := Parse("@;", "test")
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %v", errs)
	}
}

func TestBrokenStatementIsDiscardedWhole(t *testing.T) {
	program, errs := Parse("let x: int = ;", "test")
	if len(errs) == 0 {
		t.Fatal("expected an error")
	}
	for _, stat := range program.Stats {
		if _, ok := stat.(*ast.LetStat); ok {
			t.Fatal("broken let statement was kept")
		}
	}
}

func TestLexerTokensFlowIntoParser(t *testing.T) {
	l := lexer.NewLexer("1 + 2;", "test")
	p := New(l)
	program := p.ParseProgram()
	if len(p.Errors()) != 0 || len(program.Stats) != 1 {
		t.Fatalf("errs %v stats %d", p.Errors(), len(program.Stats))
	}
	if !reflect.DeepEqual(p.Errors(), []string{}) {
		t.Fatal("error list not empty")
	}
}
