package compiler

import (
	"strings"
	"testing"
)

const goodChunk = `
let a: int = 10;
let b: int = 20;
fn add() -> int {
	return a + b;
}
fn main() -> int {
	return add();
}`

func TestPipelineCompilesCleanSource(t *testing.T) {
	module, parseErrs, compileErrs := Compile(goodChunk, "test.lime")
	if len(parseErrs) != 0 || len(compileErrs) != 0 {
		t.Fatalf("errs %v %v", parseErrs, compileErrs)
	}
	asm := module.String()
	for _, want := range []string{
		"@a = global i32 10",
		"@b = global i32 20",
		"define i32 @add()",
		"define i32 @main()",
		"call i32 @add()",
	} {
		if !strings.Contains(asm, want) {
			t.Fatalf("missing %q in:\n%s", want, asm)
		}
	}
}

func TestParseErrorsAbortBeforeCodegen(t *testing.T) {
	module, parseErrs, compileErrs := Compile("let x: int 5;", "test.lime")
	if module != nil {
		t.Fatal("module must not be produced alongside parse errors")
	}
	if len(parseErrs) != 1 || compileErrs != nil {
		t.Fatalf("errs %v %v", parseErrs, compileErrs)
	}
}

func TestCompileErrorsAreForwarded(t *testing.T) {
	_, parseErrs, compileErrs := Compile("1 + 1.5;", "test.lime")
	if len(parseErrs) != 0 || len(compileErrs) != 1 {
		t.Fatalf("errs %v %v", parseErrs, compileErrs)
	}
}

func TestCachedCompileReturnsSameModule(t *testing.T) {
	first, _, _ := CompileCached(goodChunk, "test.lime")
	second, _, _ := CompileCached(goodChunk, "test.lime")
	if first == nil || first != second {
		t.Fatal("expected the cached module on the second compile")
	}
}

func TestFailedCompileIsNotCached(t *testing.T) {
	bad := "1 + 2.5;"
	module, _, errs := CompileCached(bad, "test.lime")
	if len(errs) == 0 {
		t.Fatal("expected a compile error")
	}
	again, _, errs2 := CompileCached(bad, "test.lime")
	if len(errs2) == 0 {
		t.Fatal("error result must not be served from cache")
	}
	_ = module
	_ = again
}
