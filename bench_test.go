package main

import (
	"testing"

	"github.com/lollipopkit/lime/compiler"
)

const benchChunk = `
let base: int = 100;
fn fib(n: int) -> int {
	if (base < 2) {
		return base;
	}
	return fib() + fib();
}
fn main() -> int {
	let x: int = 1 + 2 * 3 - 4 / 2;
	x = x % 3;
	if (x == 1) {
		return fib();
	} else {
		return base;
	}
	return 0;
}`

func BenchmarkCompile(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, parseErrs, compileErrs := compiler.Compile(benchChunk, "bench.lime")
		if len(parseErrs) != 0 || len(compileErrs) != 0 {
			b.Fatalf("errs %v %v", parseErrs, compileErrs)
		}
	}
}

func BenchmarkCompileCached(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, parseErrs, compileErrs := compiler.CompileCached(benchChunk, "bench.lime")
		if len(parseErrs) != 0 || len(compileErrs) != 0 {
			b.Fatalf("errs %v %v", parseErrs, compileErrs)
		}
	}
}
