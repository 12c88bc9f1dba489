package compiler

import (
	"github.com/llir/llvm/ir"
	glc "github.com/lollipopkit/go-lru-cacher"

	"github.com/lollipopkit/lime/compiler/codegen"
	"github.com/lollipopkit/lime/compiler/parser"
	"github.com/lollipopkit/lime/utils"
)

var moduleCacher = glc.NewCacher[*ir.Module](16)

// Compile runs the whole pipeline on one chunk. A non-empty parse error list
// aborts before code generation; a non-empty compile error list means the
// returned module is not well-formed and must not be executed.
func Compile(chunk, chunkName string) (*ir.Module, []string, []string) {
	program, parseErrs := parser.Parse(chunk, chunkName)
	if len(parseErrs) > 0 {
		return nil, parseErrs, nil
	}
	module, compileErrs := codegen.GenModule(program)
	return module, nil, compileErrs
}

// CompileCached serves byte-identical chunks from an LRU cache keyed by
// source hash. Each miss still uses a fresh compiler context.
func CompileCached(chunk, chunkName string) (*ir.Module, []string, []string) {
	key := utils.Md5([]byte(chunk))
	if cached, ok := moduleCacher.Get(key); ok {
		return *cached, nil, nil
	}

	module, parseErrs, compileErrs := Compile(chunk, chunkName)
	if len(parseErrs) == 0 && len(compileErrs) == 0 {
		moduleCacher.Set(key, &module)
	}
	return module, parseErrs, compileErrs
}
