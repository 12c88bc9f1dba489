package codegen

import (
	"fmt"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"

	. "github.com/lollipopkit/lime/compiler/ast"
)

// context carries everything one module compilation mutates: the module under
// construction, the insertion cursor (fn + block), the active scope frame and
// the error list. A fresh context is built per module; there is no reset.
type context struct {
	module *ir.Module
	initFn *ir.Func
	fn     *ir.Func
	block  *ir.Block
	env    *Environment
	typs   map[string]types.Type
	errs   []string

	counter int // unique suffix for branch block names
}

func newContext() *context {
	ctx := &context{
		module: ir.NewModule(),
		env:    NewEnvironment(nil),
		typs: map[string]types.Type{
			"int":   types.I32,
			"float": types.Float,
			"bool":  types.I1,
		},
		errs: []string{},
	}

	// top-level statements land in a synthetic void function so that
	// expressions outside any fn still get a block to emit into
	ctx.initFn = ctx.module.NewFunc("__init", types.Void)
	ctx.fn = ctx.initFn
	ctx.block = ctx.initFn.NewBlock("__init_entry")

	ctx.defineBuiltins()
	return ctx
}

func (self *context) defineBuiltins() {
	trueVar := self.module.NewGlobalDef("true", constant.True)
	trueVar.Immutable = true
	falseVar := self.module.NewGlobalDef("false", constant.False)
	falseVar.Immutable = true

	self.env.Define("true", trueVar, types.I1)
	self.env.Define("false", falseVar, types.I1)
}

func (self *context) nextID() int {
	self.counter++
	return self.counter
}

func (self *context) errorf(format string, args ...any) {
	self.errs = append(self.errs, fmt.Sprintf(format, args...))
}

// GenModule lowers a parsed program into an IR module. The module is only
// well-formed when the returned error list is empty; callers must check it
// before handing the module to a verifier or executor.
func GenModule(program *Program) (*ir.Module, []string) {
	ctx := newContext()
	for _, stat := range program.Stats {
		if ctx.block.Term != nil {
			break
		}
		cgStat(ctx, stat)
	}
	if ctx.block.Term == nil {
		ctx.block.NewRet(nil)
	}
	return ctx.module, ctx.errs
}
