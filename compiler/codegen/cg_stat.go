package codegen

import (
	"fmt"

	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"

	. "github.com/lollipopkit/lime/compiler/ast"
)

func cgStat(ctx *context, node Stat) {
	switch stat := node.(type) {
	case *ExpStat:
		resolveExp(ctx, stat.Exp)
	case *LetStat:
		cgLetStat(ctx, stat)
	case *AssignStat:
		cgAssignStat(ctx, stat)
	case *RetStat:
		cgRetStat(ctx, stat)
	case *IfStat:
		cgIfStat(ctx, stat)
	case *FuncStat:
		cgFuncStat(ctx, stat)
	case *Block:
		cgBlock(ctx, stat)
	}
}

// cgBlock compiles statements into the current cursor block. Once a
// terminator lands the block is closed, so the remaining statements of the
// block are unreachable and dropped.
func cgBlock(ctx *context, block *Block) {
	for _, stat := range block.Stats {
		if ctx.block.Term != nil {
			return
		}
		cgStat(ctx, stat)
	}
}

func cgLetStat(ctx *context, node *LetStat) {
	val, typ := resolveExp(ctx, node.Exp)
	if val == nil {
		return
	}

	// a re-let stores into the existing slot and keeps its original type
	if ptr, _, ok := ctx.env.Lookup(node.Name); ok {
		ctx.block.NewStore(val, ptr)
		return
	}

	// module-scope lets become globals, so other functions can reach them.
	// There is no stack frame outside a function, so the initializer must
	// fold to a constant.
	if ctx.fn == ctx.initFn {
		c, ok := val.(constant.Constant)
		if !ok {
			ctx.errorf("line %d: top-level let '%s' requires a constant initializer",
				node.Line, node.Name)
			return
		}
		global := ctx.module.NewGlobalDef(node.Name, c)
		ctx.env.Define(node.Name, global, typ)
		return
	}

	ptr := ctx.block.NewAlloca(typ)
	ctx.block.NewStore(val, ptr)
	ctx.env.Define(node.Name, ptr, typ)
}

func cgAssignStat(ctx *context, node *AssignStat) {
	val, _ := resolveExp(ctx, node.Exp)
	if val == nil {
		return
	}

	ptr, _, ok := ctx.env.Lookup(node.Name)
	if !ok {
		ctx.errorf("line %d: identifier '%s' has not been declared before it was re-assigned",
			node.Line, node.Name)
		return
	}
	ctx.block.NewStore(val, ptr)
}

func cgRetStat(ctx *context, node *RetStat) {
	// the synthetic top-level function is void; a ret with a value there
	// would leave the module malformed with no error to show for it
	if ctx.fn == ctx.initFn {
		ctx.errorf("line %d: return outside of a function", node.Line)
		return
	}

	val, _ := resolveExp(ctx, node.Exp)
	if val == nil {
		return
	}
	ctx.block.NewRet(val)
}

func cgIfStat(ctx *context, node *IfStat) {
	cond, condType := resolveExp(ctx, node.Cond)
	if cond == nil {
		return
	}
	if !condType.Equal(types.I1) {
		ctx.errorf("line %d: if condition must be a bool, got %s",
			node.Line, typeName(condType))
		return
	}

	id := ctx.nextID()
	if node.Else == nil {
		thenBlock := ctx.fn.NewBlock(fmt.Sprintf("if_then_%d", id))
		endBlock := ctx.fn.NewBlock(fmt.Sprintf("if_end_%d", id))
		ctx.block.NewCondBr(cond, thenBlock, endBlock)

		ctx.block = thenBlock
		cgBlock(ctx, node.Then)
		if ctx.block.Term == nil {
			ctx.block.NewBr(endBlock)
		}
		ctx.block = endBlock
		return
	}

	thenBlock := ctx.fn.NewBlock(fmt.Sprintf("if_then_%d", id))
	elseBlock := ctx.fn.NewBlock(fmt.Sprintf("if_else_%d", id))
	endBlock := ctx.fn.NewBlock(fmt.Sprintf("if_end_%d", id))
	ctx.block.NewCondBr(cond, thenBlock, elseBlock)

	ctx.block = thenBlock
	cgBlock(ctx, node.Then)
	if ctx.block.Term == nil {
		ctx.block.NewBr(endBlock)
	}

	ctx.block = elseBlock
	cgBlock(ctx, node.Else)
	if ctx.block.Term == nil {
		ctx.block.NewBr(endBlock)
	}

	ctx.block = endBlock
}

func cgFuncStat(ctx *context, node *FuncStat) {
	retType, ok := ctx.typs[node.RetType]
	if !ok {
		ctx.errorf("line %d: unknown type '%s'", node.Line, node.RetType)
		return
	}

	// parameter types are parsed but not lowered into the signature yet;
	// calls invoke every function with zero arguments
	fn := ctx.module.NewFunc(node.Name, retType)

	// registered in the enclosing frame before the body compiles, so the
	// function can call itself and siblings declared earlier
	ctx.env.Define(node.Name, fn, retType)

	prevFn, prevBlock, prevEnv := ctx.fn, ctx.block, ctx.env
	ctx.fn = fn
	ctx.block = fn.NewBlock(node.Name + "_entry")
	ctx.env = NewEnvironment(prevEnv)

	cgBlock(ctx, node.Body)

	if ctx.block.Term == nil {
		ctx.errorf("line %d: function '%s' falls off the end of its body without a return",
			node.Body.LastLine, node.Name)
	}

	ctx.fn, ctx.block, ctx.env = prevFn, prevBlock, prevEnv
}
