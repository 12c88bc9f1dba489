package codegen

import (
	"testing"

	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
)

func TestLookupWalksParentChain(t *testing.T) {
	outer := NewEnvironment(nil)
	outer.Define("a", constant.NewInt(types.I32, 1), types.I32)

	inner := NewEnvironment(outer)
	if _, typ, ok := inner.Lookup("a"); !ok || !typ.Equal(types.I32) {
		t.Fatal("outer binding not visible from inner frame")
	}
	if _, _, ok := inner.Lookup("missing"); ok {
		t.Fatal("found a name that was never defined")
	}
}

func TestChildFrameShadowsWithoutMutatingParent(t *testing.T) {
	outer := NewEnvironment(nil)
	outer.Define("a", constant.NewInt(types.I32, 1), types.I32)

	inner := NewEnvironment(outer)
	inner.Define("a", constant.NewFloat(types.Float, 2), types.Float)

	if _, typ, _ := inner.Lookup("a"); !typ.Equal(types.Float) {
		t.Fatal("inner frame does not shadow")
	}
	if _, typ, _ := outer.Lookup("a"); !typ.Equal(types.I32) {
		t.Fatal("shadowing mutated the parent frame")
	}
}

func TestInnerBindingUnreachableAfterFrameDiscard(t *testing.T) {
	outer := NewEnvironment(nil)
	inner := NewEnvironment(outer)
	inner.Define("local", constant.NewInt(types.I32, 3), types.I32)

	// the compiler drops the child frame by restoring the parent reference
	if _, _, ok := outer.Lookup("local"); ok {
		t.Fatal("child binding leaked into the parent frame")
	}
}

func TestRedefineOverwritesInSameFrame(t *testing.T) {
	env := NewEnvironment(nil)
	env.Define("a", constant.NewInt(types.I32, 1), types.I32)
	env.Define("a", constant.NewInt(types.I32, 2), types.I32)

	val, _, _ := env.Lookup("a")
	if c, ok := val.(*constant.Int); !ok || c.X.Int64() != 2 {
		t.Fatal("redefine did not overwrite")
	}
}
