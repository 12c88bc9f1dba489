package codegen

import (
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

type binding struct {
	val value.Value
	typ types.Type
}

// Environment is one frame of the lexical scope chain. A frame is created on
// entering a function body and dropped when the compiler restores the
// enclosing frame; parent is a back-reference only.
type Environment struct {
	parent  *Environment
	records map[string]binding
}

func NewEnvironment(parent *Environment) *Environment {
	return &Environment{
		parent:  parent,
		records: map[string]binding{},
	}
}

// Define inserts or overwrites a binding in this frame only. A same-named
// binding in a child frame shadows the parent's without touching it.
func (self *Environment) Define(name string, val value.Value, typ types.Type) {
	self.records[name] = binding{val, typ}
}

// Lookup searches this frame, then each ancestor, returning the first match.
func (self *Environment) Lookup(name string) (value.Value, types.Type, bool) {
	for env := self; env != nil; env = env.parent {
		if rec, ok := env.records[name]; ok {
			return rec.val, rec.typ, true
		}
	}
	return nil, nil, false
}
