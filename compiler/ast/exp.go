package ast

// Numeral
type IntegerExp struct {
	Line int
	Int  int64
}
type FloatExp struct {
	Line  int
	Float float64
}

type BoolExp struct {
	Line int
	Bool bool
}

type NameExp struct {
	Line int
	Name string
}

// exp1 op exp2; Op is a lexer token kind, Operator its literal text.
type BinopExp struct {
	Line     int // line of operator
	Op       int
	Operator string
	Left     Exp
	Right    Exp
}

// Callee ( Args )
type FuncCallExp struct {
	Line   int // line of `(`
	Callee string
	Args   []Exp
}

func (self *IntegerExp) Kind() NodeKind  { return KindIntegerExp }
func (self *FloatExp) Kind() NodeKind    { return KindFloatExp }
func (self *BoolExp) Kind() NodeKind     { return KindBoolExp }
func (self *NameExp) Kind() NodeKind     { return KindNameExp }
func (self *BinopExp) Kind() NodeKind    { return KindBinopExp }
func (self *FuncCallExp) Kind() NodeKind { return KindFuncCallExp }

func (*IntegerExp) expNode()  {}
func (*FloatExp) expNode()    {}
func (*BoolExp) expNode()     {}
func (*NameExp) expNode()     {}
func (*BinopExp) expNode()    {}
func (*FuncCallExp) expNode() {}

func (self *IntegerExp) JSON() map[string]any {
	return map[string]any{"type": string(KindIntegerExp), "value": self.Int}
}

func (self *FloatExp) JSON() map[string]any {
	return map[string]any{"type": string(KindFloatExp), "value": self.Float}
}

func (self *BoolExp) JSON() map[string]any {
	return map[string]any{"type": string(KindBoolExp), "value": self.Bool}
}

func (self *NameExp) JSON() map[string]any {
	return map[string]any{"type": string(KindNameExp), "value": self.Name}
}

func (self *BinopExp) JSON() map[string]any {
	return map[string]any{
		"type":       string(KindBinopExp),
		"operator":   self.Operator,
		"left_node":  self.Left.JSON(),
		"right_node": self.Right.JSON(),
	}
}

func (self *FuncCallExp) JSON() map[string]any {
	args := make([]any, 0, len(self.Args))
	for _, arg := range self.Args {
		args = append(args, arg.JSON())
	}
	return map[string]any{
		"type":      string(KindFuncCallExp),
		"function":  self.Callee,
		"arguments": args,
	}
}
