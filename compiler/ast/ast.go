package ast

// NodeKind tags every AST node and names it in the JSON dump.
type NodeKind string

const (
	KindProgram NodeKind = "Program"

	KindExpStat    NodeKind = "ExpressionStatement"
	KindLetStat    NodeKind = "LetStatement"
	KindAssignStat NodeKind = "AssignStatement"
	KindRetStat    NodeKind = "ReturnStatement"
	KindBlockStat  NodeKind = "BlockStatement"
	KindIfStat     NodeKind = "IfStatement"
	KindFuncStat   NodeKind = "FunctionStatement"

	KindBinopExp    NodeKind = "InfixExpression"
	KindFuncCallExp NodeKind = "CallExpression"
	KindIntegerExp  NodeKind = "IntegerLiteral"
	KindFloatExp    NodeKind = "FloatLiteral"
	KindBoolExp     NodeKind = "BooleanLiteral"
	KindNameExp     NodeKind = "IdentifierLiteral"
)

// Node is implemented by every AST variant. JSON returns the node as
// {"type": <kind>, ...fields}, fields serialized recursively the same way.
type Node interface {
	Kind() NodeKind
	JSON() map[string]any
}

// Stat and Exp are closed over the variants of this package; the marker
// methods keep foreign types out of the trees.
type Stat interface {
	Node
	statNode()
}

type Exp interface {
	Node
	expNode()
}

// Program is the root node. It is mutated only while parsing.
type Program struct {
	Stats []Stat
}

func (self *Program) Kind() NodeKind { return KindProgram }

func (self *Program) JSON() map[string]any {
	stats := make([]any, 0, len(self.Stats))
	for _, stat := range self.Stats {
		stats = append(stats, stat.JSON())
	}
	return map[string]any{
		"type":       string(KindProgram),
		"statements": stats,
	}
}
