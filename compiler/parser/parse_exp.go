package parser

import (
	"github.com/lollipopkit/lime/compiler/ast"
	. "github.com/lollipopkit/lime/compiler/lexer"
	"github.com/lollipopkit/lime/utils"
)

// precedence levels, lowest to highest
const (
	_LOWEST = iota
	_EQUALITY
	_RELATIONAL
	_SUM
	_PRODUCT
	_EXPONENT
	_PREFIX
	_CALL
	_INDEX
)

var precedences = map[int]int{
	TOKEN_OP_EQ:      _EQUALITY,
	TOKEN_OP_LT:      _RELATIONAL,
	TOKEN_OP_LE:      _RELATIONAL,
	TOKEN_OP_GT:      _RELATIONAL,
	TOKEN_OP_GE:      _RELATIONAL,
	TOKEN_OP_ADD:     _SUM,
	TOKEN_OP_SUB:     _SUM,
	TOKEN_OP_MUL:     _PRODUCT,
	TOKEN_OP_DIV:     _PRODUCT,
	TOKEN_OP_MOD:     _PRODUCT,
	TOKEN_OP_POW:     _EXPONENT,
	TOKEN_SEP_LPAREN: _CALL,
}

func precedenceOf(kind int) int {
	if prec, ok := precedences[kind]; ok {
		return prec
	}
	return _LOWEST
}

// parseExp climbs precedences: the prefix rule of the current token yields
// the left operand, then every upcoming operator binding tighter than the
// given bound folds it into a new left operand. Same-precedence chains stay
// left-associative because each recursion passes the operator's own level.
func (self *Parser) parseExp(precedence int) ast.Exp {
	prefix := self.prefixParseFns[self.cur.Kind]
	if prefix == nil {
		self.noPrefixParseFnError(self.cur)
		return nil
	}
	left := prefix()
	if left == nil {
		return nil
	}

	for !self.peekIs(TOKEN_SEP_SEMI) && precedence < precedenceOf(self.peek.Kind) {
		infix := self.infixParseFns[self.peek.Kind]
		if infix == nil {
			return left
		}
		self.nextToken()
		left = infix(left)
		if left == nil {
			return nil
		}
	}
	return left
}

func (self *Parser) parseBinopExp(left ast.Exp) ast.Exp {
	op := self.cur
	precedence := precedenceOf(op.Kind)

	self.nextToken()
	right := self.parseExp(precedence)
	if right == nil {
		return nil
	}

	return &ast.BinopExp{
		Line:     op.Line,
		Op:       op.Kind,
		Operator: op.Literal,
		Left:     left,
		Right:    right,
	}
}

// callee ( [exp {, exp}] )
func (self *Parser) parseFuncCallExp(left ast.Exp) ast.Exp {
	name, ok := left.(*ast.NameExp)
	if !ok {
		self.errorf("line %d: expected an identifier before '('", self.cur.Line)
		return nil
	}

	call := &ast.FuncCallExp{Line: self.cur.Line, Callee: name.Name, Args: []ast.Exp{}}
	if self.peekIs(TOKEN_SEP_RPAREN) {
		self.nextToken()
		return call
	}

	self.nextToken()
	arg := self.parseExp(_LOWEST)
	if arg == nil {
		return nil
	}
	call.Args = append(call.Args, arg)

	for self.peekIs(TOKEN_SEP_COMMA) {
		self.nextToken()
		self.nextToken()
		arg := self.parseExp(_LOWEST)
		if arg == nil {
			return nil
		}
		call.Args = append(call.Args, arg)
	}

	if !self.expectPeek(TOKEN_SEP_RPAREN) {
		return nil
	}
	return call
}

// ( exp )
func (self *Parser) parseGroupedExp() ast.Exp {
	self.nextToken()

	exp := self.parseExp(_LOWEST)
	if exp == nil {
		return nil
	}
	if !self.expectPeek(TOKEN_SEP_RPAREN) {
		return nil
	}
	return exp
}

func (self *Parser) parseIntegerExp() ast.Exp {
	i, ok := utils.ParseInteger(self.cur.Literal)
	if !ok {
		self.errorf("line %d: could not parse %q as an integer", self.cur.Line, self.cur.Literal)
		return nil
	}
	return &ast.IntegerExp{Line: self.cur.Line, Int: i}
}

func (self *Parser) parseFloatExp() ast.Exp {
	f, ok := utils.ParseFloat(self.cur.Literal)
	if !ok {
		self.errorf("line %d: could not parse %q as a float", self.cur.Line, self.cur.Literal)
		return nil
	}
	return &ast.FloatExp{Line: self.cur.Line, Float: f}
}

func (self *Parser) parseBoolExp() ast.Exp {
	return &ast.BoolExp{Line: self.cur.Line, Bool: self.curIs(TOKEN_KW_TRUE)}
}

func (self *Parser) parseNameExp() ast.Exp {
	return &ast.NameExp{Line: self.cur.Line, Name: self.cur.Literal}
}
