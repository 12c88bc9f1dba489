package parser

import (
	"github.com/lollipopkit/lime/compiler/ast"
	. "github.com/lollipopkit/lime/compiler/lexer"
)

func (self *Parser) parseStat() ast.Stat {
	switch self.cur.Kind {
	case TOKEN_KW_LET:
		return self.parseLetStat()
	case TOKEN_KW_FN:
		return self.parseFuncStat()
	case TOKEN_KW_RETURN:
		return self.parseRetStat()
	case TOKEN_KW_IF:
		return self.parseIfStat()
	case TOKEN_IDENTIFIER:
		if self.peekIs(TOKEN_OP_ASSIGN) {
			return self.parseAssignStat()
		}
		return self.parseExpStat()
	default:
		return self.parseExpStat()
	}
}

func (self *Parser) parseExpStat() ast.Stat {
	exp := self.parseExp(_LOWEST)
	if self.peekIs(TOKEN_SEP_SEMI) {
		self.nextToken()
	}
	if exp == nil {
		return nil
	}
	return &ast.ExpStat{Exp: exp}
}

// let Name : Type = exp ;
func (self *Parser) parseLetStat() ast.Stat {
	line := self.cur.Line

	if !self.expectPeek(TOKEN_IDENTIFIER) {
		return nil
	}
	name := self.cur.Literal

	if !self.expectPeek(TOKEN_SEP_COLON) {
		return nil
	}
	if !self.expectPeek(TOKEN_TYPE) {
		return nil
	}
	typeName := self.cur.Literal

	if !self.expectPeek(TOKEN_OP_ASSIGN) {
		return nil
	}
	self.nextToken()

	exp := self.parseExp(_LOWEST)
	if exp == nil {
		return nil
	}
	self.skipToSemi()

	return &ast.LetStat{Line: line, Name: name, Type: typeName, Exp: exp}
}

// Name = exp ;
func (self *Parser) parseAssignStat() ast.Stat {
	line := self.cur.Line
	name := self.cur.Literal

	self.nextToken() // =
	self.nextToken()

	exp := self.parseExp(_LOWEST)
	if exp == nil {
		return nil
	}
	self.skipToSemi()

	return &ast.AssignStat{Line: line, Name: name, Exp: exp}
}

// return exp ;
func (self *Parser) parseRetStat() ast.Stat {
	line := self.cur.Line
	self.nextToken()

	exp := self.parseExp(_LOWEST)
	if exp == nil {
		return nil
	}
	self.skipToSemi()

	return &ast.RetStat{Line: line, Exp: exp}
}

// fn Name ( Param {, Param} ) -> Type { block }
func (self *Parser) parseFuncStat() ast.Stat {
	line := self.cur.Line

	if !self.expectPeek(TOKEN_IDENTIFIER) {
		return nil
	}
	name := self.cur.Literal

	if !self.expectPeek(TOKEN_SEP_LPAREN) {
		return nil
	}
	params, ok := self.parseParams()
	if !ok {
		return nil
	}

	if !self.expectPeek(TOKEN_OP_ARROW) {
		return nil
	}
	if !self.expectPeek(TOKEN_TYPE) {
		return nil
	}
	retType := self.cur.Literal

	if !self.expectPeek(TOKEN_SEP_LCURLY) {
		return nil
	}
	body := self.parseBlock()

	return &ast.FuncStat{
		Line:    line,
		Name:    name,
		Params:  params,
		RetType: retType,
		Body:    body,
	}
}

// Param ::= Name : Type. Leaves the closing `)` as the current token.
func (self *Parser) parseParams() ([]ast.Param, bool) {
	params := []ast.Param{}
	if self.peekIs(TOKEN_SEP_RPAREN) {
		self.nextToken()
		return params, true
	}

	for {
		if !self.expectPeek(TOKEN_IDENTIFIER) {
			return nil, false
		}
		name := self.cur.Literal
		if !self.expectPeek(TOKEN_SEP_COLON) {
			return nil, false
		}
		if !self.expectPeek(TOKEN_TYPE) {
			return nil, false
		}
		params = append(params, ast.Param{Name: name, Type: self.cur.Literal})

		if !self.peekIs(TOKEN_SEP_COMMA) {
			break
		}
		self.nextToken()
	}

	if !self.expectPeek(TOKEN_SEP_RPAREN) {
		return nil, false
	}
	return params, true
}

// if ( cond ) { block } [ else { block } ]
func (self *Parser) parseIfStat() ast.Stat {
	line := self.cur.Line

	if !self.expectPeek(TOKEN_SEP_LPAREN) {
		return nil
	}
	self.nextToken()

	cond := self.parseExp(_LOWEST)
	if cond == nil {
		return nil
	}

	if !self.expectPeek(TOKEN_SEP_RPAREN) {
		return nil
	}
	if !self.expectPeek(TOKEN_SEP_LCURLY) {
		return nil
	}
	then := self.parseBlock()

	var alt *ast.Block
	if self.peekIs(TOKEN_KW_ELSE) {
		self.nextToken()
		if !self.expectPeek(TOKEN_SEP_LCURLY) {
			return nil
		}
		alt = self.parseBlock()
	}

	return &ast.IfStat{Line: line, Cond: cond, Then: then, Else: alt}
}

// parseBlock consumes statements between `{` (current token on entry) and the
// matching `}` (current token on exit).
func (self *Parser) parseBlock() *ast.Block {
	block := &ast.Block{Stats: []ast.Stat{}}

	self.nextToken()
	for !self.curIs(TOKEN_SEP_RCURLY) && !self.curIs(TOKEN_EOF) {
		stat := self.parseStat()
		if stat != nil {
			block.Stats = append(block.Stats, stat)
		}
		self.nextToken()
	}
	block.LastLine = self.cur.Line
	return block
}

// skipToSemi leaves the trailing `;` of a statement as the current token.
func (self *Parser) skipToSemi() {
	for !self.curIs(TOKEN_SEP_SEMI) && !self.curIs(TOKEN_EOF) {
		self.nextToken()
	}
}
