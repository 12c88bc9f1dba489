package parser

import (
	"fmt"

	"github.com/lollipopkit/lime/compiler/ast"
	. "github.com/lollipopkit/lime/compiler/lexer"
)

/* Pratt parser with two-token lookahead. Errors accumulate; a statement that
fails to parse is dropped whole and parsing continues with the next one. */

type prefixParseFn func() ast.Exp
type infixParseFn func(left ast.Exp) ast.Exp

type Parser struct {
	lexer *Lexer
	errs  []string

	cur  Token
	peek Token

	prefixParseFns map[int]prefixParseFn
	infixParseFns  map[int]infixParseFn
}

func New(lexer *Lexer) *Parser {
	self := &Parser{
		lexer: lexer,
		errs:  []string{},
	}

	self.prefixParseFns = map[int]prefixParseFn{
		TOKEN_INT:        self.parseIntegerExp,
		TOKEN_FLOAT:      self.parseFloatExp,
		TOKEN_KW_TRUE:    self.parseBoolExp,
		TOKEN_KW_FALSE:   self.parseBoolExp,
		TOKEN_IDENTIFIER: self.parseNameExp,
		TOKEN_SEP_LPAREN: self.parseGroupedExp,
	}
	self.infixParseFns = map[int]infixParseFn{
		TOKEN_OP_ADD:     self.parseBinopExp,
		TOKEN_OP_SUB:     self.parseBinopExp,
		TOKEN_OP_MUL:     self.parseBinopExp,
		TOKEN_OP_DIV:     self.parseBinopExp,
		TOKEN_OP_MOD:     self.parseBinopExp,
		TOKEN_OP_POW:     self.parseBinopExp,
		TOKEN_OP_EQ:      self.parseBinopExp,
		TOKEN_OP_LT:      self.parseBinopExp,
		TOKEN_OP_LE:      self.parseBinopExp,
		TOKEN_OP_GT:      self.parseBinopExp,
		TOKEN_OP_GE:      self.parseBinopExp,
		TOKEN_SEP_LPAREN: self.parseFuncCallExp,
	}

	// populate cur and peek
	self.nextToken()
	self.nextToken()
	return self
}

// Parse lexes and parses a whole chunk.
func Parse(chunk, chunkName string) (*ast.Program, []string) {
	p := New(NewLexer(chunk, chunkName))
	program := p.ParseProgram()
	return program, p.Errors()
}

func (self *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{Stats: []ast.Stat{}}

	for self.cur.Kind != TOKEN_EOF {
		stat := self.parseStat()
		if stat != nil {
			program.Stats = append(program.Stats, stat)
		}
		self.nextToken()
	}
	return program
}

func (self *Parser) Errors() []string {
	return self.errs
}

func (self *Parser) nextToken() {
	self.cur = self.peek
	self.peek = self.lexer.NextToken()
}

func (self *Parser) curIs(kind int) bool {
	return self.cur.Kind == kind
}

func (self *Parser) peekIs(kind int) bool {
	return self.peek.Kind == kind
}

// expectPeek advances when the upcoming token has the wanted kind, otherwise
// it records an error and leaves the caller to abandon the statement.
func (self *Parser) expectPeek(kind int) bool {
	if self.peekIs(kind) {
		self.nextToken()
		return true
	}
	self.peekError(kind)
	return false
}

func (self *Parser) peekError(kind int) {
	self.errorf("line %d: expected next token to be '%s', got '%s'",
		self.peek.Line, TokenName(kind), self.peek.Name())
}

func (self *Parser) noPrefixParseFnError(token Token) {
	self.errorf("line %d: no rule to parse '%s' at the start of an expression",
		token.Line, token.Literal)
}

func (self *Parser) errorf(format string, args ...any) {
	self.errs = append(self.errs, fmt.Sprintf(format, args...))
}
