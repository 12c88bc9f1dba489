package lexer

import "strings"

type Lexer struct {
	chunk     string // source code
	chunkName string // source name
	pos       int    // read offset of ch
	ch        byte   // current character, 0 at end of input
	line      int    // current line number
}

func NewLexer(chunk, chunkName string) *Lexer {
	self := &Lexer{chunk: chunk, chunkName: chunkName, pos: -1, line: 1}
	self.next()
	return self
}

func (self *Lexer) Line() int {
	return self.line
}

func (self *Lexer) ChunkName() string {
	return self.chunkName
}

// NextToken scans and returns the next token. After the end of the chunk it
// keeps returning EOF tokens.
func (self *Lexer) NextToken() Token {
	self.skipWhiteSpaces()

	line := self.line
	switch self.ch {
	case 0:
		return Token{TOKEN_EOF, "EOF", line}
	case ';':
		self.next()
		return Token{TOKEN_SEP_SEMI, ";", line}
	case ':':
		self.next()
		return Token{TOKEN_SEP_COLON, ":", line}
	case ',':
		self.next()
		return Token{TOKEN_SEP_COMMA, ",", line}
	case '(':
		self.next()
		return Token{TOKEN_SEP_LPAREN, "(", line}
	case ')':
		self.next()
		return Token{TOKEN_SEP_RPAREN, ")", line}
	case '{':
		self.next()
		return Token{TOKEN_SEP_LCURLY, "{", line}
	case '}':
		self.next()
		return Token{TOKEN_SEP_RCURLY, "}", line}
	case '+':
		self.next()
		return Token{TOKEN_OP_ADD, "+", line}
	case '*':
		self.next()
		return Token{TOKEN_OP_MUL, "*", line}
	case '/':
		self.next()
		return Token{TOKEN_OP_DIV, "/", line}
	case '%':
		self.next()
		return Token{TOKEN_OP_MOD, "%", line}
	case '^':
		self.next()
		return Token{TOKEN_OP_POW, "^", line}
	case '-':
		if self.peek() == '>' {
			self.next()
			self.next()
			return Token{TOKEN_OP_ARROW, "->", line}
		}
		self.next()
		return Token{TOKEN_OP_SUB, "-", line}
	case '=':
		if self.peek() == '=' {
			self.next()
			self.next()
			return Token{TOKEN_OP_EQ, "==", line}
		}
		self.next()
		return Token{TOKEN_OP_ASSIGN, "=", line}
	case '<':
		if self.peek() == '=' {
			self.next()
			self.next()
			return Token{TOKEN_OP_LE, "<=", line}
		}
		self.next()
		return Token{TOKEN_OP_LT, "<", line}
	case '>':
		if self.peek() == '=' {
			self.next()
			self.next()
			return Token{TOKEN_OP_GE, ">=", line}
		}
		self.next()
		return Token{TOKEN_OP_GT, ">", line}
	}

	if self.ch == '_' || isLetter(self.ch) {
		literal := self.scanIdentifier()
		if kind, ok := keywords[literal]; ok {
			return Token{kind, literal, line}
		}
		return Token{TOKEN_IDENTIFIER, literal, line}
	}
	if isDigit(self.ch) {
		return self.scanNumber(line)
	}

	// unknown character. The parser reports it once it finds no rule for
	// the token, so scanning keeps going here.
	illegal := string(self.ch)
	self.next()
	return Token{TOKEN_ILLEGAL, illegal, line}
}

func (self *Lexer) next() {
	self.pos++
	if self.pos >= len(self.chunk) {
		self.ch = 0
		return
	}
	self.ch = self.chunk[self.pos]
}

func (self *Lexer) peek() byte {
	if self.pos+1 >= len(self.chunk) {
		return 0
	}
	return self.chunk[self.pos+1]
}

func (self *Lexer) skipWhiteSpaces() {
	for {
		switch self.ch {
		case ' ', '\t', '\r':
			self.next()
		case '\n':
			self.line++
			self.next()
		case '/':
			if self.peek() != '/' {
				return
			}
			self.skipComment()
		default:
			return
		}
	}
}

func (self *Lexer) skipComment() {
	for self.ch != 0 && self.ch != '\n' {
		self.next()
	}
}

func (self *Lexer) scanIdentifier() string {
	start := self.pos
	for self.ch == '_' || isLetter(self.ch) || isDigit(self.ch) {
		self.next()
	}
	return self.chunk[start:self.pos]
}

// scanNumber reads a maximal digit run with at most one decimal point. A
// second point turns the whole run into an illegal token.
func (self *Lexer) scanNumber(line int) Token {
	start := self.pos
	dots := 0
	for isDigit(self.ch) || (self.ch == '.' && isDigit(self.peek())) {
		if self.ch == '.' {
			dots++
		}
		self.next()
	}
	literal := self.chunk[start:self.pos]
	if dots > 1 {
		return Token{TOKEN_ILLEGAL, literal, line}
	}
	if strings.Contains(literal, ".") {
		return Token{TOKEN_FLOAT, literal, line}
	}
	return Token{TOKEN_INT, literal, line}
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
