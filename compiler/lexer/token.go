package lexer

// token kind
const (
	TOKEN_EOF = iota
	TOKEN_ILLEGAL
	TOKEN_IDENTIFIER
	TOKEN_INT
	TOKEN_FLOAT
	TOKEN_TYPE
	TOKEN_SEP_SEMI
	TOKEN_SEP_COLON
	TOKEN_SEP_COMMA
	TOKEN_SEP_LPAREN
	TOKEN_SEP_RPAREN
	TOKEN_SEP_LCURLY
	TOKEN_SEP_RCURLY
	TOKEN_OP_ASSIGN
	TOKEN_OP_ADD
	TOKEN_OP_SUB
	TOKEN_OP_MUL
	TOKEN_OP_DIV
	TOKEN_OP_MOD
	TOKEN_OP_POW
	TOKEN_OP_LT
	TOKEN_OP_LE
	TOKEN_OP_GT
	TOKEN_OP_GE
	TOKEN_OP_EQ
	TOKEN_OP_ARROW
	TOKEN_KW_LET
	TOKEN_KW_FN
	TOKEN_KW_RETURN
	TOKEN_KW_IF
	TOKEN_KW_ELSE
	TOKEN_KW_TRUE
	TOKEN_KW_FALSE
)

var tokenNames = map[int]string{
	TOKEN_EOF:        "EOF",
	TOKEN_ILLEGAL:    "illegal",
	TOKEN_IDENTIFIER: "identifier",
	TOKEN_INT:        "int literal",
	TOKEN_FLOAT:      "float literal",
	TOKEN_TYPE:       "type name",
	TOKEN_SEP_SEMI:   ";",
	TOKEN_SEP_COLON:  ":",
	TOKEN_SEP_COMMA:  ",",
	TOKEN_SEP_LPAREN: "(",
	TOKEN_SEP_RPAREN: ")",
	TOKEN_SEP_LCURLY: "{",
	TOKEN_SEP_RCURLY: "}",
	TOKEN_OP_ASSIGN:  "=",
	TOKEN_OP_ADD:     "+",
	TOKEN_OP_SUB:     "-",
	TOKEN_OP_MUL:     "*",
	TOKEN_OP_DIV:     "/",
	TOKEN_OP_MOD:     "%",
	TOKEN_OP_POW:     "^",
	TOKEN_OP_LT:      "<",
	TOKEN_OP_LE:      "<=",
	TOKEN_OP_GT:      ">",
	TOKEN_OP_GE:      ">=",
	TOKEN_OP_EQ:      "==",
	TOKEN_OP_ARROW:   "->",
	TOKEN_KW_LET:     "let",
	TOKEN_KW_FN:      "fn",
	TOKEN_KW_RETURN:  "return",
	TOKEN_KW_IF:      "if",
	TOKEN_KW_ELSE:    "else",
	TOKEN_KW_TRUE:    "true",
	TOKEN_KW_FALSE:   "false",
}

func TokenName(kind int) string {
	name, ok := tokenNames[kind]
	if !ok {
		return "unknown"
	}
	return name
}

var keywords = map[string]int{
	"let":    TOKEN_KW_LET,
	"fn":     TOKEN_KW_FN,
	"return": TOKEN_KW_RETURN,
	"if":     TOKEN_KW_IF,
	"else":   TOKEN_KW_ELSE,
	"true":   TOKEN_KW_TRUE,
	"false":  TOKEN_KW_FALSE,
	"int":    TOKEN_TYPE,
	"float":  TOKEN_TYPE,
	"bool":   TOKEN_TYPE,
}

type Token struct {
	Kind    int
	Literal string
	Line    int
}

func (self Token) Name() string {
	return TokenName(self.Kind)
}
