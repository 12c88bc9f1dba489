package consts

const (
	VERSION = "0.1.0"

	SourceExt = ".lime"
	IRExt     = ".ll"
)

var (
	Debug = false

	// stage dumps, settable from the config file
	LexerDebug    = false
	ParserDebug   = false
	CompilerDebug = false
)
