package main

import (
	"os"
	"strings"

	"github.com/lollipopkit/lime/compiler"
	"github.com/lollipopkit/lime/compiler/lexer"
	"github.com/lollipopkit/lime/consts"
	"github.com/lollipopkit/lime/term"
	"github.com/lollipopkit/lime/utils"
)

// run compiles a source file and writes the textual IR module next to it.
// Executing the module is left to an external runtime (lli, clang, ...).
func run(source string) {
	if !strings.HasSuffix(source, consts.SourceExt) {
		term.Err("[run] not a %s file: %s", consts.SourceExt, source)
		os.Exit(2)
	}
	if !utils.Exist(source) {
		term.Err("[run] file not found: %s", source)
		os.Exit(2)
	}

	data, err := os.ReadFile(source)
	if err != nil {
		term.Err("[run] can't read file: %v", err)
		os.Exit(2)
	}
	chunk := string(data)

	if consts.LexerDebug {
		dumpTokens(chunk, source)
	}
	if consts.ParserDebug {
		writeAst(source)
	}

	module, parseErrs, compileErrs := compiler.CompileCached(chunk, source)
	if len(parseErrs) > 0 {
		for _, e := range parseErrs {
			term.Err("[parse] %s", e)
		}
		os.Exit(1)
	}
	if len(compileErrs) > 0 {
		for _, e := range compileErrs {
			term.Err("[compile] %s", e)
		}
		os.Exit(1)
	}

	out := source + consts.IRExt
	if err := os.WriteFile(out, []byte(module.String()), 0644); err != nil {
		term.Err("[run] write file failed: %v", err)
		os.Exit(2)
	}
	if consts.CompilerDebug {
		term.Cyan("%s", module.String())
	}
	term.Suc("[run] wrote %s", out)
}

func dumpTokens(chunk, chunkName string) {
	l := lexer.NewLexer(chunk, chunkName)
	for {
		token := l.NextToken()
		term.Cyan("line %d: %s %q", token.Line, token.Name(), token.Literal)
		if token.Kind == lexer.TOKEN_EOF {
			return
		}
	}
}
