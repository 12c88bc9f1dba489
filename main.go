package main

import (
	"os"

	"github.com/lollipopkit/lime/consts"
	"github.com/lollipopkit/lime/repl"
	"github.com/lollipopkit/lime/term"
)

func main() {
	if len(os.Args) < 2 {
		repl.Repl()
		return
	}

	switch os.Args[1] {
	case "ast":
		if len(os.Args) < 3 {
			term.Err("usage: lime ast <file%s>", consts.SourceExt)
			os.Exit(2)
		}
		writeAst(os.Args[2])
	default:
		run(os.Args[1])
	}
}
