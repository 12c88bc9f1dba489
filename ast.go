package main

import (
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/lollipopkit/lime/compiler/parser"
	"github.com/lollipopkit/lime/term"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeAst parses a source file and dumps the AST as indented JSON beside it.
func writeAst(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		term.Err("[ast] %v", err)
		os.Exit(2)
	}

	program, errs := parser.Parse(string(data), path)
	if len(errs) > 0 {
		for _, e := range errs {
			term.Err("[parse] %s", e)
		}
		os.Exit(1)
	}

	j, err := json.MarshalIndent(program.JSON(), "", "  ")
	if err != nil {
		term.Err("[ast] %v", err)
		os.Exit(2)
	}

	out := path + ".ast.json"
	if err := os.WriteFile(out, j, 0644); err != nil {
		term.Err("[ast] %v", err)
		os.Exit(2)
	}
	term.Suc("[ast] wrote %s", out)
}
