package repl

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/lollipopkit/lime/compiler"
	"github.com/lollipopkit/lime/compiler/lexer"
	"github.com/lollipopkit/lime/consts"
	"github.com/lollipopkit/lime/logger"
	"github.com/lollipopkit/lime/term"
)

var (
	json        = jsoniter.ConfigCompatibleWithStandardLibrary
	historyPath = filepath.Join(os.Getenv("HOME"), ".config", "lime_history.json")

	linesHistory = []string{}
	blockLines   = []string{}
	sessionLines = []string{}
)

func Repl() {
	fmt.Printf("lime (v%s) - %s to exit\n",
		term.CYAN+consts.VERSION+term.NOCOLOR,
		term.GREEN+"`Ctrl+C`"+term.NOCOLOR,
	)

	loadHistory()

	for {
		line := term.ReadLine(term.ReadLineConfig{
			History: linesHistory,
			Prompt:  prompt(),
		})
		if line == "" {
			continue
		}
		appendHistory(line)

		blockLines = append(blockLines, line)
		if openBraces(strings.Join(blockLines, "\n")) != 0 {
			continue
		}

		entered := blockLines
		blockLines = []string{}
		runBlock(entered)
	}
}

// runBlock recompiles the whole session plus the new block; the block only
// joins the session when it compiles clean.
func runBlock(entered []string) {
	chunk := strings.Join(append(append([]string{}, sessionLines...), entered...), "\n")

	module, parseErrs, compileErrs := compiler.CompileCached(chunk, "repl")
	if len(parseErrs) > 0 {
		for _, e := range parseErrs {
			term.Err("%s", e)
		}
		return
	}
	if len(compileErrs) > 0 {
		for _, e := range compileErrs {
			term.Err("%s", e)
		}
		return
	}

	sessionLines = append(sessionLines, entered...)
	term.Cyan("%s", module.String())
}

func prompt() string {
	if len(blockLines) > 0 {
		return ". "
	}
	return "> "
}

// openBraces counts unbalanced curly braces token-wise, so braces inside
// comments don't hold the prompt open.
func openBraces(chunk string) int {
	l := lexer.NewLexer(chunk, "repl")
	depth := 0
	for {
		token := l.NextToken()
		switch token.Kind {
		case lexer.TOKEN_SEP_LCURLY:
			depth++
		case lexer.TOKEN_SEP_RCURLY:
			depth--
		case lexer.TOKEN_EOF:
			return depth
		}
	}
}

func loadHistory() {
	data, err := os.ReadFile(historyPath)
	if err != nil {
		return
	}
	if err := json.Unmarshal(data, &linesHistory); err != nil {
		logger.W("can't parse history: %v", err)
	}
}

func appendHistory(line string) {
	if len(linesHistory) > 0 && linesHistory[len(linesHistory)-1] == line {
		return
	}
	linesHistory = append(linesHistory, line)

	data, err := json.Marshal(linesHistory)
	if err != nil {
		return
	}
	if err := os.WriteFile(historyPath, data, 0644); err != nil {
		logger.W("can't write history: %v", err)
	}
}
