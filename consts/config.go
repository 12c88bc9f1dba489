package consts

import (
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
)

var configPath = filepath.Join(os.Getenv("HOME"), ".config", "lime.json")

func init() {
	loadConfig()
}

// loadConfig reads the optional user config, e.g.
// {"debug": true, "dump": {"lexer": false, "parser": true, "compiler": true}}
func loadConfig() {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return
	}

	config := gjson.ParseBytes(data)
	if v := config.Get("debug"); v.Exists() {
		Debug = v.Bool()
	}
	if v := config.Get("dump.lexer"); v.Exists() {
		LexerDebug = v.Bool()
	}
	if v := config.Get("dump.parser"); v.Exists() {
		ParserDebug = v.Bool()
	}
	if v := config.Get("dump.compiler"); v.Exists() {
		CompilerDebug = v.Bool()
	}
}
