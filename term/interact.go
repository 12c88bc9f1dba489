package term

import (
	"os"

	"atomicgo.dev/cursor"
	"atomicgo.dev/keyboard"
	"atomicgo.dev/keyboard/keys"
)

const _prompt = "> "

type ReadLineConfig struct {
	// History holds earlier lines, oldest first.
	History []string
	// Prompt defaults to "> ".
	Prompt string
}

// ReadLine edits a single line with history (up/down), cursor movement and
// backspace. Ctrl+C exits the process, Ctrl+D abandons the line.
func ReadLine(config ReadLineConfig) string {
	if len(config.Prompt) == 0 {
		config.Prompt = _prompt
	}
	os.Stdout.WriteString(config.Prompt)

	rs := []rune{}
	runeIdx := 0
	lineIdx := len(config.History)

	keyboard.Listen(func(key keys.Key) (stop bool, err error) {
		switch key.Code {
		case keys.CtrlC:
			os.Exit(0)
		case keys.CtrlD:
			rs = rs[:0]
			println()
			return true, nil
		case keys.Enter:
			println()
			return true, nil
		case keys.RuneKey:
			rs = append(rs[:runeIdx], append(key.Runes, rs[runeIdx:]...)...)
			runeIdx += len(key.Runes)
			resetLine(rs, config.Prompt)
		case keys.Space:
			rs = append(rs[:runeIdx], append([]rune(" "), rs[runeIdx:]...)...)
			runeIdx++
			resetLine(rs, config.Prompt)
		case keys.Tab:
			rs = append(rs[:runeIdx], append([]rune("  "), rs[runeIdx:]...)...)
			runeIdx += 2
			resetLine(rs, config.Prompt)
		case keys.Backspace:
			if runeIdx > 0 {
				rs = append(rs[:runeIdx-1], rs[runeIdx:]...)
				runeIdx--
				resetLine(rs, config.Prompt)
			}
		case keys.Left:
			if runeIdx > 0 {
				runeIdx--
			}
		case keys.Right:
			if runeIdx < len(rs) {
				runeIdx++
			}
		case keys.Up:
			if lineIdx > 0 {
				lineIdx--
				rs = []rune(config.History[lineIdx])
				runeIdx = len(rs)
				resetLine(rs, config.Prompt)
			}
		case keys.Down:
			if lineIdx < len(config.History)-1 {
				lineIdx++
				rs = []rune(config.History[lineIdx])
			} else {
				lineIdx = len(config.History)
				rs = []rune{}
			}
			runeIdx = len(rs)
			resetLine(rs, config.Prompt)
		}

		cursor.HorizontalAbsolute(len(config.Prompt) + runeIdx)
		return false, nil
	})
	return string(rs)
}

func resetLine(rs []rune, prompt string) {
	cursor.ClearLine()
	cursor.StartOfLine()
	print(prompt + string(rs))
}
