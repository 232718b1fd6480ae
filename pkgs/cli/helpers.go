package cli

import (
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/keskad/tinyprintf/pkgs/app"
	"github.com/keskad/tinyprintf/pkgs/config"
)

func initialize(app *app.PrintfApp) error {
	if err := app.Initialize(); err != nil {
		return err
	}
	app.Newline = wantsNewline(app.Config.Output.Newline, term.IsTerminal(int(os.Stdout.Fd())))
	return nil
}

// wantsNewline decides whether console output gets a trailing line break.
// In auto mode only a terminal gets one, so the shell prompt does not end up
// glued to the output while pipes see the exact bytes.
func wantsNewline(mode string, terminal bool) bool {
	switch mode {
	case config.NewlineAlways:
		return true
	case config.NewlineNever:
		return false
	}
	return terminal
}

// unescape expands the backslash escapes printf(1) knows, so formats can be
// typed in a shell without $'...' quoting. Unknown escapes stay as written.
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			b.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case 'a':
			b.WriteByte('\a')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'v':
			b.WriteByte('\v')
		case '\\':
			b.WriteByte('\\')
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
