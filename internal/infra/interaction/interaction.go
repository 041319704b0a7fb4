// Where: internal/infra/interaction/interaction.go
// What: TTY detection and emoji resolution.
// Why: Decide decorated output in one place so commands stay focused on orchestration.
package interaction

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

var errEmojiConflict = errors.New("--emoji and --no-emoji cannot be used together")

// IsTerminal reports whether the file refers to a terminal device.
var IsTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// EmojiEnabled resolves emoji output. Explicit flags win, then NO_EMOJI and
// TERM=dumb disable it, then it follows whether out is a terminal.
func EmojiEnabled(out io.Writer, emoji, noEmoji bool) (bool, error) {
	if emoji && noEmoji {
		return false, errEmojiConflict
	}
	if emoji {
		return true, nil
	}
	if noEmoji {
		return false, nil
	}
	if strings.TrimSpace(os.Getenv("NO_EMOJI")) != "" {
		return false, nil
	}
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	if term == "dumb" {
		return false, nil
	}
	if file, ok := out.(*os.File); ok {
		return IsTerminal(file), nil
	}
	return false, nil
}
