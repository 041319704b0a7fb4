// Where: internal/command/output.go
// What: Output helpers for command adapters.
// Why: Centralize UserInterface construction and raw output.
package command

import (
	"fmt"
	"io"
	"os"

	"github.com/poruru-code/jarbox/internal/infra/interaction"
	"github.com/poruru-code/jarbox/internal/infra/ui"
)

func plainUI(out io.Writer) ui.UserInterface {
	return ui.NewPlainUI(out)
}

func commandUI(out io.Writer, cli CLI) (ui.UserInterface, bool, error) {
	emoji, err := interaction.EmojiEnabled(out, cli.Emoji, cli.NoEmoji)
	if err != nil {
		return nil, false, err
	}
	return ui.NewBuildUI(out, emoji), emoji, nil
}

func printFile(out io.Writer, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	_, err = out.Write(content)
	return err
}
