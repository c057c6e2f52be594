package util

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/okmtz/tsk-cli/internal/model"
)

// OpenEditor opens filePath in the configured editor, falling back to
// $EDITOR and finally vim.
func OpenEditor(filePath string, config model.Config) error {
	editor := config.Editor
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		editor = "vim"
	}

	c := exec.Command(editor, filePath)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		return fmt.Errorf("failed to open editor (%s): %w", filePath, err)
	}
	return nil
}
