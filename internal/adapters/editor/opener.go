package editor

import (
	"fmt"
	"os"
	"os/exec"
)

// fallbackEditors are tried in order when neither $VISUAL nor $EDITOR is
// set. All of them accept a directory argument.
var fallbackEditors = []string{"code", "nvim", "vim", "vi", "nano"}

// Opener implements ports.EditorOpener for project directories
type Opener struct {
	lookPath func(string) (string, error)
}

// NewOpener creates a new editor opener
func NewOpener() *Opener {
	return &Opener{lookPath: exec.LookPath}
}

// Open opens a project directory in the user's editor and waits for it
func (o *Opener) Open(path string) error {
	cmd, err := o.Command(path)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command returns an exec.Cmd that opens the project directory, wired to the
// caller's terminal so bubbletea can hand the screen over via ExecProcess.
// The editor runs with the project as its working directory.
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	editor, err := o.resolve()
	if err != nil {
		return nil, err
	}

	cmd := exec.Command(editor, path)
	cmd.Dir = path
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, nil
}

// resolve picks the editor: $VISUAL wins over $EDITOR, then the first
// fallback found on PATH.
func (o *Opener) resolve() (string, error) {
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if editor := os.Getenv(env); editor != "" {
			return editor, nil
		}
	}

	for _, candidate := range fallbackEditors {
		if path, err := o.lookPath(candidate); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("no editor found: set $VISUAL or $EDITOR")
}
