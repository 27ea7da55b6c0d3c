package ports

import "os/exec"

// EditorOpener opens a discovered project in an external editor
type EditorOpener interface {
	// Open opens the project directory in the user's preferred editor,
	// resolved from $EDITOR with fallbacks
	Open(path string) error

	// Command returns an exec.Cmd for opening the path, for integration
	// with bubbletea's ExecProcess
	Command(path string) (*exec.Cmd, error)
}
