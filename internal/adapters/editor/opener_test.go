package editor

import (
	"errors"
	"testing"
)

func TestCommand_VisualWinsOverEditor(t *testing.T) {
	t.Setenv("VISUAL", "myvisual")
	t.Setenv("EDITOR", "myeditor")

	dir := t.TempDir()
	cmd, err := NewOpener().Command(dir)
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}

	if cmd.Args[0] != "myvisual" {
		t.Errorf("expected $VISUAL to win, got %s", cmd.Args[0])
	}
	if cmd.Args[1] != dir {
		t.Errorf("expected project dir argument, got %v", cmd.Args)
	}
	if cmd.Dir != dir {
		t.Errorf("expected working dir %s, got %s", dir, cmd.Dir)
	}
}

func TestCommand_EditorFallback(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "myeditor")

	cmd, err := NewOpener().Command(t.TempDir())
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	if cmd.Args[0] != "myeditor" {
		t.Errorf("expected $EDITOR fallback, got %s", cmd.Args[0])
	}
}

func TestCommand_NoEditorFound(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "")

	o := NewOpener()
	o.lookPath = func(string) (string, error) {
		return "", errors.New("not found")
	}

	if _, err := o.Command(t.TempDir()); err == nil {
		t.Fatal("expected an error with no editor available")
	}
}
