package app

import "os/exec"

// DraftEditor prepares an external editor session for a draft.
// Implemented by infrastructure (e.g. EnvEditor spawning $EDITOR). The
// TUI runs the returned command itself so it can suspend the terminal.
type DraftEditor interface {
	// Cmd writes content to a temp file and returns the command that edits it.
	Cmd(content string) (*exec.Cmd, string, error)

	// ReadContent reads back the edited draft and removes the temp file.
	ReadContent(path string) (string, error)
}
