package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"hashassin/internal/password"
)

// StdinPath selects stdin as the password list
const StdinPath = "-"

var isTerminal = term.IsTerminal

// readPasswordList loads the list from path, or from stdin when path is "-".
// Reading from an interactive terminal is refused.
func readPasswordList(path string, stdin io.Reader) ([][]byte, error) {
	if path != StdinPath {
		return password.ReadFile(path)
	}

	if f, ok := stdin.(*os.File); ok && isTerminal(int(f.Fd())) {
		return nil, fmt.Errorf("refusing to read passwords from a terminal: pipe a list into stdin or use --in-file <path>")
	}

	return password.ReadList(stdin)
}
