package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// SupportsANSICodes reports whether stdout is a terminal. Piping the
// selected link into another tool should not pick up color codes.
func SupportsANSICodes() bool {
	return isatty.IsTerminal(os.Stdout.Fd())
}
