package config

import (
	"fmt"
	"io"
	"os"
)

var exit = os.Exit

// Exit writes a formatted message to stderr and exits with code. Codes below
// 1 are raised to 1 so a reported failure never exits cleanly.
func Exit(code int, format string, args ...any) {
	exitTo(os.Stderr, code, format, args...)
}

func exitTo(w io.Writer, code int, format string, args ...any) {
	if code < 1 {
		code = 1
	}
	fmt.Fprintf(w, format+"\n", args...)
	exit(code)
}
