// Package prompt implements the interactive conventions for command line
// tools: confirmation questions, password input, and terminal detection.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/crypto/ssh/terminal"
)

// IsTerminal returns whether standard input is attached to a terminal. It is
// stored in a variable so that we can mock it for unit tests.
var IsTerminal = func() bool {
	return terminal.IsTerminal(int(os.Stdin.Fd()))
}

// Confirm prompts on out until it reads a yes or no answer from in.
func Confirm(in io.Reader, out io.Writer, question string) (bool, error) {
	reader := bufio.NewReader(in)

	for {
		fmt.Fprintf(out, "%s [y/n]: ", question)

		response, _, err := reader.ReadLine()
		if err != nil {
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(string(response))) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}

// readPassword is mocked for unit tests.
var readPassword = terminal.ReadPassword

// Password prompts for a line of input with terminal echo disabled.
func Password(out io.Writer, question string) (string, error) {
	fmt.Fprintf(out, "%s: ", question)
	defer fmt.Fprintln(out)

	raw, err := readPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
