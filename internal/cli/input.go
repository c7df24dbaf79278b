package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// readLine prompts and returns one trimmed line of input.
func readLine(in *bufio.Reader, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readInt prompts until the user supplies a valid integer.
func readInt(in *bufio.Reader, out io.Writer, prompt string) (int64, error) {
	for {
		line, err := readLine(in, out, prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			fmt.Fprintln(out, "Please enter a whole number.")
			continue
		}
		return n, nil
	}
}

// readPassword reads a secret without echo when stdin is a terminal, with a
// plain-line fallback for pipes and tests.
func readPassword(in *bufio.Reader, raw io.Reader, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)

	if f, ok := raw.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		bytePassword, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(out)
		if err != nil {
			return "", err
		}
		return string(bytePassword), nil
	}

	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
