package client

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// promptKey asks for the vault key twice. On a terminal the input is not
// echoed; piped input is read line by line.
func promptKey(in *os.File, out io.Writer) (string, error) {
	read := lineReader(in)
	if term.IsTerminal(int(in.Fd())) {
		read = func() (string, error) {
			b, err := term.ReadPassword(int(in.Fd()))
			fmt.Fprintln(out)
			return string(b), err
		}
	}

	return confirmKey(read, out)
}

func confirmKey(read func() (string, error), out io.Writer) (string, error) {
	fmt.Fprint(out, "Enter vault key (64 hex characters): ")
	key1, err := read()
	if err != nil {
		return "", fmt.Errorf("failed to read key: %w", err)
	}

	fmt.Fprint(out, "Confirm vault key: ")
	key2, err := read()
	if err != nil {
		return "", fmt.Errorf("failed to read key: %w", err)
	}

	key1, key2 = strings.TrimSpace(key1), strings.TrimSpace(key2)
	if key1 != key2 {
		return "", ErrKeysDoNotMatch
	}
	if key1 == "" {
		return "", ErrEmptyKey
	}

	return key1, nil
}

func lineReader(r io.Reader) func() (string, error) {
	scanner := bufio.NewScanner(r)
	return func() (string, error) {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", err
			}
			return "", io.ErrUnexpectedEOF
		}
		return scanner.Text(), nil
	}
}
