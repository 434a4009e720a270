package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

// readPassword and isTerminal are test seams for golang.org/x/term.
// In tests you can replace them with stubs to avoid touching the terminal.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// ErrNoPassword is returned when the prompt hits end of input before any
// password was entered.
var ErrNoPassword = errors.New("no password provided")

// PasswordSource supplies the plaintext password for one run.
//
// The returned byte slice should be wiped by the caller when no longer needed.
type PasswordSource interface {
	Password() ([]byte, error)
}

// ArgPassword is a password given on the command line.
type ArgPassword string

func (a ArgPassword) Password() ([]byte, error) {
	return []byte(a), nil
}

// PromptPassword asks for the password interactively.
//
// When In is a terminal the password is read without echo. Otherwise (a pipe,
// a file, a test) one line is read and its line ending stripped, so scripts
// can still feed a password on stdin.
type PromptPassword struct {
	In     io.Reader
	Out    io.Writer
	Prompt string
}

type fdReader interface {
	io.Reader
	Fd() uintptr
}

func (p PromptPassword) Password() ([]byte, error) {
	if _, err := fmt.Fprint(p.Out, p.Prompt); err != nil {
		return nil, err
	}

	if f, ok := p.In.(fdReader); ok && isTerminal(int(f.Fd())) {
		pw, err := readPassword(int(f.Fd()))
		fmt.Fprintln(p.Out)
		if err != nil {
			return nil, fmt.Errorf("read password: %w", err)
		}
		return pw, nil
	}

	line, err := bufio.NewReader(p.In).ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read password: %w", err)
		}
		if line == "" {
			return nil, ErrNoPassword
		}
	}
	return []byte(strings.TrimRight(line, "\r\n")), nil
}

// passwordSource returns the argument password when one was given and the
// masked prompt otherwise. An omitted password never defaults to "".
func passwordSource(args []string, s Streams) PasswordSource {
	if len(args) > 0 {
		return ArgPassword(args[0])
	}
	return PromptPassword{In: s.In, Out: s.Err, Prompt: "Password: "}
}
