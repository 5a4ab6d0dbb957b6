package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

var (
	// ErrInputClosed is returned when input ends before the session does.
	ErrInputClosed = errors.New("input closed")
	// ErrInterrupted is returned when the player presses Ctrl+C at a prompt.
	ErrInterrupted = errors.New("interrupted")
)

// LineReader prompts for and reads one line of player input. The returned
// line has no trailing line terminator.
type LineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// NewLineReader returns a readline-backed reader when in is a terminal and a
// buffered reader otherwise.
func NewLineReader(in *os.File, out io.Writer) (LineReader, error) {
	if term.IsTerminal(int(in.Fd())) {
		return NewReadlineReader(in, out)
	}
	return NewBufferedReader(in, out), nil
}

// BufferedReader reads lines from any io.Reader.
type BufferedReader struct {
	r   *bufio.Reader
	out io.Writer
}

// NewBufferedReader wraps in, writing prompts to out.
func NewBufferedReader(in io.Reader, out io.Writer) *BufferedReader {
	return &BufferedReader{r: bufio.NewReader(in), out: out}
}

// ReadLine implements LineReader.
func (b *BufferedReader) ReadLine(prompt string) (string, error) {
	if _, err := io.WriteString(b.out, prompt); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}
	line, err := b.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Close implements LineReader.
func (b *BufferedReader) Close() error {
	return nil
}

// ReadlineReader provides line editing on an interactive terminal.
type ReadlineReader struct {
	l *readline.Instance
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

// NewReadlineReader opens a readline instance on in and out.
func NewReadlineReader(in io.ReadCloser, out io.Writer) (*ReadlineReader, error) {
	l, err := readline.NewEx(&readline.Config{
		Stdin:               in,
		Stdout:              out,
		InterruptPrompt:     "^C",
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open readline: %w", err)
	}
	return &ReadlineReader{l: l}, nil
}

// ReadLine implements LineReader.
func (r *ReadlineReader) ReadLine(prompt string) (string, error) {
	r.l.SetPrompt(prompt)
	line, err := r.l.Readline()
	switch {
	case errors.Is(err, readline.ErrInterrupt):
		return "", ErrInterrupted
	case errors.Is(err, io.EOF):
		return "", ErrInputClosed
	case err != nil:
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return line, nil
}

// Close implements LineReader.
func (r *ReadlineReader) Close() error {
	return r.l.Close()
}
