package fireplace

import (
	"errors"
	"io"
	"io/ioutil"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/chzyer/readline"
)

// An InputReader produces the input text for a run.
// ReadInput is called at most once per run.
type InputReader interface {
	ReadInput() (string, error)
}

var errNotUTF8 = errors.New("input is not valid UTF-8")

type readerInput struct {
	r io.Reader
}

// NewReaderInput returns an InputReader that reads r to completion.
func NewReaderInput(r io.Reader) InputReader {
	return readerInput{r}
}

// Stdin returns an InputReader that reads all of standard input.
func Stdin() InputReader {
	return NewReaderInput(os.Stdin)
}

func (ri readerInput) ReadInput() (string, error) {
	b, err := ioutil.ReadAll(ri.r)
	if err != nil {
		return "", err
	}
	return decode(b)
}

// StringInput is an InputReader that always returns itself.
type StringInput string

func (s StringInput) ReadInput() (string, error) { return string(s), nil }

// FileInput is an InputReader that reads the named file.
type FileInput string

func (name FileInput) ReadInput() (string, error) {
	b, err := ioutil.ReadFile(string(name))
	if err != nil {
		return "", err
	}
	return decode(b)
}

func decode(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", errNotUTF8
	}
	return string(b), nil
}

const inputPrompt = "input> "

type terminalInput struct {
	r io.ReadCloser // nil means readline's standard input
	w io.Writer
	// isTerminal overrides readline's terminal detection when non-nil.
	isTerminal func() bool
}

// TerminalInput returns an InputReader for an interactive terminal on
// standard input. It prompts on w for each line and stops at EOF (Ctrl-D).
func TerminalInput(w io.Writer) InputReader {
	return terminalInput{w: w}
}

func (ti terminalInput) ReadInput() (string, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:         inputPrompt,
		Stdin:          ti.r,
		Stdout:         ti.w,
		Stderr:         ti.w,
		FuncIsTerminal: ti.isTerminal,
	})
	if err != nil {
		return "", err
	}
	defer rl.Close()

	var b strings.Builder
	for {
		line, err := rl.Readline()
		switch err {
		case nil:
		case io.EOF:
			return b.String(), nil
		case readline.ErrInterrupt:
			return "", errors.New("input interrupted")
		default:
			return "", err
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
}

func stdinIsTerminal() bool {
	return readline.IsTerminal(int(os.Stdin.Fd()))
}
