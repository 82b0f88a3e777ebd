package fireplace

import (
	"bytes"
	"errors"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"
)

func TestReaderInput(t *testing.T) {
	const want = "line 1\nline 2\n"
	got, err := NewReaderInput(iotest.OneByteReader(strings.NewReader(want))).ReadInput()
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("got %q; want %q", got, want)
	}
}

func TestReaderInputErrors(t *testing.T) {
	for _, tt := range []struct {
		name string
		in   InputReader
	}{
		{"read error", NewReaderInput(iotest.ErrReader(errors.New("stream closed")))},
		{"bad UTF-8", NewReaderInput(strings.NewReader("ok\xff\xfe"))},
	} {
		if _, err := tt.in.ReadInput(); err == nil {
			t.Errorf("%s: got nil error", tt.name)
		}
	}
}

func TestStringInput(t *testing.T) {
	got, err := StringInput("fixed").ReadInput()
	if err != nil || got != "fixed" {
		t.Errorf("got (%q, %v); want (\"fixed\", nil)", got, err)
	}
}

func TestFileInput(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "input.txt")
	if err := ioutil.WriteFile(name, []byte("1 2 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := FileInput(name).ReadInput()
	if err != nil {
		t.Fatal(err)
	}
	if want := "1 2 3\n"; got != want {
		t.Errorf("got %q; want %q", got, want)
	}

	if _, err := FileInput(filepath.Join(dir, "missing.txt")).ReadInput(); err == nil {
		t.Error("missing file: got nil error")
	}
}

func TestDispatchFileInputFailure(t *testing.T) {
	in := FileInput(filepath.Join(t.TempDir(), "missing.txt"))
	_, err := Dispatch(solvePart1, solvePart2, in, Request{Part: Part1, Args: []string{}})
	if k, ok := KindOf(err); !ok || k != IOFailure {
		t.Errorf("got error %v; want IOFailure", err)
	}
}

func TestTerminalInput(t *testing.T) {
	for _, tt := range []struct {
		typed string
		want  string
	}{
		{"a\nb\n", "a\nb\n"},
		{"one line\n", "one line\n"},
		{"", ""},
	} {
		var prompts bytes.Buffer
		in := terminalInput{
			r:          ioutil.NopCloser(strings.NewReader(tt.typed)),
			w:          &prompts,
			isTerminal: func() bool { return false },
		}
		got, err := in.ReadInput()
		if err != nil {
			t.Errorf("(%q): %s", tt.typed, err)
			continue
		}
		if got != tt.want {
			t.Errorf("(%q): got %q; want %q", tt.typed, got, tt.want)
		}
	}
}
