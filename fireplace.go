// Package fireplace runs one of a puzzle's two solver functions against a
// single textual input.
//
// A run is described by a Request (which part to run plus free-form
// arguments). Dispatch loads the input once, calls exactly one solver, and
// folds whatever error that solver returns into a single *Error. Report
// writes the answer.
package fireplace

import (
	"errors"
	"fmt"
	"strconv"
)

// Part selects which of the two solvers a run executes.
type Part int

const (
	Part1 Part = 1
	Part2 Part = 2
)

func (p Part) String() string {
	switch p {
	case Part1, Part2:
		return strconv.Itoa(int(p))
	}
	return fmt.Sprintf("Part(%d)", int(p))
}

// ParsePart parses the literal token "1" or "2".
// Anything else, including surrounding whitespace, is an InvalidPart error.
func ParsePart(s string) (Part, error) {
	switch s {
	case "1":
		return Part1, nil
	case "2":
		return Part2, nil
	}
	return 0, &Error{Kind: InvalidPart, Msg: s}
}

// A Request is a single run: the part to execute and the arguments to pass
// to its solver.
type Request struct {
	Part Part
	Args []string
}

// NewRequest builds a Request from already-parsed command line values.
// A nil part means the part was never supplied (MissingPart), which is
// checked before the token itself is parsed.
// The returned Args is never nil and does not alias args.
func NewRequest(part *string, args []string) (Request, error) {
	if part == nil {
		return Request{}, &Error{Kind: MissingPart}
	}
	p, err := ParsePart(*part)
	if err != nil {
		return Request{}, err
	}
	return Request{
		Part: p,
		Args: append(make([]string, 0, len(args)), args...),
	}, nil
}

// ErrorKind classifies an *Error.
type ErrorKind int

const (
	MissingPart ErrorKind = iota + 1
	InvalidPart
	IOFailure
	FromUser
)

var kindNames = map[ErrorKind]string{
	MissingPart: "MissingPart",
	InvalidPart: "InvalidPart",
	IOFailure:   "IOFailure",
	FromUser:    "FromUser",
}

func (k ErrorKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is the single error type returned by a run.
//
// For InvalidPart, Msg is the rejected token. For FromUser, Msg is the
// solver's error text; nothing else about the solver's error is kept.
// For IOFailure, Err is the underlying read error.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case MissingPart:
		return "missing part: use 1 or 2 as the argument for -part"
	case InvalidPart:
		return fmt.Sprintf("invalid part %q: use 1 or 2 as the argument for -part", e.Msg)
	case IOFailure:
		return fmt.Sprintf("cannot read input: %s", e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf reports the kind of the *Error in err's chain, if there is one.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

func ioError(err error) error {
	if k, ok := KindOf(err); ok && k == IOFailure {
		return err
	}
	return &Error{Kind: IOFailure, Err: err}
}

func userError(err error) error {
	return &Error{Kind: FromUser, Msg: err.Error()}
}
