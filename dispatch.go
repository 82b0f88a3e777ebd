package fireplace

import (
	"fmt"
	"time"
)

// A Solver computes the answer to one part of a puzzle.
// Solvers for the two parts may use unrelated answer and error types.
type Solver[T any] func(input string, args []string) (T, error)

// An Answer holds the result of whichever solver ran.
// Exactly one of Part1 and Part2 reports ok.
type Answer[T, U any] struct {
	part Part
	v1   T
	v2   U
}

func (a Answer[T, U]) Part() Part { return a.part }

func (a Answer[T, U]) Part1() (T, bool) { return a.v1, a.part == Part1 }

func (a Answer[T, U]) Part2() (U, bool) { return a.v2, a.part == Part2 }

// Value returns the answer of the solver that ran, or nil for the zero Answer.
func (a Answer[T, U]) Value() any {
	switch a.part {
	case Part1:
		return a.v1
	case Part2:
		return a.v2
	}
	return nil
}

func (a Answer[T, U]) String() string { return fmt.Sprint(a.Value()) }

// Dispatch reads the input from in and calls solve1 or solve2, selected by
// req.Part, with the input and req.Args. The other solver is never called.
//
// A read failure is returned as an IOFailure before any solver runs. A solver
// error of any type is returned as a FromUser *Error carrying its text.
func Dispatch[T, U any](solve1 Solver[T], solve2 Solver[U], in InputReader, req Request) (Answer[T, U], error) {
	input, err := in.ReadInput()
	if err != nil {
		return Answer[T, U]{}, ioError(err)
	}
	a := Answer[T, U]{part: req.Part}
	switch req.Part {
	case Part1:
		a.v1, err = solve1(input, req.Args)
	case Part2:
		a.v2, err = solve2(input, req.Args)
	default:
		return Answer[T, U]{}, &Error{Kind: InvalidPart, Msg: req.Part.String()}
	}
	if err != nil {
		return Answer[T, U]{}, userError(err)
	}
	return a, nil
}

// DispatchTimed is like Dispatch but also returns how long the solver ran.
// Reading the input is not included in the duration.
func DispatchTimed[T, U any](solve1 Solver[T], solve2 Solver[U], in InputReader, req Request) (Answer[T, U], time.Duration, error) {
	var elapsed time.Duration
	a, err := Dispatch(Timed(solve1, &elapsed), Timed(solve2, &elapsed), in, req)
	if err != nil {
		return a, 0, err
	}
	return a, elapsed, nil
}

// Timed wraps s so that each call stores its wall-clock duration in *d.
func Timed[T any](s Solver[T], d *time.Duration) Solver[T] {
	return func(input string, args []string) (T, error) {
		start := time.Now()
		v, err := s(input, args)
		*d = time.Since(start)
		return v, err
	}
}
