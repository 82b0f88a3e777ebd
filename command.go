package fireplace

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/kr/pretty"
)

// Options controls what Run does around the dispatch itself.
type Options struct {
	// Time adds an "RT <ns> ns" line after the answer.
	Time bool
	// Verbose logs the request, input size, and solver timings.
	Verbose bool
	// Profile, if non-nil, receives an fgprof profile of the solver.
	Profile io.Writer
	// Stdout receives the answer. If nil, os.Stdout is used.
	Stdout io.Writer
}

// Run dispatches req to solve1 or solve2 and reports the answer.
// It returns the reported answer text.
func Run[T, U any](solve1 Solver[T], solve2 Solver[U], in InputReader, req Request, opts Options) (string, error) {
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	logf := func(format string, args ...any) {
		if opts.Verbose {
			log.Printf(format, args...)
		}
	}
	logf("request: %# v", pretty.Formatter(req))

	// Timed is innermost so the reported time covers only the solver call.
	var elapsed time.Duration
	solve1 = Timed(solve1, &elapsed)
	solve2 = Timed(solve2, &elapsed)
	var cpu time.Duration
	if opts.Verbose {
		solve1 = CPUTimed(solve1, &cpu)
		solve2 = CPUTimed(solve2, &cpu)
		in = sizeLoggingInput{in, logf}
	}
	var profErr error
	if opts.Profile != nil {
		solve1 = Profiled(solve1, opts.Profile, &profErr)
		solve2 = Profiled(solve2, opts.Profile, &profErr)
	}

	answer, err := Dispatch(solve1, solve2, in, req)
	if profErr != nil {
		log.Printf("error writing profile: %s", profErr)
	}
	if err != nil {
		return "", err
	}
	logf("part %s: %s ns elapsed, %s CPU", req.Part, humanize.Comma(elapsed.Nanoseconds()), cpu)

	if opts.Time {
		return ReportTimed(stdout, answer, elapsed), nil
	}
	return Report(stdout, answer), nil
}

type sizeLoggingInput struct {
	InputReader
	logf func(string, ...any)
}

func (si sizeLoggingInput) ReadInput() (string, error) {
	s, err := si.InputReader.ReadInput()
	if err == nil {
		si.logf("read %s of input", humanize.Bytes(uint64(len(s))))
	}
	return s, err
}

// Main runs the command line in os.Args against solve1 and solve2 and exits
// the process if the run fails. See RunCommand for the flags.
func Main[T, U any](solve1 Solver[T], solve2 Solver[U]) {
	log.SetFlags(0)
	if err := RunCommand(filepath.Base(os.Args[0]), os.Args[1:], solve1, solve2); err != nil {
		if err == flag.ErrHelp {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

// RunCommand parses arguments as a fireplace command line and runs it:
//
//	name -part N [-time] [-input src] [-profile file] [-v] [-a arg]... [args...]
//
// The solver's arguments are the values of any -a (or -args) flags followed
// by the trailing arguments. Defaults for the optional flags come from
// LoadConfig.
func RunCommand[T, U any](name string, arguments []string, solve1 Solver[T], solve2 Solver[U]) error {
	_, err := runCommand(name, arguments, os.Stdout, os.Stderr, solve1, solve2)
	return err
}

func runCommand[T, U any](name string, arguments []string, stdout, stderr io.Writer, solve1 Solver[T], solve2 Solver[U]) (string, error) {
	path, err := ConfigPath()
	if err != nil {
		return "", err
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return "", err
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	var part string
	fs.StringVar(&part, "part", "", "Run solution part `N` (1 or 2)")
	fs.StringVar(&part, "p", "", "Shorthand for -part")
	fs.BoolVar(&cfg.Time, "time", cfg.Time, "Print the solver's run time in nanoseconds")
	fs.StringVar(&cfg.Input, "input", cfg.Input, "Read input from `src`: a file, s3://bucket/key, or - for stdin")
	fs.StringVar(&cfg.Profile, "profile", cfg.Profile, "Write an fgprof profile of the solver to `file`")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Log run details to stderr")
	var args argList
	fs.Var(&args, "a", "Pass `arg` to the solver (repeatable; trailing arguments are passed too)")
	fs.Var(&args, "args", "Same as -a")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: %s -part N [flags] [args...]\n", name)
		fs.PrintDefaults()
	}
	if err := fs.Parse(arguments); err != nil {
		return "", err
	}

	var partArg *string
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "part" || f.Name == "p" {
			partArg = &part
		}
	})
	req, err := NewRequest(partArg, append(args, fs.Args()...))
	if err != nil {
		return "", err
	}

	in, err := cfg.InputReader()
	if err != nil {
		return "", err
	}
	opts := Options{
		Time:    cfg.Time,
		Verbose: cfg.Verbose,
		Stdout:  stdout,
	}
	if cfg.Profile != "" {
		f, err := os.Create(cfg.Profile)
		if err != nil {
			return "", err
		}
		opts.Profile = f
		answer, err := Run(solve1, solve2, in, req, opts)
		f.Close()
		if err != nil {
			// Don't leave an empty or partial profile behind.
			os.Remove(cfg.Profile)
			return "", err
		}
		return answer, nil
	}
	return Run(solve1, solve2, in, req, opts)
}

// argList is a flag.Value collecting each use of a repeatable flag.
type argList []string

func (a *argList) String() string { return strings.Join(*a, " ") }

func (a *argList) Set(s string) error {
	*a = append(*a, s)
	return nil
}
