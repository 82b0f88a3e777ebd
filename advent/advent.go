// Command advent runs Advent of Code solutions through fireplace.
//
//	advent DAY -part N [flags] [args...]
//
// The puzzle input is read from stdin unless -input says otherwise.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"

	"github.com/cespare/fireplace"
)

func main() {
	log.SetFlags(0)
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s DAY -part N [flags] [args...]\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "where DAY is one of:")
		for _, name := range dayNames() {
			fmt.Fprintln(os.Stderr, name)
		}
		os.Exit(1)
	}
	if err := run(os.Args[1], os.Args[2:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func run(name string, args []string) error {
	fn, ok := days[name]
	if !ok {
		return fmt.Errorf("unknown day %q", name)
	}
	return fn("advent "+name, args)
}

var days = make(map[string]func(name string, args []string) error)

func register[T, U any](name string, part1 fireplace.Solver[T], part2 fireplace.Solver[U]) {
	if _, ok := days[name]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for day %q", name))
	}
	days[name] = func(cmd string, args []string) error {
		return fireplace.RunCommand(cmd, args, part1, part2)
	}
}

func dayNames() []string {
	var names []string
	for name := range days {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	return names
}

// nameLess orders numeric day names numerically and anything else after
// them, lexically.
func nameLess(name0, name1 string) bool {
	n0, err0 := strconv.Atoi(name0)
	n1, err1 := strconv.Atoi(name1)
	switch {
	case err0 == nil && err1 == nil:
		return n0 < n1
	case err0 == nil:
		return true
	case err1 == nil:
		return false
	}
	return name0 < name1
}
