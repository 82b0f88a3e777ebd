package fireplace_test

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/cespare/fireplace"
)

func countWords(input string, args []string) (int, error) {
	if len(args) > 0 {
		return len(args), nil
	}
	return len(strings.Fields(input)), nil
}

func longestWord(input string, _ []string) (string, error) {
	var longest string
	for _, w := range strings.Fields(input) {
		if len(w) > len(longest) {
			longest = w
		}
	}
	if longest == "" {
		return "", errors.New("no words in input")
	}
	return longest, nil
}

func ExampleDispatch() {
	in := fireplace.StringInput("the quick brown fox\n")
	part := "2"
	req, err := fireplace.NewRequest(&part, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	answer, err := fireplace.Dispatch(countWords, longestWord, in, req)
	if err != nil {
		fmt.Println(err)
		return
	}
	fireplace.Report(os.Stdout, answer)
	// Output:
	// quick
}

func ExampleDispatch_error() {
	req := fireplace.Request{Part: fireplace.Part2, Args: []string{}}
	_, err := fireplace.Dispatch(countWords, longestWord, fireplace.StringInput(" "), req)
	kind, _ := fireplace.KindOf(err)
	fmt.Println(kind, err)
	// Output:
	// FromUser no words in input
}

func ExampleRun() {
	req := fireplace.Request{Part: fireplace.Part1, Args: []string{"a", "b", "c"}}
	fireplace.Run(countWords, longestWord, fireplace.StringInput(""), req, fireplace.Options{})
	// Output:
	// 3
}
