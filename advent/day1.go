package main

import (
	"fmt"
	"math/big"
	"strings"
)

func init() {
	register("1", day1a, day1b)
}

// captchaDigits returns the digit string for day 1: the first argument if
// there is one, otherwise the trimmed input.
func captchaDigits(input string, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return strings.TrimSpace(input)
}

func day1a(input string, args []string) (*big.Int, error) {
	return captchaSum(captchaDigits(input, args), 1)
}

func day1b(input string, args []string) (*big.Int, error) {
	digits := captchaDigits(input, args)
	if len(digits)%2 != 0 {
		return nil, fmt.Errorf("need even number of digits; got %d", len(digits))
	}
	return captchaSum(digits, len(digits)/2)
}

// captchaSum adds up each digit that matches the digit offset places ahead
// of it, wrapping around the end.
func captchaSum(digits string, offset int) (*big.Int, error) {
	sum := new(big.Int)
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("input contained non-digit %q", c)
		}
		if c == digits[(i+offset)%len(digits)] {
			sum.Add(sum, big.NewInt(int64(c-'0')))
		}
	}
	return sum, nil
}
