package main

import (
	"math/big"
	"reflect"
	"sort"
	"testing"
)

func TestDay1(t *testing.T) {
	for _, tt := range []struct {
		fn     func(string, []string) (*big.Int, error)
		digits string
		want   int64
	}{
		{day1a, "1122", 3},
		{day1a, "1111", 4},
		{day1a, "1234", 0},
		{day1a, "91212129", 9},
		{day1b, "1212", 6},
		{day1b, "1221", 0},
		{day1b, "123425", 4},
		{day1b, "123123", 12},
		{day1b, "12131415", 4},
	} {
		// The digits may come from the input or from the first argument.
		for _, call := range []struct {
			input string
			args  []string
		}{
			{tt.digits + "\n", []string{}},
			{"ignored", []string{tt.digits}},
		} {
			got, err := tt.fn(call.input, call.args)
			if err != nil {
				t.Errorf("(%q, %q): %s", call.input, call.args, err)
				continue
			}
			if got.Int64() != tt.want {
				t.Errorf("(%q, %q): got %s; want %d", call.input, call.args, got, tt.want)
			}
		}
	}
}

func TestDay1Errors(t *testing.T) {
	if _, err := day1a("12x4", nil); err == nil {
		t.Error("day1a: got nil error for non-digit input")
	}
	if _, err := day1b("123", nil); err == nil {
		t.Error("day1b: got nil error for odd-length input")
	}
}

func TestDay2(t *testing.T) {
	got, err := day2a("5 1 9 5\n7 5 3\n2 4 6 8\n", nil)
	if err != nil {
		t.Fatal(err)
	}
	if want := int64(18); got != want {
		t.Errorf("day2a: got %d; want %d", got, want)
	}
	got, err = day2b("5 9 2 8\n9 4 7 3\n3 8 6 5\n", nil)
	if err != nil {
		t.Fatal(err)
	}
	if want := int64(9); got != want {
		t.Errorf("day2b: got %d; want %d", got, want)
	}
}

func TestDay2Errors(t *testing.T) {
	for _, tt := range []struct {
		fn    func(string, []string) (int64, error)
		input string
		want  string
	}{
		{day2a, "", "empty spreadsheet"},
		{day2a, "1 2\n\n3 4\n", "row 2: empty row"},
		{day2a, "1 2\n3 x\n", `row 2: strconv.ParseInt: parsing "x": invalid syntax`},
		{day2b, "2 4\n3 5\n", "row 2: no evenly divisible pair"},
	} {
		_, err := tt.fn(tt.input, nil)
		if err == nil {
			t.Errorf("(%q): got nil error; want %q", tt.input, tt.want)
			continue
		}
		if got := err.Error(); got != tt.want {
			t.Errorf("(%q): got error %q; want %q", tt.input, got, tt.want)
		}
	}
}

func TestRunUnknownDay(t *testing.T) {
	if err := run("99", []string{"-part", "1"}); err == nil {
		t.Error("got nil error for unknown day")
	}
}

func TestDayNames(t *testing.T) {
	got := dayNames()
	want := []string{"1", "2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q; want %q", got, want)
	}
}

func TestNameLess(t *testing.T) {
	names := []string{"x", "10", "2", "b", "1"}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	want := []string{"1", "2", "10", "b", "x"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("got %q; want %q", names, want)
	}
}
