package main

import (
	"bufio"
	"errors"
	"strconv"
	"strings"
)

func init() {
	register("2", day2a, day2b)
}

type rowError struct {
	row int
	msg string
}

func (e rowError) Error() string {
	return "row " + strconv.Itoa(e.row+1) + ": " + e.msg
}

func day2a(input string, _ []string) (int64, error) {
	mat, err := parseMatrix(input)
	if err != nil {
		return 0, err
	}
	var checksum int64
	for i, row := range mat {
		if len(row) == 0 {
			return 0, rowError{i, "empty row"}
		}
		min, max := row[0], row[0]
		for _, n := range row {
			if n < min {
				min = n
			}
			if n > max {
				max = n
			}
		}
		checksum += max - min
	}
	return checksum, nil
}

func day2b(input string, _ []string) (int64, error) {
	mat, err := parseMatrix(input)
	if err != nil {
		return 0, err
	}

	var sum int64
rowLoop:
	for i, row := range mat {
		for j := 0; j < len(row); j++ {
			for k := j + 1; k < len(row); k++ {
				n0, n1 := row[j], row[k]
				if n0 > n1 {
					n0, n1 = n1, n0
				}
				if n0 == 0 {
					continue
				}
				if n1%n0 == 0 {
					sum += n1 / n0
					continue rowLoop
				}
			}
		}
		return 0, rowError{i, "no evenly divisible pair"}
	}
	return sum, nil
}

func parseMatrix(input string) ([][]int64, error) {
	var mat [][]int64
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		row := make([]int64, len(fields))
		for i, field := range fields {
			n, err := strconv.ParseInt(field, 10, 64)
			if err != nil {
				return nil, rowError{len(mat), err.Error()}
			}
			row[i] = n
		}
		mat = append(mat, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(mat) == 0 {
		return nil, errors.New("empty spreadsheet")
	}
	return mat, nil
}
