package core

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadLines reads r line by line, dropping carriage returns and trailing blank
// lines.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return TrimBlank(lines), nil
}

// TrimBlank drops trailing empty lines.
func TrimBlank(lines []string) []string {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
