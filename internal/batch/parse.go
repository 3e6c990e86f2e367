package batch

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// Pair is one parsed input line. Right is nil when the line had no second field.
type Pair struct {
	Line  int
	Left  string
	Right *string
}

// Parse reads pairs from r.
func Parse(r io.Reader) ([]Pair, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var pairs []Pair
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		pairs = append(pairs, parseLine(lineNo, line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read pairs at line %d: %w", lineNo+1, err)
	}
	return pairs, nil
}

func parseLine(lineNo int, line string) Pair {
	sep := "\t"
	if !strings.Contains(line, sep) {
		sep = ","
	}
	left, right, found := strings.Cut(line, sep)
	pair := Pair{Line: lineNo, Left: strings.TrimSpace(left)}
	if found {
		value := strings.TrimSpace(right)
		pair.Right = &value
	}
	return pair
}
