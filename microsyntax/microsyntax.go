// Package microsyntax loads the LHS::RHS microsyntax file format: one
// named pattern per line, category on the left of the first unescaped
// "::", pattern text on the right.
package microsyntax

import (
	"bufio"
	"os"
	"strings"

	"github.com/projectdiscovery/gologger"
)

// Line is one parsed LHS::RHS entry.
type Line struct {
	Category string
	Pattern  string
}

// scan walks line once, unescaping each "\:" to a literal ':' in the
// left-hand side and locating the first unescaped "::" as the split
// point, while counting every unescaped "::" occurrence in the whole
// line. Exactly one such occurrence is required for the line to be
// well-formed; a literal "::" in the category is written as two
// independent "\:" escapes, not a single backslash before two colons.
func scan(line string) (lhs, rhs string, count int) {
	runes := []rune(line)
	var sb strings.Builder
	split := false

	i := 0
	for i < len(runes) {
		switch {
		case runes[i] == '\\' && i+1 < len(runes) && runes[i+1] == ':':
			if !split {
				sb.WriteRune(':')
			}
			i += 2
		case runes[i] == ':' && i+1 < len(runes) && runes[i+1] == ':':
			count++
			if !split {
				lhs = sb.String()
				rhs = string(runes[i+2:])
				split = true
			}
			i += 2
		default:
			if !split {
				sb.WriteRune(runes[i])
			}
			i++
		}
	}
	if !split {
		lhs = sb.String()
	}
	return lhs, rhs, count
}

// ParseLine parses a single LHS::RHS line. It is pure and performs no I/O.
func ParseLine(line string) (Line, error) {
	lhs, rhs, count := scan(line)
	if count != 1 {
		return Line{}, &MalformedMicrosyntaxError{Line: line}
	}
	return Line{Category: lhs, Pattern: rhs}, nil
}

// ParseLines parses every line in lines, stopping at the first malformed
// one. It is pure and I/O-free, used directly by tests.
func ParseLines(lines []string) ([]Line, error) {
	out := make([]Line, 0, len(lines))
	for _, raw := range lines {
		line, err := ParseLine(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, line)
	}
	return out, nil
}

// ReadFile reads path line by line with a bufio.Scanner and parses every
// line. This is the only I/O in the microsyntax package; ParseLines is
// the I/O-free core it delegates to.
func ReadFile(path string) ([]Line, error) {
	gologger.Debug().Msgf("microsyntax: reading %s", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, &FileOpenError{Path: path, Err: err}
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, &FileReadError{Path: path, Err: err}
	}

	return ParseLines(lines)
}
