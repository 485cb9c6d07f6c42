package dsv

import (
	"strings"
	"unicode/utf8"
)

func trimLineEnding(line string) string {
	return strings.TrimSuffix(line, "\r")
}

// Blank lines and comment lines carry no record
func shouldSkip(line string, comment rune) bool {
	if len(line) == 0 {
		return true
	}
	if comment == 0 {
		return false
	}
	first, _ := utf8.DecodeRuneInString(line)
	return first == comment
}

func splitLine(line string, delimiter rune) []string {
	return strings.Split(line, string(delimiter))
}

func joinLine(fields []string, delimiter rune) string {
	return strings.Join(fields, string(delimiter))
}

