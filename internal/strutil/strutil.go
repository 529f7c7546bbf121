// Copyright 2020 Aleksandr Demakin. All rights reserved.

package strutil

import (
	"sort"
	"strings"
)

// Grouped inserts sep after every 'every' characters of s, counting from the left.
// A trailing separator is never written.
func Grouped(s string, every int, sep byte) string {
	if every <= 0 || len(s) <= every {
		return s
	}
	var builder strings.Builder
	builder.Grow(len(s) + len(s)/every)
	for i := 0; i < len(s); i += every {
		if i > 0 {
			builder.WriteByte(sep)
		}
		end := i + every
		if end > len(s) {
			end = len(s)
		}
		builder.WriteString(s[i:end])
	}
	return builder.String()
}

// Split inserts sep before each of the given positions of s.
// Positions outside of (0, len(s)) are ignored.
func Split(s string, sep byte, at ...int) string {
	positions := append([]int(nil), at...)
	sort.Ints(positions)
	var builder strings.Builder
	builder.Grow(len(s) + len(positions))
	prev := 0
	for _, pos := range positions {
		if pos <= prev || pos >= len(s) {
			continue
		}
		builder.WriteString(s[prev:pos])
		builder.WriteByte(sep)
		prev = pos
	}
	builder.WriteString(s[prev:])
	return builder.String()
}

// IsSeparator returns true for the runes allowed between groups of digits.
func IsSeparator(r rune) bool {
	switch r {
	case ',', '_', ' ', '\t':
		return true
	default:
		return false
	}
}
