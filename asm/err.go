package asm

import (
	"strings"

	"github.com/lc3kit/lc3kit/translate"
)

var f = translate.From

// SyntaxError is the terminal result of parsing one file: the offending
// span, what was found there, and the syntactic alternatives that were
// expected instead. It aborts processing of that file only.
type SyntaxError struct {
	Pos      Span
	Found    string   // offending text, empty at end of input
	Expected []string // alternatives, in grammar order
}

func (e *SyntaxError) Error() string {
	found := e.Found
	if found == "" {
		found = f("end of input")
	} else {
		found = "'" + found + "'"
	}
	return f("%d:%d: expected %s, found %s",
		e.Pos.Line, e.Pos.Col, expectedOneOf(e.Expected), found)
}

func expectedOneOf(alts []string) string {
	if len(alts) == 1 {
		return alts[0]
	}
	return f("one of {%s}", strings.Join(alts, ", "))
}
