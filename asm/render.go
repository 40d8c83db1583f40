package asm

import (
	"fmt"
	"strings"
)

// Render formats the error with the offending source line and a caret
// marker, suitable for terminal output.
func (e *SyntaxError) Render(filename, source string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "error: %s, found ", f("expected %s", expectedOneOf(e.Expected)))
	if e.Found == "" {
		sb.WriteString(f("end of input"))
	} else {
		fmt.Fprintf(&sb, "'%s'", e.Found)
	}
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "  --> %s:%d:%d\n", filename, e.Pos.Line, e.Pos.Col)

	line := sourceLine(source, e.Pos.Line)
	gutter := fmt.Sprintf("%d", e.Pos.Line)
	pad := strings.Repeat(" ", len(gutter))
	fmt.Fprintf(&sb, "%s |\n", pad)
	fmt.Fprintf(&sb, "%s | %s\n", gutter, line)

	width := e.Pos.End - e.Pos.Start
	if width < 1 {
		width = 1
	}
	fmt.Fprintf(&sb, "%s | %s%s\n", pad,
		strings.Repeat(" ", e.Pos.Col-1), strings.Repeat("^", width))

	return sb.String()
}

func sourceLine(source string, line int) string {
	for n, l := range strings.Split(source, "\n") {
		if n+1 == line {
			return strings.TrimRight(l, "\r")
		}
	}
	return ""
}
