package lint

import (
	"fmt"
	"strings"
)

// Render formats the diagnostic with the offending source line and a
// caret marker, suitable for terminal output.
func (d *Diagnostic) Render(filename, source string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s: %s [%s]\n", d.Severity, d.Message, d.Kind.Rule())
	fmt.Fprintf(&sb, "  --> %s:%d:%d\n", filename, d.Pos.Line, d.Pos.Col)

	line := sourceLine(source, d.Pos.Line)
	gutter := fmt.Sprintf("%d", d.Pos.Line)
	pad := strings.Repeat(" ", len(gutter))
	fmt.Fprintf(&sb, "%s |\n", pad)
	fmt.Fprintf(&sb, "%s | %s\n", gutter, line)

	width := d.Pos.End - d.Pos.Start
	if width < 1 {
		width = 1
	}
	fmt.Fprintf(&sb, "%s | %s%s\n", pad,
		strings.Repeat(" ", d.Pos.Col-1), strings.Repeat("^", width))

	if d.Suggestion != "" {
		fmt.Fprintf(&sb, "%s = %s\n", pad, f("help: write '%v'", d.Suggestion))
	}

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
