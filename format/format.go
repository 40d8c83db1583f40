// Package format renders a parsed Program back to canonical text. Output
// is a pure function of the AST and the style configuration, so
// formatting already-formatted text is a no-op.
package format

import (
	"strings"

	"github.com/lc3kit/lc3kit/asm"
	"github.com/lc3kit/lc3kit/style"
)

// Format renders the program with canonical indentation, operand
// spacing, and per-block comment alignment.
func Format(prog *asm.Program, fs style.FormatStyle) string {
	lines := renderLines(prog, fs)
	if len(lines) == 0 {
		return ""
	}

	blockID := assignBlocks(lines)
	commentCol := make([]int, blockID[len(lines)-1]+1)
	blockIndent := make([]int, len(commentCol))
	for n := range blockIndent {
		blockIndent[n] = -1
	}
	for n, ln := range lines {
		id := blockID[n]
		if ln.stmt == nil {
			continue
		}
		commentCol[id] = max(commentCol[id], len(ln.code)+fs.SpaceBlockToComment)
		if blockIndent[id] < 0 {
			blockIndent[id] = bodyIndent(ln.stmt, fs)
		}
	}

	var sb strings.Builder
	for n, ln := range lines {
		for i := 0; i < ln.blank; i++ {
			sb.WriteByte('\n')
		}
		for _, lbl := range ln.labels {
			sb.WriteString(lbl)
			sb.WriteByte('\n')
		}

		switch {
		case ln.ownLine:
			col := blockIndent[blockID[n]]
			if fs.FixedBodyCommentIndent {
				col = fs.IndentMinCommentFromBlock
			}
			if col < 0 {
				col = 0
			}
			sb.WriteString(strings.Repeat(" ", col))
			sb.WriteString(ln.comment)
			sb.WriteByte('\n')

		case ln.stmt != nil:
			sb.WriteString(ln.code)
			if ln.comment != "" {
				if fs.SpaceCommentStickToBody {
					sb.WriteByte(' ')
				} else {
					sb.WriteString(strings.Repeat(" ", commentCol[blockID[n]]-len(ln.code)))
				}
				sb.WriteString(ln.comment)
			}
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// line is one rendered logical line awaiting comment alignment.
type line struct {
	labels  []string // own-line labels, already indented
	code    string   // label-padded statement text
	comment string   // normalized comment, "" if none
	ownLine bool     // comment-only line
	blank   int      // blank lines to emit before this line
	stmt    asm.Item
}

func renderLines(prog *asm.Program, fs style.FormatStyle) []line {
	layout := prog.Lines()
	lines := make([]line, 0, len(layout))

	for _, ln := range layout {
		out := line{stmt: ln.Stmt}

		labels := ln.Labels
		indent := 0
		if ln.Stmt != nil {
			indent = bodyIndent(ln.Stmt, fs)
		}

		// A label stays on the statement line only when it fits inside
		// the indent; otherwise it wraps so the statement still starts
		// at the configured indent column.
		inline := ""
		if ln.SameLine && ln.Stmt != nil && !wrapForced(ln.Stmt, fs) {
			last := renderLabel(labels[len(labels)-1], fs)
			if len(last) < indent {
				inline = last
				labels = labels[:len(labels)-1]
			}
		}
		for _, lbl := range labels {
			out.labels = append(out.labels, renderLabel(lbl, fs))
		}

		if ln.Stmt != nil {
			body := renderBody(ln.Stmt)
			out.code = inline + strings.Repeat(" ", indent-len(inline)) + body
		}

		if ln.Comment != nil {
			out.comment = renderComment(ln.Comment)
			out.ownLine = ln.Stmt == nil
		}

		lines = append(lines, out)
	}

	applyBlanks(lines, layout, fs)
	return lines
}

// applyBlanks sets each line's emitted blank count to the larger of the
// source count and the configured minimum, so emitted blanks re-parse to
// the same counts and formatting stays idempotent.
func applyBlanks(lines []line, layout []asm.Line, fs style.FormatStyle) {
	for n := 1; n < len(lines); n++ {
		minimum := 0
		prev, curr := &layout[n-1], &layout[n]
		switch {
		case directiveKind(prev.Stmt) == asm.DIR_ORIG:
			minimum = fs.SpaceFromStartEndBlock
		case directiveKind(curr.Stmt) == asm.DIR_END &&
			directiveKind(prev.Stmt) != asm.DIR_INVALID:
			minimum = fs.SpaceFromStartEndBlock
		case prev.Stmt != nil && curr.Stmt != nil &&
			len(prev.Labels) == 0 && len(curr.Labels) > 0:
			minimum = fs.SpaceFromLabelBlock
		}
		lines[n].blank = max(curr.BlankBefore, minimum)
	}
}

// assignBlocks splits lines into comment-alignment blocks at blank-line
// breaks and around .ORIG/.END directives.
func assignBlocks(lines []line) []int {
	blockID := make([]int, len(lines))
	id := 0
	for n := range lines {
		if n > 0 && (lines[n].blank > 0 ||
			isOrigEnd(lines[n].stmt) || isOrigEnd(lines[n-1].stmt)) {
			id++
		}
		blockID[n] = id
	}
	return blockID
}

func directiveKind(item asm.Item) asm.DirectiveKind {
	if d, ok := item.(*asm.Directive); ok {
		return d.Kind
	}
	return asm.DIR_INVALID
}

func isOrigEnd(item asm.Item) bool {
	kind := directiveKind(item)
	return kind == asm.DIR_ORIG || kind == asm.DIR_END
}

func wrapForced(stmt asm.Item, fs style.FormatStyle) bool {
	_, isDirective := stmt.(*asm.Directive)
	return isDirective && fs.DirectiveLabelWrap
}

func renderLabel(lbl *asm.Label, fs style.FormatStyle) string {
	name := lbl.Name
	if fs.ColonAfterLabel {
		name += ":"
	}
	return strings.Repeat(" ", fs.IndentLabel) + name
}

func bodyIndent(stmt asm.Item, fs style.FormatStyle) int {
	switch kind := directiveKind(stmt); {
	case kind == asm.DIR_ORIG || kind == asm.DIR_END:
		return 0
	case kind != asm.DIR_INVALID:
		return fs.IndentDirective
	default:
		return fs.IndentInstruction
	}
}

func renderBody(stmt asm.Item) string {
	switch item := stmt.(type) {
	case *asm.Instruction:
		operands := make([]string, len(item.Operands))
		for n, op := range item.Operands {
			operands[n] = op.Text
		}
		if len(operands) == 0 {
			return item.Text
		}
		return item.Text + " " + strings.Join(operands, ", ")

	case *asm.Directive:
		if item.Arg == nil {
			return item.Text
		}
		return item.Text + " " + item.Arg.Text
	}
	return ""
}

func renderComment(c *asm.Comment) string {
	return ";" + strings.TrimSpace(strings.TrimPrefix(c.Text, ";"))
}
