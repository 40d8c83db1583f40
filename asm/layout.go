package asm

// Line is one logical line of the layout model: the labels bound to a
// statement, the statement itself, any comment on the same line, and the
// count of blank source lines immediately preceding.
type Line struct {
	Labels  []*Label
	Stmt    Item     // *Instruction or *Directive; nil for comment-only or label-only lines
	Comment *Comment // trailing when Stmt != nil, own-line otherwise
	// BlankBefore counts the blank source lines between this line and the
	// previous one. Leading blanks at the top of the file are dropped.
	BlankBefore int
	// SameLine is set when the last label shares its source line with the
	// statement, so the formatter can keep them together.
	SameLine bool
}

// FirstLine is the source line this logical line starts on.
func (ln *Line) FirstLine() int {
	if len(ln.Labels) > 0 {
		return ln.Labels[0].Pos.Line
	}
	if ln.Stmt != nil {
		return ln.Stmt.Span().Line
	}
	return ln.Comment.Pos.Line
}

func (ln *Line) lastLine() int {
	last := 0
	for _, l := range ln.Labels {
		last = max(last, l.Pos.EndLine)
	}
	if ln.Stmt != nil {
		last = max(last, ln.Stmt.Span().EndLine)
	}
	if ln.Comment != nil {
		last = max(last, ln.Comment.Pos.EndLine)
	}
	return last
}

// Lines derives the layout model from the parsed items: labels are
// grouped with the statement that follows them, a comment on the same
// line as a statement becomes its trailing comment, and blank-line runs
// between logical lines are counted. The AST itself is not mutated.
func (p *Program) Lines() []Line {
	var lines []Line
	var pending []*Label

	flush := func(ln Line) {
		ln.Labels = pending
		pending = nil
		lines = append(lines, ln)
	}

	for n := 0; n < len(p.Items); n++ {
		switch item := p.Items[n].(type) {
		case *Label:
			pending = append(pending, item)

		case *Comment:
			lines = append(lines, Line{Comment: item})

		default:
			ln := Line{Stmt: item}
			if len(pending) > 0 {
				ln.SameLine = pending[len(pending)-1].Pos.Line == item.Span().Line
			}
			if n+1 < len(p.Items) {
				if c, ok := p.Items[n+1].(*Comment); ok && c.Pos.Line == item.Span().EndLine {
					ln.Comment = c
					n++
				}
			}
			flush(ln)
		}
	}
	if len(pending) > 0 {
		flush(Line{})
	}

	last := 0
	for n := range lines {
		first := lines[n].FirstLine()
		if n > 0 && first > last+1 {
			lines[n].BlankBefore = first - last - 1
		}
		last = lines[n].lastLine()
	}

	return lines
}
