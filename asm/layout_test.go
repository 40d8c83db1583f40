package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinesGrouping(t *testing.T) {
	assert := assert.New(t)

	prog, err := Parse("FIRST\nSECOND HALT\n")
	assert.NoError(err)

	lines := prog.Lines()
	assert.Equal(1, len(lines))
	assert.Equal(2, len(lines[0].Labels))
	assert.Equal("FIRST", lines[0].Labels[0].Name)
	assert.Equal("SECOND", lines[0].Labels[1].Name)
	assert.True(lines[0].SameLine)
	assert.IsType(&Instruction{}, lines[0].Stmt)
}

func TestLinesOwnLineLabel(t *testing.T) {
	assert := assert.New(t)

	prog, err := Parse("LOOP\n    HALT\n")
	assert.NoError(err)

	lines := prog.Lines()
	assert.Equal(1, len(lines))
	assert.Equal(1, len(lines[0].Labels))
	assert.False(lines[0].SameLine)
}

func TestLinesTrailingComment(t *testing.T) {
	assert := assert.New(t)

	prog, err := Parse("HALT ; stop\n; next line\n")
	assert.NoError(err)

	lines := prog.Lines()
	assert.Equal(2, len(lines))

	assert.NotNil(lines[0].Comment)
	assert.Equal("; stop", lines[0].Comment.Text)
	assert.NotNil(lines[0].Stmt)

	assert.Nil(lines[1].Stmt)
	assert.Equal("; next line", lines[1].Comment.Text)
}

// A comment on the line after a statement stays its own line even with
// no blank between them.
func TestLinesCommentNotHybridized(t *testing.T) {
	assert := assert.New(t)

	prog, err := Parse("HALT\n; alone\n")
	assert.NoError(err)

	lines := prog.Lines()
	assert.Equal(2, len(lines))
	assert.Nil(lines[0].Comment)
	assert.Nil(lines[1].Stmt)
}

func TestLinesBlankCounting(t *testing.T) {
	assert := assert.New(t)

	prog, err := Parse("\n\nHALT\n\n\n\nRET\n")
	assert.NoError(err)

	lines := prog.Lines()
	assert.Equal(2, len(lines))
	assert.Equal(0, lines[0].BlankBefore) // leading blanks dropped
	assert.Equal(3, lines[1].BlankBefore)
}

func TestLinesLabelOnlyAtEOF(t *testing.T) {
	assert := assert.New(t)

	prog, err := Parse("HALT\nDONE\n")
	assert.NoError(err)

	lines := prog.Lines()
	assert.Equal(2, len(lines))
	assert.Nil(lines[1].Stmt)
	assert.Equal("DONE", lines[1].Labels[0].Name)
}

func TestLinesMultilineStatement(t *testing.T) {
	assert := assert.New(t)

	// Operands may continue on the next line; a comment on the operand
	// line still trails the statement.
	prog, err := Parse("ADD R0,\n    R0, #1 ; wrapped\n")
	assert.NoError(err)

	lines := prog.Lines()
	assert.Equal(1, len(lines))
	assert.NotNil(lines[0].Comment)
}
