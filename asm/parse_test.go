package asm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEmpty(t *testing.T) {
	assert := assert.New(t)

	prog, err := Parse("")
	assert.NoError(err)
	assert.Empty(prog.Items)

	prog, err = Parse("\n\n   \n")
	assert.NoError(err)
	assert.Empty(prog.Items)
}

func TestParseProgram(t *testing.T) {
	assert := assert.New(t)

	prog, err := Parse(".ORIG x3000\n" +
		"LOOP ADD R1, R1, #1\n" +
		"     BRnzp LOOP\n" +
		"     HALT ; stop\n" +
		"MSG  .STRINGZ \"hi\"\n" +
		".END\n")
	assert.NoError(err)
	assert.Equal(9, len(prog.Items))

	orig := prog.Items[0].(*Directive)
	assert.Equal(DIR_ORIG, orig.Kind)
	assert.Equal(".ORIG", orig.Text)
	assert.Equal("x3000", orig.Arg.Text)
	assert.Equal(int64(0x3000), orig.Arg.Value)

	lbl := prog.Items[1].(*Label)
	assert.Equal("LOOP", lbl.Name)
	assert.False(lbl.Colon)

	add := prog.Items[2].(*Instruction)
	assert.Equal(INST_ADD, add.Mnemonic)
	assert.Equal(3, len(add.Operands))

	br := prog.Items[3].(*Instruction)
	assert.Equal(INST_BRNZP, br.Mnemonic)
	assert.Equal("BRnzp", br.Text)
	assert.Equal(OPERAND_LABEL_REF, br.Operands[0].Kind)
	assert.Equal("LOOP", br.Operands[0].Text)

	halt := prog.Items[4].(*Instruction)
	assert.Equal(INST_HALT, halt.Mnemonic)
	assert.Empty(halt.Operands)

	comment := prog.Items[5].(*Comment)
	assert.Equal("; stop", comment.Text)

	stringz := prog.Items[7].(*Directive)
	assert.Equal(DIR_STRINGZ, stringz.Kind)
	assert.Equal(`"hi"`, stringz.Arg.Text)

	end := prog.Items[8].(*Directive)
	assert.Equal(DIR_END, end.Kind)
	assert.Nil(end.Arg)
}

// Keyword recognition is a whole-token lookup; identifiers that merely
// start with a keyword are labels.
func TestParseDisambiguation(t *testing.T) {
	assert := assert.New(t)

	prog, err := Parse("IN")
	assert.NoError(err)
	inst := prog.Items[0].(*Instruction)
	assert.Equal(INST_IN, inst.Mnemonic)

	prog, err = Parse("INDIRECT")
	assert.NoError(err)
	lbl := prog.Items[0].(*Label)
	assert.Equal("INDIRECT", lbl.Name)

	prog, err = Parse("BRa")
	assert.NoError(err)
	lbl = prog.Items[0].(*Label)
	assert.Equal("BRa", lbl.Name)

	prog, err = Parse("add r0, r0, #1")
	assert.NoError(err)
	inst = prog.Items[0].(*Instruction)
	assert.Equal(INST_ADD, inst.Mnemonic)
	assert.Equal("add", inst.Text)
}

func TestParseLabelColon(t *testing.T) {
	assert := assert.New(t)

	prog, err := Parse("LOOP: HALT")
	assert.NoError(err)
	lbl := prog.Items[0].(*Label)
	assert.Equal("LOOP", lbl.Name)
	assert.True(lbl.Colon)
}

// Operand lexemes survive verbatim, alongside the decoded value.
func TestParseImmediates(t *testing.T) {
	assert := assert.New(t)

	prog, err := Parse("ADD R0, R1, x2A\n" +
		"ADD R0, R1, #10\n" +
		"ADD R0, R1, -5\n" +
		"TRAP x25\n")
	assert.NoError(err)

	hex := prog.Items[0].(*Instruction).Operands[2]
	assert.Equal("x2A", hex.Text)
	assert.Equal(int64(42), hex.Value)
	assert.True(hex.Hex)
	assert.False(hex.Signed)

	dec := prog.Items[1].(*Instruction).Operands[2]
	assert.Equal("#10", dec.Text)
	assert.Equal(int64(10), dec.Value)
	assert.False(dec.Hex)
	assert.False(dec.Signed)

	neg := prog.Items[2].(*Instruction).Operands[2]
	assert.Equal("-5", neg.Text)
	assert.Equal(int64(-5), neg.Value)
	assert.True(neg.Signed)

	trap := prog.Items[3].(*Instruction).Operands[0]
	assert.Equal(int64(0x25), trap.Value)
	assert.True(trap.Hex)
}

func TestParseRegisters(t *testing.T) {
	assert := assert.New(t)

	prog, err := Parse("NOT r3, R5")
	assert.NoError(err)

	ops := prog.Items[0].(*Instruction).Operands
	assert.Equal(OPERAND_REGISTER, ops[0].Kind)
	assert.Equal(3, ops[0].Register)
	assert.Equal("r3", ops[0].Text)
	assert.Equal(5, ops[1].Register)
}

func TestParseSeparators(t *testing.T) {
	assert := assert.New(t)

	// Commas and whitespace are interchangeable.
	prog, err := Parse("ADD R0 R1 #1")
	assert.NoError(err)
	assert.Equal(3, len(prog.Items[0].(*Instruction).Operands))

	prog, err = Parse("ADD,R0,R1,#1")
	assert.NoError(err)
	assert.Equal(3, len(prog.Items[0].(*Instruction).Operands))
}

func TestParseErrSyntax(t *testing.T) {
	assert := assert.New(t)

	// Various syntax errors
	table := [](struct {
		prog  string
		line  int
		col   int
		found string
	}){
		{"ADD R0, R0", 1, 11, ""},                 // missing operand at end of input
		{"ADD R0, R0, R0, R0", 1, 17, "R0"},       // extra operand is no label
		{"ADD LOOP, R0, R0", 1, 5, "LOOP"},        // label where register expected
		{"ADD:", 1, 1, "ADD:"},                    // keyword cannot be a label
		{"LD R0, ADD", 1, 8, "ADD"},               // keyword cannot be a label reference
		{"LD R0, R1", 1, 8, "R1"},                 // register cannot be a label reference
		{"BR", 1, 3, ""},                          // branch needs a target
		{"TRAP #37", 1, 6, "#37"},                 // trap vector must be hex
		{"TRAP x12345", 1, 6, "x12345"},           // trap vector too wide
		{".WORD 5", 1, 1, ".WORD"},                // unknown directive
		{".ORIG LOOP", 1, 7, "LOOP"},              // origin must be a hex address
		{".STRINGZ hi", 1, 10, "hi"},              // string literal required
		{".STRINGZ \"hi", 1, 10, "\"hi"},          // unterminated string
		{": HALT", 1, 1, ":"},                     // stray colon
		{"123", 1, 1, "123"},                      // number cannot be a label
		{"R4", 1, 1, "R4"},                        // register cannot be a label
		{"HALT\nADD R8, R0, #1\n", 2, 5, "R8"},    // no such register
		{"HALT\n.ORIG\nHALT\n", 3, 1, "HALT"},     // origin argument missing
		{"AND R0, R0, \"x\"", 1, 13, "\"x\""},     // string where immediate expected
		{"LOOP ADD R0, R0, #9999999999999999999", 1, 18, "#9999999999999999999"}, // overflow
	}

	for _, entry := range table {
		prog, err := Parse(entry.prog)
		var se *SyntaxError
		assert.Nil(prog, entry.prog)
		assert.NotNil(err, entry.prog)
		if err != nil {
			assert.True(errors.As(err, &se), entry.prog)
			assert.Equal(entry.line, se.Pos.Line, entry.prog)
			assert.Equal(entry.col, se.Pos.Col, entry.prog)
			assert.Equal(entry.found, se.Found, entry.prog)
		}
	}
}
