package asm

import (
	"strings"
)

// Mnemonic identifies an LC-3 instruction.
type Mnemonic int

const (
	INST_INVALID = Mnemonic(iota)

	// arithmetic / logic
	INST_ADD
	INST_AND
	INST_NOT

	// load and store
	INST_LD
	INST_LDI
	INST_LDR
	INST_LEA
	INST_ST
	INST_STI
	INST_STR

	// branch
	INST_BR
	INST_BRN
	INST_BRZ
	INST_BRP
	INST_BRNZ
	INST_BRNP
	INST_BRZP
	INST_BRNZP
	INST_JMP
	INST_JSR
	INST_JSRR

	// control
	INST_NOP
	INST_RET
	INST_HALT

	// io
	INST_PUTS
	INST_GETC
	INST_OUT
	INST_IN

	// trap
	INST_TRAP
)

// mnemonicMap maps the reserved keyword spellings, uppercased, to their
// mnemonic tags. Classification is a whole-token lookup in this table;
// there is deliberately no prefix or substring matching anywhere.
var mnemonicMap = map[string]Mnemonic{
	"ADD":   INST_ADD,
	"AND":   INST_AND,
	"NOT":   INST_NOT,
	"LD":    INST_LD,
	"LDI":   INST_LDI,
	"LDR":   INST_LDR,
	"LEA":   INST_LEA,
	"ST":    INST_ST,
	"STI":   INST_STI,
	"STR":   INST_STR,
	"BR":    INST_BR,
	"BRN":   INST_BRN,
	"BRZ":   INST_BRZ,
	"BRP":   INST_BRP,
	"BRNZ":  INST_BRNZ,
	"BRNP":  INST_BRNP,
	"BRZP":  INST_BRZP,
	"BRNZP": INST_BRNZP,
	"JMP":   INST_JMP,
	"JSR":   INST_JSR,
	"JSRR":  INST_JSRR,
	"NOP":   INST_NOP,
	"RET":   INST_RET,
	"HALT":  INST_HALT,
	"PUTS":  INST_PUTS,
	"GETC":  INST_GETC,
	"OUT":   INST_OUT,
	"IN":    INST_IN,
	"TRAP":  INST_TRAP,
}

// MnemonicOf returns the mnemonic tag for a whole identifier token, or
// INST_INVALID when the token is not a reserved keyword. The comparison
// is case-insensitive and covers the entire token.
func MnemonicOf(word string) Mnemonic {
	return mnemonicMap[strings.ToUpper(word)]
}

// IsBranch reports whether the mnemonic is one of the BR variants.
func (m Mnemonic) IsBranch() bool {
	return m >= INST_BR && m <= INST_BRNZP
}

// DirectiveKind identifies an assembler directive.
type DirectiveKind int

const (
	DIR_INVALID = DirectiveKind(iota)
	DIR_ORIG
	DIR_FILL
	DIR_BLKW
	DIR_STRINGZ
	DIR_END
)

var directiveMap = map[string]DirectiveKind{
	"ORIG":    DIR_ORIG,
	"FILL":    DIR_FILL,
	"BLKW":    DIR_BLKW,
	"STRINGZ": DIR_STRINGZ,
	"END":     DIR_END,
}

// DirectiveOf returns the directive tag for a keyword token without its
// leading dot, or DIR_INVALID.
func DirectiveOf(word string) DirectiveKind {
	return directiveMap[strings.ToUpper(word)]
}

// OperandKind discriminates the Operand variants.
type OperandKind int

const (
	OPERAND_REGISTER = OperandKind(iota)
	OPERAND_IMMEDIATE
	OPERAND_LABEL_REF
	OPERAND_STRING
)

// Operand is a single instruction or directive argument. The lexeme is
// kept verbatim so reformatting never rewrites x2A into #42.
type Operand struct {
	Kind OperandKind
	Text string // lexeme as written

	Register int   // OPERAND_REGISTER: 0-7
	Value    int64 // OPERAND_IMMEDIATE: decoded value
	Hex      bool  // OPERAND_IMMEDIATE: hex radix
	Signed   bool  // OPERAND_IMMEDIATE: explicit sign token present

	Pos Span
}

// Item is one top-level element of a Program: a Label, Instruction,
// Directive, or Comment. Source order is preserved exactly.
type Item interface {
	Span() Span
	item()
}

// Label is a user-defined symbolic name, optionally followed by a colon.
type Label struct {
	Name  string // identifier without the colon
	Colon bool
	Pos   Span
}

// Instruction is a mnemonic plus its operands, arity already validated.
type Instruction struct {
	Mnemonic Mnemonic
	Text     string // mnemonic token as written
	Operands []Operand
	Pos      Span
}

// Directive is an assembler pseudo-operation and its single argument.
// Arg is nil for .END.
type Directive struct {
	Kind DirectiveKind
	Text string // keyword as written, including the leading dot
	Arg  *Operand
	Pos  Span
}

// Comment is a ; comment, raw text included.
type Comment struct {
	Text string // including the leading ';'
	Pos  Span
}

func (l *Label) Span() Span       { return l.Pos }
func (i *Instruction) Span() Span { return i.Pos }
func (d *Directive) Span() Span   { return d.Pos }
func (c *Comment) Span() Span     { return c.Pos }

func (l *Label) item()       {}
func (i *Instruction) item() {}
func (d *Directive) item()   {}
func (c *Comment) item()     {}

// Program is the ordered sequence of parsed items.
type Program struct {
	Items []Item
}

// argKind is an operand-signature slot.
type argKind int

const (
	argRegister = argKind(iota)
	argImmediate
	argRegisterOrImmediate
	argLabel
	argHexAddress
)

// signatureMap fixes the operand arity and kinds per mnemonic.
var signatureMap = map[Mnemonic][]argKind{
	INST_ADD:  {argRegister, argRegister, argRegisterOrImmediate},
	INST_AND:  {argRegister, argRegister, argRegisterOrImmediate},
	INST_NOT:  {argRegister, argRegister},
	INST_LD:   {argRegister, argLabel},
	INST_LDI:  {argRegister, argLabel},
	INST_LDR:  {argRegister, argRegister, argImmediate},
	INST_LEA:  {argRegister, argLabel},
	INST_ST:   {argRegister, argLabel},
	INST_STI:  {argRegister, argLabel},
	INST_STR:  {argRegister, argRegister, argImmediate},
	INST_JMP:  {argRegister},
	INST_JSR:  {argLabel},
	INST_JSRR: {argRegister},
	INST_TRAP: {argHexAddress},
	INST_NOP:  {},
	INST_RET:  {},
	INST_HALT: {},
	INST_PUTS: {},
	INST_GETC: {},
	INST_OUT:  {},
	INST_IN:   {},
}

func signatureOf(m Mnemonic) []argKind {
	if m.IsBranch() {
		return []argKind{argLabel}
	}
	return signatureMap[m]
}
