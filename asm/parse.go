package asm

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reRegister   = regexp.MustCompile(`^[Rr][0-7]$`)
	reDecimal    = regexp.MustCompile(`^#?[-+]?[0-9]+$`)
	reHex        = regexp.MustCompile(`^[xX][0-9a-fA-F]+$`)
	reHexAddress = regexp.MustCompile(`^[xX][0-9a-fA-F]{1,4}$`)
	reIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// Parse parses LC-3 source into a Program. Parsing is all-or-nothing:
// any syntax error returns a nil Program and a *SyntaxError.
func Parse(source string) (prog *Program, err error) {
	p := &parser{lx: newLexer(source)}

	if err = p.fill(); err != nil {
		return
	}

	prog = &Program{}
	for {
		tok := p.peek()
		if tok.kind == tokEOF {
			return
		}

		var item Item
		item, err = p.parseItem()
		if err != nil {
			prog = nil
			return
		}
		prog.Items = append(prog.Items, item)
	}
}

type parser struct {
	lx   *lexer
	toks []token
	pos  int
}

// fill runs the lexer to completion up front; the grammar needs no
// lookahead beyond a single already-scanned token.
func (p *parser) fill() (err error) {
	for {
		var tok token
		tok, err = p.lx.next()
		if err != nil {
			return
		}
		p.toks = append(p.toks, tok)
		if tok.kind == tokEOF {
			return
		}
	}
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) take() token {
	tok := p.toks[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}
	return tok
}

func (p *parser) parseItem() (item Item, err error) {
	tok := p.take()

	switch tok.kind {
	case tokComment:
		item = &Comment{Text: tok.text, Pos: tok.pos}
		return

	case tokWord:
		if strings.HasPrefix(tok.text, ".") {
			return p.parseDirective(tok)
		}
		if m := MnemonicOf(tok.text); m != INST_INVALID {
			return p.parseInstruction(tok, m)
		}
		return p.parseLabel(tok)

	default:
		err = &SyntaxError{
			Pos:      tok.pos,
			Found:    tok.text,
			Expected: []string{f("label"), f("instruction"), f("directive"), f("comment")},
		}
		return
	}
}

// parseLabel accepts an identifier already known not to be a reserved
// keyword. Register names and numeric tokens never make labels.
func (p *parser) parseLabel(tok token) (item Item, err error) {
	if !reIdentifier.MatchString(tok.text) || reRegister.MatchString(tok.text) {
		err = &SyntaxError{
			Pos:      tok.pos,
			Found:    tok.text,
			Expected: []string{f("label"), f("instruction"), f("directive"), f("comment")},
		}
		return
	}
	item = &Label{Name: tok.text, Colon: tok.colon, Pos: tok.pos}
	return
}

func (p *parser) parseInstruction(tok token, m Mnemonic) (item Item, err error) {
	if tok.colon {
		err = &SyntaxError{
			Pos:      tok.pos,
			Found:    tok.text + ":",
			Expected: []string{f("label")},
		}
		return
	}

	inst := &Instruction{Mnemonic: m, Text: tok.text, Pos: tok.pos}
	for _, kind := range signatureOf(m) {
		var op Operand
		op, err = p.parseOperand(kind)
		if err != nil {
			return
		}
		inst.Operands = append(inst.Operands, op)
		inst.Pos.End = op.Pos.End
		inst.Pos.EndLine = op.Pos.EndLine
	}

	item = inst
	return
}

var directiveAlts = []string{".ORIG", ".FILL", ".BLKW", ".STRINGZ", ".END"}

func (p *parser) parseDirective(tok token) (item Item, err error) {
	kind := DirectiveOf(tok.text[1:])
	if kind == DIR_INVALID || tok.colon {
		err = &SyntaxError{Pos: tok.pos, Found: tok.text, Expected: directiveAlts}
		return
	}

	dir := &Directive{Kind: kind, Text: tok.text, Pos: tok.pos}

	var op Operand
	switch kind {
	case DIR_ORIG:
		op, err = p.parseOperand(argHexAddress)
	case DIR_FILL, DIR_BLKW:
		op, err = p.parseOperand(argImmediate)
	case DIR_STRINGZ:
		op, err = p.parseString()
	case DIR_END:
		item = dir
		return
	}
	if err != nil {
		return
	}

	dir.Arg = &op
	dir.Pos.End = op.Pos.End
	dir.Pos.EndLine = op.Pos.EndLine
	item = dir
	return
}

func (p *parser) parseString() (op Operand, err error) {
	tok := p.take()
	if tok.kind != tokString {
		err = &SyntaxError{Pos: tok.pos, Found: tok.text, Expected: []string{f("string literal")}}
		return
	}
	op = Operand{Kind: OPERAND_STRING, Text: tok.text, Pos: tok.pos}
	return
}

func operandAlts(kind argKind) []string {
	switch kind {
	case argRegister:
		return []string{f("register")}
	case argImmediate:
		return []string{f("immediate")}
	case argRegisterOrImmediate:
		return []string{f("register"), f("immediate")}
	case argLabel:
		return []string{f("label")}
	default:
		return []string{f("hex address")}
	}
}

func (p *parser) parseOperand(kind argKind) (op Operand, err error) {
	tok := p.take()
	fail := func() {
		err = &SyntaxError{Pos: tok.pos, Found: tok.text, Expected: operandAlts(kind)}
	}
	if tok.kind != tokWord || tok.colon {
		fail()
		return
	}

	switch kind {
	case argRegister:
		if !reRegister.MatchString(tok.text) {
			fail()
			return
		}
		op = registerOperand(tok)

	case argImmediate:
		op, err = immediateOperand(tok, kind)

	case argRegisterOrImmediate:
		if reRegister.MatchString(tok.text) {
			op = registerOperand(tok)
			return
		}
		op, err = immediateOperand(tok, kind)

	case argLabel:
		if !reIdentifier.MatchString(tok.text) ||
			reRegister.MatchString(tok.text) ||
			MnemonicOf(tok.text) != INST_INVALID {
			fail()
			return
		}
		op = Operand{Kind: OPERAND_LABEL_REF, Text: tok.text, Pos: tok.pos}

	case argHexAddress:
		if !reHexAddress.MatchString(tok.text) {
			fail()
			return
		}
		value, _ := strconv.ParseInt(tok.text[1:], 16, 64)
		op = Operand{Kind: OPERAND_IMMEDIATE, Text: tok.text, Value: value, Hex: true, Pos: tok.pos}
	}

	return
}

func registerOperand(tok token) Operand {
	return Operand{
		Kind:     OPERAND_REGISTER,
		Text:     tok.text,
		Register: int(tok.text[1] - '0'),
		Pos:      tok.pos,
	}
}

// immediateOperand decodes a hex (x1F) or decimal (#10, -5) immediate,
// preserving the lexeme, radix, and sign-token presence.
func immediateOperand(tok token, kind argKind) (op Operand, err error) {
	switch {
	case reHex.MatchString(tok.text):
		var value int64
		value, err = strconv.ParseInt(tok.text[1:], 16, 64)
		if err != nil {
			err = &SyntaxError{Pos: tok.pos, Found: tok.text, Expected: operandAlts(kind)}
			return
		}
		op = Operand{Kind: OPERAND_IMMEDIATE, Text: tok.text, Value: value, Hex: true, Pos: tok.pos}

	case reDecimal.MatchString(tok.text):
		digits := strings.TrimPrefix(tok.text, "#")
		signed := digits[0] == '-' || digits[0] == '+'
		var value int64
		value, err = strconv.ParseInt(digits, 10, 64)
		if err != nil {
			err = &SyntaxError{Pos: tok.pos, Found: tok.text, Expected: operandAlts(kind)}
			return
		}
		op = Operand{Kind: OPERAND_IMMEDIATE, Text: tok.text, Value: value, Signed: signed, Pos: tok.pos}

	default:
		err = &SyntaxError{Pos: tok.pos, Found: tok.text, Expected: operandAlts(kind)}
	}

	return
}
