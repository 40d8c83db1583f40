package asm

type tokenKind int

const (
	tokWord = tokenKind(iota)
	tokString
	tokComment
	tokEOF
)

// token is one lexical element. Whitespace and commas are interchangeable
// separators and are consumed between tokens, never represented.
type token struct {
	kind  tokenKind
	text  string // word without trailing colon; string including quotes; comment including ';'
	colon bool   // word was immediately followed by ':'
	pos   Span
}

type lexer struct {
	src  string
	off  int
	line int
	col  int
}

func newLexer(src string) *lexer {
	return &lexer{src: src, line: 1, col: 1}
}

func (lx *lexer) advance() {
	if lx.src[lx.off] == '\n' {
		lx.line++
		lx.col = 1
	} else {
		lx.col++
	}
	lx.off++
}

func isSeparator(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == ','
}

func isWordEnd(c byte) bool {
	return isSeparator(c) || c == ';' || c == '"' || c == ':'
}

// next scans one token. The only lexical failure modes are an
// unterminated string literal and a stray colon.
func (lx *lexer) next() (tok token, err error) {
	for lx.off < len(lx.src) && isSeparator(lx.src[lx.off]) {
		lx.advance()
	}

	start := Span{Start: lx.off, Line: lx.line, Col: lx.col}

	if lx.off >= len(lx.src) {
		start.End = lx.off
		start.EndLine = lx.line
		tok = token{kind: tokEOF, pos: start}
		return
	}

	switch c := lx.src[lx.off]; {
	case c == ';':
		for lx.off < len(lx.src) && lx.src[lx.off] != '\n' {
			lx.advance()
		}
		start.End = lx.off
		start.EndLine = start.Line
		tok = token{kind: tokComment, text: lx.src[start.Start:lx.off], pos: start}
		return

	case c == '"':
		lx.advance()
		for lx.off < len(lx.src) && lx.src[lx.off] != '"' && lx.src[lx.off] != '\n' {
			lx.advance()
		}
		if lx.off >= len(lx.src) || lx.src[lx.off] != '"' {
			start.End = lx.off
			start.EndLine = lx.line
			err = &SyntaxError{
				Pos:      start,
				Found:    lx.src[start.Start:lx.off],
				Expected: []string{f("closing '\"'")},
			}
			return
		}
		lx.advance()
		start.End = lx.off
		start.EndLine = start.Line
		tok = token{kind: tokString, text: lx.src[start.Start:lx.off], pos: start}
		return

	case c == ':':
		start.End = lx.off + 1
		start.EndLine = start.Line
		err = &SyntaxError{
			Pos:      start,
			Found:    ":",
			Expected: []string{f("label"), f("instruction"), f("directive"), f("comment")},
		}
		return

	default:
		for lx.off < len(lx.src) && !isWordEnd(lx.src[lx.off]) {
			lx.advance()
		}
		tok = token{kind: tokWord, text: lx.src[start.Start:lx.off]}
		if lx.off < len(lx.src) && lx.src[lx.off] == ':' {
			tok.colon = true
			lx.advance()
		}
		start.End = lx.off
		start.EndLine = start.Line
		tok.pos = start
		return
	}
}
