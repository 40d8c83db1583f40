package asm

// Span is a half-open byte range into the original source.
type Span struct {
	Start int // byte offset of the first byte
	End   int // byte offset one past the last byte
	Line  int // 1-based line of Start
	Col   int // 1-based column of Start
	// EndLine is the 1-based line of the last byte. Statements whose
	// operands continue on the next line span more than one.
	EndLine int
}
