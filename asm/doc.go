// Package asm parses LC-3 assembly source into a structural representation.
//
// The parser recognizes the fixed LC-3 instruction set, the five assembler
// directives (.ORIG, .FILL, .BLKW, .STRINGZ, .END), labels, and comments.
// It is a syntax-level tool only: no symbol resolution, no instruction
// encoding, and no bit-width validation of immediates is performed.
//
// A parsed Program carries both semantic content and the layout facts the
// formatter and linter need: byte/line/column spans on every item, the
// count of blank lines preceding each logical line, whether a comment is
// own-line or trailing, and whether a label carried a colon.
package asm
