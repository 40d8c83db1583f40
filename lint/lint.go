// Package lint checks a parsed Program against configured naming and
// punctuation conventions. It never rewrites anything; each finding is a
// Diagnostic with an anchor span and, where a mechanical respelling
// exists, a suggestion.
package lint

import (
	"github.com/lc3kit/lc3kit/asm"
	"github.com/lc3kit/lc3kit/style"
	"github.com/lc3kit/lc3kit/translate"
)

var f = translate.From

// Severity ranks a diagnostic.
type Severity int

const (
	SEVERITY_WARNING = Severity(iota)
	SEVERITY_ERROR
)

var severityNames = map[Severity]string{
	SEVERITY_WARNING: "warning",
	SEVERITY_ERROR:   "error",
}

func (s Severity) String() string {
	return severityNames[s]
}

// Kind identifies the rule a diagnostic was produced by.
type Kind int

const (
	KIND_LABEL_CASE = Kind(iota)
	KIND_INSTRUCTION_CASE
	KIND_DIRECTIVE_CASE
	KIND_LABEL_COLON
)

var kindNames = map[Kind]string{
	KIND_LABEL_CASE:       "label-style",
	KIND_INSTRUCTION_CASE: "instruction-style",
	KIND_DIRECTIVE_CASE:   "directive-style",
	KIND_LABEL_COLON:      "colon-after-label",
}

// Rule returns the configuration key the diagnostic enforces.
func (k Kind) Rule() string {
	return kindNames[k]
}

// Diagnostic is one style violation, anchored to the offending token.
type Diagnostic struct {
	Severity   Severity
	Kind       Kind
	Pos        asm.Span
	Message    string
	Suggestion string // replacement token, "" when none exists
}

// Check evaluates every label, instruction mnemonic, and directive
// keyword against the configured conventions. Diagnostics come back in
// source order; operands, immediates, and comments are never checked.
func Check(prog *asm.Program, ls style.LintStyle) (diags []Diagnostic) {
	for _, item := range prog.Items {
		switch item := item.(type) {
		case *asm.Label:
			diags = append(diags, checkLabel(item, ls)...)
		case *asm.Instruction:
			if d, ok := checkInstruction(item, ls); ok {
				diags = append(diags, d)
			}
		case *asm.Directive:
			if d, ok := checkDirective(item, ls); ok {
				diags = append(diags, d)
			}
		}
	}
	return
}

func checkLabel(lbl *asm.Label, ls style.LintStyle) (diags []Diagnostic) {
	if !Matches(lbl.Name, ls.LabelStyle) {
		diags = append(diags, Diagnostic{
			Severity:   SEVERITY_WARNING,
			Kind:       KIND_LABEL_CASE,
			Pos:        lbl.Pos,
			Message:    caseMessage(f("label"), lbl.Name, ls.LabelStyle),
			Suggestion: Convert(lbl.Name, ls.LabelStyle),
		})
	}

	if lbl.Colon != ls.ColonAfterLabel {
		msg := f("label '%v' is missing the ':' terminator", lbl.Name)
		suggestion := lbl.Name + ":"
		if lbl.Colon {
			msg = f("unexpected ':' after label '%v'", lbl.Name)
			suggestion = lbl.Name
		}
		diags = append(diags, Diagnostic{
			Severity:   SEVERITY_WARNING,
			Kind:       KIND_LABEL_COLON,
			Pos:        lbl.Pos,
			Message:    msg,
			Suggestion: suggestion,
		})
	}
	return
}

// checkInstruction validates the mnemonic spelling. For branches only
// the BR stem is checked; the condition-code suffix is part of the
// mnemonic and carries no case of its own.
func checkInstruction(inst *asm.Instruction, ls style.LintStyle) (d Diagnostic, ok bool) {
	word := inst.Text
	if inst.Mnemonic.IsBranch() {
		word = word[:2]
	}
	if Matches(word, ls.InstructionStyle) {
		return
	}

	suggestion := Convert(word, ls.InstructionStyle)
	if suggestion != "" && inst.Mnemonic.IsBranch() {
		suggestion += inst.Text[2:]
	}
	return Diagnostic{
		Severity:   SEVERITY_WARNING,
		Kind:       KIND_INSTRUCTION_CASE,
		Pos:        tokenSpan(inst.Pos, len(inst.Text)),
		Message:    caseMessage(f("instruction"), inst.Text, ls.InstructionStyle),
		Suggestion: suggestion,
	}, true
}

func checkDirective(dir *asm.Directive, ls style.LintStyle) (d Diagnostic, ok bool) {
	word := dir.Text[1:] // keyword without the dot
	if Matches(word, ls.DirectiveStyle) {
		return
	}

	suggestion := Convert(word, ls.DirectiveStyle)
	if suggestion != "" {
		suggestion = "." + suggestion
	}
	return Diagnostic{
		Severity:   SEVERITY_WARNING,
		Kind:       KIND_DIRECTIVE_CASE,
		Pos:        tokenSpan(dir.Pos, len(dir.Text)),
		Message:    caseMessage(f("directive"), dir.Text, ls.DirectiveStyle),
		Suggestion: suggestion,
	}, true
}

func caseMessage(noun, word string, want style.CaseStyle) string {
	if found, ok := DetectCase(word); ok {
		return f("%v '%v' is %v, expected %v", noun, word, found, want)
	}
	return f("%v '%v' matches no case convention, expected %v", noun, word, want)
}

// tokenSpan narrows a statement span back down to its leading token.
// Instruction and directive spans cover the operands as well, but the
// diagnostic anchors on the keyword only.
func tokenSpan(pos asm.Span, width int) asm.Span {
	pos.End = pos.Start + width
	pos.EndLine = pos.Line
	return pos
}
