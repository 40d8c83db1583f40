package format

import (
	"github.com/pmezard/go-difflib/difflib"

	"github.com/lc3kit/lc3kit/asm"
	"github.com/lc3kit/lc3kit/style"
)

// Check reports whether the original text is already in canonical form.
// When it is not, diff holds a unified line diff from the original to
// the canonical rendering.
func Check(original string, prog *asm.Program, fs style.FormatStyle) (ok bool, diff string) {
	text := Format(prog, fs)
	if text == original {
		ok = true
		return
	}

	diff, _ = difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(original),
		B:        difflib.SplitLines(text),
		FromFile: "original",
		ToFile:   "formatted",
		Context:  3,
	})
	return
}
