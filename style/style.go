// Package style holds the formatting and linting configuration. A Config
// is an immutable value threaded into the engines as a parameter; nothing
// here is process-wide state.
package style

import (
	"github.com/lc3kit/lc3kit/translate"
)

var f = translate.From

// CaseStyle is a named casing convention for identifiers.
type CaseStyle int

const (
	CASE_LOWER_CAMEL = CaseStyle(iota)
	CASE_UPPER_CAMEL
	CASE_SNAKE
	CASE_SCREAMING_SNAKE
)

var caseStyleNames = map[CaseStyle]string{
	CASE_LOWER_CAMEL:     "lowerCamelCase",
	CASE_UPPER_CAMEL:     "UpperCamelCase",
	CASE_SNAKE:           "snake_case",
	CASE_SCREAMING_SNAKE: "SCREAMING_SNAKE_CASE",
}

// caseStyleTags are the spellings accepted in configuration files.
var caseStyleTags = map[string]CaseStyle{
	"LowerCamelCase":     CASE_LOWER_CAMEL,
	"UpperCamelCase":     CASE_UPPER_CAMEL,
	"SnakeCase":          CASE_SNAKE,
	"ScreamingSnakeCase": CASE_SCREAMING_SNAKE,
}

func (cs CaseStyle) String() string {
	return caseStyleNames[cs]
}

// Tag returns the configuration-file spelling of the convention.
func (cs CaseStyle) Tag() string {
	for tag, style := range caseStyleTags {
		if style == cs {
			return tag
		}
	}
	return ""
}

// MarshalText implements encoding.TextMarshaler for TOML output.
func (cs CaseStyle) MarshalText() ([]byte, error) {
	return []byte(cs.Tag()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML input.
func (cs *CaseStyle) UnmarshalText(text []byte) error {
	style, ok := caseStyleTags[string(text)]
	if !ok {
		return &ErrCaseStyle{Tag: string(text)}
	}
	*cs = style
	return nil
}

// FormatStyle is the formatter configuration surface.
type FormatStyle struct {
	IndentDirective           int  `toml:"indent-directive"`
	IndentInstruction         int  `toml:"indent-instruction"`
	IndentLabel               int  `toml:"indent-label"`
	IndentMinCommentFromBlock int  `toml:"indent-min-comment-from-block"`
	SpaceBlockToComment       int  `toml:"space-block-to-comment"`
	SpaceCommentStickToBody   bool `toml:"space-comment-stick-to-body"`
	SpaceFromLabelBlock       int  `toml:"space-from-label-block"`
	SpaceFromStartEndBlock    int  `toml:"space-from-start-end-block"`
	ColonAfterLabel           bool `toml:"colon-after-label"`
	FixedBodyCommentIndent    bool `toml:"fixed-body-comment-indent"`
	DirectiveLabelWrap        bool `toml:"directive-label-wrap"`
}

// LintStyle is the linter configuration surface.
type LintStyle struct {
	ColonAfterLabel  bool      `toml:"colon-after-label"`
	LabelStyle       CaseStyle `toml:"label-style"`
	InstructionStyle CaseStyle `toml:"instruction-style"`
	DirectiveStyle   CaseStyle `toml:"directive-style"`
}

// Config bundles both engines' styles, as read from one settings file.
type Config struct {
	Format FormatStyle `toml:"format-style"`
	Lint   LintStyle   `toml:"lint-style"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Format: FormatStyle{
			IndentDirective:           3,
			IndentInstruction:         4,
			IndentLabel:               0,
			IndentMinCommentFromBlock: 1,
			SpaceBlockToComment:       1,
			SpaceCommentStickToBody:   false,
			SpaceFromLabelBlock:       1,
			SpaceFromStartEndBlock:    1,
			ColonAfterLabel:           false,
			FixedBodyCommentIndent:    false,
			DirectiveLabelWrap:        false,
		},
		Lint: LintStyle{
			ColonAfterLabel:  false,
			LabelStyle:       CASE_SCREAMING_SNAKE,
			InstructionStyle: CASE_SCREAMING_SNAKE,
			DirectiveStyle:   CASE_SCREAMING_SNAKE,
		},
	}
}
