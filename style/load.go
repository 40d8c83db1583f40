package style

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Settings file names searched for by Discover, in preference order.
const (
	ConfigTOML     = "lc3style.toml"
	ConfigStarlark = "lc3style.star"
)

var errNotInt = errors.New(f("not a non-negative integer"))
var errNotBool = errors.New(f("not a boolean"))
var errNotCase = errors.New(f("not a case style string"))
var errNotTable = errors.New(f("not a table of options"))

// Discover walks parent directories from start looking for a settings
// file. It returns the path of the nearest one found.
func Discover(start string) (path string, ok bool) {
	dir := start
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	for {
		for _, name := range []string{ConfigTOML, ConfigStarlark} {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, true
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// Load reads a settings file over the default configuration. Options not
// present in the file keep their defaults.
func Load(path string) (cfg Config, err error) {
	cfg = Default()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".star":
		err = loadStarlark(path, &cfg)
	default:
		err = loadTOML(path, &cfg)
	}
	if err != nil {
		cfg = Default()
	}
	return
}

// Dump writes the configuration as TOML, the shape Load accepts.
func Dump(w io.Writer, cfg Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}

type formatOverrides struct {
	IndentDirective           *int  `toml:"indent-directive"`
	IndentInstruction         *int  `toml:"indent-instruction"`
	IndentLabel               *int  `toml:"indent-label"`
	IndentMinCommentFromBlock *int  `toml:"indent-min-comment-from-block"`
	SpaceBlockToComment       *int  `toml:"space-block-to-comment"`
	SpaceCommentStickToBody   *bool `toml:"space-comment-stick-to-body"`
	SpaceFromLabelBlock       *int  `toml:"space-from-label-block"`
	SpaceFromStartEndBlock    *int  `toml:"space-from-start-end-block"`
	ColonAfterLabel           *bool `toml:"colon-after-label"`
	FixedBodyCommentIndent    *bool `toml:"fixed-body-comment-indent"`
	DirectiveLabelWrap        *bool `toml:"directive-label-wrap"`
}

type lintOverrides struct {
	ColonAfterLabel  *bool      `toml:"colon-after-label"`
	LabelStyle       *CaseStyle `toml:"label-style"`
	InstructionStyle *CaseStyle `toml:"instruction-style"`
	DirectiveStyle   *CaseStyle `toml:"directive-style"`
}

type fileConfig struct {
	Format formatOverrides `toml:"format-style"`
	Lint   lintOverrides   `toml:"lint-style"`
}

func loadTOML(path string, cfg *Config) (err error) {
	var file fileConfig
	_, err = toml.DecodeFile(path, &file)
	if err != nil {
		return
	}

	fo, lo := &file.Format, &file.Lint
	setInt(&cfg.Format.IndentDirective, fo.IndentDirective)
	setInt(&cfg.Format.IndentInstruction, fo.IndentInstruction)
	setInt(&cfg.Format.IndentLabel, fo.IndentLabel)
	setInt(&cfg.Format.IndentMinCommentFromBlock, fo.IndentMinCommentFromBlock)
	setInt(&cfg.Format.SpaceBlockToComment, fo.SpaceBlockToComment)
	setBool(&cfg.Format.SpaceCommentStickToBody, fo.SpaceCommentStickToBody)
	setInt(&cfg.Format.SpaceFromLabelBlock, fo.SpaceFromLabelBlock)
	setInt(&cfg.Format.SpaceFromStartEndBlock, fo.SpaceFromStartEndBlock)
	setBool(&cfg.Format.ColonAfterLabel, fo.ColonAfterLabel)
	setBool(&cfg.Format.FixedBodyCommentIndent, fo.FixedBodyCommentIndent)
	setBool(&cfg.Format.DirectiveLabelWrap, fo.DirectiveLabelWrap)
	setBool(&cfg.Lint.ColonAfterLabel, lo.ColonAfterLabel)
	setCase(&cfg.Lint.LabelStyle, lo.LabelStyle)
	setCase(&cfg.Lint.InstructionStyle, lo.InstructionStyle)
	setCase(&cfg.Lint.DirectiveStyle, lo.DirectiveStyle)
	return
}

func setInt(dst *int, src *int) {
	if src != nil && *src >= 0 {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func setCase(dst *CaseStyle, src *CaseStyle) {
	if src != nil {
		*dst = *src
	}
}

// loadStarlark evaluates a Starlark settings file. The file assigns
// format_style and lint_style dicts whose keys are the snake_case
// spellings of the TOML option names:
//
//	format_style = dict(indent_instruction = 4, colon_after_label = False)
//	lint_style = dict(label_style = "ScreamingSnakeCase")
func loadStarlark(path string, cfg *Config) (err error) {
	thread := &starlark.Thread{Name: "lc3style"}
	opts := &syntax.FileOptions{}
	globals, err := starlark.ExecFileOptions(opts, thread, path, nil, nil)
	if err != nil {
		return
	}

	if table, ok := globals["format_style"]; ok {
		err = applyTable(table, "format_style", formatSetters(&cfg.Format))
		if err != nil {
			return
		}
	}
	if table, ok := globals["lint_style"]; ok {
		err = applyTable(table, "lint_style", lintSetters(&cfg.Lint))
	}
	return
}

type setter func(starlark.Value) error

func applyTable(value starlark.Value, name string, setters map[string]setter) error {
	dict, ok := value.(*starlark.Dict)
	if !ok {
		return &ErrConfigValue{Key: name, Err: errNotTable}
	}
	for _, item := range dict.Items() {
		key, ok := starlark.AsString(item[0])
		if !ok {
			return &ErrConfigValue{Key: name, Err: errNotTable}
		}
		set, ok := setters[key]
		if !ok {
			return &ErrConfigValue{Key: key, Err: errNotTable}
		}
		if err := set(item[1]); err != nil {
			return &ErrConfigValue{Key: key, Err: err}
		}
	}
	return nil
}

func intSetter(dst *int) setter {
	return func(v starlark.Value) error {
		i, ok := v.(starlark.Int)
		if !ok {
			return errNotInt
		}
		n, ok := i.Int64()
		if !ok || n < 0 {
			return errNotInt
		}
		*dst = int(n)
		return nil
	}
}

func boolSetter(dst *bool) setter {
	return func(v starlark.Value) error {
		b, ok := v.(starlark.Bool)
		if !ok {
			return errNotBool
		}
		*dst = bool(b)
		return nil
	}
}

func caseSetter(dst *CaseStyle) setter {
	return func(v starlark.Value) error {
		s, ok := starlark.AsString(v)
		if !ok {
			return errNotCase
		}
		return dst.UnmarshalText([]byte(s))
	}
}

func formatSetters(fs *FormatStyle) map[string]setter {
	return map[string]setter{
		"indent_directive":              intSetter(&fs.IndentDirective),
		"indent_instruction":            intSetter(&fs.IndentInstruction),
		"indent_label":                  intSetter(&fs.IndentLabel),
		"indent_min_comment_from_block": intSetter(&fs.IndentMinCommentFromBlock),
		"space_block_to_comment":        intSetter(&fs.SpaceBlockToComment),
		"space_comment_stick_to_body":   boolSetter(&fs.SpaceCommentStickToBody),
		"space_from_label_block":        intSetter(&fs.SpaceFromLabelBlock),
		"space_from_start_end_block":    intSetter(&fs.SpaceFromStartEndBlock),
		"colon_after_label":             boolSetter(&fs.ColonAfterLabel),
		"fixed_body_comment_indent":     boolSetter(&fs.FixedBodyCommentIndent),
		"directive_label_wrap":          boolSetter(&fs.DirectiveLabelWrap),
	}
}

func lintSetters(ls *LintStyle) map[string]setter {
	return map[string]setter{
		"colon_after_label": boolSetter(&ls.ColonAfterLabel),
		"label_style":       caseSetter(&ls.LabelStyle),
		"instruction_style": caseSetter(&ls.InstructionStyle),
		"directive_style":   caseSetter(&ls.DirectiveStyle),
	}
}
