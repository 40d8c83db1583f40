package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lc3kit/lc3kit/style"
)

func TestDetectCase(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		ident string
		want  style.CaseStyle
		ok    bool
	}){
		{"loopStart", style.CASE_LOWER_CAMEL, true},
		{"LoopStart", style.CASE_UPPER_CAMEL, true},
		{"loop_start", style.CASE_SNAKE, true},
		{"LOOP_START", style.CASE_SCREAMING_SNAKE, true},
		{"LOOP_1", style.CASE_SCREAMING_SNAKE, true},
		// lone lowercase word classifies as snake_case first
		{"loop", style.CASE_SNAKE, true},
		{"LOOP", style.CASE_SCREAMING_SNAKE, true},
		{"Loop1", style.CASE_UPPER_CAMEL, true},
		{"_loop", 0, false},
		{"loop__start", 0, false},
		{"Loop_Start", 0, false},
		{"1loop", 0, false},
	}

	for _, entry := range table {
		found, ok := DetectCase(entry.ident)
		assert.Equal(entry.ok, ok, entry.ident)
		if entry.ok {
			assert.Equal(entry.want, found, entry.ident)
		}
	}
}

func TestMatches(t *testing.T) {
	assert := assert.New(t)

	assert.True(Matches("LOOP_1", style.CASE_SCREAMING_SNAKE))
	assert.False(Matches("Loop1", style.CASE_SCREAMING_SNAKE))
	assert.False(Matches("loop_start", style.CASE_SCREAMING_SNAKE))

	// An underscore-free snake_case word is acceptable lowerCamelCase.
	assert.True(Matches("loop", style.CASE_LOWER_CAMEL))
	assert.False(Matches("loop_start", style.CASE_LOWER_CAMEL))
	assert.True(Matches("loopStart", style.CASE_LOWER_CAMEL))

	// But not the other way around.
	assert.False(Matches("loop", style.CASE_UPPER_CAMEL))
	assert.False(Matches("loopStart", style.CASE_SNAKE))
}

func TestConvert(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		ident string
		want  style.CaseStyle
		out   string
	}){
		{"myLabel", style.CASE_SCREAMING_SNAKE, "MY_LABEL"},
		{"my_label", style.CASE_SCREAMING_SNAKE, "MY_LABEL"},
		{"MyLabel", style.CASE_SNAKE, "my_label"},
		{"LOOP_START", style.CASE_LOWER_CAMEL, "loopStart"},
		{"LOOP_START", style.CASE_UPPER_CAMEL, "LoopStart"},
		{"LOOP_1", style.CASE_LOWER_CAMEL, "loop1"},
		{"Loop1", style.CASE_SCREAMING_SNAKE, "LOOP1"},
		{"halt", style.CASE_SCREAMING_SNAKE, "HALT"},
		{"__", style.CASE_SNAKE, ""},
		{"bad-char", style.CASE_SNAKE, ""},
	}

	for _, entry := range table {
		assert.Equal(entry.out, Convert(entry.ident, entry.want), entry.ident)
	}
}
