package lint

import (
	"regexp"
	"strings"

	"github.com/lc3kit/lc3kit/style"
)

var (
	reLowerCamel = regexp.MustCompile(`^[a-z]+(?:[A-Z][a-z0-9]*)*$`)
	reUpperCamel = regexp.MustCompile(`^[A-Z][a-z0-9]*(?:[A-Z][a-z0-9]*)*$`)
	reSnake      = regexp.MustCompile(`^[a-z]+(?:_[a-z0-9]+)*$`)
	reScreaming  = regexp.MustCompile(`^[A-Z0-9]+(?:_[A-Z0-9]+)*$`)
)

// DetectCase classifies an identifier into the convention it satisfies.
// Classification order matters: snake_case and SCREAMING_SNAKE_CASE win
// over the camel cases for identifiers that satisfy both.
func DetectCase(ident string) (cs style.CaseStyle, ok bool) {
	switch {
	case reSnake.MatchString(ident):
		return style.CASE_SNAKE, true
	case reScreaming.MatchString(ident):
		return style.CASE_SCREAMING_SNAKE, true
	case reLowerCamel.MatchString(ident):
		return style.CASE_LOWER_CAMEL, true
	case reUpperCamel.MatchString(ident):
		return style.CASE_UPPER_CAMEL, true
	}
	return
}

// Matches reports whether the identifier satisfies the wanted
// convention. A snake_case identifier without underscores is also
// acceptable lowerCamelCase.
func Matches(ident string, want style.CaseStyle) bool {
	found, ok := DetectCase(ident)
	if !ok {
		return false
	}
	if found == want {
		return true
	}
	return found == style.CASE_SNAKE &&
		want == style.CASE_LOWER_CAMEL &&
		!strings.Contains(ident, "_")
}

// Convert mechanically respells the identifier in the target convention.
// It returns "" when the identifier cannot be split into words.
func Convert(ident string, want style.CaseStyle) string {
	words := splitWords(ident)
	if len(words) == 0 {
		return ""
	}

	switch want {
	case style.CASE_SCREAMING_SNAKE:
		for n, w := range words {
			words[n] = strings.ToUpper(w)
		}
		return strings.Join(words, "_")
	case style.CASE_SNAKE:
		for n, w := range words {
			words[n] = strings.ToLower(w)
		}
		return strings.Join(words, "_")
	case style.CASE_UPPER_CAMEL:
		for n, w := range words {
			words[n] = capitalize(w)
		}
		return strings.Join(words, "")
	default:
		for n, w := range words {
			if n == 0 {
				words[n] = strings.ToLower(w)
			} else {
				words[n] = capitalize(w)
			}
		}
		return strings.Join(words, "")
	}
}

// splitWords breaks an identifier at underscores and at lower-to-upper
// case transitions. Digits stay attached to the word they follow.
func splitWords(ident string) (words []string) {
	var word []byte
	flush := func() {
		if len(word) > 0 {
			words = append(words, string(word))
			word = nil
		}
	}

	prevLower := false
	for n := 0; n < len(ident); n++ {
		c := ident[n]
		switch {
		case c == '_':
			flush()
			prevLower = false
		case c >= 'A' && c <= 'Z':
			if prevLower {
				flush()
			}
			word = append(word, c)
			prevLower = false
		case (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9'):
			word = append(word, c)
			prevLower = c >= 'a' && c <= 'z'
		default:
			return nil
		}
	}
	flush()
	return
}

func capitalize(w string) string {
	lower := strings.ToLower(w)
	return strings.ToUpper(lower[:1]) + lower[1:]
}
