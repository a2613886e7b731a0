// Package exclude filters paths against shell-style exclusion patterns.
package exclude

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Parse splits a semicolon-separated exclusion list into individual
// patterns. Segments are trimmed and blank segments are dropped.
func Parse(list string) []string {
	var patterns []string
	for _, p := range strings.Split(list, ";") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		patterns = append(patterns, p)
	}
	return patterns
}

// Filter matches paths against a set of shell wildcard patterns.
//
// `*` matches any run of characters including none (separators too),
// `?` matches exactly one character and `[...]` matches a character
// class, with `[!...]` negating it. A pattern must match the whole
// path to exclude it.
type Filter struct {
	patterns []*regexp.Regexp
}

// New compiles patterns into a Filter. Patterns that do not compile
// are skipped rather than failing the whole filter.
func New(patterns []string) *Filter {
	f := &Filter{}
	for _, p := range patterns {
		re, err := regexp.Compile(translate(p))
		if err != nil {
			continue
		}
		f.patterns = append(f.patterns, re)
	}
	return f
}

// Matches reports whether path matches at least one exclusion pattern.
// A nil or empty Filter matches nothing.
func (f *Filter) Matches(path string) bool {
	if f == nil {
		return false
	}
	for _, re := range f.patterns {
		if re.MatchString(path) {
			return true
		}
	}
	return false
}

// translate converts a shell wildcard pattern into an anchored regular
// expression.
func translate(pattern string) string {
	var b strings.Builder
	b.WriteString("^")
	for i := 0; i < len(pattern); {
		switch c := pattern[i]; c {
		case '*':
			b.WriteString(".*")
			i++
		case '?':
			b.WriteString(".")
			i++
		case '[':
			j := i + 1
			if j < len(pattern) && (pattern[j] == '!' || pattern[j] == '^') {
				j++
			}
			// a ']' right after the opening bracket is a literal member
			if j < len(pattern) && pattern[j] == ']' {
				j++
			}
			for j < len(pattern) && pattern[j] != ']' {
				j++
			}
			if j >= len(pattern) {
				// unterminated class, treat the bracket literally
				b.WriteString(regexp.QuoteMeta("["))
				i++
				continue
			}
			class := pattern[i+1 : j]
			// only `!` negates; a leading `^` is a literal member
			if strings.HasPrefix(class, "!") {
				class = "^" + class[1:]
			} else if strings.HasPrefix(class, "^") {
				class = `\^` + class[1:]
			}
			b.WriteString("[" + class + "]")
			i = j + 1
		default:
			r, size := utf8.DecodeRuneInString(pattern[i:])
			b.WriteString(regexp.QuoteMeta(string(r)))
			i += size
		}
	}
	b.WriteString("$")
	return b.String()
}
