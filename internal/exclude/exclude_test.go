package exclude

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		list string
		want []string
	}{
		{"empty", "", nil},
		{"single", "*.log", []string{"*.log"}},
		{"multiple", "*.log;*.tmp;build/*", []string{"*.log", "*.tmp", "build/*"}},
		{"whitespace", " *.log ; *.tmp ", []string{"*.log", "*.tmp"}},
		{"blank segments", ";;*.log;;", []string{"*.log"}},
		{"only delimiters", ";;;", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse(tt.list); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.list, got, tt.want)
			}
		})
	}
}

func TestFilter_Matches(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		path     string
		want     bool
	}{
		{"star suffix", []string{"*.log"}, "app.log", true},
		{"star spans separators", []string{"*.log"}, "logs/deep/app.log", true},
		{"star matches empty run", []string{"a*.txt"}, "a.txt", true},
		{"prefix pattern", []string{"b.*"}, "b.txt", true},
		{"prefix pattern miss", []string{"b.*"}, "a.txt", false},
		{"question mark", []string{"?.txt"}, "a.txt", true},
		{"question mark needs one char", []string{"?.txt"}, ".txt", false},
		{"character class", []string{"[ab].txt"}, "b.txt", true},
		{"character class miss", []string{"[ab].txt"}, "c.txt", false},
		{"negated class", []string{"[!a].txt"}, "b.txt", true},
		{"negated class miss", []string{"[!a].txt"}, "a.txt", false},
		{"class range", []string{"file[0-9].go"}, "file7.go", true},
		{"anchored whole path", []string{"b.txt"}, "dir/b.txt", false},
		{"any of several", []string{"*.tmp", "*.log"}, "x.log", true},
		{"none of several", []string{"*.tmp", "*.log"}, "x.go", false},
		{"literal dot stays literal", []string{"a.txt"}, "aXtxt", false},
		{"unterminated class is literal", []string{"a[.txt"}, "a[.txt", true},
		{"non-ascii literal", []string{"café.txt"}, "café.txt", true},
		{"non-ascii literal miss", []string{"café.txt"}, "cafe.txt", false},
		{"non-ascii with star", []string{"*é.txt"}, "docs/café.txt", true},
		{"caret class is not negated", []string{"[^a].txt"}, "a.txt", true},
		{"caret class matches literal caret", []string{"[^a].txt"}, "^.txt", true},
		{"caret class miss", []string{"[^a].txt"}, "b.txt", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New(tt.patterns)
			if got := f.Matches(tt.path); got != tt.want {
				t.Errorf("Matches(%q) with %v = %v, want %v", tt.path, tt.patterns, got, tt.want)
			}
		})
	}
}

func TestFilter_EmptyMatchesNothing(t *testing.T) {
	paths := []string{"a.txt", "dir/b.log", ""}

	for _, filter := range []*Filter{nil, New(nil)} {
		for _, path := range paths {
			if filter.Matches(path) {
				t.Errorf("Matches(%q) on empty filter = true, want false", path)
			}
		}
	}
}
