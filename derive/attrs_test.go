package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFieldAttrs(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  fieldAttrs
	}{
		{
			name:  "plain doc",
			lines: []string{" Your username."},
			want:  fieldAttrs{doc: []string{"Your username."}},
		},
		{
			name:  "multi line doc keeps deeper indentation",
			lines: []string{" First line.", "   indented continuation"},
			want:  fieldAttrs{doc: []string{"First line.", "  indented continuation"}},
		},
		{
			name:  "default number",
			lines: []string{" Set the width.", "onlyargs:default 42"},
			want:  fieldAttrs{doc: []string{"Set the width."}, deflt: "42"},
		},
		{
			name:  "default negative float",
			lines: []string{"onlyargs:default -0.5"},
			want:  fieldAttrs{deflt: "-0.5"},
		},
		{
			name:  "default quoted string",
			lines: []string{`onlyargs:default "a b"`},
			want:  fieldAttrs{deflt: `"a b"`},
		},
		{
			name:  "default bool",
			lines: []string{"onlyargs:default true"},
			want:  fieldAttrs{deflt: "true"},
		},
		{
			name:  "short plain",
			lines: []string{"onlyargs:short x"},
			want:  fieldAttrs{short: 'x'},
		},
		{
			name:  "short quoted",
			lines: []string{"onlyargs:short 'Z'"},
			want:  fieldAttrs{short: 'Z'},
		},
		{
			name:  "long only",
			lines: []string{"onlyargs:long"},
			want:  fieldAttrs{long: true},
		},
		{
			name:  "required and positional",
			lines: []string{" Words.", "onlyargs:required", "onlyargs:positional"},
			want:  fieldAttrs{doc: []string{"Words."}, required: true, positional: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFieldAttrs(tt.lines)
			if assert.NoError(t, err) {
				assert.Equal(t, tt.want, *got)
			}
		})
	}
}

func TestParseFieldAttrsRejects(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		msg   string
	}{
		{"unknown directive", []string{"onlyargs:frobnicate"}, "unknown directive"},
		{"long with argument", []string{"onlyargs:long name"}, "takes no argument"},
		{"required with argument", []string{"onlyargs:required yes"}, "takes no argument"},
		{"positional with argument", []string{"onlyargs:positional rest"}, "takes no argument"},
		{"short empty", []string{"onlyargs:short"}, "single character"},
		{"short multi char", []string{"onlyargs:short ab"}, "single character"},
		{"short digit", []string{"onlyargs:short 7"}, "ASCII letter"},
		{"default empty", []string{"onlyargs:default"}, "requires a literal"},
		{"default two tokens", []string{"onlyargs:default 1 2"}, "single literal"},
		{"default bare word", []string{"onlyargs:default forty"}, "invalid literal"},
		{"default unterminated string", []string{`onlyargs:default "oops`}, "invalid string literal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFieldAttrs(tt.lines)
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.msg)
			}
		})
	}
}
