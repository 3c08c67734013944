package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Introduction to Python":     "introduction-to-python",
		"  Web Development 101  ":    "web-development-101",
		"C++ & Go: A Comparison":     "c-go-a-comparison",
		"already-a-slug":             "already-a-slug",
		"Multiple   Spaces":          "multiple-spaces",
		"Trailing punctuation!!!":    "trailing-punctuation",
		"Ujasiriamali kwa Vijana":    "ujasiriamali-kwa-vijana",
		"":                           "",
	}

	for input, want := range cases {
		assert.Equal(t, want, Slugify(input), "input %q", input)
	}
}
