package casing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreserve(t *testing.T) {
	tests := []struct {
		candidate string
		original  string
		want      string
	}{
		{"av", "αυ", "av"},
		{"av", "Αύ", "Av"},
		{"av", "ΑΥ", "AV"},
		{"b", "ΜΠ", "B"},
		{"mp", "Μπ", "Mp"},
		{"AB", "ab", "ab"},
		// a single capital is treated as a capitalised word
		{"ab", "Α", "Ab"},
		{"x", "", "x"},
		{"", "ΑΥ", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Preserve(tt.candidate, tt.original), "Preserve(%q, %q)", tt.candidate, tt.original)
	}
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Th", Capitalize("TH"))
	assert.Equal(t, "Ένα", Capitalize("ένα"))
	assert.Equal(t, "", Capitalize(""))
}
