package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInt(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 10},
		{"3", 3},
		{"abc", 10},
		{"0", 10},
		{"-2", 10},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseInt(tt.in, 10), "input %q", tt.in)
	}
}

func TestSplitCSV(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{" drama, ,sci-fi ", []string{"drama", "sci-fi"}},
		{" sci-fi, ,comedy,", []string{"sci-fi", "comedy"}},
		{",,", []string{}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SplitCSV(tt.in), "input %q", tt.in)
	}
}

func TestPaginationMath(t *testing.T) {
	assert.Equal(t, 0, CalculateOffset(1, 10))
	assert.Equal(t, 5, CalculateOffset(2, 5))
	assert.Equal(t, 0, CalculateOffset(0, 5))

	assert.Equal(t, 0, CalculateTotalPages(0, 10))
	assert.Equal(t, 1, CalculateTotalPages(10, 10))
	assert.Equal(t, 3, CalculateTotalPages(21, 10))
	assert.Equal(t, 0, CalculateTotalPages(21, 0))
}
