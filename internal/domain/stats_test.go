package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLanguageBytes_Total(t *testing.T) {
	assert.Equal(t, 0, LanguageBytes{}.Total())
	assert.Equal(t, 200, LanguageBytes{"Go": 150, "Rust": 50}.Total())
}

func TestLanguageBytes_Top(t *testing.T) {
	testCases := []struct {
		name     string
		langs    LanguageBytes
		n        int
		expected []LanguageShare
	}{
		{
			name:  "sorted by byte count descending",
			langs: LanguageBytes{"Go": 150, "Rust": 50, "Python": 75},
			n:     6,
			expected: []LanguageShare{
				{Name: "Go", Bytes: 150},
				{Name: "Python", Bytes: 75},
				{Name: "Rust", Bytes: 50},
			},
		},
		{
			name:  "ties break by language name ascending",
			langs: LanguageBytes{"b": 50, "a": 50, "c": 100},
			n:     6,
			expected: []LanguageShare{
				{Name: "c", Bytes: 100},
				{Name: "a", Bytes: 50},
				{Name: "b", Bytes: 50},
			},
		},
		{
			name:  "truncated to n entries",
			langs: LanguageBytes{"a": 1, "b": 2, "c": 3, "d": 4},
			n:     2,
			expected: []LanguageShare{
				{Name: "d", Bytes: 4},
				{Name: "c", Bytes: 3},
			},
		},
		{
			name:     "empty input yields no shares",
			langs:    LanguageBytes{},
			n:        6,
			expected: []LanguageShare{},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.langs.Top(tc.n))
		})
	}
}
