package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Time
		ok       bool
	}{
		{"2024-03-11", time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), true},
		{" 2024-03-11 ", time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), true},
		{"", time.Time{}, false},
		{"11/03/2024", time.Time{}, false},
		{"2024-02-30", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			date, ok := ParseDate(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, date)
		})
	}
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)

	assert.Len(t, id, 8)
	for _, r := range id {
		assert.True(t, strings.ContainsRune(characters, r))
	}
}
