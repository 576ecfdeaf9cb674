package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreName(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
	}{
		{"descriptive beats generic", "Genesee County Poorhouse", "building"},
		{"proper noun beats coordinates", "Hudson Mill", "43.2128,-77.9390"},
		{"longer descriptive beats short", "Rolling Hills Hospital", "barn"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Greater(t, ScoreName(tt.a), ScoreName(tt.b))
		})
	}

	assert.Zero(t, ScoreName(""))
	assert.Equal(t, 1, ScoreName("43.2128,-77.9390"))
}

func TestBestName(t *testing.T) {
	tests := []struct {
		name     string
		names    []string
		expected string
	}{
		{
			name:     "picks the descriptive name",
			names:    []string{"43.2,-77.9", "house", "Genesee County Poorhouse"},
			expected: "Genesee County Poorhouse",
		},
		{
			name:     "skips blanks",
			names:    []string{"", "  ", "Hudson Mill"},
			expected: "Hudson Mill",
		},
		{
			name:     "all blank yields empty",
			names:    []string{"", "   "},
			expected: "",
		},
		{
			name:     "first wins a tie",
			names:    []string{"Hudson Mill", "Hudson Mill"},
			expected: "Hudson Mill",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BestName(tt.names))
		})
	}
}

func TestAlternateNames(t *testing.T) {
	got := AlternateNames(
		[]string{"Hudson Mill", "hudson mill", "43.2,-77.9", "", "The Old Mill"},
		"Hudson Mill",
	)
	assert.Equal(t, "The Old Mill", got)

	got = AlternateNames([]string{"Mill A", "Mill B"}, "Something Else")
	assert.Equal(t, "Mill A | Mill B", got)

	assert.Empty(t, AlternateNames(nil, "X"))
}
