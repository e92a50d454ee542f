package domain

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestStarsFor(t *testing.T) {
	tests := []struct {
		name   string
		rating string
		want   Stars
	}{
		{name: "perfect", rating: "10", want: Stars{Full: 5, Half: 0, Empty: 0}},
		{name: "zero", rating: "0", want: Stars{Full: 0, Half: 0, Empty: 5}},
		{name: "midpoint produces a half star", rating: "5", want: Stars{Full: 2, Half: 1, Empty: 2}},
		{name: "rounds rating before halving", rating: "7.4", want: Stars{Full: 3, Half: 1, Empty: 1}},
		{name: "point five rounds up", rating: "7.5", want: Stars{Full: 4, Half: 0, Empty: 1}},
		{name: "decimal", rating: "8.1", want: Stars{Full: 4, Half: 0, Empty: 1}},
		{name: "surrounding whitespace", rating: " 6.0 ", want: Stars{Full: 3, Half: 0, Empty: 2}},
		{name: "provider not rated marker", rating: "N/A", want: Stars{Full: 0, Half: 0, Empty: 5}},
		{name: "not a number", rating: "not a number", want: Stars{Full: 0, Half: 0, Empty: 5}},
		{name: "empty", rating: "", want: Stars{Full: 0, Half: 0, Empty: 5}},
		{name: "above scale", rating: "42", want: Stars{Full: 5, Half: 0, Empty: 0}},
		{name: "negative", rating: "-3", want: Stars{Full: 0, Half: 0, Empty: 5}},
		{name: "infinity", rating: "Inf", want: Stars{Full: 5, Half: 0, Empty: 0}},
		{name: "NaN literal", rating: "NaN", want: Stars{Full: 0, Half: 0, Empty: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StarsFor(tt.rating)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, StarCount, got.Total())
		})
	}
}

func TestStarsFor_AlwaysFiveGlyphs(t *testing.T) {
	inputs := []string{"0", "0.4", "1", "2.5", "3.3", "4.9", "5", "6.6", "7.5", "9.4", "9.5", "10", "11", "-1", "N/A", "abc", "1e308", "-Inf"}

	for _, in := range inputs {
		s := StarsFor(in)
		assert.Equal(t, StarCount, utf8.RuneCountInString(s.String()), "rating %q", in)
		assert.GreaterOrEqual(t, s.Full, 0)
		assert.GreaterOrEqual(t, s.Half, 0)
		assert.GreaterOrEqual(t, s.Empty, 0)
	}
}

func TestStars_String(t *testing.T) {
	assert.Equal(t, "★★★★★", StarsFor("10").String())
	assert.Equal(t, "☆☆☆☆☆", StarsFor("0").String())
	assert.Equal(t, "★★☆☆☆", StarsFor("5").String())
	assert.Equal(t, strings.Repeat(EmptyGlyph, 5), StarsFor("N/A").String())
}
