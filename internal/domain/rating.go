package domain

import (
	"math"
	"strconv"
	"strings"
)

const (
	// StarCount is the fixed width of a rendered rating.
	StarCount = 5

	FullGlyph  = "★"
	HalfGlyph  = "☆"
	EmptyGlyph = "☆"

	maxRating = 10
)

// Stars is a five-star rendering of a 0-10 rating.
type Stars struct {
	Full  int `json:"full"`
	Half  int `json:"half"`
	Empty int `json:"empty"`
}

// StarsFor converts an IMDb rating such as "7.4" to stars. Non-numeric
// ratings ("N/A") render as five empty stars.
func StarsFor(ratingText string) Stars {
	rating, err := strconv.ParseFloat(strings.TrimSpace(ratingText), 64)
	if err != nil {
		rating = math.NaN()
	}
	if !math.IsNaN(rating) {
		rating = math.Max(0, math.Min(maxRating, rating))
	}

	halfScale := roundHalfUp(rating) / 2
	full := math.Floor(halfScale)
	half := roundHalfUp(halfScale - full)

	s := Stars{
		Full: repeatCount(full),
		Half: repeatCount(half),
	}
	s.Empty = StarCount - s.Full - s.Half
	return s
}

// Total is always StarCount.
func (s Stars) Total() int {
	return s.Full + s.Half + s.Empty
}

func (s Stars) String() string {
	return strings.Repeat(FullGlyph, s.Full) +
		strings.Repeat(HalfGlyph, s.Half) +
		strings.Repeat(EmptyGlyph, s.Empty)
}

// roundHalfUp rounds .5 towards positive infinity; math.Round would round
// away from zero.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

// repeatCount turns a computed segment size into a repeat count. NaN and
// infinities count as zero.
func repeatCount(x float64) int {
	if math.IsNaN(x) || math.IsInf(x, 0) || x <= 0 {
		return 0
	}
	if x > StarCount {
		return StarCount
	}
	return int(x)
}
