package grade

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupBoundaries(t *testing.T) {
	tests := []struct {
		marks  float64
		letter Letter
		point  float64
	}{
		{100, APlus, 4.0},
		{90, APlus, 4.0},
		{89.99, A, 3.6},
		{80, A, 3.6},
		{79.99, BPlus, 3.2},
		{70, BPlus, 3.2},
		{69.99, B, 2.8},
		{60, B, 2.8},
		{59.99, CPlus, 2.4},
		{50, CPlus, 2.4},
		{49.99, C, 2.0},
		{40, C, 2.0},
		{39.99, F, 0.0},
		{0, F, 0.0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.letter, LetterOf(tt.marks), "letter for %v", tt.marks)
		assert.Equal(t, tt.point, PointOf(tt.marks), "point for %v", tt.marks)
	}
}

func TestLookupIsTotal(t *testing.T) {
	assert.Equal(t, APlus, LetterOf(150))
	assert.Equal(t, F, LetterOf(-20))
	assert.Equal(t, F, LetterOf(math.NaN()))
	assert.Equal(t, APlus, LetterOf(math.Inf(1)))
	assert.Equal(t, 0.0, PointOf(math.Inf(-1)))
}

func TestPointForLetter(t *testing.T) {
	for _, b := range Bands() {
		p, ok := PointForLetter(b.Letter)
		assert.True(t, ok)
		assert.Equal(t, b.Point, p)
	}
	_, ok := PointForLetter("D")
	assert.False(t, ok)
}

func TestLettersOrder(t *testing.T) {
	assert.Equal(t, []Letter{APlus, A, BPlus, B, CPlus, C, F}, Letters())
	assert.True(t, F.Failed())
	assert.False(t, C.Failed())
}

func TestRange(t *testing.T) {
	assert.Equal(t, "90 – 100", Range(0))
	assert.Equal(t, "80 – <90", Range(1))
	assert.Equal(t, "40 – <50", Range(5))
	assert.Equal(t, "< 40", Range(6))
}
