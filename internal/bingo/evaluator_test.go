package bingo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountLines(t *testing.T) {
	tests := []struct {
		name   string
		marked []int
		want   int
	}{
		{
			name:   "no marks",
			marked: []int{},
			want:   0,
		},
		{
			name:   "scattered marks complete nothing",
			marked: []int{0, 1, 2, 3, 7, 9, 13, 21},
			want:   0,
		},
		{
			name:   "first row only",
			marked: []int{0, 1, 2, 3, 4},
			want:   1,
		},
		{
			name:   "first column only",
			marked: []int{0, 5, 10, 15, 20},
			want:   1,
		},
		{
			name:   "main diagonal only",
			marked: []int{0, 6, 12, 18, 24},
			want:   1,
		},
		{
			name:   "anti diagonal only",
			marked: []int{4, 8, 12, 16, 20},
			want:   1,
		},
		{
			name:   "row and column sharing a corner",
			marked: []int{0, 1, 2, 3, 4, 5, 10, 15, 20},
			want:   2,
		},
		{
			name:   "middle row, middle column and both diagonals cross at 12",
			marked: []int{10, 11, 12, 13, 14, 2, 7, 17, 22, 0, 6, 18, 24, 4, 8, 16, 20},
			want:   4,
		},
		{
			name:   "duplicate positions count once",
			marked: []int{0, 0, 1, 1, 2, 2, 3, 3, 4, 4},
			want:   1,
		},
		{
			name:   "full board completes all twelve lines",
			marked: fullBoard(),
			want:   12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// When: counting completed lines for the marked set
			got := CountLines(tt.marked)

			// Then: the count matches the lines fully contained in the set
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCountLines_IsPure(t *testing.T) {
	// Given: a marked set
	marked := []int{0, 1, 2, 3, 4}

	// When: counting twice
	first := CountLines(marked)
	second := CountLines(marked)

	// Then: the input is untouched and the result is stable
	assert.Equal(t, first, second)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, marked)
}

func fullBoard() []int {
	positions := make([]int, 0, 25)
	for i := 0; i < 25; i++ {
		positions = append(positions, i)
	}

	return positions
}
