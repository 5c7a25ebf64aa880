package bingo

// WinningLines - completed lines needed to finish the game. This variant
// plays to five lines, not classic single-line bingo.
const WinningLines = 5

// Lines - the 12 winning combinations on a 5x5 row-major grid:
// 5 rows, 5 columns and the two main diagonals.
var Lines = [12][5]int{
	{0, 1, 2, 3, 4},
	{5, 6, 7, 8, 9},
	{10, 11, 12, 13, 14},
	{15, 16, 17, 18, 19},
	{20, 21, 22, 23, 24},
	{0, 5, 10, 15, 20},
	{1, 6, 11, 16, 21},
	{2, 7, 12, 17, 22},
	{3, 8, 13, 18, 23},
	{4, 9, 14, 19, 24},
	{0, 6, 12, 18, 24},
	{4, 8, 12, 16, 20},
}

// CountLines - counts the winning combinations fully contained in the set
// of marked positions. Pure, no side effects.
func CountLines(marked []int) int {
	markedSet := make(map[int]struct{}, len(marked))
	for _, position := range marked {
		markedSet[position] = struct{}{}
	}

	count := 0

	for _, line := range Lines {
		complete := true

		for _, position := range line {
			if _, ok := markedSet[position]; !ok {
				complete = false
				break
			}
		}

		if complete {
			count++
		}
	}

	return count
}
