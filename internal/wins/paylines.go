package wins

import "github.com/osse101/SpinForge_Go/internal/domain"

var paylineCache = map[int][][]domain.Position{
	3: buildPaylines(3, false),
	5: buildPaylines(5, true),
}

// Paylines returns the lines evaluated for a grid of the given size.
// 3x3 pays rows only; 5x5 pays rows, columns and both diagonals.
func Paylines(size int) [][]domain.Position {
	if lines, ok := paylineCache[size]; ok {
		return lines
	}
	return buildPaylines(size, size >= 5)
}

func buildPaylines(size int, full bool) [][]domain.Position {
	var lines [][]domain.Position
	for r := 0; r < size; r++ {
		line := make([]domain.Position, size)
		for c := 0; c < size; c++ {
			line[c] = domain.Position{Row: r, Col: c}
		}
		lines = append(lines, line)
	}
	if !full {
		return lines
	}

	for c := 0; c < size; c++ {
		line := make([]domain.Position, size)
		for r := 0; r < size; r++ {
			line[r] = domain.Position{Row: r, Col: c}
		}
		lines = append(lines, line)
	}

	diag := make([]domain.Position, size)
	anti := make([]domain.Position, size)
	for i := 0; i < size; i++ {
		diag[i] = domain.Position{Row: i, Col: i}
		anti[i] = domain.Position{Row: i, Col: size - 1 - i}
	}
	return append(lines, diag, anti)
}
