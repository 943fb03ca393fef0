package domain

import (
	"fmt"
	"strings"
)

// GridMode is the closed set of reel layouts
type GridMode string

const (
	ModeThreeByThree GridMode = "three_by_three"
	ModeFiveByFive   GridMode = "five_by_five"
)

// GridModes lists every supported mode in a stable order
var GridModes = []GridMode{ModeThreeByThree, ModeFiveByFive}

// Size returns the side length of the square grid, or 0 for an unknown mode.
func (m GridMode) Size() int {
	switch m {
	case ModeThreeByThree:
		return 3
	case ModeFiveByFive:
		return 5
	default:
		return 0
	}
}

// HasClusters reports whether the mode pays cluster wins.
func (m GridMode) HasClusters() bool {
	return m == ModeFiveByFive
}

// Valid reports whether m is a known mode.
func (m GridMode) Valid() bool {
	return m.Size() > 0
}

// ParseGridMode accepts the canonical names plus the "3x3"/"5x5" shorthands.
func ParseGridMode(s string) (GridMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(ModeThreeByThree), "3x3":
		return ModeThreeByThree, nil
	case string(ModeFiveByFive), "5x5":
		return ModeFiveByFive, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Position addresses one grid cell
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Grid holds symbol IDs indexed [row][col]
type Grid [][]string

// NewGrid allocates an empty size x size grid.
func NewGrid(size int) Grid {
	g := make(Grid, size)
	for r := range g {
		g[r] = make([]string, size)
	}
	return g
}

// Size returns the side length.
func (g Grid) Size() int {
	return len(g)
}

// At returns the symbol ID at p.
func (g Grid) At(p Position) string {
	return g[p.Row][p.Col]
}

// Set places id at p.
func (g Grid) Set(p Position, id string) {
	g[p.Row][p.Col] = id
}

// Clone returns a deep copy.
func (g Grid) Clone() Grid {
	c := make(Grid, len(g))
	for r := range g {
		c[r] = append([]string(nil), g[r]...)
	}
	return c
}

// Positions lists every cell in row-major order.
func (g Grid) Positions() []Position {
	out := make([]Position, 0, len(g)*len(g))
	for r := range g {
		for c := range g[r] {
			out = append(out, Position{Row: r, Col: c})
		}
	}
	return out
}
