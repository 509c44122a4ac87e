package dungeon

import (
	"math/rand"

	"github.com/lixenwraith/dungeon-survival/parameter"
)

// Cell types
const (
	Wall  = true
	Floor = false
)

// Point is a tile coordinate
type Point struct {
	X, Y int
}

// Grid is a fixed-size wall/floor matrix, true = wall.
// After Generate returns, the border is entirely wall, the floor
// cells form a single 4-connected component, and the grid is never
// mutated again.
type Grid struct {
	width, height int
	cells         [][]bool // cells[y][x]
}

func newGrid(width, height int) *Grid {
	cells := make([][]bool, height)
	for y := range cells {
		cells[y] = make([]bool, width)
	}
	return &Grid{width: width, height: height, cells: cells}
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// ParseGrid builds a grid from rows of '#' (wall) and '.' (floor).
// Rows must be equal length. Invariants are the caller's problem;
// Generate is the gameplay path, this is for tests and tooling.
func ParseGrid(rows []string) *Grid {
	height := len(rows)
	width := 0
	if height > 0 {
		width = len(rows[0])
	}

	g := newGrid(width, height)
	for y, row := range rows {
		for x, ch := range row {
			g.cells[y][x] = ch == '#'
		}
	}
	return g
}

// IsWall reports whether (x, y) is a wall. Out-of-range coordinates
// count as wall, so movement and AI checks need no separate bounds
// tests at call sites.
func (g *Grid) IsWall(x, y int) bool {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return true
	}
	return g.cells[y][x]
}

// FloorCount returns the number of non-wall cells.
func (g *Grid) FloorCount() int {
	count := 0
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if !g.cells[y][x] {
				count++
			}
		}
	}
	return count
}

// RandomFloorTile samples a uniformly random floor cell by rejection
// sampling, bounded so pathological grids cannot loop forever; after
// the attempt budget it falls back to a linear scan. The grid must
// contain at least one floor cell, which Generate guarantees.
func (g *Grid) RandomFloorTile(rng *rand.Rand) Point {
	for i := 0; i < parameter.FloorSampleAttempts; i++ {
		x := rng.Intn(g.width)
		y := rng.Intn(g.height)
		if !g.cells[y][x] {
			return Point{X: x, Y: y}
		}
	}

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if !g.cells[y][x] {
				return Point{X: x, Y: y}
			}
		}
	}

	// Unreachable on generated grids; keep the result in-bounds
	return Point{X: g.width / 2, Y: g.height / 2}
}

// floodFill marks every floor cell reachable from seed via
// 4-directional floor adjacency and returns the mark matrix with the
// reached cell count.
func (g *Grid) floodFill(seed Point) ([][]bool, int) {
	reachable := make([][]bool, g.height)
	for y := range reachable {
		reachable[y] = make([]bool, g.width)
	}

	if g.IsWall(seed.X, seed.Y) {
		return reachable, 0
	}

	dirs := [4]Point{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	queue := []Point{seed}
	reachable[seed.Y][seed.X] = true
	count := 1

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range dirs {
			nx, ny := p.X+d.X, p.Y+d.Y
			if nx < 0 || ny < 0 || nx >= g.width || ny >= g.height {
				continue
			}
			if g.cells[ny][nx] || reachable[ny][nx] {
				continue
			}
			reachable[ny][nx] = true
			count++
			queue = append(queue, Point{X: nx, Y: ny})
		}
	}

	return reachable, count
}
