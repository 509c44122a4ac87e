package dungeon

import (
	"math/rand"

	"github.com/lixenwraith/dungeon-survival/parameter"
)

// Generate produces a connected cave level: random noise shaped by a
// cellular automaton, followed by a connectivity repair that walls in
// every floor pocket unreachable from a sampled seed cell. The same
// rng state and dimensions always yield the same grid.
//
// Dimensions below 3 are clamped so a border plus interior exist.
func Generate(width, height int, rng *rand.Rand) *Grid {
	if width < 3 {
		width = 3
	}
	if height < 3 {
		height = 3
	}

	g := newGrid(width, height)
	g.seedNoise(rng)

	for i := 0; i < parameter.SmoothingGenerations; i++ {
		g.smooth()
	}

	// Adversarial noise can smooth to an all-wall interior; carve a
	// guaranteed floor region so sampling and repair always terminate
	if g.FloorCount() == 0 {
		g.carveInterior()
	}

	g.repairConnectivity(rng)
	return g
}

// seedNoise marks each interior cell as wall with independent
// probability and forces the border to wall.
func (g *Grid) seedNoise(rng *rand.Rand) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if x == 0 || y == 0 || x == g.width-1 || y == g.height-1 {
				g.cells[y][x] = Wall
			} else {
				g.cells[y][x] = rng.Float64() < parameter.NoiseWallChance
			}
		}
	}
}

// smooth runs one automaton generation. Every interior cell is
// reclassified from its Moore-neighborhood wall count in the previous
// generation; the border is excluded from the scan and re-forced to
// wall afterwards.
func (g *Grid) smooth() {
	next := make([][]bool, g.height)
	for y := range next {
		next[y] = make([]bool, g.width)
	}

	for y := 1; y < g.height-1; y++ {
		for x := 1; x < g.width-1; x++ {
			walls := g.countAdjacentWalls(x, y)
			switch {
			case walls >= parameter.BirthThreshold:
				next[y][x] = Wall
			case walls <= parameter.SurvivalThreshold:
				next[y][x] = Floor
			default:
				next[y][x] = g.cells[y][x]
			}
		}
	}

	g.cells = next
	g.forceBorder()
}

// countAdjacentWalls counts wall cells in the 8-neighborhood of an
// interior cell.
func (g *Grid) countAdjacentWalls(x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.cells[y+dy][x+dx] {
				count++
			}
		}
	}
	return count
}

func (g *Grid) forceBorder() {
	for x := 0; x < g.width; x++ {
		g.cells[0][x] = Wall
		g.cells[g.height-1][x] = Wall
	}
	for y := 0; y < g.height; y++ {
		g.cells[y][0] = Wall
		g.cells[y][g.width-1] = Wall
	}
}

// carveInterior clears a fixed centered rectangle, guaranteeing at
// least one floor cell regardless of how the automaton shaped the map.
func (g *Grid) carveInterior() {
	x0 := max(1, g.width/4)
	x1 := min(g.width-2, 3*g.width/4)
	y0 := max(1, g.height/4)
	y1 := min(g.height-2, 3*g.height/4)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			g.cells[y][x] = Floor
		}
	}
}

// repairConnectivity flood-fills from a sampled floor cell and
// converts every unreached floor cell to wall, leaving exactly one
// connected floor component.
func (g *Grid) repairConnectivity(rng *rand.Rand) {
	seed := g.RandomFloorTile(rng)
	reachable, _ := g.floodFill(seed)

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if !g.cells[y][x] && !reachable[y][x] {
				g.cells[y][x] = Wall
			}
		}
	}
}
