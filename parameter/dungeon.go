package parameter

// Dungeon Dimensions
const (
	// DungeonWidth is the level width in tiles
	DungeonWidth = 40

	// DungeonHeight is the level height in tiles
	DungeonHeight = 30
)

// Terrain Generation
const (
	// NoiseWallChance is the probability an interior cell seeds as wall
	NoiseWallChance = 0.45

	// SmoothingGenerations is the number of cellular automaton passes
	SmoothingGenerations = 4

	// BirthThreshold is the Moore-neighborhood wall count at or above
	// which a cell becomes wall
	BirthThreshold = 5

	// SurvivalThreshold is the wall count at or below which a cell
	// becomes floor; a count between the two thresholds keeps the
	// cell's previous state
	SurvivalThreshold = 3

	// FloorSampleAttempts bounds rejection sampling in RandomFloorTile
	// before falling back to a linear scan
	FloorSampleAttempts = 10_000
)
