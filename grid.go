// grid.go — the Grid orchestrator: construction, validation, and the
// four-phase generation pipeline.

package mazegen

// Grid owns a 2D array of cells and runs the carve → shortcut → solve →
// classify pipeline over it. Construct with New, call Generate exactly
// once, then treat the value as read-only. A Grid is not safe for
// concurrent use during Generate; distinct Grids are fully independent.
type Grid struct {
	// Width and Height are the grid dimensions, both positive.
	Width, Height int

	// Type is the topology the grid was built for.
	Type Topology

	// Difficulty is the clamped difficulty in [MinDifficulty, MaxDifficulty].
	Difficulty int

	// Cells is the row-major cell array: Cells[y][x]. Owned exclusively by
	// the Grid; renderers read it after Generate.
	Cells [][]*Cell

	// SolutionPath is the shortest start→end route, inclusive of both
	// endpoints. Empty until Generate runs, never empty afterward.
	SolutionPath []Coord

	// Start and End are the topology-defined entry and exit cells.
	Start, End Coord

	adj       adjacency
	opts      Options
	generated bool
}

// New constructs an ungenerated Grid. Returns ErrBadDimensions when width
// or height is not positive and ErrUnknownTopology for a tag outside the
// closed enum; on error no Grid is ever partially built. Out-of-range
// difficulty is clamped here, silently.
func New(width, height int, t Topology, opts ...Option) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadDimensions
	}
	adj, err := strategyFor(t, width, height)
	if err != nil {
		return nil, err
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.Difficulty = clampDifficulty(o.Difficulty)

	cells := make([][]*Cell, height)
	for y := 0; y < height; y++ {
		cells[y] = make([]*Cell, width)
		for x := 0; x < width; x++ {
			cells[y][x] = newCell(x, y)
		}
	}

	g := &Grid{
		Width:      width,
		Height:     height,
		Type:       t,
		Difficulty: o.Difficulty,
		Cells:      cells,
		Start:      adj.start(),
		End:        adj.end(),
		adj:        adj,
		opts:       o,
	}

	return g, nil
}

// Generate runs the full pipeline: carve a spanning tree, open
// difficulty-tuned shortcuts, solve via BFS, and classify every off-path
// cell by dead-end depth. It is total over any Grid New accepted; the only
// error is ErrGenerated on a repeated call.
func (g *Grid) Generate() error {
	if g.generated {
		return ErrGenerated
	}
	g.generated = true

	rng := g.opts.Rand
	if rng == nil {
		if g.opts.hasSeed {
			rng = rngFromSeed(g.opts.Seed)
		} else {
			rng = systemRNG()
		}
	}

	g.carve(rng)
	g.addShortcuts(rng)
	g.solve()
	g.classifyDeadEnds()

	return nil
}

// Cell returns the cell at (x, y). The caller is expected to stay in
// bounds; this is a plain array access, not a checked lookup.
func (g *Grid) Cell(x, y int) *Cell {
	return g.Cells[y][x]
}

// index maps (x, y) to a row-major flat index: y*Width + x.
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// coordinate converts a row-major flat index back to (x, y).
func (g *Grid) coordinate(idx int) Coord {
	return Coord{X: idx % g.Width, Y: idx / g.Width}
}

// OpenWallCount returns the total number of open walls in the grid. Every
// opening flips one flag on each side of the wall, so the per-cell flag
// count is summed and halved.
func (g *Grid) OpenWallCount() int {
	total := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			total += g.Cells[y][x].openWallCount()
		}
	}
	return total / 2
}
