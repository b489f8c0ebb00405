package world

// Grid is a fixed rows x cols array of cells with 4-connected neighbour links
type Grid struct {
	cells [][]*Cell
	rows  int
	cols  int
}

// NewGrid creates a new grid with the given dimensions and links every cell
// to its neighbours
func NewGrid(rows, cols int) *Grid {
	g := &Grid{}
	g.Build(rows, cols)
	g.BuildAllCellConnections()
	return g
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// IsOnPerimeter checks if a position is on the outermost ring of the grid
func (g *Grid) IsOnPerimeter(row, col int) bool {
	if !g.IsValidPosition(row, col) {
		return false
	}
	return row == 0 || row == g.rows-1 || col == 0 || col == g.cols-1
}

// GetCell returns the cell at the given position, or nil if out of bounds
func (g *Grid) GetCell(row, col int) *Cell {
	if !g.IsValidPosition(row, col) {
		return nil
	}
	return g.cells[row][col]
}

// GetCellRelative returns the cell adjacent to the given cell in the specified direction
func (g *Grid) GetCellRelative(c *Cell, dir Direction) *Cell {
	if c == nil {
		return nil
	}
	if !dir.IsValid() {
		return nil
	}
	rowRel, colRel := dir.Delta()
	return g.GetCell(c.Row+rowRel, c.Col+colRel)
}

// Build initializes the grid with the given dimensions
func (g *Grid) Build(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.rows = rows
	g.cols = cols
	g.cells = make([][]*Cell, rows)

	for currentRow := 0; currentRow < rows; currentRow++ {
		g.cells[currentRow] = make([]*Cell, cols)
		for currentCol := 0; currentCol < cols; currentCol++ {
			g.cells[currentRow][currentCol] = NewCell(currentRow, currentCol)
		}
	}
}

// BuildAllCellConnections connects all cells to their neighbors
func (g *Grid) BuildAllCellConnections() {
	g.ForEachCell(func(row, col int, cell *Cell) {
		g.buildCellConnections(cell)
	})
}

func (g *Grid) buildCellConnections(current *Cell) {
	for _, dir := range AllDirections() {
		adj := g.GetCellRelative(current, dir)
		if adj == nil {
			continue
		}

		current.SetNeighbor(dir, adj)
		adj.SetNeighbor(dir.Opposite(), current)
	}
}

// ForEachCell iterates over all cells in row-major order, calling the provided function for each
func (g *Grid) ForEachCell(fn func(row, col int, cell *Cell)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(row, col, g.cells[row][col])
		}
	}
}
