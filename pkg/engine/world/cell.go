// Package world provides generic 2D grid primitives: cells, directions and
// a fixed-size grid with 4-connected neighbour links. Game code attaches its
// own per-cell state through Cell.GameData.
package world

import "fmt"

// Cell represents a single tile position in the grid.
type Cell struct {
	// Grid position, fixed for the lifetime of the grid
	Row int
	Col int

	// Navigation - links to adjacent cells, nil past the grid edge
	North *Cell
	East  *Cell
	South *Cell
	West  *Cell

	// GameData holds game-specific extensions.
	// Games should cast this to their specific type (e.g., *TileData).
	GameData interface{}
}

// NewCell creates a new cell at the given position
func NewCell(row, col int) *Cell {
	return &Cell{
		Row: row,
		Col: col,
	}
}

// Name returns the "row:col" label of the cell
func (c *Cell) Name() string {
	return fmt.Sprintf("%d:%d", c.Row, c.Col)
}

// GetNeighbor returns the neighboring cell in the given direction
func (c *Cell) GetNeighbor(dir Direction) *Cell {
	if c == nil {
		return nil
	}
	switch dir {
	case North:
		return c.North
	case East:
		return c.East
	case South:
		return c.South
	case West:
		return c.West
	default:
		return nil
	}
}

// SetNeighbor sets the neighboring cell in the given direction
func (c *Cell) SetNeighbor(dir Direction, neighbor *Cell) {
	if c == nil {
		return
	}
	switch dir {
	case North:
		c.North = neighbor
	case East:
		c.East = neighbor
	case South:
		c.South = neighbor
	case West:
		c.West = neighbor
	}
}

// IsOpenEdge returns true if at least one side of the cell leads off the grid
func (c *Cell) IsOpenEdge() bool {
	return c.North == nil || c.East == nil || c.South == nil || c.West == nil
}

// GetNeighbors returns all non-nil adjacent cells in North, East, South, West order
func (c *Cell) GetNeighbors() []*Cell {
	neighbors := make([]*Cell, 0, 4)
	if c.North != nil {
		neighbors = append(neighbors, c.North)
	}
	if c.East != nil {
		neighbors = append(neighbors, c.East)
	}
	if c.South != nil {
		neighbors = append(neighbors, c.South)
	}
	if c.West != nil {
		neighbors = append(neighbors, c.West)
	}
	return neighbors
}
