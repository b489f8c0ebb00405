package generator

import (
	"fmt"
	"math/rand"

	"lifesupport/pkg/game/gas"
	"lifesupport/pkg/game/sim"
)

// BSPGenerator partitions the grid with Binary Space Partitioning and builds
// one self-contained life-support room per leaf
type BSPGenerator struct{}

// Name returns the name of this generator
func (g *BSPGenerator) Name() string {
	return "BSP Station"
}

// bspNode represents a node in the BSP tree
type bspNode struct {
	x, y, width, height int
	left, right         *bspNode
	room                *bspRoom
}

// bspRoom is the outer rectangle of a room, walls included
type bspRoom struct {
	x, y, width, height int
}

// Constants for BSP generation
const (
	minNodeSize = 7 // Minimum size of a BSP node
	minRoomSize = 5 // Walls plus a 3x3 interior
	roomPadding = 1 // Gap kept free below and right of each room
)

// roomFill is the starting atmosphere of every generated room
var roomFill = gas.Cell{O2: 40, N2: 3}

// Generate builds the station. The outer ring of the grid is left as vacuum.
func (g *BSPGenerator) Generate(s *sim.Simulator, rng *rand.Rand) error {
	root := &bspNode{
		x:      1,
		y:      1,
		width:  s.Cols() - 2,
		height: s.Rows() - 2,
	}
	if root.width < minRoomSize+roomPadding || root.height < minRoomSize+roomPadding {
		return fmt.Errorf("grid %dx%d too small for %s", s.Rows(), s.Cols(), g.Name())
	}

	splitBSP(root, minNodeSize, rng)
	createRooms(root, rng)

	for _, room := range collectRooms(root) {
		if err := buildRoom(s, room); err != nil {
			return err
		}
	}
	return nil
}

// splitBSP recursively splits a BSP node
func splitBSP(node *bspNode, minSize int, rng *rand.Rand) {
	canSplitWidth := node.width >= minSize*2
	canSplitHeight := node.height >= minSize*2

	// Decide split direction
	var splitHorizontal bool
	switch {
	case node.width > node.height && canSplitWidth:
		splitHorizontal = false
	case node.height > node.width && canSplitHeight:
		splitHorizontal = true
	case canSplitWidth && canSplitHeight:
		splitHorizontal = rng.Intn(2) == 0
	case canSplitWidth:
		splitHorizontal = false
	case canSplitHeight:
		splitHorizontal = true
	default:
		return // Too small to split
	}

	if splitHorizontal {
		// Split horizontally (top and bottom)
		splitPoint := minSize + rng.Intn(node.height-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: splitPoint}
		node.right = &bspNode{x: node.x, y: node.y + splitPoint, width: node.width, height: node.height - splitPoint}
	} else {
		// Split vertically (left and right)
		splitPoint := minSize + rng.Intn(node.width-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: splitPoint, height: node.height}
		node.right = &bspNode{x: node.x + splitPoint, y: node.y, width: node.width - splitPoint, height: node.height}
	}

	splitBSP(node.left, minSize, rng)
	splitBSP(node.right, minSize, rng)
}

// createRooms places a room rectangle in every leaf node
func createRooms(node *bspNode, rng *rand.Rand) {
	if node.left != nil || node.right != nil {
		if node.left != nil {
			createRooms(node.left, rng)
		}
		if node.right != nil {
			createRooms(node.right, rng)
		}
		return
	}

	roomWidth := minRoomSize + rng.Intn(node.width-minRoomSize-roomPadding+1)
	roomHeight := minRoomSize + rng.Intn(node.height-minRoomSize-roomPadding+1)

	node.room = &bspRoom{
		x:      node.x + rng.Intn(node.width-roomWidth),
		y:      node.y + rng.Intn(node.height-roomHeight),
		width:  roomWidth,
		height: roomHeight,
	}
}

// collectRooms collects all rooms from the BSP tree
func collectRooms(node *bspNode) []*bspRoom {
	var rooms []*bspRoom

	if node.room != nil {
		rooms = append(rooms, node.room)
	}
	if node.left != nil {
		rooms = append(rooms, collectRooms(node.left)...)
	}
	if node.right != nil {
		rooms = append(rooms, collectRooms(node.right)...)
	}

	return rooms
}

// buildRoom walls in r and fits it out: an engine wired to an oxygen
// generator along the top interior row, an output vent and a plant along the
// bottom row, and a SPAC-12 outside the bottom door feeding the vent.
func buildRoom(s *sim.Simulator, r *bspRoom) error {
	top, left := r.y, r.x
	bottom, right := r.y+r.height-1, r.x+r.width-1
	doorCol := r.x + r.width/2

	var steps []placement
	for row := top; row <= bottom; row++ {
		for col := left; col <= right; col++ {
			if row == top || row == bottom || col == left || col == right {
				steps = append(steps, placement{row, col, sim.ToolWall})
			}
		}
	}
	steps = append(steps,
		placement{bottom, doorCol, sim.ToolDoor},
		placement{bottom, doorCol, sim.ToolPipe},
		placement{bottom + 1, doorCol, sim.ToolPipe},
		placement{bottom - 1, doorCol, sim.ToolPipe},
		placement{top + 1, left + 1, sim.ToolWire},
		placement{top + 1, left + 2, sim.ToolWire},
		placement{top + 1, left + 3, sim.ToolWire},
		placement{top + 1, left + 1, sim.ToolEngine},
		placement{top + 1, left + 3, sim.ToolOxygenGenerator},
		placement{bottom - 1, doorCol, sim.ToolOutputVent},
		placement{bottom - 1, right - 1, sim.ToolPlant},
		placement{bottom + 1, doorCol, sim.ToolSpac12},
	)
	for _, p := range steps {
		if err := s.Place(p.row, p.col, p.tool); err != nil {
			return fmt.Errorf("bsp room at %d:%d: %w", r.y, r.x, err)
		}
	}

	for row := top + 1; row < bottom; row++ {
		for col := left + 1; col < right; col++ {
			if err := setGases(s, row, col, roomFill); err != nil {
				return err
			}
		}
	}
	return nil
}

type placement struct {
	row, col int
	tool     sim.Tool
}
