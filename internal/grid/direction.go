package grid

import (
	"fmt"
	"strings"
)

// Direction is one of the four slide directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in a fixed order.
var Directions = [...]Direction{Up, Down, Left, Right}

// String returns the lower-case direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection converts a name such as "left" or "U" into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return Up, nil
	case "down", "d":
		return Down, nil
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	}
	return 0, fmt.Errorf("grid: unknown direction %q", s)
}

// cellMapper maps position i of line k, read in slide order, to a board cell.
type cellMapper func(k, i int) Cell

func leftCell(k, i int) Cell  { return Cell{Row: k, Col: i} }
func rightCell(k, i int) Cell { return Cell{Row: k, Col: Size - 1 - i} }
func upCell(k, i int) Cell    { return Cell{Row: i, Col: k} }
func downCell(k, i int) Cell  { return Cell{Row: Size - 1 - i, Col: k} }

// mapper returns the coordinate mapping for d, or nil for an unknown direction.
func (d Direction) mapper() cellMapper {
	switch d {
	case Left:
		return leftCell
	case Right:
		return rightCell
	case Up:
		return upCell
	case Down:
		return downCell
	default:
		return nil
	}
}
