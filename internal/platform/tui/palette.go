package tui

import "github.com/vovakirdan/term2048/internal/core"

const (
	inkDark  core.Color = "#776e65"
	inkLight core.Color = "#f9f6f2"
)

var (
	boardPen   = core.Pen{Bg: "#bbada0"}
	emptyPen   = core.Pen{Bg: "#cdc1b4"}
	overlayPen = core.Pen{Fg: inkLight, Bg: "#8f7a66"}
	accentPen  = core.Pen{Fg: "#edc22e"}
	dimPen     = core.Pen{Fg: "241"}
)

// tileBackgrounds follows the classic palette: greys for 2 and 4, oranges
// up to 64, yellows up to 2048.
var tileBackgrounds = map[uint32]core.Color{
	2:    "#eee4da",
	4:    "#ede0c8",
	8:    "#f2b179",
	16:   "#f59563",
	32:   "#f67c5f",
	64:   "#f65e3b",
	128:  "#edcf72",
	256:  "#edcc61",
	512:  "#edc850",
	1024: "#edc53f",
	2048: "#edc22e",
}

const superTileBg core.Color = "#3c3a32"

// tilePen returns the pen a tile of value v is drawn with.
func tilePen(v uint32) core.Pen {
	if v == 0 {
		return emptyPen
	}
	fg := inkLight
	if v <= 4 {
		fg = inkDark
	}
	bg, ok := tileBackgrounds[v]
	if !ok {
		bg = superTileBg
	}
	return core.Pen{Fg: fg, Bg: bg}
}

// palette hands out pens, or plain pens when colour is off.
type palette struct {
	color bool
}

func (p palette) pen(pen core.Pen) core.Pen {
	if !p.color {
		return core.Plain
	}
	return pen
}

func (p palette) tile(v uint32) core.Pen {
	return p.pen(tilePen(v))
}
