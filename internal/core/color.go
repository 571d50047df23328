package core

// Color is a terminal colour given as an ANSI-256 index ("214") or a hex
// value ("#edc22e"). The empty Color means the terminal default.
type Color string

// NoColor leaves the terminal default in place.
const NoColor Color = ""

// Pen is the foreground and background a cell is drawn with.
type Pen struct {
	Fg Color
	Bg Color
}

// Plain is the zero Pen.
var Plain = Pen{}

// IsPlain reports whether p uses the terminal defaults only.
func (p Pen) IsPlain() bool {
	return p == Plain
}
