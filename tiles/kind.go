package tiles

// Kind is the type of a level cell.
type Kind uint8

const (
	KindNone Kind = iota
	KindGround
	KindWall

	kindCount
)

var kindGlyphs = [kindCount]Glyph{
	KindNone:   ErrorGlyph,
	KindGround: {Col: 14, Row: 2, Fg: colorGround, Bg: colorFloor},
	KindWall:   {Col: 3, Row: 2, Fg: colorWall, Bg: colorFloor},
}

var kindNames = [kindCount]string{
	KindNone:   "none",
	KindGround: "ground",
	KindWall:   "wall",
}

// Glyph returns the glyph drawn for k. Unknown kinds get ErrorGlyph.
func (k Kind) Glyph() Glyph {
	if k >= kindCount {
		return ErrorGlyph
	}
	return kindGlyphs[k]
}

func (k Kind) String() string {
	if k >= kindCount {
		return "unknown"
	}
	return kindNames[k]
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	return k < kindCount
}
