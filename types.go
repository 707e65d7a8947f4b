package quad

// Vec2 represents a 2D vector for positions and texture coordinates.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Rect represents a rectangle with position and size.
// Y grows downward for screen rects; for texture rects Y is the V axis
// with V=0 at the top row of the image.
type Rect struct {
	X, Y float32 // Top-left position
	W, H float32 // Width and height
}

// Corners returns the four corners in quad winding order:
// top-left, bottom-left, bottom-right, top-right.
func (r Rect) Corners() [4]Vec2 {
	return [4]Vec2{
		{X: r.X, Y: r.Y},
		{X: r.X, Y: r.Y + r.H},
		{X: r.X + r.W, Y: r.Y + r.H},
		{X: r.X + r.W, Y: r.Y},
	}
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Vertex is one corner of a quad.
// Memory layout matches the OpenGL vertex attribute pointers in
// backend/opengl: 12 tightly packed float32 values.
type Vertex struct {
	Pos      [2]float32 // Position (x, y)
	TexCoord [2]float32 // Texture coordinates (u, v)
	Fg       [4]float32 // Foreground RGBA, shown where coverage is 1
	Bg       [4]float32 // Background RGBA, shown where coverage is 0
}

// Color is a non-premultiplied RGBA colour with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// Array returns the colour as the float4 stored in a Vertex.
func (c Color) Array() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}

// WithAlpha returns a copy of c with a different alpha.
func (c Color) WithAlpha(a float32) Color {
	c.A = clampf(a, 0, 1)
	return c
}

// Colour constants.
var (
	ColorWhite       = Color{1, 1, 1, 1}
	ColorBlack       = Color{0, 0, 0, 1}
	ColorRed         = Color{1, 0, 0, 1}
	ColorGreen       = Color{0, 1, 0, 1}
	ColorBlue        = Color{0, 0, 1, 1}
	ColorYellow      = Color{1, 1, 0, 1}
	ColorGray        = Color{0.5, 0.5, 0.5, 1}
	ColorDarkGray    = Color{0.1, 0.1, 0.1, 1}
	ColorLightGray   = Color{0.7, 0.7, 0.7, 1}
	ColorTransparent = Color{}
)

// RGBA creates a colour from 8-bit components.
func RGBA(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}
}

// RGBAf creates a colour from float components, clamped to [0, 1].
func RGBAf(r, g, b, a float32) Color {
	return Color{
		R: clampf(r, 0, 1),
		G: clampf(g, 0, 1),
		B: clampf(b, 0, 1),
		A: clampf(a, 0, 1),
	}
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
