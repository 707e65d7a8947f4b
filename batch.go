package quad

import "fmt"

// quadIndices splits a quad into two triangles. Relative to the four
// vertices appended in top-left, bottom-left, bottom-right, top-right
// order, the triangles are (TL, BL, TR) and (BL, BR, TR).
var quadIndices = [6]uint32{0, 1, 3, 1, 2, 3}

const (
	verticesPerQuad = 4
	indicesPerQuad  = 6
)

// Drawer consumes the data accumulated by a Batch.
// backend/opengl.BatchRenderer uploads it and issues one draw call.
type Drawer interface {
	DrawIndexed(vertices []Vertex, indices []uint32) error
}

// Batch accumulates vertices and triangle indices for many quads so a
// frame can be drawn with one upload and one draw call.
//
// Quads are drawn in the order they were added; no depth test is used, so
// callers add background layers before the things drawn on top of them.
//
// A Batch is not safe for concurrent use. The rendering goroutine owns it
// from Clear until Draw returns.
type Batch struct {
	vertices []Vertex
	indices  []uint32

	vertexCap int
	indexCap  int
	grow      bool

	dropped int // Quads rejected since the last Clear
}

// BatchOption configures a Batch.
type BatchOption func(*Batch)

// WithGrowth lets the batch grow past its initial capacity instead of
// rejecting quads with ErrCapacityExceeded.
func WithGrowth() BatchOption {
	return func(b *Batch) { b.grow = true }
}

// WithIndexCapacity overrides the index capacity, which otherwise is six
// indices per quad. Useful when callers share vertices between quads
// through AddIndices.
func WithIndexCapacity(n int) BatchOption {
	return func(b *Batch) { b.indexCap = n }
}

// NewBatch creates a batch with room for maxQuads quads.
func NewBatch(maxQuads int, opts ...BatchOption) *Batch {
	if maxQuads < 0 {
		maxQuads = 0
	}
	b := &Batch{
		vertexCap: maxQuads * verticesPerQuad,
		indexCap:  maxQuads * indicesPerQuad,
	}

	for _, opt := range opts {
		opt(b)
	}
	if b.indexCap < 0 {
		b.indexCap = 0
	}

	b.vertices = make([]Vertex, 0, b.vertexCap)
	b.indices = make([]uint32, 0, b.indexCap)
	return b
}

// Clear resets the batch for a new frame.
// Retains allocated capacity to avoid reallocations.
func (b *Batch) Clear() {
	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
	b.dropped = 0
}

// AddQuad appends one quad. Corners and texture coordinates are given in
// top-left, bottom-left, bottom-right, top-right order.
//
// If the quad does not fit and the batch cannot grow, nothing is appended,
// the dropped counter is incremented and an error wrapping
// ErrCapacityExceeded is returned.
func (b *Batch) AddQuad(corners, tex [4]Vec2, fg, bg Color) error {
	if err := b.reserve(verticesPerQuad, indicesPerQuad); err != nil {
		b.dropped++
		return err
	}

	base := uint32(len(b.vertices))
	fgc, bgc := fg.Array(), bg.Array()
	for i := range corners {
		b.vertices = append(b.vertices, Vertex{
			Pos:      [2]float32{corners[i].X, corners[i].Y},
			TexCoord: [2]float32{tex[i].X, tex[i].Y},
			Fg:       fgc,
			Bg:       bgc,
		})
	}
	for _, idx := range quadIndices {
		b.indices = append(b.indices, base+idx)
	}
	return nil
}

// AddRect appends a quad covering the screen rectangle r, sampling the
// texture rectangle uv.
func (b *Batch) AddRect(r, uv Rect, fg, bg Color) error {
	return b.AddQuad(r.Corners(), uv.Corners(), fg, bg)
}

// NextVertexIndex returns the index the next appended vertex will get.
// Callers building their own index groups use it as the base offset.
func (b *Batch) NextVertexIndex() int {
	return len(b.vertices)
}

// AddVertices appends raw vertices. Either all of them are stored or,
// when capacity is exceeded, none are.
func (b *Batch) AddVertices(verts ...Vertex) error {
	if err := b.reserve(len(verts), 0); err != nil {
		return err
	}
	b.vertices = append(b.vertices, verts...)
	return nil
}

// AddIndices appends base+idx for each idx. Every resulting index must
// reference a vertex already in the batch.
func (b *Batch) AddIndices(base int, indices ...uint32) error {
	if base < 0 {
		return fmt.Errorf("%w: negative base %d", ErrIndexOutOfRange, base)
	}
	for _, idx := range indices {
		if v := base + int(idx); v >= len(b.vertices) {
			return fmt.Errorf("%w: index %d with %d vertices", ErrIndexOutOfRange, v, len(b.vertices))
		}
	}
	if err := b.reserve(0, len(indices)); err != nil {
		return err
	}
	for _, idx := range indices {
		b.indices = append(b.indices, uint32(base)+idx)
	}
	return nil
}

// reserve makes room for nv more vertices and ni more indices, growing
// the capacities if the batch allows it.
func (b *Batch) reserve(nv, ni int) error {
	needV := len(b.vertices) + nv
	needI := len(b.indices) + ni
	if needV <= b.vertexCap && needI <= b.indexCap {
		return nil
	}
	if !b.grow {
		return fmt.Errorf("%w: need %d vertices (cap %d) and %d indices (cap %d)",
			ErrCapacityExceeded, needV, b.vertexCap, needI, b.indexCap)
	}

	b.vertexCap = growCap(b.vertexCap, needV, verticesPerQuad)
	b.indexCap = growCap(b.indexCap, needI, indicesPerQuad)
	Logger().Debug("quad batch grown",
		"vertexCap", b.vertexCap,
		"indexCap", b.indexCap)
	return nil
}

// growCap doubles c until it holds need.
func growCap(c, need, minCap int) int {
	if c < minCap {
		c = minCap
	}
	for c < need {
		c *= 2
	}
	return c
}

// Vertices returns the vertices added since the last Clear.
// The slice is only valid until the next mutation of the batch.
func (b *Batch) Vertices() []Vertex {
	return b.vertices
}

// Indices returns the indices added since the last Clear.
// The slice is only valid until the next mutation of the batch.
func (b *Batch) Indices() []uint32 {
	return b.indices
}

// VertexCount returns the number of vertices in the batch.
func (b *Batch) VertexCount() int { return len(b.vertices) }

// IndexCount returns the number of indices in the batch.
func (b *Batch) IndexCount() int { return len(b.indices) }

// QuadCount returns the number of complete index groups of six.
func (b *Batch) QuadCount() int { return len(b.indices) / indicesPerQuad }

// VertexCapacity returns the current vertex capacity.
func (b *Batch) VertexCapacity() int { return b.vertexCap }

// IndexCapacity returns the current index capacity.
func (b *Batch) IndexCapacity() int { return b.indexCap }

// Dropped returns the number of quads rejected since the last Clear.
func (b *Batch) Dropped() int { return b.dropped }

// Draw hands the used vertex and index ranges to d in a single call.
// An empty batch still results in one call with zero elements.
func (b *Batch) Draw(d Drawer) error {
	if b.dropped > 0 {
		Logger().Warn("quad batch dropped quads",
			"dropped", b.dropped,
			"vertexCap", b.vertexCap,
			"indexCap", b.indexCap)
	}
	return d.DrawIndexed(b.vertices, b.indices)
}
