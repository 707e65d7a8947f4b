package quad_test

import (
	"errors"
	"testing"

	"github.com/go-theft-auto/quad"
)

// mockDrawer records what a Batch hands to the GPU.
type mockDrawer struct {
	drawCalls int
	vertices  []quad.Vertex
	indices   []uint32
}

func (m *mockDrawer) DrawIndexed(vertices []quad.Vertex, indices []uint32) error {
	m.drawCalls++
	m.vertices = append(m.vertices[:0], vertices...)
	m.indices = append(m.indices[:0], indices...)
	return nil
}

func unitQuad(x, y float32) ([4]quad.Vec2, [4]quad.Vec2) {
	r := quad.Rect{X: x, Y: y, W: 16, H: 16}
	uv := quad.Rect{X: 0, Y: 0, W: 1, H: 1}
	return r.Corners(), uv.Corners()
}

func TestBatchCountsAndIndices(t *testing.T) {
	b := quad.NewBatch(64)

	for n := 1; n <= 64; n++ {
		corners, tex := unitQuad(float32(n), 0)
		if err := b.AddQuad(corners, tex, quad.ColorWhite, quad.ColorBlack); err != nil {
			t.Fatalf("AddQuad %d: %v", n, err)
		}

		if got := b.VertexCount(); got != 4*n {
			t.Fatalf("after %d quads: vertex count = %d, want %d", n, got, 4*n)
		}
		if got := b.IndexCount(); got != 6*n {
			t.Fatalf("after %d quads: index count = %d, want %d", n, got, 6*n)
		}
		for i, idx := range b.Indices() {
			if int(idx) >= b.VertexCount() {
				t.Fatalf("index %d = %d, vertex count %d", i, idx, b.VertexCount())
			}
		}
	}
}

func TestBatchQuadTriangles(t *testing.T) {
	b := quad.NewBatch(4)

	// Offset by one quad so the base vertex is non-zero.
	for i := 0; i < 2; i++ {
		corners, tex := unitQuad(float32(i)*16, 0)
		if err := b.AddQuad(corners, tex, quad.ColorWhite, quad.ColorBlack); err != nil {
			t.Fatal(err)
		}
	}

	want := []uint32{4, 5, 7, 5, 6, 7}
	got := b.Indices()[6:]
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("second quad indices = %v, want %v", got, want)
		}
	}

	// The two triangles together must reference each corner, and share
	// exactly the two diagonal vertices.
	tri1 := map[uint32]bool{got[0]: true, got[1]: true, got[2]: true}
	tri2 := map[uint32]bool{got[3]: true, got[4]: true, got[5]: true}
	shared := 0
	for v := range tri1 {
		if tri2[v] {
			shared++
		}
	}
	if shared != 2 {
		t.Errorf("triangles share %d vertices, want 2", shared)
	}
	if len(tri1) != 3 || len(tri2) != 3 {
		t.Errorf("degenerate triangle: %v %v", tri1, tri2)
	}

	// Winding order of the appended corners: TL, BL, BR, TR.
	v := b.Vertices()[4:8]
	if v[0].Pos != [2]float32{16, 0} || v[1].Pos != [2]float32{16, 16} ||
		v[2].Pos != [2]float32{32, 16} || v[3].Pos != [2]float32{32, 0} {
		t.Errorf("unexpected corner order: %+v", v)
	}
}

func TestBatchColorsAndTexCoords(t *testing.T) {
	b := quad.NewBatch(1)
	fg := quad.RGBA(255, 0, 0, 255)
	bg := quad.RGBAf(0, 0, 1, 0.5)

	uv := quad.Rect{X: 0.25, Y: 0.5, W: 0.25, H: 0.25}
	if err := b.AddRect(quad.Rect{X: 1, Y: 2, W: 3, H: 4}, uv, fg, bg); err != nil {
		t.Fatal(err)
	}

	for i, v := range b.Vertices() {
		if v.Fg != [4]float32{1, 0, 0, 1} {
			t.Errorf("vertex %d fg = %v", i, v.Fg)
		}
		if v.Bg != [4]float32{0, 0, 1, 0.5} {
			t.Errorf("vertex %d bg = %v", i, v.Bg)
		}
	}
	if tc := b.Vertices()[2].TexCoord; tc != [2]float32{0.5, 0.75} {
		t.Errorf("bottom-right tex coord = %v, want [0.5 0.75]", tc)
	}
}

func TestBatchCapacityExceeded(t *testing.T) {
	b := quad.NewBatch(2)
	corners, tex := unitQuad(0, 0)

	for i := 0; i < 2; i++ {
		if err := b.AddQuad(corners, tex, quad.ColorWhite, quad.ColorBlack); err != nil {
			t.Fatalf("AddQuad %d: %v", i, err)
		}
	}

	err := b.AddQuad(corners, tex, quad.ColorWhite, quad.ColorBlack)
	if !errors.Is(err, quad.ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}
	if b.VertexCount() != 8 || b.IndexCount() != 12 {
		t.Errorf("rejected quad changed counts: %d vertices, %d indices", b.VertexCount(), b.IndexCount())
	}
	if b.Dropped() != 1 {
		t.Errorf("Dropped() = %d, want 1", b.Dropped())
	}

	b.Clear()
	if b.Dropped() != 0 {
		t.Errorf("Clear should reset dropped count, got %d", b.Dropped())
	}
}

func TestBatchIndexCapacityLimit(t *testing.T) {
	b := quad.NewBatch(2, quad.WithIndexCapacity(6))
	corners, tex := unitQuad(0, 0)

	if err := b.AddQuad(corners, tex, quad.ColorWhite, quad.ColorBlack); err != nil {
		t.Fatal(err)
	}
	if err := b.AddQuad(corners, tex, quad.ColorWhite, quad.ColorBlack); !errors.Is(err, quad.ErrCapacityExceeded) {
		t.Fatalf("expected index capacity to reject second quad, got %v", err)
	}
	if b.VertexCount() != 4 {
		t.Errorf("vertices of rejected quad were stored: %d", b.VertexCount())
	}
}

func TestBatchNegativeIndexCapacity(t *testing.T) {
	b := quad.NewBatch(4, quad.WithIndexCapacity(-1))
	if b.IndexCapacity() != 0 {
		t.Errorf("IndexCapacity() = %d, want 0", b.IndexCapacity())
	}

	corners, tex := unitQuad(0, 0)
	if err := b.AddQuad(corners, tex, quad.ColorWhite, quad.ColorBlack); !errors.Is(err, quad.ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}
	if b.Dropped() != 1 {
		t.Errorf("Dropped() = %d, want 1", b.Dropped())
	}
}

func TestBatchGrowth(t *testing.T) {
	b := quad.NewBatch(1, quad.WithGrowth())
	corners, tex := unitQuad(0, 0)

	for i := 0; i < 100; i++ {
		if err := b.AddQuad(corners, tex, quad.ColorWhite, quad.ColorBlack); err != nil {
			t.Fatalf("AddQuad %d: %v", i, err)
		}
	}
	if b.QuadCount() != 100 {
		t.Errorf("QuadCount() = %d, want 100", b.QuadCount())
	}
	if b.Dropped() != 0 {
		t.Errorf("growing batch dropped %d quads", b.Dropped())
	}
	if b.VertexCapacity() < 400 || b.IndexCapacity() < 600 {
		t.Errorf("capacity did not grow: %d vertices, %d indices", b.VertexCapacity(), b.IndexCapacity())
	}
}

func TestBatchManualIndices(t *testing.T) {
	b := quad.NewBatch(2)

	base := b.NextVertexIndex()
	if base != 0 {
		t.Fatalf("NextVertexIndex() on empty batch = %d", base)
	}

	verts := make([]quad.Vertex, 4)
	if err := b.AddVertices(verts...); err != nil {
		t.Fatal(err)
	}
	if err := b.AddIndices(base, 0, 1, 3, 1, 2, 3); err != nil {
		t.Fatal(err)
	}
	if b.NextVertexIndex() != 4 {
		t.Errorf("NextVertexIndex() = %d, want 4", b.NextVertexIndex())
	}

	err := b.AddIndices(b.NextVertexIndex(), 0)
	if !errors.Is(err, quad.ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
	if b.IndexCount() != 6 {
		t.Errorf("invalid indices were stored: %d", b.IndexCount())
	}
}

func TestBatchClearThenDraw(t *testing.T) {
	b := quad.NewBatch(8)
	corners, tex := unitQuad(0, 0)
	_ = b.AddQuad(corners, tex, quad.ColorWhite, quad.ColorBlack)

	b.Clear()
	d := &mockDrawer{}
	if err := b.Draw(d); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	if d.drawCalls != 1 {
		t.Errorf("expected 1 draw call, got %d", d.drawCalls)
	}
	if len(d.indices) != 0 || len(d.vertices) != 0 {
		t.Errorf("expected empty draw, got %d vertices, %d indices", len(d.vertices), len(d.indices))
	}
	if b.VertexCapacity() != 32 {
		t.Errorf("Clear changed capacity to %d", b.VertexCapacity())
	}
}

func TestBatchDrawUsesInsertionOrder(t *testing.T) {
	b := quad.NewBatch(8)

	for i := 0; i < 3; i++ {
		corners, tex := unitQuad(float32(i*100), 0)
		if err := b.AddQuad(corners, tex, quad.ColorWhite, quad.ColorBlack); err != nil {
			t.Fatal(err)
		}
	}

	d := &mockDrawer{}
	if err := b.Draw(d); err != nil {
		t.Fatal(err)
	}
	if len(d.vertices) != 12 || len(d.indices) != 18 {
		t.Fatalf("draw got %d vertices, %d indices", len(d.vertices), len(d.indices))
	}
	for i := 0; i < 3; i++ {
		if x := d.vertices[i*4].Pos[0]; x != float32(i*100) {
			t.Errorf("quad %d drawn out of order: x = %v", i, x)
		}
	}
}
