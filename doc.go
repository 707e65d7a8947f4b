/*
Package quad batches textured, two-colour quads into one indexed draw call
per frame.

# Overview

Every quad carries a foreground and a background colour. The bound
texture's coverage selects between them per pixel, so the same batch draws
tile sheets, glyph atlases and flat rectangles. Quads are drawn in the
order they are added; later quads cover earlier ones.

The font sub-package packs glyphs into a single-channel atlas and lays out
strings as quads. The tiles sub-package draws grid levels from a 16x16
sheet. The backend/opengl sub-package uploads a batch and draws it.

# Quick Start

	// Setup
	renderer, _ := opengl.NewBatchRenderer(4096, 800, 600)
	atlas, _ := font.LoadAtlas("font.ttf", font.DefaultConfig())
	tex, _ := opengl.UploadAtlas(atlas)
	batch := quad.NewBatch(4096)

	// Game loop
	for !window.ShouldClose() {
	    batch.Clear()
	    font.DrawString(batch, atlas, "Hello", 16, 16, quad.ColorWhite, quad.ColorTransparent)

	    renderer.SetTexture(tex)
	    batch.Draw(renderer)
	    window.SwapBuffers()
	}

# Winding

AddQuad takes corners in top-left, bottom-left, bottom-right, top-right
order and emits the indices

	0, 1, 3,  1, 2, 3

relative to the first of the four vertices: triangles (TL, BL, TR) and
(BL, BR, TR), split along the bottom-left to top-right diagonal.

# Capacity

A Batch is created with room for a fixed number of quads. A quad that does
not fit is rejected whole: AddQuad returns an error wrapping
ErrCapacityExceeded, nothing is appended and Dropped counts it until the
next Clear. Draw logs a warning when quads were dropped. Batches created
with WithGrowth double their capacity instead.

Callers building their own index groups use NextVertexIndex, AddVertices
and AddIndices. AddIndices rejects indices that would reference vertices
not yet added with ErrIndexOutOfRange.

# Logging

Nothing is logged until SetLogger installs a *slog.Logger. The font and
backend/opengl packages log through the same logger.

	quad.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
*/
package quad
