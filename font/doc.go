/*
Package font rasterizes a range of characters into a single-channel
texture atlas and lays text out as quads for a quad.Batch.

# Building an atlas

	cfg := font.DefaultConfig() // 32pt, 2x DPI, 512x512, ' '..'~'
	atlas, err := font.LoadAtlas("res/DMMono-Regular.ttf", cfg)
	if errors.Is(err, font.ErrAtlasOverflow) {
	    // Use a bigger atlas or a smaller size.
	}

Glyphs are shelf packed: left to right in rows, a new row starting below
the tallest glyph of the previous one. Each character gets a GlyphMetric
with its advance, bearings, size and a UV rectangle inset by half a texel.

# Drawing text

	batch.Clear()
	font.DrawString(batch, atlas, "Hello\nworld", 10, 10, quad.ColorWhite, quad.ColorTransparent)
	batch.Draw(renderer)

Positions and advances are in logical units: device pixels divided by the
DPI scale the atlas was built with.

# Debugging and baking

WritePPM and WritePNG dump the coverage buffer. Atlas.Encode and
DecodeAtlas store a packed atlas so it can be loaded without the font.
*/
package font
