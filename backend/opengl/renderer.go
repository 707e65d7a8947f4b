// Package opengl provides an OpenGL 4.1 backend that draws a quad.Batch.
package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/quad"
)

const (
	vertexSize = int(unsafe.Sizeof(quad.Vertex{}))
	indexSize  = int(unsafe.Sizeof(uint32(0)))
)

// BatchRenderer uploads the contents of a quad.Batch and draws it with one
// glDrawElements call. It implements quad.Drawer.
type BatchRenderer struct {
	shader   uint32
	vao, vbo uint32
	ebo      uint32
	projLoc  int32
	texLoc   int32
	texture  uint32

	// Buffer sizes currently allocated on the GPU, in elements.
	vertexCap int
	indexCap  int

	width, height int
	projection    mgl32.Mat4
}

// Vertex shader source
const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;
layout (location = 2) in vec4 aFg;
layout (location = 3) in vec4 aBg;

out vec2 TexCoord;
out vec4 FgColor;
out vec4 BgColor;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
    TexCoord = aTexCoord;
    FgColor = aFg;
    BgColor = aBg;
}
` + "\x00"

// Fragment shader source
// The red channel of the bound texture selects between the background
// (0) and foreground (1) colour. Single-channel glyph atlases and
// white-on-black tile sheets both work this way.
const fragmentShaderSource = `
#version 410 core
in vec2 TexCoord;
in vec4 FgColor;
in vec4 BgColor;

out vec4 FragColor;

uniform sampler2D uTex;

void main() {
    float t = texture(uTex, TexCoord).r;
    FragColor = mix(BgColor, FgColor, t);
}
` + "\x00"

// NewBatchRenderer creates a renderer with GPU buffers sized for maxQuads
// quads and an orthographic projection for a width x height viewport with
// the origin at the top-left. A GL context must be current.
func NewBatchRenderer(maxQuads, width, height int) (*BatchRenderer, error) {
	if maxQuads <= 0 {
		return nil, fmt.Errorf("opengl: maxQuads must be positive, got %d", maxQuads)
	}

	r := &BatchRenderer{
		vertexCap: maxQuads * 4,
		indexCap:  maxQuads * 6,
	}
	r.Resize(width, height)

	var err error
	r.shader, err = createShaderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader: %w", err)
	}

	r.projLoc = gl.GetUniformLocation(r.shader, gl.Str("projection\x00"))
	r.texLoc = gl.GetUniformLocation(r.shader, gl.Str("uTex\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, r.vertexCap*vertexSize, nil, gl.STREAM_DRAW)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, r.indexCap*indexSize, nil, gl.STREAM_DRAW)

	// Vertex layout: Pos (2 floats) + TexCoord (2 floats) + Fg (4 floats) + Bg (4 floats)
	stride := int32(vertexSize)

	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, unsafe.Offsetof(quad.Vertex{}.Pos))
	gl.EnableVertexAttribArray(0)

	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, unsafe.Offsetof(quad.Vertex{}.TexCoord))
	gl.EnableVertexAttribArray(1)

	gl.VertexAttribPointerWithOffset(2, 4, gl.FLOAT, false, stride, unsafe.Offsetof(quad.Vertex{}.Fg))
	gl.EnableVertexAttribArray(2)

	gl.VertexAttribPointerWithOffset(3, 4, gl.FLOAT, false, stride, unsafe.Offsetof(quad.Vertex{}.Bg))
	gl.EnableVertexAttribArray(3)

	gl.BindVertexArray(0)

	quad.Logger().Info("batch renderer created",
		"maxQuads", maxQuads,
		"vertexBytes", r.vertexCap*vertexSize,
		"indexBytes", r.indexCap*indexSize)
	return r, nil
}

// Resize updates the viewport size used for the projection.
func (r *BatchRenderer) Resize(width, height int) {
	r.width = width
	r.height = height
	r.projection = projection(width, height)
}

// projection maps pixel coordinates with y down to clip space.
func projection(width, height int) mgl32.Mat4 {
	return mgl32.Ortho(0, float32(width), float32(height), 0, -1, 1)
}

// SetTexture selects the texture sampled by subsequent draws.
func (r *BatchRenderer) SetTexture(t *Texture) {
	if t == nil {
		r.texture = 0
		return
	}
	r.texture = t.ID
}

// DrawIndexed implements quad.Drawer. It orphans the GPU buffers, uploads
// only the used ranges and issues a single indexed draw, even when there
// is nothing to draw. Buffers are reallocated if the batch grew past the
// size they were created with.
func (r *BatchRenderer) DrawIndexed(vertices []quad.Vertex, indices []uint32) error {
	// Save GL state
	var lastProgram int32
	var lastBlendSrc, lastBlendDst int32
	var blendEnabled, depthEnabled, cullEnabled bool

	gl.GetIntegerv(gl.CURRENT_PROGRAM, &lastProgram)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &lastBlendSrc)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &lastBlendDst)
	blendEnabled = gl.IsEnabled(gl.BLEND)
	depthEnabled = gl.IsEnabled(gl.DEPTH_TEST)
	cullEnabled = gl.IsEnabled(gl.CULL_FACE)

	// Painter's order: later quads cover earlier ones.
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)

	gl.UseProgram(r.shader)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &r.projection[0])

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.texture)
	gl.Uniform1i(r.texLoc, 0)

	gl.BindVertexArray(r.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	if len(vertices) > r.vertexCap {
		r.vertexCap = len(vertices)
		quad.Logger().Warn("vertex buffer reallocated", "vertices", r.vertexCap)
	}
	gl.BufferData(gl.ARRAY_BUFFER, r.vertexCap*vertexSize, nil, gl.STREAM_DRAW)
	if len(vertices) > 0 {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(vertices)*vertexSize, gl.Ptr(vertices))
	}

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	if len(indices) > r.indexCap {
		r.indexCap = len(indices)
		quad.Logger().Warn("index buffer reallocated", "indices", r.indexCap)
	}
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, r.indexCap*indexSize, nil, gl.STREAM_DRAW)
	if len(indices) > 0 {
		gl.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, 0, len(indices)*indexSize, gl.Ptr(indices))
	}

	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(len(indices)), gl.UNSIGNED_INT, 0)

	// Restore GL state
	gl.BindVertexArray(0)
	gl.UseProgram(uint32(lastProgram))
	gl.BlendFunc(uint32(lastBlendSrc), uint32(lastBlendDst))

	if !blendEnabled {
		gl.Disable(gl.BLEND)
	}
	if depthEnabled {
		gl.Enable(gl.DEPTH_TEST)
	}
	if cullEnabled {
		gl.Enable(gl.CULL_FACE)
	}

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("opengl: draw failed with error 0x%x", code)
	}
	return nil
}

// Delete releases OpenGL resources. Textures set with SetTexture are owned
// by the caller.
func (r *BatchRenderer) Delete() {
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.shader != 0 {
		gl.DeleteProgram(r.shader)
	}
	quad.Logger().Info("batch renderer deleted")
}

// createShaderProgram compiles and links a shader program.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader compilation failed: %w", err)
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment shader compilation failed: %w", err)
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("shader program linking failed: %s", string(log))
	}

	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s", string(log))
	}
	return shader, nil
}
