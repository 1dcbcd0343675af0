// Package scene renders the terrain mesh.
package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/terravis/internal/engine/scene/shaders"
	"github.com/Faultbox/terravis/internal/engine/shader"
	"github.com/Faultbox/terravis/internal/engine/terrain"
	vmath "github.com/Faultbox/terravis/pkg/math"
)

// Shading selects the fragment stage of the terrain program.
type Shading int

const (
	// ShadeNormals maps the lighting normal to RGB.
	ShadeNormals Shading = iota
	// ShadePhong applies ambient/diffuse/specular lighting.
	ShadePhong
)

// PhongParams holds the lighting inputs of the Phong shading mode.
type PhongParams struct {
	LightPos   [3]float32
	LightColor [3]float32
	Ambient    float32
	Diffuse    float32
	Specular   float32
	Shininess  float32
}

// TerrainRenderer uploads the terrain mesh once and draws it each frame.
type TerrainRenderer struct {
	shading Shading
	program uint32

	locView int32
	locProj int32

	// Phong-only uniforms, -1 in normals mode.
	locLightPos   int32
	locLightColor int32
	locViewPos    int32
	locAmbient    int32
	locDiffuse    int32
	locSpecular   int32
	locShininess  int32

	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// NewTerrainRenderer compiles the terrain program for the given shading
// mode. Requires a current OpenGL context.
func NewTerrainRenderer(shading Shading) (*TerrainRenderer, error) {
	fragSrc := shaders.NormalsFragmentShader
	if shading == ShadePhong {
		fragSrc = shaders.PhongFragmentShader
	}

	program, err := shader.CompileProgram(shaders.TerrainVertexShader, fragSrc)
	if err != nil {
		return nil, fmt.Errorf("terrain shader: %w", err)
	}

	tr := &TerrainRenderer{
		shading: shading,
		program: program,
		locView: shader.GetUniform(program, "uView"),
		locProj: shader.GetUniform(program, "uProj"),
	}

	if shading == ShadePhong {
		tr.locLightPos = shader.GetUniform(program, "uLightPos")
		tr.locLightColor = shader.GetUniform(program, "uLightColor")
		tr.locViewPos = shader.GetUniform(program, "uViewPos")
		tr.locAmbient = shader.GetUniform(program, "uAmbient")
		tr.locDiffuse = shader.GetUniform(program, "uDiffuse")
		tr.locSpecular = shader.GetUniform(program, "uSpecular")
		tr.locShininess = shader.GetUniform(program, "uShininess")
	}

	return tr, nil
}

// UploadMesh pushes the mesh to the GPU, replacing any previous one.
// The mesh is read-only from here on; the renderer never mutates it.
func (tr *TerrainRenderer) UploadMesh(mesh *terrain.Mesh) {
	tr.clearBuffers()

	if len(mesh.Vertices) == 0 || len(mesh.Indices) == 0 {
		return
	}

	gl.GenVertexArrays(1, &tr.vao)
	gl.BindVertexArray(tr.vao)

	gl.GenBuffers(1, &tr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, tr.vbo)
	vertexSize := int(unsafe.Sizeof(terrain.Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*vertexSize, unsafe.Pointer(&mesh.Vertices[0]), gl.STATIC_DRAW)

	// Position (location 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)

	// Normal (location 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(1)

	gl.GenBuffers(1, &tr.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, tr.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, unsafe.Pointer(&mesh.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	tr.indexCount = int32(len(mesh.Indices))
}

// Render draws the terrain with the given camera matrices. phong is
// consulted only in Phong mode.
func (tr *TerrainRenderer) Render(view, proj vmath.Mat4, cameraPos vmath.Vec3, phong PhongParams) {
	if tr.vao == 0 || tr.indexCount == 0 {
		return
	}

	gl.UseProgram(tr.program)
	gl.UniformMatrix4fv(tr.locView, 1, false, view.Ptr())
	gl.UniformMatrix4fv(tr.locProj, 1, false, proj.Ptr())

	if tr.shading == ShadePhong {
		gl.Uniform3f(tr.locLightPos, phong.LightPos[0], phong.LightPos[1], phong.LightPos[2])
		gl.Uniform3f(tr.locLightColor, phong.LightColor[0], phong.LightColor[1], phong.LightColor[2])
		gl.Uniform3f(tr.locViewPos, cameraPos.X, cameraPos.Y, cameraPos.Z)
		gl.Uniform1f(tr.locAmbient, phong.Ambient)
		gl.Uniform1f(tr.locDiffuse, phong.Diffuse)
		gl.Uniform1f(tr.locSpecular, phong.Specular)
		gl.Uniform1f(tr.locShininess, phong.Shininess)
	}

	gl.BindVertexArray(tr.vao)
	gl.DrawElements(gl.TRIANGLES, tr.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

func (tr *TerrainRenderer) clearBuffers() {
	if tr.vao != 0 {
		gl.DeleteVertexArrays(1, &tr.vao)
		tr.vao = 0
	}
	if tr.vbo != 0 {
		gl.DeleteBuffers(1, &tr.vbo)
		tr.vbo = 0
	}
	if tr.ebo != 0 {
		gl.DeleteBuffers(1, &tr.ebo)
		tr.ebo = 0
	}
	tr.indexCount = 0
}

// Destroy releases all resources.
func (tr *TerrainRenderer) Destroy() {
	tr.clearBuffers()
	if tr.program != 0 {
		gl.DeleteProgram(tr.program)
		tr.program = 0
	}
}
