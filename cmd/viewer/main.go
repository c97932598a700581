// Command viewer extracts a mesh from a procedural density field with
// this module's engine and renders it with OpenGL, as a visual sanity
// check that Extract produces sane, crack-free geometry. Grounded on
// cmd/triangle/main.go for window/context setup and the render loop
// shape, and on internal/graphics (Camera, Shader) for the rest.
package main

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/voxelgen/transvoxel"
	"github.com/voxelgen/transvoxel/internal/graphics"
)

const (
	windowWidth  = 1024
	windowHeight = 768
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, "transvoxel viewer", nil, nil)
	if err != nil {
		panic(err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		panic(err)
	}
	gl.Enable(gl.DEPTH_TEST)

	shader, err := graphics.NewShader("cmd/viewer/shaders/mesh.vert", "cmd/viewer/shaders/mesh.frag")
	if err != nil {
		panic(fmt.Errorf("loading shaders: %w", err))
	}

	mesh := extractDemoMesh()
	vao, vbo, ebo := uploadMesh(mesh)
	defer gl.DeleteVertexArrays(1, &vao)
	defer gl.DeleteBuffers(1, &vbo)
	defer gl.DeleteBuffers(1, &ebo)

	camera := graphics.NewCamera(windowWidth, windowHeight)
	camera.Eye = mgl32.Vec3{0, 6, 14}

	model := mgl32.Ident4()
	gl.ClearColor(0.05, 0.05, 0.08, 1.0)

	for !window.ShouldClose() {
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
		}

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		shader.Use()
		shader.SetMatrix4("uModel", &model[0])
		view := camera.GetViewMatrix()
		shader.SetMatrix4("uView", &view[0])
		proj := camera.GetProjectionMatrix()
		shader.SetMatrix4("uProjection", &proj[0])
		shader.SetVector3("uLightDir", -0.4, -1.0, -0.3)
		shader.SetVector3("uBaseColor", 0.65, 0.75, 0.85)

		gl.BindVertexArray(vao)
		gl.DrawElements(gl.TRIANGLES, int32(len(mesh.Triangles)), gl.UNSIGNED_INT, gl.PtrOffset(0))
		gl.BindVertexArray(0)

		window.SwapBuffers()
		glfw.PollEvents()
	}
}

// extractDemoMesh runs one extraction over a single block with every
// face active, so the demo also exercises the transition-cell path
// (a real multi-block scene would only activate the faces bordering a
// coarser neighbour).
func extractDemoMesh() *transvoxel.Mesh[float32] {
	field := VoxelField{Center: [3]float32{8, 8, 8}, Radius: 5, Seed: 1}
	builder := transvoxel.NewGenericMeshBuilder[float32]()
	block := transvoxel.Block[float32]{Base: [3]float32{0, 0, 0}, Size: 16, Subdivisions: 24}
	opts := transvoxel.ExtractOptions[float32]{
		Threshold:       0,
		TransitionFaces: transvoxel.Sides(transvoxel.LowX, transvoxel.HighX, transvoxel.LowY, transvoxel.HighY, transvoxel.LowZ, transvoxel.HighZ),
	}
	transvoxel.ExtractFromField[float32, transvoxel.ScalarDensity[float32]](field, builder, block, opts)
	return builder.Build()
}

func uploadMesh(mesh *transvoxel.Mesh[float32]) (vao, vbo, ebo uint32) {
	n := len(mesh.Positions) / 3
	interleaved := make([]float32, 0, n*6)
	for i := 0; i < n; i++ {
		interleaved = append(interleaved,
			mesh.Positions[3*i], mesh.Positions[3*i+1], mesh.Positions[3*i+2],
			mesh.Normals[3*i], mesh.Normals[3*i+1], mesh.Normals[3*i+2],
		)
	}
	indices := make([]uint32, len(mesh.Triangles))
	for i, idx := range mesh.Triangles {
		indices[i] = uint32(idx)
	}

	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(interleaved)*4, gl.Ptr(interleaved), gl.STATIC_DRAW)

	gl.GenBuffers(1, &ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	const stride = 6 * 4
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*4))

	gl.BindVertexArray(0)
	return vao, vbo, ebo
}
