package render

import (
	"errors"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrShader is returned when a built-in shader fails to compile.
var ErrShader = errors.New("render: shader compile failed")

// Cubemap skybox shader. The view translation is dropped so the box stays centred on the eye.
const (
	skyboxVS = `#version 330
in vec3 vertexPosition;
uniform mat4 matProjection;
uniform mat4 matView;
out vec3 fragPosition;
void main() {
  fragPosition = vertexPosition;
  mat4 rotView = mat4(mat3(matView));
  gl_Position = matProjection * rotView * vec4(vertexPosition, 1.0);
}
`
	skyboxFS = `#version 330
in vec3 fragPosition;
out vec4 finalColor;
uniform samplerCube environmentMap;
void main() {
  finalColor = vec4(texture(environmentMap, fragPosition).rgb, 1.0);
}
`
)

// Skybox draws a cubemap behind everything else.
type Skybox struct {
	mesh     rl.Mesh
	material rl.Material
}

// NewSkybox builds the skybox around a cubemap owned by the caller.
func NewSkybox(cubemap rl.Texture2D) (*Skybox, error) {
	shader := rl.LoadShaderFromMemory(skyboxVS, skyboxFS)
	if !rl.IsShaderValid(shader) {
		return nil, ErrShader
	}

	// Bind the cubemap material slot to the shader's sampler.
	locs := unsafe.Slice(shader.Locs, rl.ShaderLocMapCubemap+1)
	locs[rl.ShaderLocMapCubemap] = rl.GetShaderLocation(shader, "environmentMap")

	s := &Skybox{
		mesh:     rl.GenMeshCube(1, 1, 1),
		material: rl.LoadMaterialDefault(),
	}
	s.material.Shader = shader
	rl.SetMaterialTexture(&s.material, rl.MapCubemap, cubemap)
	return s, nil
}

// Draw renders the skybox with depth writes and face culling off, so later geometry
// always lands in front of it.
func (s *Skybox) Draw() {
	rl.DisableDepthMask()
	rl.DisableBackfaceCulling()
	rl.DrawMesh(s.mesh, s.material, rl.MatrixIdentity())
	rl.EnableBackfaceCulling()
	rl.EnableDepthMask()
}

// Close releases the mesh and shader. The cubemap belongs to the asset library.
func (s *Skybox) Close() {
	rl.SetMaterialTexture(&s.material, rl.MapCubemap, rl.Texture2D{})
	rl.UnloadMaterial(s.material)
	rl.UnloadMesh(&s.mesh)
}
