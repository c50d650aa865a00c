package render

import (
	"fmt"

	"sandbox3d/internal/camera"
	"sandbox3d/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Stats counts what the last Draw did.
type Stats struct {
	Drawn  int
	Culled int
}

// Renderer owns the GPU state for the world pass: one shared cube mesh, a material per
// block texture, and the skybox. It draws with the matrices it is handed rather than
// with a raylib camera.
type Renderer struct {
	cube      rl.Mesh
	materials []rl.Material
	skybox    *Skybox
	crosshair Crosshair

	Culling bool
	Stats   Stats
}

// NewRenderer must be called after the window exists. Textures and cubemap stay owned by
// the caller.
func NewRenderer(textures []rl.Texture2D, cubemap rl.Texture2D) (*Renderer, error) {
	skybox, err := NewSkybox(cubemap)
	if err != nil {
		return nil, fmt.Errorf("skybox: %w", err)
	}

	r := &Renderer{
		cube:      rl.GenMeshCube(1, 1, 1),
		materials: make([]rl.Material, len(textures)),
		skybox:    skybox,
		crosshair: DefaultCrosshair(),
		Culling:   true,
	}
	for i, texture := range textures {
		r.materials[i] = rl.LoadMaterialDefault()
		rl.SetMaterialTexture(&r.materials[i], rl.MapAlbedo, texture)
	}
	return r, nil
}

// Draw renders one frame of the world: skybox, then blocks, then the crosshair.
// It must run between BeginDrawing and EndDrawing.
func (r *Renderer) Draw(w *world.World, cam *camera.Camera, wireframe bool) {
	eye := cam.Position()
	rl.BeginMode3D(rl.Camera3D{
		Position:   toRaylibVector(eye),
		Target:     toRaylibVector(eye.Add(cam.Orientation())),
		Up:         toRaylibVector(cam.Up()),
		Fovy:       cam.FOV(),
		Projection: rl.CameraPerspective,
	})
	// Replace raylib's camera matrices with ours so culling and drawing agree exactly.
	rl.SetMatrixProjection(toRaylibMatrix(cam.Projection()))
	rl.SetMatrixModelview(toRaylibMatrix(cam.View()))

	r.skybox.Draw()

	if wireframe {
		rl.EnableWireMode()
	}
	r.drawBlocks(w, cam)
	if wireframe {
		rl.DisableWireMode()
	}

	rl.EndMode3D()

	r.crosshair.Draw(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
}

func (r *Renderer) drawBlocks(w *world.World, cam *camera.Camera) {
	r.Stats = Stats{}
	frustum := world.ExtractFrustum(cam.Projection().Mul4(cam.View()))

	for texture, group := range w.BlocksByTexture() {
		if texture >= len(r.materials) {
			break
		}
		material := r.materials[texture]
		for _, i := range group {
			b := &w.Blocks[i]
			if r.Culling && !frustum.ContainsAABB(b.Box) {
				r.Stats.Culled++
				continue
			}
			rl.DrawMesh(r.cube, material, toRaylibMatrix(b.Transform.Matrix()))
			r.Stats.Drawn++
		}
	}
}

// Close releases the mesh, materials and skybox. Textures are left to their owner.
func (r *Renderer) Close() {
	for i := range r.materials {
		rl.SetMaterialTexture(&r.materials[i], rl.MapAlbedo, rl.Texture2D{})
		rl.UnloadMaterial(r.materials[i])
	}
	r.materials = nil
	rl.UnloadMesh(&r.cube)
	r.skybox.Close()
}
