package world

import (
	"errors"
	"testing"

	"sandbox3d/internal/config"

	"github.com/go-gl/mathgl/mgl32"
)

func TestGenerateDefault(t *testing.T) {
	w, err := Generate(config.Default().World)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(w.Blocks) != 256 {
		t.Errorf("Expected 256 blocks, got %d", len(w.Blocks))
	}
	if w.Obstacles.Len() != 256 {
		t.Errorf("Expected 256 obstacles, got %d", w.Obstacles.Len())
	}

	groups := w.BlocksByTexture()
	if len(groups) != 16 {
		t.Errorf("Expected 16 texture groups, got %d", len(groups))
	}
	for tex, blocks := range groups {
		if len(blocks) != 16 {
			t.Errorf("texture %d has %d blocks, want 16", tex, len(blocks))
		}
		for _, i := range blocks {
			if w.Blocks[i].Texture != tex {
				t.Errorf("block %d has texture %d, grouped under %d", i, w.Blocks[i].Texture, tex)
			}
		}
	}
}

func TestBlocksByTextureKeepsUnusedTextures(t *testing.T) {
	cfg := config.WorldConfig{SizeX: 2, SizeY: 1, SizeZ: 2, BlockSize: 1, Textures: []string{"a", "b", "c"}}
	w, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	groups := w.BlocksByTexture()
	if len(groups) != 3 {
		t.Fatalf("Expected 3 groups, got %d", len(groups))
	}
	if len(groups[0]) != 2 || len(groups[1]) != 2 || len(groups[2]) != 0 {
		t.Errorf("group sizes = %d,%d,%d, want 2,2,0", len(groups[0]), len(groups[1]), len(groups[2]))
	}
}

func TestGenerateBlockLayout(t *testing.T) {
	cfg := config.WorldConfig{SizeX: 4, SizeY: 1, SizeZ: 6, BlockSize: 1, Textures: []string{"a", "b", "c", "d"}}
	w, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	var found *Block
	for i := range w.Blocks {
		if w.Blocks[i].Cell == [3]int{3, 0, 5} {
			found = &w.Blocks[i]
		}
	}
	if found == nil {
		t.Fatal("block 3,0,5 missing")
	}

	if found.Texture != 1 {
		t.Errorf("texture = %d, want 5 mod 4 = 1", found.Texture)
	}
	if found.Center != (mgl32.Vec3{3, 0, 5}) {
		t.Errorf("center = %v", found.Center)
	}
	if found.Box.Min != (mgl32.Vec3{2.5, -0.5, 4.5}) || found.Box.Max != (mgl32.Vec3{3.5, 0.5, 5.5}) {
		t.Errorf("box = %v", found.Box)
	}

	// The rendered unit cube must land exactly on the collision box.
	m := found.Transform.Matrix()
	corner := m.Mul4x1(mgl32.Vec4{-0.5, -0.5, -0.5, 1}).Vec3()
	if !near(corner, found.Box.Min) {
		t.Errorf("mesh corner %v does not match box min %v", corner, found.Box.Min)
	}
}

func TestGenerateScaledBlocks(t *testing.T) {
	cfg := config.WorldConfig{SizeX: 2, SizeY: 1, SizeZ: 1, BlockSize: 2, Textures: []string{"a"}}
	w, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if w.Blocks[0].Box.Min != (mgl32.Vec3{-1, -1, -1}) || w.Blocks[1].Box.Max != (mgl32.Vec3{3, 1, 1}) {
		t.Errorf("boxes = %v, %v", w.Blocks[0].Box, w.Blocks[1].Box)
	}
	if w.Blocks[0].Box.Intersects(w.Blocks[1].Box) {
		t.Error("neighbouring blocks only touch")
	}
}

func TestGenerateErrors(t *testing.T) {
	_, err := Generate(config.WorldConfig{SizeX: 1, SizeY: 1, SizeZ: 1, BlockSize: 1})
	if !errors.Is(err, ErrNoTextures) {
		t.Errorf("Expected ErrNoTextures, got %v", err)
	}

	if _, err := Generate(config.WorldConfig{SizeX: -1, BlockSize: 1}); err == nil {
		t.Error("negative size should fail")
	}
	if _, err := Generate(config.WorldConfig{SizeX: 1, SizeY: 1, SizeZ: 1, Textures: []string{"a"}}); err == nil {
		t.Error("zero block size should fail")
	}
}

func TestGenerateEmpty(t *testing.T) {
	w, err := Generate(config.WorldConfig{BlockSize: 1})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(w.Blocks) != 0 || w.Obstacles.Len() != 0 {
		t.Error("empty world should have no blocks")
	}
	if len(w.BlocksByTexture()) != 0 {
		t.Error("empty world has no texture groups")
	}
}
