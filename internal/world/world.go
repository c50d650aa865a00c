package world

import (
	"errors"
	"fmt"
	"log"

	"sandbox3d/internal/config"
	"sandbox3d/internal/physics"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrNoTextures is returned when blocks would be generated with nothing to draw them with.
var ErrNoTextures = errors.New("world: no block textures")

// Block is one cube of the grid.
type Block struct {
	Cell      [3]int
	Center    mgl32.Vec3
	Texture   int // index into the configured texture list
	Box       physics.AABB
	Transform Transform
}

type World struct {
	Blocks    []Block
	Obstacles *physics.ObstacleSet
	BlockSize float32

	byTexture [][]int
}

// Generate lays out a SizeX x SizeY x SizeZ grid of blocks centred on integer cells
// scaled by BlockSize. A block's texture is its z index modulo the texture count, so
// each row along x shares a material.
func Generate(cfg config.WorldConfig) (*World, error) {
	if cfg.SizeX < 0 || cfg.SizeY < 0 || cfg.SizeZ < 0 {
		return nil, fmt.Errorf("world: negative size %dx%dx%d", cfg.SizeX, cfg.SizeY, cfg.SizeZ)
	}
	if cfg.BlockSize <= 0 {
		return nil, fmt.Errorf("world: block size %v must be positive", cfg.BlockSize)
	}

	count := cfg.SizeX * cfg.SizeY * cfg.SizeZ
	if count > 0 && len(cfg.Textures) == 0 {
		return nil, ErrNoTextures
	}

	w := &World{
		Blocks:    make([]Block, 0, count),
		Obstacles: physics.NewObstacleSet(),
		BlockSize: cfg.BlockSize,
		byTexture: make([][]int, len(cfg.Textures)),
	}

	size := mgl32.Vec3{cfg.BlockSize, cfg.BlockSize, cfg.BlockSize}
	for x := 0; x < cfg.SizeX; x++ {
		for y := 0; y < cfg.SizeY; y++ {
			for z := 0; z < cfg.SizeZ; z++ {
				center := mgl32.Vec3{float32(x), float32(y), float32(z)}.Mul(cfg.BlockSize)
				box, err := physics.NewAABBFromCenter(center, size)
				if err != nil {
					return nil, fmt.Errorf("world: block %d,%d,%d: %w", x, y, z, err)
				}

				texture := z % len(cfg.Textures)
				t := NewTransform()
				t.SetPosition(center)
				t.SetScale(size)

				w.Blocks = append(w.Blocks, Block{
					Cell:      [3]int{x, y, z},
					Center:    center,
					Texture:   texture,
					Box:       box,
					Transform: t,
				})
				w.Obstacles.Add(box)
				w.byTexture[texture] = append(w.byTexture[texture], len(w.Blocks)-1)
			}
		}
	}

	log.Printf("World: generated %d blocks (%d obstacles)", len(w.Blocks), w.Obstacles.Len())
	return w, nil
}

// BlocksByTexture returns block indices grouped by texture, indexed by texture, so each
// material is bound once per frame. Textures no block uses have an empty group.
func (w *World) BlocksByTexture() [][]int {
	return w.byTexture
}
