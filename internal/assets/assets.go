package assets

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io/fs"
	"log"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// CubemapFaces is the number of images a skybox needs, in +X,-X,+Y,-Y,+Z,-Z order.
const CubemapFaces = 6

// ErrUpload is returned when the GPU rejects a texture.
var ErrUpload = errors.New("assets: texture upload failed")

// SkyPlaceholder fills skybox faces whose image file is missing.
var SkyPlaceholder = color.RGBA{R: 110, G: 150, B: 200, A: 255}

// Library loads textures once and owns them until Close.
type Library struct {
	textures map[string]rl.Texture2D
	cubemaps []rl.Texture2D
}

func NewLibrary() *Library {
	return &Library{
		textures: make(map[string]rl.Texture2D),
	}
}

// Texture loads a block texture resampled to size x size pixels.
// Repeated calls with the same path return the cached texture.
func (l *Library) Texture(path string, size int) (rl.Texture2D, error) {
	if texture, exists := l.textures[path]; exists {
		return texture, nil
	}

	var rlImg *rl.Image
	img, err := DecodeSquare(path, size)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Printf("Assets: %s not found, using checker placeholder", path)
		checks := max(size/2, 1)
		rlImg = rl.GenImageChecked(size, size, checks, checks, rl.Magenta, rl.Black)
	case err != nil:
		return rl.Texture2D{}, err
	default:
		rlImg = rl.NewImageFromImage(img)
	}
	defer rl.UnloadImage(rlImg)

	texture := rl.LoadTextureFromImage(rlImg)
	if texture.ID == 0 {
		return rl.Texture2D{}, fmt.Errorf("%w: %s", ErrUpload, path)
	}
	rl.SetTextureFilter(texture, rl.FilterPoint)
	rl.SetTextureWrap(texture, rl.WrapRepeat)

	l.textures[path] = texture
	return texture, nil
}

// Textures loads every path in order.
func (l *Library) Textures(paths []string, size int) ([]rl.Texture2D, error) {
	out := make([]rl.Texture2D, 0, len(paths))
	for _, path := range paths {
		texture, err := l.Texture(path, size)
		if err != nil {
			return nil, err
		}
		out = append(out, texture)
	}
	log.Printf("Assets: loaded %d textures (%dpx)", len(out), size)
	return out, nil
}

// Cubemap loads six face images (right, left, top, bottom, front, back) into a cubemap.
func (l *Library) Cubemap(faces []string, faceSize int) (rl.Texture2D, error) {
	if len(faces) != CubemapFaces {
		return rl.Texture2D{}, fmt.Errorf("assets: cubemap needs %d faces, got %d", CubemapFaces, len(faces))
	}

	images := make([]image.Image, len(faces))
	for i, path := range faces {
		img, err := OpenFace(path, faceSize)
		if err != nil {
			return rl.Texture2D{}, err
		}
		images[i] = img
	}

	strip, err := ComposeStrip(images, faceSize)
	if err != nil {
		return rl.Texture2D{}, err
	}

	rlImg := rl.NewImageFromImage(strip)
	defer rl.UnloadImage(rlImg)

	cubemap := rl.LoadTextureCubemap(rlImg, rl.CubemapLayoutLineHorizontal)
	if cubemap.ID == 0 {
		return rl.Texture2D{}, fmt.Errorf("%w: cubemap", ErrUpload)
	}
	rl.SetTextureFilter(cubemap, rl.FilterBilinear)

	l.cubemaps = append(l.cubemaps, cubemap)
	log.Printf("Assets: loaded skybox cubemap (%dpx faces)", faceSize)
	return cubemap, nil
}

// Close unloads everything the library loaded. The library can be reused afterwards.
func (l *Library) Close() {
	for _, texture := range l.textures {
		rl.UnloadTexture(texture)
	}
	for _, cubemap := range l.cubemaps {
		rl.UnloadTexture(cubemap)
	}
	l.textures = make(map[string]rl.Texture2D)
	l.cubemaps = nil
}

// DecodeSquare reads an image file and resamples it to size x size with nearest-neighbour
// filtering so pixel-art textures stay crisp.
func DecodeSquare(path string, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("assets: texture size %d must be positive", size)
	}
	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: open texture %s: %w", path, err)
	}
	return transform.Resize(img, size, size, transform.NearestNeighbor), nil
}

// OpenFace reads one skybox face. A missing file yields a faceSize square of
// SkyPlaceholder so the sandbox still starts without its asset tree.
func OpenFace(path string, faceSize int) (image.Image, error) {
	img, err := imgio.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("Assets: %s not found, using flat sky", path)
		face := image.NewRGBA(image.Rect(0, 0, max(faceSize, 1), max(faceSize, 1)))
		draw.Draw(face, face.Bounds(), image.NewUniform(SkyPlaceholder), image.Point{}, draw.Src)
		return face, nil
	}
	if err != nil {
		return nil, fmt.Errorf("assets: open cubemap face %s: %w", path, err)
	}
	return img, nil
}

// ComposeStrip resamples each face to faceSize and lays them side by side, left to right,
// as the horizontal-line cubemap layout expects.
func ComposeStrip(faces []image.Image, faceSize int) (*image.RGBA, error) {
	if len(faces) != CubemapFaces {
		return nil, fmt.Errorf("assets: cubemap needs %d faces, got %d", CubemapFaces, len(faces))
	}
	if faceSize <= 0 {
		return nil, fmt.Errorf("assets: face size %d must be positive", faceSize)
	}

	strip := image.NewRGBA(image.Rect(0, 0, faceSize*len(faces), faceSize))
	for i, face := range faces {
		resized := transform.Resize(face, faceSize, faceSize, transform.Linear)
		dst := image.Rect(i*faceSize, 0, (i+1)*faceSize, faceSize)
		draw.Draw(strip, dst, resized, image.Point{}, draw.Src)
	}
	return strip, nil
}
