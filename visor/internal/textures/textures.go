package textures

import (
	"CuboVision/shared/voxel"

	"github.com/go-gl/mathgl/mgl32"
)

// Texture é um buffer de pixels RGB próprio com amostragem nearest.
type Texture struct {
	W, H   int
	Pixels []mgl32.Vec3
}

// Sample devolve o pixel mais próximo do UV normalizado.
// Coordenadas fora de [0,1] são grampeadas; a amostragem nunca falha.
func (t *Texture) Sample(u, v float32) mgl32.Vec3 {
	if t == nil || t.W == 0 || t.H == 0 {
		return mgl32.Vec3{1, 0, 1}
	}
	x := int(u * float32(t.W))
	y := int(v * float32(t.H))
	if x < 0 {
		x = 0
	}
	if x >= t.W {
		x = t.W - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= t.H {
		y = t.H - 1
	}
	return t.Pixels[y*t.W+x]
}

// Flat cria a textura placeholder de cor chapada 1x1.
func Flat(r, g, b uint8) *Texture {
	return &Texture{
		W:      1,
		H:      1,
		Pixels: []mgl32.Vec3{{float32(r) / 255, float32(g) / 255, float32(b) / 255}},
	}
}

// Atlas liga cada BlockType à sua textura. Imutável durante a renderização.
type Atlas struct {
	textures [voxel.BlockCount]*Texture
}

// Sample implementa trace.TextureSource.
func (a *Atlas) Sample(b voxel.BlockType, u, v float32) mgl32.Vec3 {
	if int(b) >= voxel.BlockCount {
		return mgl32.Vec3{1, 0, 1}
	}
	return a.textures[b].Sample(u, v)
}

// Set associa uma textura a um bloco (usado na carga e em testes).
func (a *Atlas) Set(b voxel.BlockType, t *Texture) {
	if int(b) < voxel.BlockCount {
		a.textures[b] = t
	}
}

// PlaceholderAtlas monta um atlas só de cores chapadas a partir da tabela
// de cores base, com sobrescritas opcionais por bloco.
func PlaceholderAtlas(overrides map[voxel.BlockType][3]uint8) *Atlas {
	a := &Atlas{}
	for i := 0; i < voxel.BlockCount; i++ {
		b := voxel.BlockType(i)
		r, g, bl := b.FallbackColor()
		if c, ok := overrides[b]; ok {
			r, g, bl = c[0], c[1], c[2]
		}
		a.textures[i] = Flat(r, g, bl)
	}
	return a
}
