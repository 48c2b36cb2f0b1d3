package textures

import (
	"testing"

	"CuboVision/shared/voxel"

	"github.com/go-gl/mathgl/mgl32"
)

func TestFlat(t *testing.T) {
	tex := Flat(255, 0, 128)
	got := tex.Sample(0.5, 0.5)
	want := mgl32.Vec3{1, 0, 128.0 / 255}
	if got != want {
		t.Errorf("Sample = %v, want %v", got, want)
	}

	// Textura 1x1 responde a mesma cor para qualquer UV.
	if tex.Sample(0, 0) != tex.Sample(1, 1) {
		t.Error("textura chapada deveria ignorar o UV")
	}
}

func TestSampleQuadrants(t *testing.T) {
	tex := &Texture{
		W: 2,
		H: 2,
		Pixels: []mgl32.Vec3{
			{1, 0, 0}, {0, 1, 0},
			{0, 0, 1}, {1, 1, 1},
		},
	}

	tests := []struct {
		u, v float32
		want mgl32.Vec3
	}{
		{0.25, 0.25, mgl32.Vec3{1, 0, 0}},
		{0.75, 0.25, mgl32.Vec3{0, 1, 0}},
		{0.25, 0.75, mgl32.Vec3{0, 0, 1}},
		{0.75, 0.75, mgl32.Vec3{1, 1, 1}},
	}
	for _, tt := range tests {
		if got := tex.Sample(tt.u, tt.v); got != tt.want {
			t.Errorf("Sample(%v, %v) = %v, want %v", tt.u, tt.v, got, tt.want)
		}
	}
}

func TestSampleClamps(t *testing.T) {
	tex := &Texture{
		W: 2,
		H: 1,
		Pixels: []mgl32.Vec3{
			{1, 0, 0}, {0, 1, 0},
		},
	}

	if got := tex.Sample(-3, 0); got != (mgl32.Vec3{1, 0, 0}) {
		t.Errorf("UV negativo: %v, want pixel 0", got)
	}
	if got := tex.Sample(5, 2); got != (mgl32.Vec3{0, 1, 0}) {
		t.Errorf("UV acima de 1: %v, want último pixel", got)
	}
	if got := tex.Sample(1, 0); got != (mgl32.Vec3{0, 1, 0}) {
		t.Errorf("UV exatamente 1: %v, want último pixel", got)
	}
}

func TestSampleNilTexture(t *testing.T) {
	var tex *Texture
	if got := tex.Sample(0.5, 0.5); got != (mgl32.Vec3{1, 0, 1}) {
		t.Errorf("textura nil deveria devolver magenta, got %v", got)
	}
}

func TestPlaceholderAtlas(t *testing.T) {
	a := PlaceholderAtlas(nil)

	r, g, b := voxel.BlockGrass.FallbackColor()
	want := mgl32.Vec3{float32(r) / 255, float32(g) / 255, float32(b) / 255}
	if got := a.Sample(voxel.BlockGrass, 0.5, 0.5); got != want {
		t.Errorf("grama = %v, want cor base %v", got, want)
	}

	// Cada bloco tem textura; nada devolve magenta.
	for i := 1; i < voxel.BlockCount; i++ {
		if got := a.Sample(voxel.BlockType(i), 0.5, 0.5); got == (mgl32.Vec3{1, 0, 1}) {
			t.Errorf("bloco %v sem textura no atlas placeholder", voxel.BlockType(i))
		}
	}
}

func TestPlaceholderAtlasOverrides(t *testing.T) {
	a := PlaceholderAtlas(map[voxel.BlockType][3]uint8{
		voxel.BlockGlowstone: {255, 0, 0},
	})

	if got := a.Sample(voxel.BlockGlowstone, 0, 0); got != (mgl32.Vec3{1, 0, 0}) {
		t.Errorf("sobrescrita ignorada: %v", got)
	}

	// Blocos sem sobrescrita continuam na cor base.
	r, g, b := voxel.BlockStone.FallbackColor()
	want := mgl32.Vec3{float32(r) / 255, float32(g) / 255, float32(b) / 255}
	if got := a.Sample(voxel.BlockStone, 0, 0); got != want {
		t.Errorf("pedra = %v, want %v", got, want)
	}
}

func TestAtlasSet(t *testing.T) {
	a := &Atlas{}
	a.Set(voxel.BlockStone, Flat(10, 20, 30))

	want := mgl32.Vec3{10.0 / 255, 20.0 / 255, 30.0 / 255}
	if got := a.Sample(voxel.BlockStone, 0.5, 0.5); got != want {
		t.Errorf("Sample = %v, want %v", got, want)
	}

	// Bloco sem textura cai no magenta do nil.
	if got := a.Sample(voxel.BlockWater, 0.5, 0.5); got != (mgl32.Vec3{1, 0, 1}) {
		t.Errorf("bloco sem textura = %v, want magenta", got)
	}
}
