package textures

import (
	"fmt"
	"log"
	"path/filepath"

	"CuboVision/shared/voxel"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// LoadAtlas carrega uma textura PNG por bloco a partir de dir, gerando um
// placeholder de cor chapada para cada asset ausente. Blocos que compartilham
// o mesmo nome de textura (laje/escada -> pedra) compartilham o mesmo buffer.
func LoadAtlas(dir string, overrides map[voxel.BlockType][3]uint8) *Atlas {
	a := PlaceholderAtlas(overrides)
	cache := make(map[string]*Texture)

	for i := 0; i < voxel.BlockCount; i++ {
		b := voxel.BlockType(i)
		name := b.TextureName()
		if name == "" {
			continue
		}
		if tex, ok := cache[name]; ok {
			a.Set(b, tex)
			continue
		}

		path := filepath.Join(dir, fmt.Sprintf("%s.png", name))
		tex := loadSingle(path)
		if tex == nil {
			// Mantém o placeholder já instalado.
			log.Printf("[Textures] %s ausente, usando cor chapada para %q", path, b)
			continue
		}
		cache[name] = tex
		a.Set(b, tex)
		log.Printf("[Textures] Textura carregada: %s (%dx%d)", path, tex.W, tex.H)
	}

	return a
}

// loadSingle lê um PNG para um buffer RGB na CPU via raylib.
func loadSingle(path string) *Texture {
	img := rl.LoadImage(path)
	if img == nil || img.Width <= 0 || img.Height <= 0 {
		return nil
	}
	defer rl.UnloadImage(img)

	cols := rl.LoadImageColors(img)
	if cols == nil {
		return nil
	}

	w := int(img.Width)
	h := int(img.Height)
	tex := &Texture{W: w, H: h, Pixels: make([]mgl32.Vec3, w*h)}
	for i, c := range cols {
		if i >= len(tex.Pixels) {
			break
		}
		tex.Pixels[i] = mgl32.Vec3{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}
	}
	return tex
}
