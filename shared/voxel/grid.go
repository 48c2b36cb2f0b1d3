package voxel

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Grid é o volume denso de voxels do diorama.
// O layout linear segue index = y*(W*D) + z*W + x.
// Depois da carga inicial o grid é somente-leitura: os workers de
// renderização o consultam concorrentemente sem nenhum lock.
type Grid struct {
	W, H, D int
	blocks  []BlockType
}

// NewGrid cria um grid vazio com as dimensões dadas.
func NewGrid(w, h, d int) *Grid {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if d < 1 {
		d = 1
	}
	return &Grid{
		W:      w,
		H:      h,
		D:      d,
		blocks: make([]BlockType, w*h*d),
	}
}

// NewGridFromBlocks reconstrói um grid a partir dos blocos serializados.
// Retorna nil se o tamanho do slice não bater com as dimensões.
func NewGridFromBlocks(w, h, d int, blocks []BlockType) *Grid {
	if w < 1 || h < 1 || d < 1 || len(blocks) != w*h*d {
		return nil
	}
	g := NewGrid(w, h, d)
	copy(g.blocks, blocks)
	return g
}

// InBounds indica se a coordenada está dentro do grid.
func (g *Grid) InBounds(x, y, z int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H && z >= 0 && z < g.D
}

// GetBlock retorna o bloco na coordenada dada.
// Fora do grid o resultado é sempre o bloco vazio (consulta total, nunca falha).
func (g *Grid) GetBlock(x, y, z int) BlockType {
	if !g.InBounds(x, y, z) {
		return BlockEmpty
	}
	return g.blocks[y*(g.W*g.D)+z*g.W+x]
}

// Set grava um bloco. Usado apenas durante a carga da cena; coordenadas
// fora do grid são ignoradas.
func (g *Grid) Set(x, y, z int, b BlockType) {
	if !g.InBounds(x, y, z) {
		return
	}
	g.blocks[y*(g.W*g.D)+z*g.W+x] = b
}

// Center retorna o centro geométrico do grid em coordenadas de mundo.
func (g *Grid) Center() mgl32.Vec3 {
	return mgl32.Vec3{float32(g.W) * 0.5, float32(g.H) * 0.5, float32(g.D) * 0.5}
}

// Diagonal retorna o comprimento da diagonal espacial do grid.
func (g *Grid) Diagonal() float32 {
	w := float64(g.W)
	h := float64(g.H)
	d := float64(g.D)
	return float32(math.Sqrt(w*w + h*h + d*d))
}

// Blocks expõe o buffer linear para serialização (GOB/SQLite).
func (g *Grid) Blocks() []BlockType {
	return g.blocks
}
