package voxel

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// Manifest descreve uma cena no arquivo cena.yaml.
// Cada entrada de Layers é um arquivo de texto com uma fatia horizontal
// do grid, listadas de baixo para cima (Y crescente).
type Manifest struct {
	Name   string   `yaml:"name"`
	Width  int      `yaml:"width"`
	Height int      `yaml:"height"`
	Depth  int      `yaml:"depth"`
	Layers []string `yaml:"layers"`
	Light  struct {
		X float32 `yaml:"x"`
		Y float32 `yaml:"y"`
		Z float32 `yaml:"z"`
	} `yaml:"light"`
	Day bool `yaml:"day"`

	// Cores personalizadas por nome de bloco (sobrescrevem a cor base
	// usada nos placeholders de textura).
	Colors map[string][3]uint8 `yaml:"colors"`
}

// Scene reúne o grid carregado e os insumos de iluminação iniciais.
type Scene struct {
	Name     string
	Grid     *Grid
	LightPos mgl32.Vec3
	Day      bool
	Colors   map[BlockType][3]uint8
}

// LoadScene carrega uma cena de um diretório contendo cena.yaml e as camadas.
// Camadas ausentes ou malformadas viram fatias vazias das dimensões esperadas;
// a carga nunca falha por causa de uma camada ruim.
func LoadScene(dir string) (*Scene, error) {
	data, err := os.ReadFile(filepath.Join(dir, "cena.yaml"))
	if err != nil {
		return nil, fmt.Errorf("falha ao ler cena.yaml: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("falha ao parsear cena.yaml: %w", err)
	}
	if m.Width < 1 || m.Height < 1 || m.Depth < 1 {
		return nil, fmt.Errorf("dimensões inválidas no manifesto: %dx%dx%d", m.Width, m.Height, m.Depth)
	}

	g := NewGrid(m.Width, m.Height, m.Depth)

	for y := 0; y < m.Height; y++ {
		if y >= len(m.Layers) {
			// Sem arquivo declarado para este nível: fatia vazia.
			continue
		}
		raw, err := os.ReadFile(filepath.Join(dir, m.Layers[y]))
		if err != nil {
			log.Printf("[Loader] Camada %d (%s) ausente, usando fatia vazia: %v", y, m.Layers[y], err)
			continue
		}
		fillLayer(g, y, raw)
	}

	scene := &Scene{
		Name:     m.Name,
		Grid:     g,
		LightPos: mgl32.Vec3{m.Light.X, m.Light.Y, m.Light.Z},
		Day:      m.Day,
		Colors:   make(map[BlockType][3]uint8),
	}
	if scene.Name == "" {
		scene.Name = filepath.Base(dir)
	}
	if scene.LightPos.Len() == 0 {
		// Luz padrão: acima e levemente deslocada do centro.
		c := g.Center()
		scene.LightPos = mgl32.Vec3{c.X() - 3, float32(g.H) + 6, c.Z() - 3}
	}

	for name, rgb := range m.Colors {
		b, ok := BlockByName(name)
		if !ok {
			log.Printf("[Loader] Cor personalizada ignorada, bloco desconhecido: %q", name)
			continue
		}
		scene.Colors[b] = rgb
	}

	log.Printf("[Loader] Cena %q carregada: %dx%dx%d, %d camadas", scene.Name, m.Width, m.Height, m.Depth, len(m.Layers))
	return scene, nil
}

// fillLayer preenche o nível Y do grid a partir do texto de uma camada.
// Cada linha é uma fileira Z, cada caractere uma coluna X. Linhas curtas
// e linhas faltantes ficam vazias; excedentes são descartados.
func fillLayer(g *Grid, y int, raw []byte) {
	lines := strings.Split(strings.ReplaceAll(string(raw), "\r\n", "\n"), "\n")
	for z := 0; z < g.D && z < len(lines); z++ {
		line := lines[z]
		for x := 0; x < g.W && x < len(line); x++ {
			g.Set(x, y, z, BlockFromChar(line[x]))
		}
	}
}

// BuiltinScene monta o diorama de demonstração usado quando nenhuma cena
// é encontrada em disco: chão de grama sobre terra e pedra, um poço de
// lava, um lago, uma lâmpada de pedraluz e um canto com laje e escada.
func BuiltinScene() *Scene {
	const w, h, d = 16, 8, 16
	g := NewGrid(w, h, d)

	for x := 0; x < w; x++ {
		for z := 0; z < d; z++ {
			g.Set(x, 0, z, BlockStone)
			g.Set(x, 1, z, BlockDirt)
			g.Set(x, 2, z, BlockGrass)
		}
	}

	// Lago raso no canto -X/-Z.
	for x := 1; x < 6; x++ {
		for z := 1; z < 5; z++ {
			g.Set(x, 2, z, BlockWater)
		}
	}

	// Poço de lava no canto +X/-Z.
	for x := 11; x < 14; x++ {
		for z := 2; z < 4; z++ {
			g.Set(x, 2, z, BlockLava)
		}
	}

	// Pilar de madeira com lâmpada no topo.
	for y := 3; y < 6; y++ {
		g.Set(8, y, 8, BlockWood)
	}
	g.Set(8, 6, 8, BlockGlowstone)

	// Copa de folhas em volta da lâmpada.
	for dx := -1; dx <= 1; dx++ {
		for dz := -1; dz <= 1; dz++ {
			if dx == 0 && dz == 0 {
				continue
			}
			g.Set(8+dx, 5, 8+dz, BlockLeaves)
		}
	}

	// Canto de alvenaria: escada subindo para uma plataforma com laje.
	g.Set(3, 3, 12, BlockStoneStairs)
	g.Set(3, 3, 13, BlockCobblestone)
	g.Set(3, 4, 13, BlockStoneSlab)
	g.Set(4, 3, 13, BlockStoneSlab)

	// Duna de areia.
	g.Set(13, 3, 12, BlockSand)
	g.Set(12, 3, 13, BlockSand)
	g.Set(13, 3, 13, BlockSand)

	return &Scene{
		Name:     "demo",
		Grid:     g,
		LightPos: mgl32.Vec3{5, 14, 5},
		Day:      true,
		Colors:   make(map[BlockType][3]uint8),
	}
}
