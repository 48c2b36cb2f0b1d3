package voxel

import "testing"

func TestGridIndexRoundTrip(t *testing.T) {
	g := NewGrid(4, 3, 5)

	// Preenche cada voxel com um valor derivado da coordenada para
	// verificar que o layout linear não mistura posições.
	i := 0
	for y := 0; y < 3; y++ {
		for z := 0; z < 5; z++ {
			for x := 0; x < 4; x++ {
				g.Set(x, y, z, BlockType(1+i%(BlockCount-1)))
				i++
			}
		}
	}

	i = 0
	for y := 0; y < 3; y++ {
		for z := 0; z < 5; z++ {
			for x := 0; x < 4; x++ {
				want := BlockType(1 + i%(BlockCount-1))
				if got := g.GetBlock(x, y, z); got != want {
					t.Fatalf("GetBlock(%d,%d,%d) = %v, want %v", x, y, z, got, want)
				}
				i++
			}
		}
	}
}

func TestGridOutOfRangeIsEmpty(t *testing.T) {
	g := NewGrid(2, 2, 2)
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			for z := 0; z < 2; z++ {
				g.Set(x, y, z, BlockStone)
			}
		}
	}

	tests := [][3]int{
		{-1, 0, 0},
		{2, 0, 0},
		{0, -1, 0},
		{0, 2, 0},
		{0, 0, -1},
		{0, 0, 2},
		{-100, -100, -100},
		{100, 100, 100},
	}

	for _, c := range tests {
		if got := g.GetBlock(c[0], c[1], c[2]); got != BlockEmpty {
			t.Errorf("GetBlock(%d,%d,%d) = %v, want vazio", c[0], c[1], c[2], got)
		}
	}
}

func TestNewGridFromBlocks(t *testing.T) {
	blocks := make([]BlockType, 2*2*2)
	blocks[0] = BlockLava
	g := NewGridFromBlocks(2, 2, 2, blocks)
	if g == nil {
		t.Fatal("NewGridFromBlocks retornou nil para entrada válida")
	}
	if got := g.GetBlock(0, 0, 0); got != BlockLava {
		t.Errorf("GetBlock(0,0,0) = %v, want lava", got)
	}

	if g := NewGridFromBlocks(2, 2, 2, make([]BlockType, 7)); g != nil {
		t.Error("NewGridFromBlocks aceitou slice de tamanho errado")
	}
}

func TestSolidAndEmissive(t *testing.T) {
	if IsSolid(BlockEmpty) {
		t.Error("bloco vazio não deveria ser sólido")
	}
	for b := BlockType(1); int(b) < BlockCount; b++ {
		if !IsSolid(b) {
			t.Errorf("bloco %v deveria ser sólido", b)
		}
	}

	for b := BlockType(0); int(b) < BlockCount; b++ {
		want := b == BlockLava || b == BlockGlowstone
		if got := EmitsLight(b); got != want {
			t.Errorf("EmitsLight(%v) = %v, want %v", b, got, want)
		}
	}
}

func TestBlockFromChar(t *testing.T) {
	tests := []struct {
		c    byte
		want BlockType
	}{
		{'g', BlockGrass},
		{'s', BlockStone},
		{'W', BlockWater},
		{'L', BlockLava},
		{'G', BlockGlowstone},
		{'S', BlockStoneSlab},
		{'E', BlockStoneStairs},
		{'.', BlockEmpty},
		{'?', BlockEmpty},
	}

	for _, tt := range tests {
		if got := BlockFromChar(tt.c); got != tt.want {
			t.Errorf("BlockFromChar(%q) = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestBlockByName(t *testing.T) {
	b, ok := BlockByName("pedraluz")
	if !ok || b != BlockGlowstone {
		t.Errorf("BlockByName(pedraluz) = %v, %v", b, ok)
	}
	if _, ok := BlockByName("inexistente"); ok {
		t.Error("BlockByName aceitou nome desconhecido")
	}
}

func TestSharedTextureName(t *testing.T) {
	// Laje e escada compartilham a textura da pedra.
	if BlockStoneSlab.TextureName() != BlockStone.TextureName() {
		t.Error("laje deveria compartilhar a textura da pedra")
	}
	if BlockStoneStairs.TextureName() != BlockStone.TextureName() {
		t.Error("escada deveria compartilhar a textura da pedra")
	}
	if BlockEmpty.TextureName() != "" {
		t.Error("bloco vazio não deveria ter textura")
	}
}
