package voxel

// BlockType identifica o material/forma de um voxel do diorama.
type BlockType uint8

const (
	BlockEmpty BlockType = iota
	BlockGrass
	BlockDirt
	BlockStone
	BlockCobblestone
	BlockWood
	BlockLeaves
	BlockSand
	BlockWater
	BlockLava
	BlockGlowstone
	BlockStoneSlab
	BlockStoneStairs

	// BlockCount é o total de variantes (inclui o bloco vazio).
	BlockCount = iota
)

// Shape descreve o sub-volume ocupado por um bloco dentro do voxel unitário.
type Shape uint8

const (
	ShapeCube Shape = iota
	ShapeSlab
	ShapeStairs
)

// fallbackColors é a cor base de cada bloco, usada quando não há textura em disco.
var fallbackColors = [BlockCount][3]uint8{
	BlockEmpty:       {0, 0, 0},
	BlockGrass:       {92, 160, 70},
	BlockDirt:        {134, 96, 67},
	BlockStone:       {128, 128, 128},
	BlockCobblestone: {110, 110, 115},
	BlockWood:        {156, 120, 78},
	BlockLeaves:      {58, 122, 48},
	BlockSand:        {219, 207, 163},
	BlockWater:       {52, 92, 180},
	BlockLava:        {226, 108, 28},
	BlockGlowstone:   {255, 214, 128},
	BlockStoneSlab:   {140, 140, 140},
	BlockStoneStairs: {140, 140, 140},
}

// emissive marca os blocos que emitem luz própria.
var emissive = [BlockCount]bool{
	BlockLava:      true,
	BlockGlowstone: true,
}

var blockNames = [BlockCount]string{
	BlockEmpty:       "vazio",
	BlockGrass:       "grama",
	BlockDirt:        "terra",
	BlockStone:       "pedra",
	BlockCobblestone: "pedregulho",
	BlockWood:        "madeira",
	BlockLeaves:      "folhas",
	BlockSand:        "areia",
	BlockWater:       "agua",
	BlockLava:        "lava",
	BlockGlowstone:   "pedraluz",
	BlockStoneSlab:   "laje",
	BlockStoneStairs: "escada",
}

// Shape retorna a forma geométrica do bloco.
func (b BlockType) Shape() Shape {
	switch b {
	case BlockStoneSlab:
		return ShapeSlab
	case BlockStoneStairs:
		return ShapeStairs
	default:
		return ShapeCube
	}
}

// FallbackColor retorna a cor base RGB do bloco.
func (b BlockType) FallbackColor() (r, g, bl uint8) {
	if int(b) >= BlockCount {
		return 0, 0, 0
	}
	c := fallbackColors[b]
	return c[0], c[1], c[2]
}

// TextureName retorna o nome do arquivo de textura do bloco.
// Laje e escada compartilham a textura da pedra.
func (b BlockType) TextureName() string {
	switch b {
	case BlockEmpty:
		return ""
	case BlockStoneSlab, BlockStoneStairs:
		return "pedra"
	default:
		return b.String()
	}
}

// String retorna o nome legível do bloco.
func (b BlockType) String() string {
	if int(b) >= BlockCount {
		return "invalido"
	}
	return blockNames[b]
}

// IsSolid indica se o bloco participa de colisão (tudo menos o vazio).
func IsSolid(b BlockType) bool {
	return b != BlockEmpty && int(b) < BlockCount
}

// EmitsLight indica se o bloco emite luz própria.
func EmitsLight(b BlockType) bool {
	return int(b) < BlockCount && emissive[b]
}

// BlockFromChar converte o caractere de uma camada de cena em BlockType.
// Caracteres desconhecidos viram bloco vazio.
func BlockFromChar(c byte) BlockType {
	switch c {
	case 'g':
		return BlockGrass
	case 'd':
		return BlockDirt
	case 's':
		return BlockStone
	case 'c':
		return BlockCobblestone
	case 'w':
		return BlockWood
	case 'l':
		return BlockLeaves
	case 'a':
		return BlockSand
	case 'W':
		return BlockWater
	case 'L':
		return BlockLava
	case 'G':
		return BlockGlowstone
	case 'S':
		return BlockStoneSlab
	case 'E':
		return BlockStoneStairs
	default:
		return BlockEmpty
	}
}

// BlockByName devolve o BlockType pelo nome usado nos manifestos de cena.
func BlockByName(name string) (BlockType, bool) {
	for i := 0; i < BlockCount; i++ {
		if blockNames[i] == name {
			return BlockType(i), true
		}
	}
	return BlockEmpty, false
}
