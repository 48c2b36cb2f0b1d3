package voxel

import "github.com/go-gl/mathgl/mgl32"

// ShapeTolerance absorve o desvio de ponto flutuante nas bordas do voxel.
// Os dois algoritmos de travessia usam esta MESMA tolerância; valores
// diferentes criam costuras visíveis entre faces vizinhas.
const ShapeTolerance = 1e-3

// Occupies decide se um ponto no referencial local [0,1]³ do voxel está
// dentro do sub-volume ocupado pela forma do bloco.
// É a única fonte de verdade de "este ponto é sólido".
func Occupies(b BlockType, local mgl32.Vec3) bool {
	if !IsSolid(b) {
		return false
	}

	const eps = float32(ShapeTolerance)
	x, y, z := local.X(), local.Y(), local.Z()

	if x < -eps || x > 1+eps || y < -eps || y > 1+eps || z < -eps || z > 1+eps {
		return false
	}

	switch b.Shape() {
	case ShapeSlab:
		// Laje: só a metade inferior existe.
		return y <= 0.5+eps
	case ShapeStairs:
		// Escada: base inferior inteira, degrau elevado no lado +Z.
		return y <= 0.5+eps || z >= 0.5-eps
	default:
		return true
	}
}
