package trace

import (
	"CuboVision/shared/util"
	"CuboVision/shared/voxel"

	"github.com/go-gl/mathgl/mgl32"
)

// computeUV resolve as coordenadas de textura em [0,1]² para um ponto de
// acerto. A regra de mapeamento depende da face (eixo dominante da normal)
// e da forma do bloco; as convenções de espelhamento por face garantem que
// faces adjacentes ladrilhem sem costuras invertidas.
// Função pura: o chamador garante que block é o bloco armazenado no voxel.
func computeUV(p, normal mgl32.Vec3, idx [3]int, block voxel.BlockType) mgl32.Vec2 {
	lx := p.X() - float32(idx[0])
	ly := p.Y() - float32(idx[1])
	lz := p.Z() - float32(idx[2])

	axis := 0
	for a := 1; a < 3; a++ {
		if util.Abs(normal[a]) > util.Abs(normal[axis]) {
			axis = a
		}
	}
	positive := normal[axis] > 0

	var u, v float32
	switch block.Shape() {
	case voxel.ShapeSlab:
		u, v = slabUV(axis, positive, lx, ly, lz)
	case voxel.ShapeStairs:
		u, v = stairsUV(axis, positive, lx, ly, lz)
	default:
		u, v = cubeUV(axis, positive, lx, ly, lz)
	}

	return mgl32.Vec2{util.Clamp01(u), util.Clamp01(v)}
}

// cubeUV mapeia as seis faces do cubo cheio.
func cubeUV(axis int, positive bool, lx, ly, lz float32) (u, v float32) {
	switch axis {
	case 0:
		if positive { // face +X
			return 1 - lz, 1 - ly
		}
		return lz, 1 - ly // face -X
	case 1:
		if positive { // topo
			return lx, 1 - lz
		}
		return lx, lz // base
	default:
		if positive { // face +Z
			return 1 - lx, 1 - ly
		}
		return lx, 1 - ly // face -Z
	}
}

// slabUV mapeia a laje: topo e base como um bloco cheio; faces laterais
// reescalam local_y de [0, 0.5] para [0, 1] já que só a metade inferior existe.
func slabUV(axis int, positive bool, lx, ly, lz float32) (u, v float32) {
	if axis == 1 {
		return cubeUV(axis, positive, lx, ly, lz)
	}
	return cubeUV(axis, positive, lx, ly*2, lz)
}

// stairsUV mapeia a escada. O topo divide-se em duas regiões (piso da base
// e piso do degrau elevado), cada uma mapeada independentemente para [0,1];
// as laterais dividem-se entre o degrau elevado (local_z >= 0.5 e
// local_y >= 0.5) e a base, cada ramo com seu próprio mapeamento afim.
func stairsUV(axis int, positive bool, lx, ly, lz float32) (u, v float32) {
	raised := lz >= 0.5 && ly >= 0.5

	switch axis {
	case 1:
		if !positive {
			// Base inteira.
			return lx, lz
		}
		if lz < 0.5 {
			// Piso da base (frente).
			return lx, 1 - lz*2
		}
		// Piso do degrau elevado (fundo).
		return lx, 1 - (lz-0.5)*2

	case 0:
		if raised {
			// Quadrante elevado da lateral.
			uu := (lz - 0.5) * 2
			vv := (ly - 0.5) * 2
			if positive {
				return 1 - uu, 1 - vv
			}
			return uu, 1 - vv
		}
		// Metade inferior da lateral.
		if positive {
			return 1 - lz, 1 - ly*2
		}
		return lz, 1 - ly*2

	default:
		if raised {
			vv := (ly - 0.5) * 2
			if positive {
				return 1 - lx, 1 - vv
			}
			return lx, 1 - vv
		}
		if positive {
			return 1 - lx, 1 - ly*2
		}
		return lx, 1 - ly*2
	}
}
