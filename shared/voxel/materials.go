package voxel

import "github.com/go-gl/mathgl/mgl32"

// Material descreve as propriedades de sombreamento de um BlockType.
// É função pura do tipo de bloco; nenhuma instância é armazenada.
type Material struct {
	Albedo       mgl32.Vec3 // cor base multiplicada pela textura
	Metallic     float32    // 0 = dielétrico, 1 = metal
	Roughness    float32    // 0 = espelho, 1 = fosco
	Reflectance  float32    // peso do rebote especular recursivo
	Emissive     float32    // brilho próprio
	SpecularTint mgl32.Vec3 // cor do realce especular em metais
}

// MaterialFor retorna as propriedades constantes do bloco.
func MaterialFor(b BlockType) Material {
	switch b {
	case BlockGrass:
		return Material{
			Albedo:       mgl32.Vec3{0.55, 0.85, 0.45},
			Roughness:    0.92,
			SpecularTint: mgl32.Vec3{1, 1, 1},
		}
	case BlockDirt:
		return Material{
			Albedo:       mgl32.Vec3{0.72, 0.55, 0.40},
			Roughness:    0.95,
			SpecularTint: mgl32.Vec3{1, 1, 1},
		}
	case BlockStone:
		return Material{
			Albedo:       mgl32.Vec3{0.75, 0.75, 0.78},
			Roughness:    0.80,
			Reflectance:  0.05,
			SpecularTint: mgl32.Vec3{1, 1, 1},
		}
	case BlockCobblestone:
		return Material{
			Albedo:       mgl32.Vec3{0.68, 0.68, 0.70},
			Roughness:    0.90,
			SpecularTint: mgl32.Vec3{1, 1, 1},
		}
	case BlockWood:
		return Material{
			Albedo:       mgl32.Vec3{0.82, 0.66, 0.45},
			Roughness:    0.85,
			SpecularTint: mgl32.Vec3{1, 1, 1},
		}
	case BlockLeaves:
		return Material{
			Albedo:       mgl32.Vec3{0.38, 0.70, 0.32},
			Roughness:    0.90,
			SpecularTint: mgl32.Vec3{1, 1, 1},
		}
	case BlockSand:
		return Material{
			Albedo:       mgl32.Vec3{0.90, 0.85, 0.66},
			Roughness:    0.95,
			SpecularTint: mgl32.Vec3{1, 1, 1},
		}
	case BlockWater:
		return Material{
			Albedo:       mgl32.Vec3{0.30, 0.45, 0.85},
			Metallic:     0.1,
			Roughness:    0.05,
			Reflectance:  0.75,
			SpecularTint: mgl32.Vec3{0.9, 0.95, 1},
		}
	case BlockLava:
		return Material{
			Albedo:       mgl32.Vec3{1.0, 0.45, 0.12},
			Roughness:    0.60,
			Emissive:     0.9,
			SpecularTint: mgl32.Vec3{1, 0.7, 0.4},
		}
	case BlockGlowstone:
		return Material{
			Albedo:       mgl32.Vec3{1.0, 0.88, 0.55},
			Roughness:    0.70,
			Emissive:     1.0,
			SpecularTint: mgl32.Vec3{1, 0.95, 0.8},
		}
	case BlockStoneSlab, BlockStoneStairs:
		return Material{
			Albedo:       mgl32.Vec3{0.78, 0.78, 0.80},
			Roughness:    0.75,
			Reflectance:  0.05,
			SpecularTint: mgl32.Vec3{1, 1, 1},
		}
	default:
		// Bloco vazio (nunca sombreado) e valores futuros.
		return Material{
			Albedo:       mgl32.Vec3{1, 0, 1},
			Roughness:    1,
			SpecularTint: mgl32.Vec3{1, 1, 1},
		}
	}
}
