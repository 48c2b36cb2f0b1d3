package trace

import (
	"math"

	"CuboVision/shared/util"
	"CuboVision/shared/voxel"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// originNudge empurra a origem do raio para frente quando ela nasce
	// dentro de um voxel sólido, evitando um auto-acerto imediato.
	originNudge = 1e-3

	// tieEpsilon é a tolerância (escalada pela distância) para detectar
	// empates de cruzamento entre eixos em arestas e quinas.
	tieEpsilon = 1e-4

	// biasEpsilon é o deslocamento do ponto de amostragem para dentro do
	// voxel antes do teste de forma.
	biasEpsilon = 1e-4

	// marchStep é o passo fixo do marchador de fallback.
	marchStep = 0.03
)

// RayHit é o resultado transitório de uma travessia bem-sucedida.
type RayHit struct {
	T      float32    // distância paramétrica até a superfície (> 0)
	Normal mgl32.Vec3 // normal unitária da face atingida
	Block  voxel.BlockType
	UV     mgl32.Vec2
	Voxel  [3]int // coordenada do voxel atingido
}

// TextureSource fornece amostras de textura por bloco (nearest).
type TextureSource interface {
	Sample(b voxel.BlockType, u, v float32) mgl32.Vec3
}

// Tracer reúne os insumos imutáveis de um frame de renderização.
// É copiado por valor para os workers; nenhum campo muda durante o frame.
type Tracer struct {
	Grid     *voxel.Grid
	Textures TextureSource
	Sky      *Skybox
	LightPos mgl32.Vec3
	Day      bool
	Shadows  bool
}

// Trace encontra a primeira superfície que o raio cruza.
// O caminho principal é o DDA; o marchador de passo fixo cobre os casos
// numéricos em que o DDA não resolve o acerto.
func (t *Tracer) Trace(origin, dir mgl32.Vec3) (RayHit, bool) {
	if hit, ok := t.traverse(origin, dir); ok {
		return hit, true
	}
	return t.march(origin, dir)
}

// traverse executa a travessia incremental de voxels (Amanatides-Woo).
func (t *Tracer) traverse(origin, dir mgl32.Vec3) (RayHit, bool) {
	g := t.Grid

	ix := util.FloorInt(origin.X())
	iy := util.FloorInt(origin.Y())
	iz := util.FloorInt(origin.Z())

	// Origem dentro de um voxel sólido: empurra para frente para não
	// reportar a própria superfície de partida.
	startBlock := g.GetBlock(ix, iy, iz)
	if voxel.IsSolid(startBlock) {
		local := mgl32.Vec3{origin.X() - float32(ix), origin.Y() - float32(iy), origin.Z() - float32(iz)}
		if voxel.Occupies(startBlock, local) {
			origin = origin.Add(dir.Mul(originNudge))
			ix = util.FloorInt(origin.X())
			iy = util.FloorInt(origin.Y())
			iz = util.FloorInt(origin.Z())
		}
	}

	// Distância máxima segura: garante término mesmo para raios que nunca
	// reentram no volume do grid.
	maxDist := origin.Sub(g.Center()).Len() + 1.5*g.Diagonal()

	idx := [3]int{ix, iy, iz}
	var step [3]int
	var tNext, tDelta [3]float32

	inf := float32(math.Inf(1))
	for a := 0; a < 3; a++ {
		d := dir[a]
		// Componente ~0: o raio nunca cruza planos deste eixo. O delta vai
		// explicitamente para infinito em vez de nascer de uma divisão.
		if util.Abs(d) < 1e-8 {
			step[a] = 0
			tDelta[a] = inf
			tNext[a] = inf
			continue
		}
		invD := 1 / d
		if d > 0 {
			step[a] = 1
			tNext[a] = (float32(idx[a]) + 1 - origin[a]) * invD
		} else {
			step[a] = -1
			tNext[a] = (float32(idx[a]) - origin[a]) * invD
		}
		tDelta[a] = util.Abs(invD)
	}

	for {
		tc := tNext[0]
		if tNext[1] < tc {
			tc = tNext[1]
		}
		if tNext[2] < tc {
			tc = tNext[2]
		}

		if math.IsInf(float64(tc), 0) || math.IsNaN(float64(tc)) || tc > maxDist {
			return RayHit{}, false
		}

		// Empates em arestas/quinas: todos os eixos cujo cruzamento cai
		// dentro do epsilon escalonado avançam juntos.
		eps := tieEpsilon * max(1, tc)
		var stepped [3]bool
		for a := 0; a < 3; a++ {
			if step[a] != 0 && tNext[a] <= tc+eps {
				idx[a] += step[a]
				tNext[a] += tDelta[a]
				stepped[a] = true
			}
		}

		// Normal de face única: entre os eixos que andaram, vence o que o
		// raio cruza mais de frente (maior |componente| da direção).
		axis := -1
		var best float32
		for a := 0; a < 3; a++ {
			if stepped[a] && util.Abs(dir[a]) >= best {
				best = util.Abs(dir[a])
				axis = a
			}
		}
		if axis < 0 {
			return RayHit{}, false
		}
		var normal mgl32.Vec3
		if dir[axis] > 0 {
			normal[axis] = -1
		} else {
			normal[axis] = 1
		}

		block := g.GetBlock(idx[0], idx[1], idx[2])
		if voxel.IsSolid(block) {
			p := origin.Add(dir.Mul(tc))
			if sample, ok := insideSample(p, dir, normal, idx, block); ok {
				uv := computeUV(sample, normal, idx, block)
				return RayHit{T: tc, Normal: normal, Block: block, UV: uv, Voxel: idx}, true
			}
		}
	}
}

// insideSample escolhe um ponto levemente para dentro do voxel onde o teste
// de forma passa. Tenta, em ordem: deslocamento contra a normal da face,
// deslocamento ao longo do raio e um puxão em direção ao centro geométrico.
// A redundância protege formas finas (lajes/escadas) de costuras exatas.
func insideSample(p, dir, normal mgl32.Vec3, idx [3]int, block voxel.BlockType) (mgl32.Vec3, bool) {
	center := mgl32.Vec3{float32(idx[0]) + 0.5, float32(idx[1]) + 0.5, float32(idx[2]) + 0.5}

	toCenter := center.Sub(p)
	if l := toCenter.Len(); l > 0 {
		toCenter = toCenter.Mul(1 / l)
	}

	candidates := [3]mgl32.Vec3{
		p.Sub(normal.Mul(biasEpsilon)),
		p.Add(dir.Mul(biasEpsilon)),
		p.Add(toCenter.Mul(biasEpsilon)),
	}

	for _, c := range candidates {
		local := mgl32.Vec3{c.X() - float32(idx[0]), c.Y() - float32(idx[1]), c.Z() - float32(idx[2])}
		if voxel.Occupies(block, local) {
			return c, true
		}
	}
	return p, false
}

// march é a rede de segurança numérica: interseção do raio com a caixa do
// grid (método das lajes) seguida de marcha em passos fixos.
func (t *Tracer) march(origin, dir mgl32.Vec3) (RayHit, bool) {
	g := t.Grid

	tEnter, tExit, ok := rayBox(origin, dir, mgl32.Vec3{}, mgl32.Vec3{float32(g.W), float32(g.H), float32(g.D)})
	if !ok {
		return RayHit{}, false
	}
	if tEnter < 0 {
		tEnter = 0
	}

	for tt := tEnter; tt <= tExit; tt += marchStep {
		p := origin.Add(dir.Mul(tt))
		idx := [3]int{util.FloorInt(p.X()), util.FloorInt(p.Y()), util.FloorInt(p.Z())}

		block := g.GetBlock(idx[0], idx[1], idx[2])
		if !voxel.IsSolid(block) {
			continue
		}

		center := mgl32.Vec3{float32(idx[0]) + 0.5, float32(idx[1]) + 0.5, float32(idx[2]) + 0.5}
		toCenter := center.Sub(p)
		if l := toCenter.Len(); l > 0 {
			toCenter = toCenter.Mul(1 / l)
		}
		sample := p.Add(toCenter.Mul(biasEpsilon))

		local := mgl32.Vec3{sample.X() - float32(idx[0]), sample.Y() - float32(idx[1]), sample.Z() - float32(idx[2])}
		if !voxel.Occupies(block, local) {
			continue
		}

		// Normal aproximada: face do voxel mais próxima do ponto amostrado
		// (componente de maior magnitude do offset em relação ao centro).
		off := p.Sub(center)
		axis := 0
		for a := 1; a < 3; a++ {
			if util.Abs(off[a]) > util.Abs(off[axis]) {
				axis = a
			}
		}
		var normal mgl32.Vec3
		if off[axis] >= 0 {
			normal[axis] = 1
		} else {
			normal[axis] = -1
		}

		uv := computeUV(sample, normal, idx, block)
		return RayHit{T: tt, Normal: normal, Block: block, UV: uv, Voxel: idx}, true
	}

	return RayHit{}, false
}

// rayBox intersecta o raio com uma AABB pelo método das lajes.
// Raios paralelos a um eixo tratam aquele par de planos como laje infinita.
func rayBox(origin, dir, lo, hi mgl32.Vec3) (tEnter, tExit float32, ok bool) {
	tEnter = float32(math.Inf(-1))
	tExit = float32(math.Inf(1))

	for a := 0; a < 3; a++ {
		if util.Abs(dir[a]) < 1e-8 {
			if origin[a] < lo[a] || origin[a] > hi[a] {
				return 0, 0, false
			}
			continue
		}
		invD := 1 / dir[a]
		t0 := (lo[a] - origin[a]) * invD
		t1 := (hi[a] - origin[a]) * invD
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > tEnter {
			tEnter = t0
		}
		if t1 < tExit {
			tExit = t1
		}
		if tEnter > tExit {
			return 0, 0, false
		}
	}

	if tExit < 0 {
		return 0, 0, false
	}
	return tEnter, tExit, true
}
