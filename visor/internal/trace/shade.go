package trace

import (
	"math"

	"CuboVision/shared/util"
	"CuboVision/shared/voxel"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// MaxDepth limita a recursão de reflexos (profundidade de pilha previsível).
	MaxDepth = 3

	// reflectThreshold: abaixo disso o material não dispara raio refletido.
	reflectThreshold = 0.1

	// emissiveRadius é o raio (em voxels) da varredura de blocos emissivos.
	emissiveRadius = 4

	dayAmbient   = 0.35
	nightAmbient = 0.08

	// selfGlowBonus soma ao ambiente quando o próprio bloco atingido emite luz.
	selfGlowBonus = 0.5

	// nightGlowBoost é o brilho extra noturno de lava e pedraluz.
	nightGlowBoost = 0.35

	// f0Dielectric é a refletância base de Schlick para dielétricos.
	f0Dielectric = 0.04

	// surfaceBias afasta origens secundárias da superfície (sombra/reflexo).
	surfaceBias = 1e-3

	// shadowDim atenua a luz direta quando o ponto está na sombra.
	shadowDim = 0.25
)

// CastRay é o ponto de entrada do núcleo: sombreia o raio e devolve a cor
// empacotada em ARGB de 32 bits (alfa sempre opaco).
func (t *Tracer) CastRay(origin, dir mgl32.Vec3) uint32 {
	return PackColor(t.Shade(origin, dir, 0))
}

// PackColor converte uma cor em [0,1]³ para ARGB 0xFFRRGGBB.
func PackColor(c mgl32.Vec3) uint32 {
	r := uint32(util.Clamp01(c.X()) * 255)
	g := uint32(util.Clamp01(c.Y()) * 255)
	b := uint32(util.Clamp01(c.Z()) * 255)
	return 0xFF000000 | r<<16 | g<<8 | b
}

// Shade calcula a cor de um raio com iluminação difusa/especular/Fresnel,
// contribuição emissiva da vizinhança e um rebote especular limitado.
// Determinística para um mesmo frame; todos os canais saem em [0,1].
func (t *Tracer) Shade(origin, dir mgl32.Vec3, depth int) mgl32.Vec3 {
	hit, ok := t.Trace(origin, dir)
	if !ok {
		return t.Sky.Sample(dir, t.Day)
	}

	mat := voxel.MaterialFor(hit.Block)
	tex := t.Textures.Sample(hit.Block, hit.UV.X(), hit.UV.Y())
	base := mulVec(tex, mat.Albedo)

	p := origin.Add(dir.Mul(hit.T))
	n := hit.Normal

	toLight := t.LightPos.Sub(p)
	lightDist := toLight.Len()
	l := toLight
	if lightDist > 0 {
		l = toLight.Mul(1 / lightDist)
	}
	v := dir.Mul(-1)
	h := l.Add(v)
	if hl := h.Len(); hl > 0 {
		h = h.Mul(1 / hl)
	}

	diffuse := max(0, n.Dot(l))

	specExp := (1 - mat.Roughness) * 256
	if specExp < 1 {
		specExp = 1
	}
	spec := float32(math.Pow(float64(max(0, n.Dot(h))), float64(specExp)))

	// Fresnel de Schlick: base dielétrica puxada para o tom especular do
	// material conforme o fator metálico.
	f0 := lerpVec(mgl32.Vec3{f0Dielectric, f0Dielectric, f0Dielectric}, mat.SpecularTint, mat.Metallic)
	cosV := util.Clamp01(n.Dot(v))
	fw := float32(math.Pow(float64(1-cosV), 5))
	fresnel := f0.Add(oneMinus(f0).Mul(fw))

	// Sombra da luz pontual: um raio de oclusão em direção à luz.
	lightFactor := float32(1)
	if t.Shadows {
		so := p.Add(n.Mul(surfaceBias))
		if sh, blocked := t.Trace(so, l); blocked && sh.T < lightDist {
			lightFactor = shadowDim
		}
	}

	// Brilho local: varredura de vizinhança por blocos emissivos com
	// queda quadrática, aproximando o clarão sem resolver transporte de luz.
	glow := t.emissiveGlow(hit.Voxel, p)

	ambient := float32(nightAmbient)
	if t.Day {
		ambient = dayAmbient
	}
	ambient += glow
	if voxel.EmitsLight(hit.Block) {
		ambient += selfGlowBonus
	}

	color := base.Mul(diffuse * lightFactor)
	color = color.Add(fresnel.Mul(spec * lightFactor))

	if mat.Reflectance > reflectThreshold && depth < MaxDepth-1 {
		r := reflect(dir, n)
		reflected := t.Shade(p.Add(n.Mul(surfaceBias)), r, depth+1)
		weight := mat.Reflectance
		if mat.Roughness < 0.1 {
			// Superfícies muito lisas refletem com mais força.
			weight *= 1.25
		}
		color = color.Add(mulVec(reflected, fresnel).Mul(weight))
	}

	color = color.Add(base.Mul(ambient))
	color = color.Add(mat.Albedo.Mul(mat.Emissive))

	if !t.Day && (hit.Block == voxel.BlockLava || hit.Block == voxel.BlockGlowstone) {
		color = color.Add(mat.Albedo.Mul(nightGlowBoost))
	}

	return clampVec(color)
}

// emissiveGlow acumula a contribuição dos blocos emissivos num cubo de
// +-emissiveRadius voxels em volta do voxel atingido, com teto em 1.
func (t *Tracer) emissiveGlow(idx [3]int, p mgl32.Vec3) float32 {
	var total float32
	for dy := -emissiveRadius; dy <= emissiveRadius; dy++ {
		for dz := -emissiveRadius; dz <= emissiveRadius; dz++ {
			for dx := -emissiveRadius; dx <= emissiveRadius; dx++ {
				b := t.Grid.GetBlock(idx[0]+dx, idx[1]+dy, idx[2]+dz)
				if !voxel.EmitsLight(b) {
					continue
				}
				center := mgl32.Vec3{
					float32(idx[0]+dx) + 0.5,
					float32(idx[1]+dy) + 0.5,
					float32(idx[2]+dz) + 0.5,
				}
				d := center.Sub(p)
				// Epsilon no denominador evita a singularidade quando o
				// ponto está dentro do próprio bloco emissivo.
				total += voxel.MaterialFor(b).Emissive / (d.Dot(d) + 0.05)
				if total >= 1 {
					return 1
				}
			}
		}
	}
	return total
}

// reflect espelha a direção d em torno da normal n.
func reflect(d, n mgl32.Vec3) mgl32.Vec3 {
	return d.Sub(n.Mul(2 * d.Dot(n)))
}

func mulVec(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a.X() * b.X(), a.Y() * b.Y(), a.Z() * b.Z()}
}

func lerpVec(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

func oneMinus(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{1 - v.X(), 1 - v.Y(), 1 - v.Z()}
}

func clampVec(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{util.Clamp01(v.X()), util.Clamp01(v.Y()), util.Clamp01(v.Z())}
}
