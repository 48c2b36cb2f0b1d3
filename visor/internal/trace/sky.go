package trace

import (
	"math"

	"CuboVision/shared/util"

	"github.com/go-gl/mathgl/mgl32"
)

// Skybox produz a cor procedural do céu para qualquer direção de raio.
// Sem estado mutável além do vetor de sol normalizado na construção.
type Skybox struct {
	SunDir mgl32.Vec3
}

var (
	dayHorizon = mgl32.Vec3{0.78, 0.86, 0.95}
	dayZenith  = mgl32.Vec3{0.30, 0.52, 0.86}
	sunColor   = mgl32.Vec3{1.0, 0.92, 0.75}

	nightHorizon = mgl32.Vec3{0.05, 0.06, 0.10}
	nightZenith  = mgl32.Vec3{0.01, 0.01, 0.04}
	moonColor    = mgl32.Vec3{0.35, 0.38, 0.45}
)

// starThreshold controla a raridade das estrelas (fração ~0.15% das direções).
const starThreshold = 0.9985

// NewSkybox cria o céu com a direção de sol dada (normalizada aqui).
func NewSkybox(sun mgl32.Vec3) *Skybox {
	if l := sun.Len(); l > 0 {
		sun = sun.Mul(1 / l)
	} else {
		sun = mgl32.Vec3{0, 1, 0}
	}
	return &Skybox{SunDir: sun}
}

// Sample devolve a cor do céu na direção dada, com paletas distintas de
// dia e noite, clarão solar/lunar e estrelas procedurais à noite.
// Determinística: a mesma direção sempre produz a mesma cor.
func (s *Skybox) Sample(dir mgl32.Vec3, day bool) mgl32.Vec3 {
	vert := util.Smoothstep(util.Clamp01(dir.Y()*0.5 + 0.5))

	var col mgl32.Vec3
	sunDot := max(0, dir.Dot(s.SunDir))

	if day {
		col = lerpVec(dayHorizon, dayZenith, vert)
		glow := float32(math.Pow(float64(sunDot), 192))
		col = col.Add(sunColor.Mul(glow))
	} else {
		col = lerpVec(nightHorizon, nightZenith, vert)
		glow := float32(math.Pow(float64(sunDot), 384))
		col = col.Add(moonColor.Mul(glow))

		// Estrelas: hash trigonométrico determinístico da direção,
		// limiarizado para pontos raros e brilhantes no hemisfério superior.
		if dir.Y() > 0.02 {
			if h := starHash(dir); h > starThreshold {
				b := (h - starThreshold) / (1 - starThreshold)
				col = col.Add(mgl32.Vec3{b, b, b})
			}
		}
	}

	return clampVec(col)
}

// starHash é o hash clássico de shaders: fract(sin(dot(d, k)) * 43758.5453).
func starHash(d mgl32.Vec3) float32 {
	s := math.Sin(float64(d.X()*12.9898+d.Y()*78.233+d.Z()*37.719)) * 43758.5453
	return float32(s - math.Floor(s))
}
