package trace

import (
	"testing"

	"CuboVision/shared/voxel"

	"github.com/go-gl/mathgl/mgl32"
)

// flatSource devolve branco para qualquer amostra; isola o sombreamento
// da resolução de textura nos testes.
type flatSource struct{}

func (flatSource) Sample(b voxel.BlockType, u, v float32) mgl32.Vec3 {
	return mgl32.Vec3{1, 1, 1}
}

func TestPackColor(t *testing.T) {
	tests := []struct {
		name string
		c    mgl32.Vec3
		want uint32
	}{
		{"preto", mgl32.Vec3{0, 0, 0}, 0xFF000000},
		{"branco", mgl32.Vec3{1, 1, 1}, 0xFFFFFFFF},
		{"vermelho puro", mgl32.Vec3{1, 0, 0}, 0xFFFF0000},
		{"acima do intervalo", mgl32.Vec3{2, -1, 0.5}, 0xFFFF007F},
	}

	for _, tt := range tests {
		if got := PackColor(tt.c); got != tt.want {
			t.Errorf("%s: PackColor(%v) = %08X, want %08X", tt.name, tt.c, got, tt.want)
		}
	}
}

func TestShadeChannelsInRange(t *testing.T) {
	g := gridWith(5, 5, 5, func(g *voxel.Grid) {
		g.Set(2, 2, 2, voxel.BlockStone)
		g.Set(3, 2, 2, voxel.BlockWater)
		g.Set(1, 2, 2, voxel.BlockGlowstone)
		g.Set(2, 2, 3, voxel.BlockLava)
	})

	for _, day := range []bool{true, false} {
		tr := testTracer(g)
		tr.Day = day
		tr.Shadows = true

		origins := []mgl32.Vec3{
			{-2, 2.5, 2.5},
			{2.5, 8, 2.5},
			{8, 2.5, 3.5},
		}
		for _, o := range origins {
			dir := mgl32.Vec3{2.5, 2.5, 2.5}.Sub(o).Normalize()
			c := tr.Shade(o, dir, 0)
			for a := 0; a < 3; a++ {
				if c[a] < 0 || c[a] > 1 {
					t.Errorf("dia=%v origem=%v: canal %d = %v fora de [0,1]", day, o, a, c[a])
				}
			}
		}
	}
}

func TestShadeMissReturnsSky(t *testing.T) {
	tr := testTracer(gridWith(2, 2, 2, nil))

	dir := mgl32.Vec3{0, 1, 0}
	got := tr.Shade(mgl32.Vec3{1, 5, 1}, dir, 0)
	want := tr.Sky.Sample(dir, tr.Day)
	if got != want {
		t.Errorf("raio sem acerto = %v, want cor do céu %v", got, want)
	}
}

func TestShadeEmissiveBrighterThanStone(t *testing.T) {
	stone := gridWith(1, 1, 1, func(g *voxel.Grid) {
		g.Set(0, 0, 0, voxel.BlockStone)
	})
	glow := gridWith(1, 1, 1, func(g *voxel.Grid) {
		g.Set(0, 0, 0, voxel.BlockGlowstone)
	})

	origin := mgl32.Vec3{0.5, 3, 0.5}
	dir := mgl32.Vec3{0, -1, 0}

	trStone := testTracer(stone)
	trGlow := testTracer(glow)
	trStone.LightPos = mgl32.Vec3{0.5, 10, 0.5}
	trGlow.LightPos = trStone.LightPos

	cs := trStone.Shade(origin, dir, 0)
	cg := trGlow.Shade(origin, dir, 0)

	for a := 0; a < 3; a++ {
		if cg[a] < cs[a] {
			t.Errorf("canal %d: pedraluz %v < pedra %v", a, cg[a], cs[a])
		}
	}
	if cg.X() < 0.9 {
		t.Errorf("pedraluz de dia deveria saturar perto de 1, got %v", cg.X())
	}
}

func TestShadeDayAmbientBrighter(t *testing.T) {
	// Bloco fosco sem emissivos por perto: a diferença entre dia e noite
	// vem só do termo ambiente.
	g := gridWith(3, 3, 3, func(g *voxel.Grid) {
		g.Set(1, 1, 1, voxel.BlockDirt)
	})
	origin := mgl32.Vec3{1.5, 4, 1.5}
	dir := mgl32.Vec3{0, -1, 0}

	day := testTracer(g)
	day.LightPos = mgl32.Vec3{6, 2, 1.5} // luz rasante para não saturar

	night := testTracer(g)
	night.LightPos = day.LightPos
	night.Day = false

	cd := day.Shade(origin, dir, 0)
	cn := night.Shade(origin, dir, 0)

	sum := func(v mgl32.Vec3) float32 { return v.X() + v.Y() + v.Z() }
	if sum(cd) <= sum(cn) {
		t.Errorf("ambiente diurno %v deveria clarear mais que o noturno %v", cd, cn)
	}
}

func TestShadeNightGlowBoost(t *testing.T) {
	g := gridWith(1, 1, 1, func(g *voxel.Grid) {
		g.Set(0, 0, 0, voxel.BlockLava)
	})
	origin := mgl32.Vec3{0.5, 3, 0.5}
	dir := mgl32.Vec3{0, -1, 0}

	day := testTracer(g)
	night := testTracer(g)
	night.Day = false

	cd := day.Shade(origin, dir, 0)
	cn := night.Shade(origin, dir, 0)

	// À noite a lava ainda brilha; o canal vermelho não pode despencar
	// junto com o ambiente.
	if cn.X() < 0.5 {
		t.Errorf("lava à noite: canal vermelho = %v, baixo demais", cn.X())
	}
	_ = cd
}

func TestShadeShadowDarkens(t *testing.T) {
	// Bloco alto entre a luz e o chão: o ponto sombreado sai mais escuro
	// do que o mesmo ponto com sombras desligadas.
	g := gridWith(5, 5, 5, func(g *voxel.Grid) {
		for x := 0; x < 5; x++ {
			for z := 0; z < 5; z++ {
				g.Set(x, 0, z, voxel.BlockGrass)
			}
		}
		g.Set(2, 3, 2, voxel.BlockStone)
	})

	origin := mgl32.Vec3{2.5, 2, 2.5}
	dir := mgl32.Vec3{0, -1, 0}
	light := mgl32.Vec3{2.5, 10, 2.5}

	with := testTracer(g)
	with.LightPos = light
	with.Shadows = true

	without := testTracer(g)
	without.LightPos = light
	without.Shadows = false

	cw := with.Shade(origin, dir, 0)
	co := without.Shade(origin, dir, 0)

	sum := func(v mgl32.Vec3) float32 { return v.X() + v.Y() + v.Z() }
	if sum(cw) >= sum(co) {
		t.Errorf("ponto sombreado %v deveria ser mais escuro que sem sombra %v", cw, co)
	}
}

func TestShadeReflectionDepthBounded(t *testing.T) {
	// Corredor de água espelhada: mesmo com refletância alta a recursão
	// para em MaxDepth e devolve uma cor válida.
	g := gridWith(8, 3, 3, func(g *voxel.Grid) {
		for x := 0; x < 8; x++ {
			g.Set(x, 0, 1, voxel.BlockWater)
		}
	})
	tr := testTracer(g)

	c := tr.Shade(mgl32.Vec3{0.5, 2, 1.5}, mgl32.Vec3{0.7, -0.7, 0}.Normalize(), 0)
	for a := 0; a < 3; a++ {
		if c[a] < 0 || c[a] > 1 {
			t.Errorf("canal %d = %v fora de [0,1]", a, c[a])
		}
	}

	// No limite de profundidade não há novo rebote.
	c2 := tr.Shade(mgl32.Vec3{0.5, 2, 1.5}, mgl32.Vec3{0.7, -0.7, 0}.Normalize(), MaxDepth-1)
	for a := 0; a < 3; a++ {
		if c2[a] < 0 || c2[a] > 1 {
			t.Errorf("profundidade máxima: canal %d = %v fora de [0,1]", a, c2[a])
		}
	}
}

func TestEmissiveGlow(t *testing.T) {
	g := gridWith(9, 9, 9, func(g *voxel.Grid) {
		g.Set(4, 4, 4, voxel.BlockGlowstone)
	})
	tr := testTracer(g)

	// Perto da fonte o brilho satura no teto.
	nearGlow := tr.emissiveGlow([3]int{4, 4, 4}, mgl32.Vec3{4.5, 4.5, 4.5})
	if nearGlow != 1 {
		t.Errorf("brilho no centro da fonte = %v, want 1 (teto)", nearGlow)
	}

	// A três voxels o brilho cai mas continua positivo.
	farGlow := tr.emissiveGlow([3]int{4, 4, 7}, mgl32.Vec3{4.5, 4.5, 7.5})
	if farGlow <= 0 || farGlow >= nearGlow {
		t.Errorf("brilho a distância = %v, esperado em (0, %v)", farGlow, nearGlow)
	}

	// Na borda do raio de varredura (4 voxels) a fonte ainda contribui.
	edge := tr.emissiveGlow([3]int{4, 4, 0}, mgl32.Vec3{4.5, 4.5, 0.5})
	if edge <= 0 || edge >= farGlow {
		t.Errorf("brilho na borda = %v, esperado em (0, %v)", edge, farGlow)
	}

	// Um voxel além do raio a varredura não enxerga a fonte.
	out := tr.emissiveGlow([3]int{4, 4, 9}, mgl32.Vec3{4.5, 4.5, 9.5})
	if out != 0 {
		t.Errorf("brilho fora do raio de varredura = %v, want 0", out)
	}
}

func TestReflect(t *testing.T) {
	d := mgl32.Vec3{1, -1, 0}.Normalize()
	n := mgl32.Vec3{0, 1, 0}
	r := reflect(d, n)

	want := mgl32.Vec3{1, 1, 0}.Normalize()
	for a := 0; a < 3; a++ {
		if !near(r[a], want[a], 1e-6) {
			t.Fatalf("reflect = %v, want %v", r, want)
		}
	}
}
