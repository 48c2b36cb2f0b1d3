package render

import (
	"image/color"
	"log"
	"math"
	"runtime"
	"sync"

	"CuboVision/visor/internal/trace"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// FrameState são os insumos de um frame, capturados por valor no início
// para que os workers nunca observem mutação no meio da renderização.
type FrameState struct {
	CamPos mgl32.Vec3
	LookAt mgl32.Vec3
	FOV    float32 // graus
	Tracer trace.Tracer
}

// Renderer possui o framebuffer ARGB de resolução fixa e a textura de
// apresentação na GPU.
type Renderer struct {
	W, H    int
	buffer  []uint32
	pixels  []color.RGBA
	tex     rl.Texture2D
	workers int
}

// NewRenderer cria o framebuffer e a textura de apresentação.
// Deve ser chamado com a janela raylib já inicializada.
func NewRenderer(w, h int) *Renderer {
	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}

	img := rl.GenImageColor(w, h, rl.Black)
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	rl.SetTextureFilter(tex, rl.FilterPoint)

	log.Printf("[Renderer] Framebuffer %dx%d, %d workers", w, h, workers)

	return &Renderer{
		W:       w,
		H:       h,
		buffer:  make([]uint32, w*h),
		pixels:  make([]color.RGBA, w*h),
		tex:     tex,
		workers: workers,
	}
}

// Render traça um raio por pixel, particionando linhas entre os workers.
// Cada worker escreve apenas seus próprios pixels; a única sincronização
// é a barreira de fim de frame.
func (r *Renderer) Render(frame FrameState) {
	forward := frame.LookAt.Sub(frame.CamPos)
	if l := forward.Len(); l > 0 {
		forward = forward.Mul(1 / l)
	} else {
		forward = mgl32.Vec3{0, 0, -1}
	}

	worldUp := mgl32.Vec3{0, 1, 0}
	// Olhar quase vertical degenera o produto vetorial com o up do mundo.
	if abs32(forward.Y()) > 0.999 {
		worldUp = mgl32.Vec3{0, 0, 1}
	}
	right := forward.Cross(worldUp)
	if l := right.Len(); l > 0 {
		right = right.Mul(1 / l)
	}
	up := right.Cross(forward)

	halfFov := float32(math.Tan(float64(mgl32.DegToRad(frame.FOV) / 2)))
	aspect := float32(r.W) / float32(r.H)

	var wg sync.WaitGroup
	wg.Add(r.workers)

	for w := 0; w < r.workers; w++ {
		go func(start int) {
			defer wg.Done()
			for j := start; j < r.H; j += r.workers {
				for i := 0; i < r.W; i++ {
					x := (2*(float32(i)+0.5)/float32(r.W) - 1) * halfFov * aspect
					y := -(2*(float32(j)+0.5)/float32(r.H) - 1) * halfFov

					dir := forward.Add(right.Mul(x)).Add(up.Mul(y))
					if l := dir.Len(); l > 0 {
						dir = dir.Mul(1 / l)
					}

					r.buffer[j*r.W+i] = frame.Tracer.CastRay(frame.CamPos, dir)
				}
			}
		}(w)
	}

	wg.Wait()
}

// Present envia o framebuffer para a GPU e o desenha esticado na janela.
func (r *Renderer) Present() {
	for i, px := range r.buffer {
		r.pixels[i] = color.RGBA{
			R: uint8(px >> 16),
			G: uint8(px >> 8),
			B: uint8(px),
			A: 0xFF,
		}
	}
	rl.UpdateTexture(r.tex, r.pixels)

	src := rl.NewRectangle(0, 0, float32(r.W), float32(r.H))
	dst := rl.NewRectangle(0, 0, float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
	rl.DrawTexturePro(r.tex, src, dst, rl.NewVector2(0, 0), 0, rl.White)
}

// Unload libera a textura de apresentação.
func (r *Renderer) Unload() {
	rl.UnloadTexture(r.tex)
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
