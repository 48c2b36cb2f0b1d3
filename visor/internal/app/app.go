package app

import (
	"log"

	"CuboVision/shared/config"
	"CuboVision/shared/voxel"
	"CuboVision/visor/internal/camera"
	"CuboVision/visor/internal/render"
	"CuboVision/visor/internal/textures"
	"CuboVision/visor/internal/trace"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// AppState representa os estados possíveis da aplicação.
type AppState int

const (
	StateViewing AppState = iota // Visualizando o diorama
	StatePaused                  // Pausado
)

// App é a aplicação principal do CuboVision.
type App struct {
	Config *config.Config
	State  AppState

	// Controlador de câmera orbital
	Cam *camera.CameraController

	// Cena e núcleo de renderização
	scene    *voxel.Scene
	atlas    *textures.Atlas
	sky      *trace.Skybox
	renderer *render.Renderer
	store    *voxel.SceneStore

	// Estado de frame (capturado por valor a cada renderização)
	day bool

	// Informações de debug
	frameCount   int
	renderMillis float32
}

// New cria uma nova instância da aplicação.
func New(cfg *config.Config) *App {
	return &App{
		Config: cfg,
		State:  StateViewing,
	}
}

// Run inicia o loop principal da aplicação.
func (a *App) Run() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[PANIC] Erro fatal recuperado: %v", r)
			panic(r)
		}
	}()

	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(a.Config.WindowWidth, a.Config.WindowHeight, a.Config.WindowTitle)
	rl.SetTraceLogLevel(rl.LogWarning) // reduz ruído no terminal
	rl.SetTargetFPS(a.Config.TargetFPS)
	rl.SetExitKey(0)

	if a.Config.Fullscreen {
		rl.ToggleFullscreen()
	}

	a.loadScene()
	a.day = a.scene.Day

	// Sol derivado da posição da luz em relação ao centro do grid.
	sunDir := a.scene.LightPos.Sub(a.scene.Grid.Center())
	a.sky = trace.NewSkybox(sunDir)

	a.renderer = render.NewRenderer(a.Config.RenderWidth, a.Config.RenderHeight)

	center := a.scene.Grid.Center()
	a.Cam = camera.New(center)
	a.Cam.MoveSpeed = a.Config.CameraSpeed
	a.Cam.ZoomSpeed = a.Config.ZoomSpeed

	log.Printf("[App] Janela %dx%d, framebuffer %dx%d", a.Config.WindowWidth, a.Config.WindowHeight, a.Config.RenderWidth, a.Config.RenderHeight)

	for !rl.WindowShouldClose() {
		a.update()
		a.draw()
	}

	a.shutdown()
	rl.CloseWindow()
}

// loadScene resolve a cena inicial: manifesto em disco ou diorama embutido.
// Também abre o banco de saves e aplica as cores personalizadas.
func (a *App) loadScene() {
	scene, err := voxel.LoadScene(a.Config.SceneDir)
	if err != nil {
		log.Printf("[App] Cena em %s indisponível (%v), usando diorama embutido", a.Config.SceneDir, err)
		scene = voxel.BuiltinScene()
	}
	a.scene = scene

	store, err := voxel.OpenStore(a.Config.SaveFile)
	if err != nil {
		log.Printf("[App] Persistência desativada: %v", err)
	} else {
		a.store = store

		// Cores do manifesto são persistidas; as do banco completam o resto.
		if len(scene.Colors) > 0 {
			if err := store.SaveColors(scene.Colors); err != nil {
				log.Printf("[App] %v", err)
			}
		}
		if saved, err := store.LoadColors(); err == nil {
			for b, c := range saved {
				if _, ok := scene.Colors[b]; !ok {
					scene.Colors[b] = c
				}
			}
		}
	}

	a.atlas = textures.LoadAtlas(a.Config.TexturesDir, scene.Colors)
}

// tracer monta o traçador do frame atual (copiado por valor pelos workers).
func (a *App) tracer() trace.Tracer {
	return trace.Tracer{
		Grid:     a.scene.Grid,
		Textures: a.atlas,
		Sky:      a.sky,
		LightPos: a.scene.LightPos,
		Day:      a.day,
		Shadows:  a.Config.Shadows,
	}
}

// update atualiza a lógica a cada frame.
func (a *App) update() {
	a.frameCount++

	switch a.State {
	case StateViewing:
		a.updateCamera()
		a.updateInput()

		start := rl.GetTime()
		a.renderer.Render(render.FrameState{
			CamPos: a.Cam.Position(),
			LookAt: a.Cam.CurrentLookAt,
			FOV:    a.Config.FOV,
			Tracer: a.tracer(),
		})
		a.renderMillis = float32(rl.GetTime()-start) * 1000

	case StatePaused:
		a.updateInput() // permite detectar ESC para despausar
	}
}

// shutdown realiza a limpeza de recursos.
func (a *App) shutdown() {
	log.Println("[App] Finalizando aplicação...")

	a.renderer.Unload()

	if err := a.Config.Save(); err != nil {
		log.Printf("[App] Erro ao salvar configurações: %v", err)
	}
}
