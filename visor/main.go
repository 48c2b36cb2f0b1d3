package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"CuboVision/shared/config"
	"CuboVision/visor/internal/app"
)

func main() {
	// Raylib/OpenGL exige rodar na thread principal do SO.
	runtime.LockOSThread()

	// Flags de linha de comando
	sceneDir := flag.String("cena", "", "Diretório da cena (padrão: assets/cenas/demo)")
	fullscreen := flag.Bool("fullscreen", false, "Iniciar em tela cheia")
	debug := flag.Bool("debug", false, "Mostrar informações de debug")
	width := flag.Int("width", 0, "Largura da janela")
	height := flag.Int("height", 0, "Altura da janela")
	noShadows := flag.Bool("sem-sombras", false, "Desativar o raio de sombra")
	flag.Parse()

	// Log em arquivo
	f, err := os.OpenFile("debug_cv.log", os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err == nil {
		log.SetOutput(f)
	}
	log.SetFlags(log.Ltime | log.Lshortfile)
	log.Println("--- INICIANDO CUBOVISION ---")

	// Carregar configurações
	cfg := config.Load()

	// Flags sobrescrevem o config salvo
	if *sceneDir != "" {
		cfg.SceneDir = *sceneDir
	}
	if *fullscreen {
		cfg.Fullscreen = true
	}
	if *debug {
		cfg.ShowDebugInfo = true
	}
	if *width > 0 {
		cfg.WindowWidth = int32(*width)
	}
	if *height > 0 {
		cfg.WindowHeight = int32(*height)
	}
	if *noShadows {
		cfg.Shadows = false
	}

	application := app.New(cfg)
	application.Run()
}
