package app

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// updateCamera atualiza a câmera baseado no input.
func (a *App) updateCamera() {
	dt := rl.GetFrameTime()
	a.Cam.HandleInput(dt)
	a.Cam.Update(dt)
}

// updateInput processa entradas de teclado gerais.
func (a *App) updateInput() {
	// Alternar dia/noite. A detecção de borda fica no raylib; o estado vive
	// aqui e é capturado por valor no início de cada frame.
	if rl.IsKeyPressed(rl.KeyN) {
		a.day = !a.day
		if a.day {
			log.Println("[App] Dia")
		} else {
			log.Println("[App] Noite")
		}
	}

	// Toggle debug info
	if rl.IsKeyPressed(rl.KeyF3) {
		a.Config.ShowDebugInfo = !a.Config.ShowDebugInfo
	}

	// Toggle sombras
	if rl.IsKeyPressed(rl.KeyF4) {
		a.Config.Shadows = !a.Config.Shadows
		log.Printf("[App] Sombras: %v", a.Config.Shadows)
	}

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	// Salvar snapshot da cena no SQLite
	if rl.IsKeyPressed(rl.KeyF5) {
		if a.store == nil {
			log.Println("[App] Persistência indisponível, F5 ignorado")
		} else if err := a.store.SaveScene(a.scene.Name, a.scene.Grid); err != nil {
			log.Printf("[App] %v", err)
		}
	}

	// Recarregar snapshot salvo
	if rl.IsKeyPressed(rl.KeyF9) {
		if a.store == nil {
			log.Println("[App] Persistência indisponível, F9 ignorado")
		} else if g, err := a.store.LoadScene(a.scene.Name); err != nil {
			log.Printf("[App] Snapshot indisponível: %v", err)
		} else {
			// Troca fora do frame de renderização: o próximo frame captura
			// o novo grid por valor.
			a.scene.Grid = g
			log.Printf("[App] Cena %q restaurada do banco", a.scene.Name)
		}
	}

	// ESC: alternar pausa
	if rl.IsKeyPressed(rl.KeyEscape) {
		if a.State == StateViewing {
			a.State = StatePaused
			log.Println("[App] Pausado")
		} else if a.State == StatePaused {
			a.State = StateViewing
			log.Println("[App] Retomando")
		}
	}
}
