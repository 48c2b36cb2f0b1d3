package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// draw apresenta o frame renderizado e a interface sobreposta.
func (a *App) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(10, 10, 14, 255))

	a.renderer.Present()
	a.drawHUD()

	if a.State == StatePaused {
		a.drawPauseOverlay()
	}

	rl.EndDrawing()
}

// drawHUD desenha o painel de debug.
func (a *App) drawHUD() {
	if !a.Config.ShowDebugInfo {
		return
	}

	width := int32(300)
	height := int32(150)
	x := int32(rl.GetScreenWidth()) - width - 10
	y := int32(10)

	rl.DrawRectangle(x, y, width, height, rl.NewColor(0, 0, 0, 180))
	rl.DrawRectangleLines(x, y, width, height, rl.NewColor(50, 50, 50, 255))

	fps := rl.GetFPS()
	fpsColor := rl.Green
	if fps < 10 {
		fpsColor = rl.Red
	} else if fps < 30 {
		fpsColor = rl.Yellow
	}
	rl.DrawText(fmt.Sprintf("FPS: %d (render %.0f ms)", fps, a.renderMillis), x+10, y+10, 18, fpsColor)

	g := a.scene.Grid
	rl.DrawText(fmt.Sprintf("Cena: %s (%dx%dx%d)", a.scene.Name, g.W, g.H, g.D), x+10, y+35, 16, rl.White)

	period := "Noite"
	periodColor := rl.NewColor(120, 130, 200, 255)
	if a.day {
		period = "Dia"
		periodColor = rl.SkyBlue
	}
	rl.DrawText(period, x+10, y+55, 16, periodColor)

	shadows := "Sombras: off"
	if a.Config.Shadows {
		shadows = "Sombras: on"
	}
	rl.DrawText(shadows, x+80, y+55, 16, rl.LightGray)

	rl.DrawLine(x+10, y+80, x+width-10, y+80, rl.NewColor(100, 100, 100, 100))
	rl.DrawText("CONTROLES", x+10, y+88, 12, rl.Gray)
	rl.DrawText("WASD: Mover | Q/E: Subir/Descer", x+10, y+102, 14, rl.LightGray)
	rl.DrawText("Mouse: Orbitar | Scroll: Zoom | N: Dia/Noite", x+10, y+118, 14, rl.LightGray)
	rl.DrawText("F5/F9: Salvar/Carregar | F3: HUD | F4: Sombras", x+10, y+134, 14, rl.SkyBlue)
}

// drawPauseOverlay escurece a tela e mostra o aviso de pausa.
func (a *App) drawPauseOverlay() {
	screenWidth := int32(rl.GetScreenWidth())
	screenHeight := int32(rl.GetScreenHeight())

	rl.DrawRectangle(0, 0, screenWidth, screenHeight, rl.NewColor(0, 0, 0, 150))

	title := "PAUSADO"
	titleWidth := rl.MeasureText(title, 40)
	rl.DrawText(title, (screenWidth-titleWidth)/2, screenHeight/2-40, 40, rl.Gold)

	hint := "ESC para retomar"
	hintWidth := rl.MeasureText(hint, 18)
	rl.DrawText(hint, (screenWidth-hintWidth)/2, screenHeight/2+10, 18, rl.LightGray)
}
