package camera

import (
	"math"

	"CuboVision/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// CameraController gerencia a órbita da câmera em volta do diorama:
// ângulos esféricos, zoom e deslocamento suave do alvo.
type CameraController struct {
	// Configurações
	MinZoom      float32
	MaxZoom      float32
	MoveSpeed    float32
	RotateSpeed  float32
	ZoomSpeed    float32
	SmoothFactor float32 // 0.0 a 1.0 (quanto menor, mais suave/lento)

	// Estado alvo (para interpolação suave)
	TargetLookAt mgl32.Vec3
	TargetZoom   float32
	AngleY       float32 // azimute (radianos)
	AngleX       float32 // elevação (radianos)

	// Estado atual (interpolado)
	CurrentLookAt mgl32.Vec3
	CurrentZoom   float32
}

// New cria o controlador apontado para o alvo dado.
func New(lookAt mgl32.Vec3) *CameraController {
	c := &CameraController{
		MinZoom:      2.0,
		MaxZoom:      80.0,
		MoveSpeed:    10.0,
		RotateSpeed:  2.0,
		ZoomSpeed:    2.5,
		SmoothFactor: 0.12,

		TargetLookAt: lookAt,
		TargetZoom:   22.0,
		AngleY:       45.0 * rl.Deg2rad,
		AngleX:       -30.0 * rl.Deg2rad,
	}

	// Começa já nos alvos para não "saltar" no primeiro frame.
	c.CurrentLookAt = c.TargetLookAt
	c.CurrentZoom = c.TargetZoom
	return c
}

// Update interpola o estado atual em direção aos alvos.
func (c *CameraController) Update(dt float32) {
	factor := c.SmoothFactor * 60.0 * dt // normaliza para 60 FPS
	if factor > 1.0 {
		factor = 1.0
	}

	c.CurrentLookAt = c.CurrentLookAt.Add(c.TargetLookAt.Sub(c.CurrentLookAt).Mul(factor))
	c.CurrentZoom = util.Lerp(c.CurrentZoom, c.TargetZoom, factor)
}

// Position converte os ângulos esféricos e o zoom atuais na posição da
// câmera em coordenadas de mundo.
func (c *CameraController) Position() mgl32.Vec3 {
	cosX := float32(math.Cos(float64(c.AngleX)))
	sinX := float32(math.Sin(float64(c.AngleX)))
	cosY := float32(math.Cos(float64(c.AngleY)))
	sinY := float32(math.Sin(float64(c.AngleY)))

	dist := c.CurrentZoom
	offset := mgl32.Vec3{
		dist * cosX * sinY,
		dist * -sinX, // olhamos de cima para baixo, elevação negativa
		dist * cosX * cosY,
	}
	return c.CurrentLookAt.Add(offset)
}

// HandleInput processa zoom, órbita e pan. Retorna true se houve movimento.
func (c *CameraController) HandleInput(dt float32) bool {
	moved := false

	// Zoom com scroll.
	wheel := rl.GetMouseWheelMove()
	if wheel != 0 {
		moved = true
		c.TargetZoom -= wheel * c.ZoomSpeed
		if c.TargetZoom < c.MinZoom {
			c.TargetZoom = c.MinZoom
		}
		if c.TargetZoom > c.MaxZoom {
			c.TargetZoom = c.MaxZoom
		}
	}

	// Órbita com botão esquerdo.
	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		delta := rl.GetMouseDelta()
		if delta.X != 0 || delta.Y != 0 {
			moved = true
		}
		c.AngleY -= delta.X * c.RotateSpeed * 0.005
		c.AngleX -= delta.Y * c.RotateSpeed * 0.005

		// Não deixa a câmera virar de ponta-cabeça.
		maxElev := float32(-5.0 * rl.Deg2rad)
		minElev := float32(-89.0 * rl.Deg2rad)
		if c.AngleX > maxElev {
			c.AngleX = maxElev
		}
		if c.AngleX < minElev {
			c.AngleX = minElev
		}
	}

	// Pan WASD projetado no plano XZ, relativo à direção de vista.
	forward := c.CurrentLookAt.Sub(c.Position())
	forward[1] = 0
	if l := forward.Len(); l > 0 {
		forward = forward.Mul(1 / l)
	}
	right := forward.Cross(mgl32.Vec3{0, 1, 0})
	if l := right.Len(); l > 0 {
		right = right.Mul(1 / l)
	}

	// Velocidade proporcional ao zoom: quanto mais longe, mais rápido.
	speed := c.MoveSpeed * (c.CurrentZoom / 20.0) * dt

	var move mgl32.Vec3
	if rl.IsKeyDown(rl.KeyW) {
		move = move.Add(forward)
	}
	if rl.IsKeyDown(rl.KeyS) {
		move = move.Sub(forward)
	}
	if rl.IsKeyDown(rl.KeyD) {
		move = move.Add(right)
	}
	if rl.IsKeyDown(rl.KeyA) {
		move = move.Sub(right)
	}

	// Q/E sobem e descem o alvo.
	if rl.IsKeyDown(rl.KeyQ) {
		move = move.Add(mgl32.Vec3{0, 1, 0})
	}
	if rl.IsKeyDown(rl.KeyE) {
		move = move.Sub(mgl32.Vec3{0, 1, 0})
	}

	if move.Len() > 0 {
		c.TargetLookAt = c.TargetLookAt.Add(move.Normalize().Mul(speed))
		moved = true
	}

	return moved
}
