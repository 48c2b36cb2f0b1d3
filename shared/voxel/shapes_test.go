package voxel

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestOccupiesCube(t *testing.T) {
	tests := []struct {
		name  string
		local mgl32.Vec3
		want  bool
	}{
		{"centro", mgl32.Vec3{0.5, 0.5, 0.5}, true},
		{"canto", mgl32.Vec3{0, 0, 0}, true},
		{"borda superior", mgl32.Vec3{1, 1, 1}, true},
		{"fora em x", mgl32.Vec3{1.1, 0.5, 0.5}, false},
		{"fora em y negativo", mgl32.Vec3{0.5, -0.1, 0.5}, false},
		{"dentro da tolerância", mgl32.Vec3{1.0005, 0.5, 0.5}, true},
	}

	for _, tt := range tests {
		if got := Occupies(BlockStone, tt.local); got != tt.want {
			t.Errorf("%s: Occupies(pedra, %v) = %v, want %v", tt.name, tt.local, got, tt.want)
		}
	}
}

func TestOccupiesSlab(t *testing.T) {
	tests := []struct {
		name  string
		local mgl32.Vec3
		want  bool
	}{
		{"metade inferior", mgl32.Vec3{0.5, 0.25, 0.5}, true},
		{"exatamente na metade", mgl32.Vec3{0.5, 0.5, 0.5}, true},
		{"metade superior", mgl32.Vec3{0.5, 0.75, 0.5}, false},
		{"logo acima da metade", mgl32.Vec3{0.5, 0.51, 0.5}, false},
		{"base", mgl32.Vec3{0.1, 0, 0.9}, true},
	}

	for _, tt := range tests {
		if got := Occupies(BlockStoneSlab, tt.local); got != tt.want {
			t.Errorf("%s: Occupies(laje, %v) = %v, want %v", tt.name, tt.local, got, tt.want)
		}
	}
}

func TestOccupiesStairs(t *testing.T) {
	tests := []struct {
		name  string
		local mgl32.Vec3
		want  bool
	}{
		{"base frontal", mgl32.Vec3{0.5, 0.25, 0.25}, true},
		{"base traseira", mgl32.Vec3{0.5, 0.25, 0.75}, true},
		{"degrau elevado", mgl32.Vec3{0.5, 0.75, 0.75}, true},
		{"vazio acima da base frontal", mgl32.Vec3{0.5, 0.75, 0.25}, false},
		{"topo do degrau", mgl32.Vec3{0.5, 1, 0.9}, true},
	}

	for _, tt := range tests {
		if got := Occupies(BlockStoneStairs, tt.local); got != tt.want {
			t.Errorf("%s: Occupies(escada, %v) = %v, want %v", tt.name, tt.local, got, tt.want)
		}
	}
}

func TestOccupiesEmpty(t *testing.T) {
	if Occupies(BlockEmpty, mgl32.Vec3{0.5, 0.5, 0.5}) {
		t.Error("bloco vazio nunca ocupa espaço")
	}
}
