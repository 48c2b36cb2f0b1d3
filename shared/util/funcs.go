package util

import "math"

// Lerp realiza interpolação linear entre dois floats.
func Lerp(start, end, amount float32) float32 {
	return start + amount*(end-start)
}

// Clamp01 limita um valor ao intervalo [0, 1].
func Clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Smoothstep aplica a curva de suavização 3t²-2t³ em t limitado a [0, 1].
func Smoothstep(t float32) float32 {
	t = Clamp01(t)
	return t * t * (3 - 2*t)
}

// Fract retorna a parte fracionária de v (sempre em [0, 1)).
func Fract(v float32) float32 {
	return v - float32(math.Floor(float64(v)))
}

// FloorInt retorna o piso de v como inteiro.
func FloorInt(v float32) int {
	return int(math.Floor(float64(v)))
}

// Abs retorna o valor absoluto de um float32.
func Abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
