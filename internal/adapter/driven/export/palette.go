package export

import "math"

// rgb é uma cor no espaço 0-255 usado pelo gofpdf.
type rgb struct {
	R, G, B int
}

// paletteSize é o mínimo de matizes usado para espalhar as cores dos gráficos.
const paletteSize = 100

// chartColors gera n cores distribuídas uniformemente no círculo HSL.
// O espectro é sempre dividido em pelo menos paletteSize partes, então as
// primeiras cores não mudam quando o número de séries cresce.
func chartColors(n int) []rgb {
	count := n
	if count < paletteSize {
		count = paletteSize
	}

	colors := make([]rgb, n)
	for i := 0; i < n; i++ {
		hue := float64(i) * 360 / float64(count)
		saturation := float64(70+i%20) / 100
		lightness := float64(50+i%15) / 100
		colors[i] = hslToRGB(hue, saturation, lightness)
	}
	return colors
}

// hslToRGB converte h em graus e s, l em [0,1].
func hslToRGB(h, s, l float64) rgb {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return rgb{
		R: int(math.Round((r + m) * 255)),
		G: int(math.Round((g + m) * 255)),
		B: int(math.Round((b + m) * 255)),
	}
}
