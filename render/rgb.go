package render

// RGB is a 24-bit terminal color
type RGB struct {
	R, G, B uint8
}

// Palette
var (
	RGBBlack      = RGB{0, 0, 0}
	RgbBackground = RGB{26, 27, 38}    // Tokyo Night background
	RgbTrail      = RGB{122, 162, 247} // Blue
	RgbWarning    = RGB{247, 118, 142} // Red, newest segment close to overlength
	RgbPlayer     = RGB{224, 175, 104} // Amber
	RgbPlayerDead = RGB{86, 95, 137}
	RgbEnemy      = RGB{158, 206, 106} // Green
	RgbAggressive = RGB{255, 158, 100} // Orange
	RgbBanner     = RGB{192, 202, 245}
)

// Lerp blends a toward b by t in [0, 1]
func Lerp(a, b RGB, t float64) RGB {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	mix := func(x, y uint8) uint8 {
		return clamp(float64(x) + (float64(y)-float64(x))*t)
	}
	return RGB{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B)}
}

// clamp converts float to uint8
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v + 0.5)
}
