package core

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBWhite = RGB{255, 255, 255}
	RGBGreen = RGB{0, 255, 0}
	RGBRed   = RGB{255, 0, 0}
	RGBBlue  = RGB{0, 0, 255}
)
