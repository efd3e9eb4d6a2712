package view

// Color is a 24-bit RGB color
type Color struct {
	R, G, B uint8
}

// Hex builds a Color from 0xRRGGBB
func Hex(v uint32) Color {
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

// Line is one screen-space stroke handed to the drawing collaborator
type Line struct {
	A, B  Point
	Color Color
	Width float64
}

// Point is a screen-space position, X right and Y down from the top-left
type Point struct {
	X, Y float64
}
