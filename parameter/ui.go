package parameter

// Colors as 0xRRGGBB
const (
	ColorBackground = 0x808080 // gray
	ColorWall       = 0xFFFFFF
	ColorHorizon    = 0x545454
	ColorPlayer     = 0x008080 // teal
	ColorBlocked    = 0xE05050
	ColorHUD        = 0xFFFFFF
)

// Line widths in projected units; the renderer picks heavier glyphs at >= LineHeavyWidth
const (
	WallLineWidth    = 3.0
	HorizonLineWidth = 3.0
	LineHeavyWidth   = 3.0
)

// PlayerHeadingLength is the overhead-view heading tick length in world units
const PlayerHeadingLength = 35.0
