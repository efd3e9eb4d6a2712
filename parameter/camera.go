package parameter

// Projection defaults
const (
	// WallHeight is the half-height of a wall face in world units
	// Scaled by viewport height / depth to give the slab top and bottom offsets
	WallHeight = 24.0

	// CellAspect is terminal cell height / width; the perspective viewport is
	// rasterised at twice the row count so a projected unit is roughly square
	CellAspect = 2

	// MapScale is the overhead view's world-to-cell scale
	MapScale = 0.06

	// HUDRows is the number of rows reserved for the status line
	HUDRows = 1
)
