package render

// ViewFlags is the per-viewport display switch set. Contexts snapshot it
// by value at frame start, so flag changes never affect a frame already
// in flight.
type ViewFlags struct {
	// Grid shows the standard grid decoration.
	Grid bool

	// SkyBox shows the sky box when the camera is on.
	SkyBox bool

	// BackgroundMap shows the draped background map.
	BackgroundMap bool

	// Dynamics shows tool dynamics feedback graphics.
	Dynamics bool

	// Decorations enables decorator output entirely.
	Decorations bool
}

// DefaultViewFlags returns the flags a freshly created viewport uses.
func DefaultViewFlags() ViewFlags {
	return ViewFlags{Decorations: true, Dynamics: true}
}
