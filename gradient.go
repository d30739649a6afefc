package lightray

// Dimensions and output location of the light ray asset.
const (
	Width      = 100
	Height     = 300
	OutputPath = "light-ray.png"
)

// RowAlpha returns the opacity of row i in a fade of the given height:
// 255 at the top, falling linearly towards 0 at the bottom.
//
// The value is int(255 * (1 - i/height)) computed in float64 and truncated
// toward zero, never rounded. Results are clamped to [0, 255] for rows
// outside [0, height).
func RowAlpha(i, height int) uint8 {
	if height <= 0 {
		return 0
	}
	a := int(255 * (1 - float64(i)/float64(height)))
	switch {
	case a < 0:
		return 0
	case a > 255:
		return 255
	}
	return uint8(a)
}

// Ray is a vertical light ray: a rectangle of uniform color whose alpha
// fades row by row from opaque at the top to transparent at the bottom.
type Ray struct {
	Width  int
	Height int
	Color  Color
}

// DefaultRay returns the 100x300 pale yellow ray.
func DefaultRay() Ray {
	return Ray{Width: Width, Height: Height, Color: RayColor}
}

// Render draws the ray onto a new transparent pixmap.
// Each row is overwritten with r.Color at that row's alpha; the alpha of
// r.Color itself is ignored.
func (r Ray) Render() *Pixmap {
	pm := NewPixmap(r.Width, r.Height)
	for i := 0; i < pm.Height(); i++ {
		pm.FillRow(i, r.Color.WithAlpha(RowAlpha(i, r.Height)))
	}
	Logger().Debug("lightray: ray rendered", "width", pm.Width(), "height", pm.Height())
	return pm
}

// Save renders the ray and writes it to path as PNG.
func (r Ray) Save(path string) error {
	return r.Render().SavePNG(path)
}
