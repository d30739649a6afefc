package lightray

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
)

// Pixmap is a rectangular pixel buffer with straight alpha.
// Pixels are stored row-major, 4 bytes each in R, G, B, A order.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a fully transparent pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel.
// Out-of-bounds coordinates are ignored.
func (p *Pixmap) SetPixel(x, y int, c Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = c.A
}

// GetPixel returns the color of a single pixel, or Transparent when the
// coordinates fall outside the pixmap.
func (p *Pixmap) GetPixel(x, y int) Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return Color{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Clear fills the entire pixmap with c.
func (p *Pixmap) Clear(c Color) {
	fillSpan(p.data, c)
}

// FillRow overwrites every pixel of row y with c. No blending takes place:
// the stored bytes equal c afterwards. Rows outside the pixmap are ignored.
func (p *Pixmap) FillRow(y int, c Color) {
	if y < 0 || y >= p.height {
		return
	}
	stride := p.width * 4
	fillSpan(p.data[y*stride:(y+1)*stride], c)
}

func fillSpan(span []uint8, c Color) {
	for i := 0; i+3 < len(span); i += 4 {
		span[i+0] = c.R
		span[i+1] = c.G
		span[i+2] = c.B
		span[i+3] = c.A
	}
}

// ToImage returns a copy of the pixmap as an image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).NRGBA()
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}

// EncodePNG writes the pixmap to w in PNG format.
// Pixmaps with any non-opaque pixel are written as 8-bit RGBA.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	return png.Encode(w, p.ToImage())
}

// SavePNG saves the pixmap to a PNG file, replacing any existing file.
//
// The image is written to a temporary file next to path and renamed into
// place, so a failed save never leaves a truncated file at path.
func (p *Pixmap) SavePNG(path string) error {
	var buf bytes.Buffer
	if err := p.EncodePNG(&buf); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}

	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := f.Name()
	committed := false
	defer func() {
		if committed {
			return
		}
		if rmErr := os.Remove(tmpPath); rmErr != nil && !os.IsNotExist(rmErr) {
			Logger().Warn("lightray: remove temp file", "path", tmpPath, "err", rmErr)
		}
	}()

	if _, err := f.Write(buf.Bytes()); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	// CreateTemp uses 0600; match what os.Create would have produced.
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	committed = true

	Logger().Debug("lightray: png saved", "path", path, "bytes", buf.Len())
	return nil
}
