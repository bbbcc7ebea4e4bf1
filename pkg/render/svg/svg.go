// Package svg rasterizes a vector icon source at arbitrary pixel sizes.
package svg

import (
	"image"
	"os"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/tbabzhao-coder/iconforge/pkg/errors"
)

// Renderer rasterizes a parsed SVG icon. A single Renderer serves any
// number of sizes; the icon is re-targeted before each draw.
type Renderer struct {
	icon *oksvg.SvgIcon
}

// Open parses the SVG file at path. A missing file is reported as
// FILE_NOT_FOUND so callers can abort before producing any output.
func Open(path string) (*Renderer, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "vector source not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open vector source %s", path)
	}
	defer f.Close()

	icon, err := oksvg.ReadIconStream(f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse vector source %s", path)
	}
	return &Renderer{icon: icon}, nil
}

// Render rasterizes the icon onto a transparent size-by-size canvas.
func (r *Renderer) Render(size int) (image.Image, error) {
	if size <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidSize, "size must be positive, got %d", size)
	}
	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	r.icon.SetTarget(0, 0, float64(size), float64(size))
	dasher := rasterx.NewDasher(size, size, rasterx.NewScannerGV(size, size, rgba, rgba.Bounds()))
	r.icon.Draw(dasher, 1.0)
	return rgba, nil
}
