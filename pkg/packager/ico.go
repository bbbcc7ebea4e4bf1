package packager

import (
	"context"
	"image"
	"os"
	"path/filepath"

	ico "github.com/sergeymakinen/go-ico"

	"github.com/tbabzhao-coder/iconforge/pkg/errors"
	"github.com/tbabzhao-coder/iconforge/pkg/iconset"
)

// ICO packages a multi-resolution Windows icon container. Frames are
// rendered fresh at each embedded size rather than resampled from the
// iconset, so small resolutions keep their native pixel geometry.
type ICO struct{}

func (ICO) Name() string { return "ico" }

// Package renders the six container resolutions and writes them as one
// multi-frame icon.ico, smallest frame first.
func (ICO) Package(ctx context.Context, req Request) error {
	frames := make([]image.Image, 0, len(iconset.ICOSizes))
	for _, size := range iconset.ICOSizes {
		if err := ctx.Err(); err != nil {
			return err
		}
		img, err := req.Renderer.Render(size)
		if err != nil {
			return errors.Wrap(errors.ErrCodePackagerFailed, err, "render %dpx frame", size)
		}
		frames = append(frames, img)
	}

	out := filepath.Join(req.OutDir, "icon.ico")
	f, err := os.Create(out)
	if err != nil {
		return errors.Wrap(errors.ErrCodePackagerFailed, err, "create %s", out)
	}
	if err := ico.EncodeAll(f, frames); err != nil {
		f.Close()
		return errors.Wrap(errors.ErrCodePackagerFailed, err, "encode %s", out)
	}
	return f.Close()
}
