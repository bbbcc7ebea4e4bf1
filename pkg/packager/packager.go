// Package packager builds platform icon containers from rendered bitmaps.
//
// Each target container format gets one Packager implementation. A missing
// platform tool is a normal negative result: the pipeline logs the failure,
// skips that container, and keeps going, so building on Linux still yields
// the PNG set and the Windows container even though the macOS compiler is
// absent.
package packager

import (
	"context"

	"github.com/tbabzhao-coder/iconforge/pkg/render"
)

// Request carries everything a packager may need: the populated iconset
// directory, the output directory, and the renderer for containers that
// embed freshly rendered frames.
type Request struct {
	IconsetDir string
	OutDir     string
	Renderer   render.Renderer
}

// Packager produces one platform icon container inside Request.OutDir.
// Implementations report failure through the returned error; callers treat
// packager errors as skippable.
type Packager interface {
	// Name identifies the packager in logs and summaries (e.g. "icns").
	Name() string

	Package(ctx context.Context, req Request) error
}
