// Package render defines the contract shared by every icon source.
//
// Two implementations exist: the procedural mascot drawing in
// [github.com/tbabzhao-coder/iconforge/pkg/render/mascot] and the SVG
// rasterizer in [github.com/tbabzhao-coder/iconforge/pkg/render/svg].
// The export pipeline and the container packagers only ever see this
// interface, so a new source format slots in without touching either.
package render

import "image"

// Renderer produces a square RGBA bitmap of the requested pixel size.
//
// Implementations must be deterministic: the same size always yields the
// same pixels. The returned image is owned by the caller.
type Renderer interface {
	Render(size int) (image.Image, error)
}
