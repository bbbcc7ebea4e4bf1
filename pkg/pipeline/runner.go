package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"

	"github.com/tbabzhao-coder/iconforge/pkg/errors"
	"github.com/tbabzhao-coder/iconforge/pkg/iconset"
	"github.com/tbabzhao-coder/iconforge/pkg/packager"
	"github.com/tbabzhao-coder/iconforge/pkg/render"
)

// Runner executes the export pipeline for one renderer.
//
// The Runner is stateless apart from its logger; each canvas is owned by
// the render call that produced it and discarded once written. The same
// Runner can execute any number of runs.
type Runner struct {
	Renderer render.Renderer
	Logger   *log.Logger
}

// NewRunner creates a runner for the given renderer.
// If logger is nil, log.Default() is used.
func NewRunner(r render.Renderer, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Renderer: r, Logger: logger}
}

// Execute renders the canonical icon and the full iconset, then runs every
// configured packager. Packager errors are recorded in the result and
// logged, not returned: one missing platform tool never aborts the run.
// Re-running with the same renderer overwrites all outputs byte for byte.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()

	if r.Renderer == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "renderer must not be nil")
	}
	if opts.OutDir == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "output directory must not be empty")
	}
	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create output directory %s", opts.OutDir)
	}

	result := &Result{IconsetDir: filepath.Join(opts.OutDir, iconset.DirName)}

	// Stage 1: canonical full-size icon.
	canonical := filepath.Join(opts.OutDir, CanonicalName)
	if err := r.writeBitmap(ctx, iconset.CanonicalSize, canonical); err != nil {
		return nil, err
	}
	result.CanonicalPath = canonical
	r.Logger.Info("wrote canonical icon", "path", canonical, "size", iconset.CanonicalSize)

	// Stage 2: iconset, in manifest order.
	if err := os.MkdirAll(result.IconsetDir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create iconset directory %s", result.IconsetDir)
	}
	for _, entry := range iconset.Manifest {
		if err := r.writeBitmap(ctx, entry.Size, filepath.Join(result.IconsetDir, entry.Name)); err != nil {
			return nil, err
		}
		result.Rendered++
		r.Logger.Debug("wrote iconset bitmap", "name", entry.Name, "size", entry.Size)
	}
	r.Logger.Info("populated iconset", "dir", result.IconsetDir, "bitmaps", result.Rendered)

	// Stage 3: platform containers, log-and-continue.
	req := packager.Request{
		IconsetDir: result.IconsetDir,
		OutDir:     opts.OutDir,
		Renderer:   r.Renderer,
	}
	for _, p := range opts.Packagers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		err := p.Package(ctx, req)
		result.Stages = append(result.Stages, StageStatus{Name: p.Name(), Err: err})
		if err != nil {
			r.Logger.Warn("packager skipped", "name", p.Name(), "err", err)
			continue
		}
		r.Logger.Info("packaged container", "name", p.Name())
	}

	result.Elapsed = time.Since(start)
	return result, nil
}

// writeBitmap renders one size and persists it as a PNG at path.
func (r *Runner) writeBitmap(ctx context.Context, size int, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	img, err := r.Renderer.Render(size)
	if err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "render %dpx bitmap", size)
	}
	if err := imaging.Save(img, path); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	return nil
}
