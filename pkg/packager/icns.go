package packager

import (
	"bytes"
	"context"
	"os/exec"
	"path/filepath"

	"github.com/tbabzhao-coder/iconforge/pkg/errors"
)

// iconutilTool is the macOS icon compiler. It ships with macOS only; on
// other hosts the ICNS stage fails with PACKAGER_UNAVAILABLE.
const iconutilTool = "iconutil"

// ICNS packages the iconset directory into an .icns container by invoking
// the system icon compiler.
type ICNS struct {
	// Tool overrides the compiler binary, for tests. Empty means iconutil.
	Tool string
}

func (p *ICNS) Name() string { return "icns" }

// Package runs `iconutil -c icns <iconset> -o <out>/icon.icns`.
func (p *ICNS) Package(ctx context.Context, req Request) error {
	tool := p.Tool
	if tool == "" {
		tool = iconutilTool
	}
	if _, err := exec.LookPath(tool); err != nil {
		return errors.Wrap(errors.ErrCodePackagerUnavailable, err,
			"%s not found (building .icns requires a macOS host)", tool)
	}

	out := filepath.Join(req.OutDir, "icon.icns")
	cmd := exec.CommandContext(ctx, tool, "-c", "icns", req.IconsetDir, "-o", out)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return errors.Wrap(errors.ErrCodePackagerFailed, err,
			"%s: %s", tool, bytes.TrimSpace(stderr.Bytes()))
	}
	return nil
}
