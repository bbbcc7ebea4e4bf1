package packager

import (
	"context"
	"encoding/binary"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/tbabzhao-coder/iconforge/pkg/errors"
	"github.com/tbabzhao-coder/iconforge/pkg/iconset"
	"github.com/tbabzhao-coder/iconforge/pkg/render/mascot"
)

func TestICOName(t *testing.T) {
	if got := (ICO{}).Name(); got != "ico" {
		t.Errorf("Name() = %q, want %q", got, "ico")
	}
}

func TestICOPackage(t *testing.T) {
	outDir := t.TempDir()
	err := ICO{}.Package(context.Background(), Request{
		OutDir:   outDir,
		Renderer: mascot.New(),
	})
	if err != nil {
		t.Fatalf("Package() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "icon.ico"))
	if err != nil {
		t.Fatal(err)
	}
	if len(data) < 6 {
		t.Fatalf("container too short: %d bytes", len(data))
	}

	// ICONDIR header: reserved=0, type=1 (icon), count = embedded frames.
	if reserved := binary.LittleEndian.Uint16(data[0:]); reserved != 0 {
		t.Errorf("reserved = %d, want 0", reserved)
	}
	if typ := binary.LittleEndian.Uint16(data[2:]); typ != 1 {
		t.Errorf("type = %d, want 1", typ)
	}
	if count := binary.LittleEndian.Uint16(data[4:]); int(count) != len(iconset.ICOSizes) {
		t.Errorf("frame count = %d, want %d", count, len(iconset.ICOSizes))
	}
}

type failingRenderer struct{}

func (failingRenderer) Render(size int) (image.Image, error) {
	return nil, errors.New(errors.ErrCodeRenderFailed, "boom")
}

func TestICOPackageRenderFailure(t *testing.T) {
	err := ICO{}.Package(context.Background(), Request{
		OutDir:   t.TempDir(),
		Renderer: failingRenderer{},
	})
	if !errors.Is(err, errors.ErrCodePackagerFailed) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodePackagerFailed)
	}
}

func TestICOPackageCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := ICO{}.Package(ctx, Request{
		OutDir:   t.TempDir(),
		Renderer: mascot.New(),
	})
	if err == nil {
		t.Fatal("Package() expected error for cancelled context")
	}
}
