package packager

import (
	"context"
	"testing"

	"github.com/tbabzhao-coder/iconforge/pkg/errors"
)

func TestICNSName(t *testing.T) {
	p := &ICNS{}
	if got := p.Name(); got != "icns" {
		t.Errorf("Name() = %q, want %q", got, "icns")
	}
}

func TestICNSMissingTool(t *testing.T) {
	p := &ICNS{Tool: "iconforge-no-such-compiler"}
	err := p.Package(context.Background(), Request{
		IconsetDir: t.TempDir(),
		OutDir:     t.TempDir(),
	})
	if err == nil {
		t.Fatal("Package() expected error when the compiler is missing")
	}
	if !errors.Is(err, errors.ErrCodePackagerUnavailable) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodePackagerUnavailable)
	}
}
