package mascot

import (
	"bytes"
	"image"
	"testing"

	"github.com/tbabzhao-coder/iconforge/pkg/errors"
	"github.com/tbabzhao-coder/iconforge/pkg/iconset"
)

func TestRenderDimensions(t *testing.T) {
	r := New()
	for _, entry := range iconset.Manifest {
		img, err := r.Render(entry.Size)
		if err != nil {
			t.Fatalf("Render(%d) error: %v", entry.Size, err)
		}
		b := img.Bounds()
		if b.Dx() != entry.Size || b.Dy() != entry.Size {
			t.Errorf("Render(%d) bounds = %dx%d, want %dx%d",
				entry.Size, b.Dx(), b.Dy(), entry.Size, entry.Size)
		}
	}
}

func TestRenderRejectsNonPositiveSize(t *testing.T) {
	r := New()
	for _, size := range []int{0, -1, -512} {
		_, err := r.Render(size)
		if err == nil {
			t.Fatalf("Render(%d) expected error", size)
		}
		if !errors.Is(err, errors.ErrCodeInvalidSize) {
			t.Errorf("Render(%d) error code = %v, want %v",
				size, errors.GetCode(err), errors.ErrCodeInvalidSize)
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	r := New()
	first, err := r.Render(128)
	if err != nil {
		t.Fatal(err)
	}
	second, err := r.Render(128)
	if err != nil {
		t.Fatal(err)
	}

	a, ok := first.(*image.RGBA)
	if !ok {
		t.Fatalf("Render returned %T, want *image.RGBA", first)
	}
	b := second.(*image.RGBA)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("two renders of the same size produced different pixels")
	}
}

func TestLayoutAtReferenceSize(t *testing.T) {
	l := layoutFor(RefSize)

	if l.panelInset != 102 || l.panelSide != 820 || l.panelRadius != 180 {
		t.Errorf("panel = (%d, %d, %d), want (102, 820, 180)",
			l.panelInset, l.panelSide, l.panelRadius)
	}
	if l.headX != 332 || l.headY != 392 || l.headW != 360 || l.headH != 280 {
		t.Errorf("head = (%d, %d, %d, %d), want (332, 392, 360, 280)",
			l.headX, l.headY, l.headW, l.headH)
	}
	if l.antennaTop != 312 || l.antennaBase != 392 {
		t.Errorf("antenna = (%d, %d), want (312, 392)", l.antennaTop, l.antennaBase)
	}
	if l.earLeftX != 292 || l.earRightX != 692 || l.earY != 452 {
		t.Errorf("ears = (%d, %d, %d), want (292, 692, 452)",
			l.earLeftX, l.earRightX, l.earY)
	}
}

func TestPanelPlacementAt512(t *testing.T) {
	l := layoutFor(512)
	if l.panelInset != 51 {
		t.Errorf("panelInset = %d, want 51", l.panelInset)
	}
	if l.panelSide != 410 {
		t.Errorf("panelSide = %d, want 410", l.panelSide)
	}

	img, err := New().Render(512)
	if err != nil {
		t.Fatal(err)
	}

	// The panel's left edge sits exactly on x=51; probe at the vertical
	// midline where the rounded corners do not cut in.
	if a := alphaAt(img, 50, 256); a > 8 {
		t.Errorf("alpha at (50,256) = %d, want transparent", a)
	}
	if a := alphaAt(img, 51, 256); a < 200 {
		t.Errorf("alpha at (51,256) = %d, want opaque", a)
	}
	if a := alphaAt(img, 460, 256); a < 200 {
		t.Errorf("alpha at (460,256) = %d, want opaque", a)
	}
	if a := alphaAt(img, 461, 256); a > 8 {
		t.Errorf("alpha at (461,256) = %d, want transparent", a)
	}
}

func TestSelfSimilarityAcrossSizes(t *testing.T) {
	r := New()
	small, err := r.Render(256)
	if err != nil {
		t.Fatal(err)
	}
	large, err := r.Render(512)
	if err != nil {
		t.Fatal(err)
	}

	sb := opaqueBounds(small)
	lb := opaqueBounds(large)

	// Doubling the size must double every bound within rounding tolerance.
	checks := []struct {
		name         string
		small, large int
	}{
		{"minX", sb.Min.X, lb.Min.X},
		{"minY", sb.Min.Y, lb.Min.Y},
		{"maxX", sb.Max.X, lb.Max.X},
		{"maxY", sb.Max.Y, lb.Max.Y},
	}
	for _, c := range checks {
		want := c.small * 2
		if diff := c.large - want; diff < -2 || diff > 2 {
			t.Errorf("%s = %d at 512, want %d (+/-2) from %d at 256",
				c.name, c.large, want, c.small)
		}
	}
}

// alphaAt returns the 8-bit alpha of the pixel at (x, y).
func alphaAt(img image.Image, x, y int) uint32 {
	_, _, _, a := img.At(x, y).RGBA()
	return a >> 8
}

// opaqueBounds scans for the bounding box of all non-transparent pixels.
func opaqueBounds(img image.Image) image.Rectangle {
	b := img.Bounds()
	found := image.Rectangle{Min: b.Max, Max: b.Min}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if alphaAt(img, x, y) == 0 {
				continue
			}
			if x < found.Min.X {
				found.Min.X = x
			}
			if y < found.Min.Y {
				found.Min.Y = y
			}
			if x+1 > found.Max.X {
				found.Max.X = x + 1
			}
			if y+1 > found.Max.Y {
				found.Max.Y = y + 1
			}
		}
	}
	return found
}
