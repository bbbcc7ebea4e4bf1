// Package mascot procedurally draws the robot application icon.
//
// The design is expressed once, in 1024-unit reference coordinates, and
// scaled to any target size. Every reference dimension is rounded to the
// nearest pixel independently, which keeps the rendered shapes self-similar
// across the whole size ladder: the geometry at size S is always the
// reference geometry times S/1024, give or take sub-pixel rounding.
package mascot

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"

	"github.com/tbabzhao-coder/iconforge/pkg/errors"
)

// RefSize is the side of the reference canvas the design is expressed in.
const RefSize = 1024

// Accent is the fixed brand color (#007AFF) used for all non-white fills.
var Accent = color.NRGBA{R: 0x00, G: 0x7A, B: 0xFF, A: 0xFF}

var white = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

// ref holds the mascot design in reference units. Vertical offsets are
// measured from the canvas center with positive y pointing down; the panel
// inset is measured from the canvas edge.
var ref = struct {
	panelInset, panelSide, panelRadius float64
	headW, headH, headTop, headRadius  float64
	antennaW, antennaTop, antennaBase  float64
	knobRadius                         float64
	eyeRadius, eyeDX, eyeY             float64
	mouthW, mouthH, mouthY, mouthLine  float64
	earW, earH, earRadius, earTop      float64
	earLeftX, earRightX                float64
}{
	panelInset: 102, panelSide: 820, panelRadius: 180,
	headW: 360, headH: 280, headTop: -120, headRadius: 40,
	antennaW: 12, antennaTop: -200, antennaBase: -120,
	knobRadius: 24,
	eyeRadius: 32, eyeDX: 80, eyeY: -40,
	mouthW: 120, mouthH: 40, mouthY: 40, mouthLine: 12,
	earW: 40, earH: 80, earRadius: 20, earTop: -60,
	earLeftX: -220, earRightX: 180,
}

// layout is the integer pixel geometry of the mascot at one target size.
// All coordinates are absolute canvas pixels.
type layout struct {
	cx, cy int

	panelInset, panelSide, panelRadius int

	headX, headY, headW, headH, headRadius int

	antennaW, antennaTop, antennaBase, knobRadius int

	eyeRadius, eyeDX, eyeY int

	mouthW, mouthH, mouthY, mouthLine int

	earW, earH, earRadius, earY, earLeftX, earRightX int
}

// layoutFor scales the reference design to size. Each reference dimension
// is rounded to the nearest pixel on its own; derived positions reuse the
// rounded values so adjacent shapes stay aligned at every resolution.
func layoutFor(size int) layout {
	s := float64(size) / RefSize
	px := func(v float64) int { return int(math.Round(v * s)) }

	l := layout{
		cx: size / 2,
		cy: size / 2,

		panelInset:  px(ref.panelInset),
		panelSide:   px(ref.panelSide),
		panelRadius: px(ref.panelRadius),

		headW:      px(ref.headW),
		headH:      px(ref.headH),
		headRadius: px(ref.headRadius),

		antennaW:   px(ref.antennaW),
		knobRadius: px(ref.knobRadius),

		eyeRadius: px(ref.eyeRadius),
		eyeDX:     px(ref.eyeDX),

		mouthW:    px(ref.mouthW),
		mouthH:    px(ref.mouthH),
		mouthLine: px(ref.mouthLine),

		earW:      px(ref.earW),
		earH:      px(ref.earH),
		earRadius: px(ref.earRadius),
	}

	l.headX = l.cx - l.headW/2
	l.headY = l.cy + px(ref.headTop)
	l.antennaTop = l.cy + px(ref.antennaTop)
	l.antennaBase = l.cy + px(ref.antennaBase)
	l.eyeY = l.cy + px(ref.eyeY)
	l.mouthY = l.cy + px(ref.mouthY)
	l.earY = l.cy + px(ref.earTop)
	l.earLeftX = l.cx + px(ref.earLeftX)
	l.earRightX = l.cx + px(ref.earRightX)
	return l
}

// Renderer draws the mascot. The zero value is ready to use.
type Renderer struct{}

// New returns a mascot Renderer.
func New() *Renderer { return &Renderer{} }

// Render draws the mascot onto a transparent size-by-size canvas.
// It is a pure function of size: no I/O, deterministic pixels.
func (*Renderer) Render(size int) (image.Image, error) {
	if size <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidSize, "size must be positive, got %d", size)
	}
	l := layoutFor(size)
	dc := gg.NewContext(size, size)
	dc.SetLineCapButt()

	// Background panel.
	dc.SetColor(Accent)
	dc.DrawRoundedRectangle(float64(l.panelInset), float64(l.panelInset),
		float64(l.panelSide), float64(l.panelSide), float64(l.panelRadius))
	dc.Fill()

	// Head plate.
	dc.SetColor(white)
	dc.DrawRoundedRectangle(float64(l.headX), float64(l.headY),
		float64(l.headW), float64(l.headH), float64(l.headRadius))
	dc.Fill()

	// Antenna stem rises from the head's top edge, capped by the knob.
	dc.SetLineWidth(float64(l.antennaW))
	dc.DrawLine(float64(l.cx), float64(l.antennaBase), float64(l.cx), float64(l.antennaTop))
	dc.Stroke()
	dc.DrawCircle(float64(l.cx), float64(l.antennaTop), float64(l.knobRadius))
	dc.Fill()

	// Eyes are accent-filled, reading as cut-outs against the white head.
	dc.SetColor(Accent)
	dc.DrawCircle(float64(l.cx-l.eyeDX), float64(l.eyeY), float64(l.eyeRadius))
	dc.Fill()
	dc.DrawCircle(float64(l.cx+l.eyeDX), float64(l.eyeY), float64(l.eyeRadius))
	dc.Fill()

	// Mouth: the bottom half of an ellipse, stroked.
	dc.SetLineWidth(float64(l.mouthLine))
	dc.DrawEllipticalArc(float64(l.cx), float64(l.mouthY),
		float64(l.mouthW)/2, float64(l.mouthH)/2, 0, math.Pi)
	dc.Stroke()

	// Ears.
	dc.SetColor(white)
	dc.DrawRoundedRectangle(float64(l.earLeftX), float64(l.earY),
		float64(l.earW), float64(l.earH), float64(l.earRadius))
	dc.Fill()
	dc.DrawRoundedRectangle(float64(l.earRightX), float64(l.earY),
		float64(l.earW), float64(l.earH), float64(l.earRadius))
	dc.Fill()

	return dc.Image(), nil
}
