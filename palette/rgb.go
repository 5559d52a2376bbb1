package palette

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is a 24-bit sRGB color. The zero value is black; EmptyRGB marks the
// absence of a color, e.g. "no explicit background". Immutable once built.
type RGB struct {
	R, G, B uint8
	empty   bool
}

// EmptyRGB is the absent-color sentinel.
var EmptyRGB = RGB{empty: true}

// NewRGB builds a concrete color.
func NewRGB(r, g, b uint8) RGB {
	return RGB{R: r, G: g, B: b}
}

// Empty reports whether the color is the absence sentinel.
func (c RGB) Empty() bool {
	return c.empty
}

// Lab converts to CIE L*a*b* under D65, with components on the
// conventional 0..100 scale: sRGB gamma decode (0.04045 breakpoint),
// linear RGB to XYZ, then the cube-root transfer with its 0.008856
// linear segment. go-colorful implements exactly this pipeline on a
// 0..1 scale.
func (c RGB) Lab() Lab {
	l, a, b := colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Lab()
	return Lab{L: l * 100.0, A: a * 100.0, B: b * 100.0}
}

// Lab is a CIE L*a*b* color.
type Lab struct {
	L, A, B float64
}

// DeltaE returns the perceptual distance from l to other.
//
// The chroma scale factors are computed from the receiver alone, so the
// metric is not symmetric in its arguments. Nearest-color matching relies
// on this exact shape; do not replace it with a symmetric variant.
func (l Lab) DeltaE(other Lab) float64 {
	deltaL := l.L - other.L
	deltaA := l.A - other.A
	deltaB := l.B - other.B
	c1 := math.Sqrt(l.A*l.A + l.B*l.B)
	c2 := math.Sqrt(other.A*other.A + other.B*other.B)
	deltaC := c1 - c2
	deltaH := deltaA*deltaA + deltaB*deltaB - deltaC*deltaC
	if deltaH < 0 {
		deltaH = 0
	} else {
		deltaH = math.Sqrt(deltaH)
	}
	sc := 1.0 + 0.045*c1
	sh := 1.0 + 0.015*c1
	sum := deltaL*deltaL + (deltaC/sc)*(deltaC/sc) + (deltaH/sh)*(deltaH/sh)
	if sum < 0 {
		return 0
	}
	return math.Sqrt(sum)
}
