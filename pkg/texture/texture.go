// Package texture provides the 2D color samplers consumed by materials:
// constant solid colors and decoded images, both exposed through a single
// Sample(u, v) contract so materials never need to know which variant
// backs a given parameter.
package texture

import (
	"math"

	"github.com/anthropics/pathtrace/pkg/core"
)

// Texture samples a linear RGB color at normalized (u,v) coordinates.
type Texture interface {
	Sample(u, v float64) core.Vec3
}

// Solid is a constant-color texture. Construct it directly from a linear
// triplet; there is no gamma curve applied to pure color constants.
type Solid struct {
	Color core.Vec3
}

// NewSolid creates a solid-color texture.
func NewSolid(color core.Vec3) *Solid {
	return &Solid{Color: color}
}

// Sample always returns the constant color.
func (s *Solid) Sample(_, _ float64) core.Vec3 {
	return s.Color
}

// Image is a 2D grid of 8-bit sRGB triplets sampled with nearest-neighbor
// lookup and wraparound UVs.
type Image struct {
	Width, Height int
	// Pixels holds width*height*3 bytes, row-major, one byte per channel.
	Pixels []byte
}

// NewImage wraps decoded 8-bit sRGB pixel data as a Texture. The caller
// (pkg/loaders) is responsible for having decoded the image; NewImage
// itself never fails.
func NewImage(width, height int, pixels []byte) *Image {
	return &Image{Width: width, Height: height, Pixels: pixels}
}

// Sample wraps (u,v) into [0,1), flips v so row 0 is the top of the image,
// fetches the nearest pixel, and converts sRGB -> linear per channel.
func (img *Image) Sample(u, v float64) core.Vec3 {
	u = frac(u)
	v = 1 - frac(v)

	x := clampInt(int(u*float64(img.Width)), 0, img.Width-1)
	y := clampInt(int(v*float64(img.Height)), 0, img.Height-1)

	i := (y*img.Width + x) * 3
	r := float64(img.Pixels[i]) / 255.0
	g := float64(img.Pixels[i+1]) / 255.0
	b := float64(img.Pixels[i+2]) / 255.0

	return core.NewVec3(srgbToLinear(r), srgbToLinear(g), srgbToLinear(b))
}

// frac returns u - floor(u), always in [0, 1).
func frac(u float64) float64 {
	f := u - math.Floor(u)
	if f < 0 {
		f += 1
	}
	return f
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// srgbToLinear converts a single sRGB channel value in [0,1] to linear light.
func srgbToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}
