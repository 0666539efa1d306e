package material

import (
	"github.com/anthropics/pathtrace/pkg/core"
	"github.com/anthropics/pathtrace/pkg/texture"
)

// degenerateScatterLenSq is the squared-length threshold below which a
// Lambertian scatter direction is considered degenerate and replaced by
// the surface normal outright.
const degenerateScatterLenSq = 1e-8

// Matte is a Lambertian diffuse material: cosine-weighted scattering in
// the hemisphere around the surface normal.
type Matte struct {
	ColorScale   core.Vec3
	ColorTexture texture.Texture // nil if the material has no texture
}

// NewMatte creates a solid-color Matte material.
func NewMatte(colorScale core.Vec3) *Matte {
	return &Matte{ColorScale: colorScale}
}

// NewTexturedMatte creates a Matte material whose color is modulated by a
// texture sampled at the hit's (u,v).
func NewTexturedMatte(colorScale core.Vec3, tex texture.Texture) *Matte {
	return &Matte{ColorScale: colorScale, ColorTexture: tex}
}

func (m *Matte) effectiveColor(u, v float64) core.Vec3 {
	if m.ColorTexture == nil {
		return m.ColorScale
	}
	return m.ColorScale.MultiplyVec(m.ColorTexture.Sample(u, v))
}

// Scatter draws a cosine-weighted direction and always bounces.
func (m *Matte) Scatter(_ core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	omega := core.RandomUnitVector(sampler)
	d := hit.N.Add(omega)
	if d.LengthSquared() < degenerateScatterLenSq {
		d = hit.N
	}
	d = d.Normalize()

	return ScatterResult{
		Attenuation: m.effectiveColor(hit.U, hit.V),
		Next:        core.NewRay(hit.P, d),
	}, true
}

// Emitted is always black for Matte.
func (m *Matte) Emitted(_, _ float64) core.Vec3 {
	return core.Vec3{}
}
