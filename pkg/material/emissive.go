package material

import (
	"github.com/anthropics/pathtrace/pkg/core"
	"github.com/anthropics/pathtrace/pkg/texture"
)

// Emissive is a non-scattering light-emitting surface: every incident ray
// is absorbed, and emitted light is delivered only through Emitted.
type Emissive struct {
	EmissionScale   core.Vec3
	EmissionTexture texture.Texture // nil if the material has no texture
}

// NewEmissive creates a solid-emission Emissive material.
func NewEmissive(emissionScale core.Vec3) *Emissive {
	return &Emissive{EmissionScale: emissionScale}
}

// NewTexturedEmissive creates an Emissive material modulated by a texture.
func NewTexturedEmissive(emissionScale core.Vec3, tex texture.Texture) *Emissive {
	return &Emissive{EmissionScale: emissionScale, EmissionTexture: tex}
}

// Scatter always absorbs.
func (e *Emissive) Scatter(_ core.Ray, _ HitRecord, _ core.Sampler) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// Emitted returns the scaled emission, modulated by the emission texture
// when present.
func (e *Emissive) Emitted(u, v float64) core.Vec3 {
	if e.EmissionTexture == nil {
		return e.EmissionScale
	}
	return e.EmissionScale.MultiplyVec(e.EmissionTexture.Sample(u, v))
}
