package material

import (
	"github.com/anthropics/pathtrace/pkg/core"
	"github.com/anthropics/pathtrace/pkg/texture"
)

// Metal is a glossy specular reflector. Roughness 0 is a perfect mirror;
// roughness 1 scatters diffusely over the hemisphere, with the same
// cosine-weighted distribution as Matte.
type Metal struct {
	ColorScale       core.Vec3
	ColorTexture     texture.Texture // nil if the material has no texture
	RoughnessScale   float64
	RoughnessTexture texture.Texture // red channel carries the roughness sample
}

// NewMetal creates a solid-color Metal material with the given roughness.
// The value is stored as given and clamped to [0,1] when the material
// scatters.
func NewMetal(colorScale core.Vec3, roughnessScale float64) *Metal {
	return &Metal{ColorScale: colorScale, RoughnessScale: roughnessScale}
}

// NewTexturedMetal creates a Metal material whose color and (optionally)
// roughness are modulated by textures sampled at the hit's (u,v).
// roughnessTexture may be nil to keep a constant roughness.
func NewTexturedMetal(colorScale core.Vec3, colorTexture texture.Texture, roughnessScale float64, roughnessTexture texture.Texture) *Metal {
	return &Metal{
		ColorScale: colorScale, ColorTexture: colorTexture,
		RoughnessScale: roughnessScale, RoughnessTexture: roughnessTexture,
	}
}

func (m *Metal) effectiveColor(u, v float64) core.Vec3 {
	if m.ColorTexture == nil {
		return m.ColorScale
	}
	return m.ColorScale.MultiplyVec(m.ColorTexture.Sample(u, v))
}

func (m *Metal) effectiveRoughness(u, v float64) float64 {
	rough := m.RoughnessScale
	if m.RoughnessTexture != nil {
		rough *= m.RoughnessTexture.Sample(u, v).X
	}
	return core.NewVec3(rough, 0, 0).Clamp(0, 1).X
}

// Scatter reflects the incident ray and perturbs it by the effective
// roughness; grazing directions below the surface are absorbed.
func (m *Metal) Scatter(incident core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	reflected := core.Reflect(incident.Direction.Normalize(), hit.N)
	rough := m.effectiveRoughness(hit.U, hit.V)

	omega := core.RandomUnitVector(sampler)
	hemisphereDir := hit.N.Add(omega).Normalize()
	d := core.Mix(hemisphereDir, reflected, 1-rough).Normalize()

	if d.Dot(hit.N) <= 0 {
		return ScatterResult{}, false
	}

	return ScatterResult{
		Attenuation: m.effectiveColor(hit.U, hit.V),
		Next:        core.NewRay(hit.P, d),
	}, true
}

// Emitted is always black for Metal.
func (m *Metal) Emitted(_, _ float64) core.Vec3 {
	return core.Vec3{}
}
