// Package material implements the scatter/emit contract shared by Matte,
// Metal, and Emissive surfaces, and the hit record that carries a
// primitive's intersection data to a material.
package material

import "github.com/anthropics/pathtrace/pkg/core"

// HitRecord is populated on a successful ray/primitive intersection. N
// always points against the incident ray direction: dot(incident.d, N) <= 0.
// Outside is true iff the incident ray came from outside the primitive.
type HitRecord struct {
	P        core.Vec3
	N        core.Vec3
	T        float64
	U, V     float64
	Outside  bool
	Material Material
}

// ScatterResult carries the attenuation and the next ray for a scattered
// (non-absorbed) bounce.
type ScatterResult struct {
	Attenuation core.Vec3
	Next        core.Ray
}

// Material scatters an incident ray into a new direction (or absorbs it)
// and reports the light it emits on its own.
type Material interface {
	// Scatter returns (result, true) if the ray bounces, or
	// (ScatterResult{}, false) if the material absorbed it.
	Scatter(incident core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)

	// Emitted returns the light emitted at the given surface coordinates.
	// Matte and Metal always return the zero vector.
	Emitted(u, v float64) core.Vec3
}
