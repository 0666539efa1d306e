// Package scene holds the flat, immutable collection of primitives a
// render draws against. There is no acceleration structure: ClosestHit
// is a linear scan whose cost is primitive-count * ray-count, which is
// an explicit, documented non-goal of this renderer (see SPEC_FULL.md).
package scene

import (
	"github.com/anthropics/pathtrace/pkg/core"
	"github.com/anthropics/pathtrace/pkg/geometry"
	"github.com/anthropics/pathtrace/pkg/material"
)

// Scene is an unordered set of primitives, safe to share by read-only
// reference across render workers once constructed.
type Scene struct {
	Primitives []geometry.Primitive
}

// New creates a scene from the given primitives. Primitive construction
// errors (bad radius, bad plane extent) are the caller's responsibility to
// have already surfaced; New itself never fails.
func New(primitives ...geometry.Primitive) *Scene {
	return &Scene{Primitives: primitives}
}

// ClosestHit scans every primitive, narrowing the interval's Max each time
// a closer hit is recorded, and returns the globally closest accepted
// intersection within interval, if any.
func (s *Scene) ClosestHit(ray core.Ray, interval core.Interval) (material.HitRecord, bool) {
	var closest material.HitRecord
	found := false
	search := interval

	for _, p := range s.Primitives {
		if hit, ok := p.Intersect(ray, search); ok {
			closest = hit
			found = true
			search = search.Shrink(hit.T)
		}
	}

	return closest, found
}
