package geometry

import (
	"fmt"
	"math"

	"github.com/anthropics/pathtrace/pkg/core"
	"github.com/anthropics/pathtrace/pkg/material"
)

// parallelTolerance is the minimum |dot(ray, normal)| below which a ray is
// treated as parallel to the plane (a miss) rather than solved for a huge,
// numerically unstable t.
const parallelTolerance = 1e-6

// Plane is a finite rectangular surface: a center point, an outward unit
// normal, and a width/height extent in the plane's own tangent basis.
type Plane struct {
	Center        core.Vec3
	Normal        core.Vec3
	Width, Height float64
	Material      material.Material
}

// NewPlane creates a finite plane, rejecting non-positive extents.
func NewPlane(center, normal core.Vec3, width, height float64, mat material.Material) (*Plane, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("geometry: plane width and height must be positive, got %v x %v", width, height)
	}
	return &Plane{
		Center:   center,
		Normal:   normal.Normalize(),
		Width:    width,
		Height:   height,
		Material: mat,
	}, nil
}

// tangentBasis builds a stable (tangent, bitangent) basis for the plane's
// normal. Away from axis alignment either branch is well defined; at exact
// axis alignment the two branches still pick a consistent basis.
func (p *Plane) tangentBasis() (tangent, bitangent core.Vec3) {
	if math.Abs(p.Normal.X) > math.Abs(p.Normal.Y) {
		tangent = core.NewVec3(p.Normal.Z, 0, -p.Normal.X).Normalize()
	} else {
		tangent = core.NewVec3(0, -p.Normal.Z, p.Normal.Y).Normalize()
	}
	bitangent = p.Normal.Cross(tangent)
	return tangent, bitangent
}

// Intersect solves the ray/plane equation, rejects rays outside the finite
// rectangular extent, and returns UVs normalized to the plane's own face.
func (p *Plane) Intersect(ray core.Ray, interval core.Interval) (material.HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)
	if math.Abs(denominator) < parallelTolerance {
		return material.HitRecord{}, false
	}

	t := p.Center.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if !interval.Surrounds(t) {
		return material.HitRecord{}, false
	}

	point := ray.At(t)
	tangent, bitangent := p.tangentBasis()
	rel := point.Subtract(p.Center)
	su := rel.Dot(tangent)
	sv := rel.Dot(bitangent)

	if math.Abs(su) > p.Width/2 || math.Abs(sv) > p.Height/2 {
		return material.HitRecord{}, false
	}

	u := su/p.Width + 0.5
	v := sv/p.Height + 0.5

	outside := denominator < 0
	n := p.Normal
	if !outside {
		n = p.Normal.Negate()
	}

	return material.HitRecord{
		P:        point,
		N:        n,
		T:        t,
		U:        u,
		V:        v,
		Outside:  outside,
		Material: p.Material,
	}, true
}
