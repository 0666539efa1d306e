package geometry

import (
	"fmt"
	"math"

	"github.com/anthropics/pathtrace/pkg/core"
	"github.com/anthropics/pathtrace/pkg/material"
)

// discriminantTolerance is the small positive slack below which the
// sphere quadratic's discriminant is treated as a miss rather than a
// (numerically unstable) grazing tangent hit.
const discriminantTolerance = 1e-6

// Sphere is a geometric sphere with a center, radius, and material.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a sphere, rejecting a non-positive radius.
func NewSphere(center core.Vec3, radius float64, mat material.Material) (*Sphere, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("geometry: sphere radius must be positive, got %v", radius)
	}
	return &Sphere{Center: center, Radius: radius, Material: mat}, nil
}

// Intersect solves the ray/sphere quadratic and returns the nearest root
// inside interval, with UVs derived from the hit point's spherical
// coordinates.
func (s *Sphere) Intersect(ray core.Ray, interval core.Interval) (material.HitRecord, bool) {
	oc := ray.Origin.Subtract(s.Center)

	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < discriminantTolerance {
		return material.HitRecord{}, false
	}

	sqrtD := math.Sqrt(discriminant)
	t := (-b - sqrtD) / (2 * a)
	if !interval.Surrounds(t) {
		t = (-b + sqrtD) / (2 * a)
		if !interval.Surrounds(t) {
			return material.HitRecord{}, false
		}
	}

	p := ray.At(t)
	geometricNormal := p.Subtract(s.Center).Multiply(1 / s.Radius)

	var n core.Vec3
	var outside bool
	if ray.Direction.Dot(geometricNormal) > 0 {
		outside = false
		n = geometricNormal.Negate()
	} else {
		outside = true
		n = geometricNormal
	}

	local := p.Subtract(s.Center).Multiply(1 / s.Radius)
	theta := math.Atan2(local.Z, local.X)
	phi := math.Acos(-local.Y)
	u := (theta + math.Pi) / (2 * math.Pi)
	v := phi / math.Pi

	return material.HitRecord{
		P:        p,
		N:        n,
		T:        t,
		U:        u,
		V:        v,
		Outside:  outside,
		Material: s.Material,
	}, true
}
