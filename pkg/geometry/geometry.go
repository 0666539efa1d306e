// Package geometry implements the ray/primitive intersection routines:
// spheres and finite (rectangular) planes.
package geometry

import (
	"github.com/anthropics/pathtrace/pkg/core"
	"github.com/anthropics/pathtrace/pkg/material"
)

// Primitive is a shape that a ray can intersect.
type Primitive interface {
	Intersect(ray core.Ray, interval core.Interval) (material.HitRecord, bool)
}
