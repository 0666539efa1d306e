// Package integrator implements the recursive Monte Carlo radiance
// estimator: single-ray path tracing with a bounded bounce depth and no
// explicit light sampling. Direct illumination from emissive surfaces is
// gathered implicitly, by rays that happen to terminate on one.
package integrator

import (
	"math"

	"github.com/anthropics/pathtrace/pkg/core"
	"github.com/anthropics/pathtrace/pkg/scene"
)

// BackgroundMode selects what a ray that misses every primitive receives.
type BackgroundMode int

const (
	// BackgroundSky is the default blue-white gradient background.
	BackgroundSky BackgroundMode = iota
	// BackgroundDark returns black on a miss.
	BackgroundDark
)

var (
	skyTop    = core.NewVec3(1.0, 1.0, 1.0)
	skyBottom = core.NewVec3(0.5, 0.7, 1.0)
)

// Integrator estimates the radiance arriving along a ray through a scene.
type Integrator struct {
	Scene      *scene.Scene
	MaxDepth   int
	Background BackgroundMode
}

// New creates an Integrator. maxDepth must be >= 1.
func New(s *scene.Scene, maxDepth int, background BackgroundMode) *Integrator {
	return &Integrator{Scene: s, MaxDepth: maxDepth, Background: background}
}

// Radiance estimates the radiance along ray, written as an explicit loop
// over an attenuation accumulator rather than true recursion — an
// iterative form the spec allows and the reference renderers in this
// domain prefer to keep stack depth independent of MaxDepth.
//
// Each loop iteration corresponds to one level of the equivalent
// recursive definition: entering with depth == 0 contributes nothing,
// including no background sample, exactly matching the recursive guard.
func (ig *Integrator) Radiance(ray core.Ray, sampler core.Sampler) core.Vec3 {
	color := core.Vec3{}
	attenuation := core.NewVec3(1, 1, 1)
	currentRay := ray

	for depth := ig.MaxDepth; depth > 0; depth-- {
		hit, ok := ig.Scene.ClosestHit(currentRay, core.NewInterval(core.DefaultTMin, math.Inf(1)))
		if !ok {
			color = color.Add(attenuation.MultiplyVec(ig.background(currentRay)))
			break
		}

		emitted := hit.Material.Emitted(hit.U, hit.V)
		color = color.Add(attenuation.MultiplyVec(emitted))

		result, scattered := hit.Material.Scatter(currentRay, hit, sampler)
		if !scattered {
			break
		}

		attenuation = attenuation.MultiplyVec(result.Attenuation)
		currentRay = result.Next
	}

	return color
}

// background returns the miss color for the configured background mode.
func (ig *Integrator) background(ray core.Ray) core.Vec3 {
	if ig.Background == BackgroundDark {
		return core.Vec3{}
	}
	unit := ray.Direction.Normalize()
	t := 0.5 * (unit.Y + 1.0)
	return core.Mix(skyTop, skyBottom, t)
}
