package integrator

import (
	"testing"

	"github.com/anthropics/pathtrace/pkg/core"
	"github.com/anthropics/pathtrace/pkg/geometry"
	"github.com/anthropics/pathtrace/pkg/material"
	"github.com/anthropics/pathtrace/pkg/scene"
)

// S1 — empty scene, sky background, straight-down-the-axis ray.
func TestRadianceEmptySceneSky(t *testing.T) {
	ig := New(scene.New(), 5, BackgroundSky)
	sampler := core.NewRandomSampler(1, 0)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	got := ig.Radiance(ray, sampler)
	want := core.NewVec3(0.75, 0.85, 1.0) // mix(white, (0.5,0.7,1.0), 0.5)
	if got.Subtract(want).Length() > 1e-9 {
		t.Fatalf("Radiance = %v, want %v", got, want)
	}
}

func TestRadianceEmptySceneDark(t *testing.T) {
	ig := New(scene.New(), 5, BackgroundDark)
	sampler := core.NewRandomSampler(1, 0)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	got := ig.Radiance(ray, sampler)
	if got != (core.Vec3{}) {
		t.Fatalf("Radiance with dark background = %v, want zero", got)
	}
}

// S5 — emissive-only sphere, dark background: hit returns emission, miss
// returns black.
func TestRadianceEmissiveOnlyScene(t *testing.T) {
	sphere, err := geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewEmissive(core.NewVec3(10, 10, 10)))
	if err != nil {
		t.Fatal(err)
	}
	ig := New(scene.New(sphere), 5, BackgroundDark)
	sampler := core.NewRandomSampler(1, 0)

	hitRay := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if got := ig.Radiance(hitRay, sampler); got != core.NewVec3(10, 10, 10) {
		t.Fatalf("hit radiance = %v, want (10,10,10)", got)
	}

	missRay := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))
	if got := ig.Radiance(missRay, sampler); got != (core.Vec3{}) {
		t.Fatalf("miss radiance = %v, want zero", got)
	}
}

// S2 — a Matte sphere hit head-on must be strictly brighter than black;
// its single bounce either reaches the sky or is depth-limited.
func TestRadianceMatteSphereNonZero(t *testing.T) {
	sphere, err := geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewMatte(core.NewVec3(1, 1, 1)))
	if err != nil {
		t.Fatal(err)
	}
	ig := New(scene.New(sphere), 2, BackgroundSky)
	sampler := core.NewRandomSampler(2, 0)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	got := ig.Radiance(ray, sampler)
	if got.X <= 0 && got.Y <= 0 && got.Z <= 0 {
		t.Fatalf("expected non-zero radiance off a lit Matte sphere, got %v", got)
	}
}

// S4 — a perfect mirror sphere reflects a straight-down-the-axis ray
// directly back along +z; the returned radiance equals the sky sampled at
// direction (0,0,1).
func TestRadianceMetalMirrorReflectsBack(t *testing.T) {
	sphere, err := geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewMetal(core.NewVec3(1, 1, 1), 0))
	if err != nil {
		t.Fatal(err)
	}
	ig := New(scene.New(sphere), 2, BackgroundSky)
	sampler := core.NewRandomSampler(4, 0)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	got := ig.Radiance(ray, sampler)
	back := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))
	want := ig.background(back)
	if got.Subtract(want).Length() > 1e-9 {
		t.Fatalf("Radiance = %v, want sky sampled at +z = %v", got, want)
	}
}

func TestRadianceDeterministicForFixedSeed(t *testing.T) {
	sphere, err := geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewMatte(core.NewVec3(0.5, 0.5, 0.5)))
	if err != nil {
		t.Fatal(err)
	}
	ig := New(scene.New(sphere), 8, BackgroundSky)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	a := ig.Radiance(ray, core.NewRandomSampler(123, 0))
	b := ig.Radiance(ray, core.NewRandomSampler(123, 0))
	if a != b {
		t.Fatalf("identical seeds produced different radiance: %v vs %v", a, b)
	}
}

func TestRadianceZeroMaxDepthReturnsZero(t *testing.T) {
	sphere, err := geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewMatte(core.NewVec3(1, 1, 1)))
	if err != nil {
		t.Fatal(err)
	}
	ig := &Integrator{Scene: scene.New(sphere), MaxDepth: 0, Background: BackgroundSky}
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if got := ig.Radiance(ray, core.NewRandomSampler(1, 0)); got != (core.Vec3{}) {
		t.Fatalf("MaxDepth=0 should short-circuit to zero, got %v", got)
	}
}

func TestBackgroundSkyMonotoneInY(t *testing.T) {
	ig := New(scene.New(), 1, BackgroundSky)
	down := ig.background(core.NewRay(core.Vec3{}, core.NewVec3(0, -1, 0)))
	up := ig.background(core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0)))
	// Looking straight down is pure white; looking straight up is the
	// saturated sky color, which has a lower red channel.
	if down.X <= up.X {
		t.Fatalf("expected red channel to fall looking up: down=%v up=%v", down, up)
	}
}
