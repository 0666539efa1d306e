package camera

import (
	"math"
	"testing"

	"github.com/anthropics/pathtrace/pkg/core"
)

func straightCamera(t *testing.T) *Camera {
	t.Helper()
	c, err := New(Config{
		Position:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		ImageWidth:  100,
		ImageHeight: 100,
		FocalLength: 1,
		SensorWidth: 1, SensorHeight: 1,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestNewRejectsDegenerateConfigs(t *testing.T) {
	base := Config{
		Position: core.NewVec3(0, 0, 0), LookAt: core.NewVec3(0, 0, -1),
		ImageWidth: 10, ImageHeight: 10, FocalLength: 1, SensorWidth: 1, SensorHeight: 1,
	}

	cases := []func(Config) Config{
		func(c Config) Config { c.ImageWidth = 0; return c },
		func(c Config) Config { c.FocalLength = 0; return c },
		func(c Config) Config { c.SensorWidth = -1; return c },
		func(c Config) Config { c.Aperture = -1; return c },
		func(c Config) Config { c.Aperture = 1; c.FocusDistance = 0; return c },
		func(c Config) Config { c.LookAt = c.Position; return c },
		func(c Config) Config { c.LookAt = core.NewVec3(0, 5, 0); c.WorldUp = core.NewVec3(0, 1, 0); return c },
	}
	for i, mutate := range cases {
		if _, err := New(mutate(base)); err == nil {
			t.Errorf("case %d: expected error", i)
		}
	}
}

// Pixel (49,49) of a 100x100 camera looking straight down -z, offset by
// +0.5 in both axes, lands on the exact image center and should produce a
// ray pointing along -z.
func TestRayAtCenterPixelPointsForward(t *testing.T) {
	c := straightCamera(t)
	ray := c.RayAt(49, 49, 0.5, 0.5, core.NewRandomSampler(1, 0))
	want := core.NewVec3(0, 0, -1)
	if ray.Direction.Subtract(want).Length() > 1e-2 {
		t.Fatalf("center ray direction = %v, want close to %v", ray.Direction, want)
	}
}

// Pixels at the left and right edges of the image must get different ray
// directions (camera-space right is +x here and grows with pixel x, so the
// left-edge ray leans toward -x).
func TestRayAtVariesAcrossImage(t *testing.T) {
	c := straightCamera(t)
	sampler := core.NewRandomSampler(1, 0)
	left := c.RayAt(0, 49, 0, 0, sampler)
	right := c.RayAt(99, 49, 0, 0, sampler)
	if left.Direction == right.Direction {
		t.Fatal("expected different ray directions across the image width")
	}
}

type constSource struct{ v core.Vec3 }

func (s constSource) Radiance(ray core.Ray, sampler core.Sampler) core.Vec3 { return s.v }

func TestCapturePixelAveragesConstantSource(t *testing.T) {
	c := straightCamera(t)
	src := constSource{v: core.NewVec3(0.2, 0.4, 0.6)}
	got := c.CapturePixel(10, 10, src, core.NewRandomSampler(1, 0), 16)
	if got.Subtract(src.v).Length() > 1e-9 {
		t.Fatalf("CapturePixel = %v, want %v", got, src.v)
	}
}

func TestQuantizeColorClampsAndScales(t *testing.T) {
	got := QuantizeColor(core.NewVec3(2, 0.5, -1))
	if got[0] != 255 {
		t.Errorf("over-range channel = %d, want 255", got[0])
	}
	if got[2] != 0 {
		t.Errorf("under-range channel = %d, want 0", got[2])
	}
	mid := QuantizeColor(core.NewVec3(0, 0.5, 0))[1]
	if mid < 125 || mid > 130 {
		t.Errorf("mid-range channel = %d, want ~127", mid)
	}
}

func TestGammaNoOpAtZero(t *testing.T) {
	buf := []byte{10, 128, 250}
	Gamma(buf, 0)
	if buf[0] != 10 || buf[1] != 128 || buf[2] != 250 {
		t.Fatalf("gamma=0 should be a no-op, got %v", buf)
	}
}

func TestGammaBrightensMidtones(t *testing.T) {
	buf := []byte{128}
	Gamma(buf, 2.2)
	if buf[0] <= 128 {
		t.Fatalf("gamma correction with gamma>1 should brighten midtones, got %d", buf[0])
	}
}

func TestGammaRoundTripApproximatelyIdentity(t *testing.T) {
	original := byte(180)
	buf := []byte{original}
	Gamma(buf, 2.2)
	Gamma(buf, 1/2.2)
	if math.Abs(float64(buf[0])-float64(original)) > 2 {
		t.Fatalf("round trip drifted too far: got %d, want near %d", buf[0], original)
	}
}

func TestThinLensOriginJittersWithinAperture(t *testing.T) {
	c, err := New(Config{
		Position: core.NewVec3(0, 0, 0), LookAt: core.NewVec3(0, 0, -1),
		ImageWidth: 10, ImageHeight: 10, FocalLength: 1, SensorWidth: 1, SensorHeight: 1,
		Aperture: 0.5, FocusDistance: 5,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	sampler := core.NewRandomSampler(7, 0)
	for i := 0; i < 50; i++ {
		ray := c.RayAt(5, 5, 0, 0, sampler)
		if ray.Origin.Length() > 0.25+1e-9 {
			t.Fatalf("lens origin %v exceeds aperture radius", ray.Origin)
		}
	}
}
