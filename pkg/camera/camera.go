// Package camera builds primary rays from a pinhole (or thin-lens) model
// and turns per-pixel radiance samples into quantized 8-bit color.
package camera

import (
	"fmt"
	"math"

	"github.com/anthropics/pathtrace/pkg/core"
)

// RadianceSource is anything capable of estimating the radiance arriving
// along a ray. *integrator.Integrator satisfies this; the camera package
// depends only on the interface, not on pkg/integrator itself.
type RadianceSource interface {
	Radiance(ray core.Ray, sampler core.Sampler) core.Vec3
}

// Config describes the camera's placement and sensor geometry. Focal
// length and sensor dimensions share a unit (millimeters by convention,
// but only their ratios matter) — only the ratio sensor/focal determines
// field of view.
type Config struct {
	Position, LookAt core.Vec3
	WorldUp          core.Vec3 // zero value defaults to (0,1,0)

	ImageWidth, ImageHeight int

	FocalLength               float64
	SensorWidth, SensorHeight float64

	// Aperture > 0 enables thin-lens defocus blur; FocusDistance is the
	// distance along the view direction at which the image is sharp.
	Aperture      float64
	FocusDistance float64
}

// Camera holds a Config plus the orthonormal basis and sensor-plane
// geometry derived from it once, at construction time.
type Camera struct {
	cfg Config

	right, up, forward core.Vec3

	topLeftCorner, sensorU, sensorV core.Vec3
}

// New validates cfg and derives the camera's basis and sensor plane.
func New(cfg Config) (*Camera, error) {
	if cfg.ImageWidth <= 0 || cfg.ImageHeight <= 0 {
		return nil, fmt.Errorf("camera: image dimensions must be positive, got %dx%d", cfg.ImageWidth, cfg.ImageHeight)
	}
	if cfg.FocalLength <= 0 {
		return nil, fmt.Errorf("camera: focal length must be positive, got %v", cfg.FocalLength)
	}
	if cfg.SensorWidth <= 0 || cfg.SensorHeight <= 0 {
		return nil, fmt.Errorf("camera: sensor dimensions must be positive, got %vx%v", cfg.SensorWidth, cfg.SensorHeight)
	}
	if cfg.Aperture < 0 {
		return nil, fmt.Errorf("camera: aperture must be >= 0, got %v", cfg.Aperture)
	}
	if cfg.Aperture > 0 && cfg.FocusDistance <= 0 {
		return nil, fmt.Errorf("camera: focus distance must be positive when aperture > 0, got %v", cfg.FocusDistance)
	}

	worldUp := cfg.WorldUp
	if worldUp == (core.Vec3{}) {
		worldUp = core.NewVec3(0, 1, 0)
	}

	forward := cfg.LookAt.Subtract(cfg.Position).Normalize()
	if forward == (core.Vec3{}) {
		return nil, fmt.Errorf("camera: position and look-at must differ")
	}
	right := forward.Cross(worldUp).Normalize()
	if right == (core.Vec3{}) {
		return nil, fmt.Errorf("camera: forward direction must not be parallel to world up")
	}
	up := right.Cross(forward)

	imageCenter := cfg.Position.Add(forward.Multiply(cfg.FocalLength))
	sensorU := right.Multiply(cfg.SensorWidth)
	sensorV := up.Multiply(cfg.SensorHeight)
	topLeftCorner := imageCenter.Subtract(sensorU.Multiply(0.5)).Add(sensorV.Multiply(0.5))

	return &Camera{
		cfg:           cfg,
		right:         right,
		up:            up,
		forward:       forward,
		topLeftCorner: topLeftCorner,
		sensorU:       sensorU,
		sensorV:       sensorV,
	}, nil
}

// Width and Height expose the configured image resolution.
func (c *Camera) Width() int  { return c.cfg.ImageWidth }
func (c *Camera) Height() int { return c.cfg.ImageHeight }

// RayAt generates the primary ray through pixel (x,y), jittered within
// the pixel by the sub-pixel offset (ox,oy), each expected in [-0.5,0.5].
// When the camera has a nonzero aperture, sampler also supplies the
// lens-disk sample for defocus blur.
func (c *Camera) RayAt(x, y int, ox, oy float64, sampler core.Sampler) core.Ray {
	u := (float64(x) + 0.5 + ox) / float64(c.cfg.ImageWidth)
	v := (float64(y) + 0.5 + oy) / float64(c.cfg.ImageHeight)

	imagePoint := c.topLeftCorner.Add(c.sensorU.Multiply(u)).Subtract(c.sensorV.Multiply(v))
	dirToImage := imagePoint.Subtract(c.cfg.Position).Normalize()

	if c.cfg.Aperture <= 0 {
		return core.NewRay(c.cfg.Position, dirToImage)
	}

	focusPoint := c.cfg.Position.Add(dirToImage.Multiply(c.cfg.FocusDistance))
	lensRadius := c.cfg.Aperture / 2
	lensSample := core.PointInUnitDisk(sampler)
	offset := c.right.Multiply(lensSample.X * lensRadius).Add(c.up.Multiply(lensSample.Y * lensRadius))
	origin := c.cfg.Position.Add(offset)

	return core.NewRay(origin, focusPoint.Subtract(origin))
}

// CapturePixel averages spp jittered radiance samples through pixel (x,y).
func (c *Camera) CapturePixel(x, y int, source RadianceSource, sampler core.Sampler, spp int) core.Vec3 {
	sum := core.Vec3{}
	for i := 0; i < spp; i++ {
		jitter := sampler.Vec2InRange(-0.5, 0.5)
		ray := c.RayAt(x, y, jitter.X, jitter.Y, sampler)
		sum = sum.Add(source.Radiance(ray, sampler))
	}
	return sum.Multiply(1.0 / float64(spp))
}

// QuantizeColor converts a linear-space color to 8-bit sRGB-range bytes.
// It does not itself apply gamma — callers wanting a gamma-corrected
// image call Gamma on the assembled byte buffer afterwards.
func QuantizeColor(c core.Vec3) [3]byte {
	return [3]byte{
		quantizeChannel(c.X),
		quantizeChannel(c.Y),
		quantizeChannel(c.Z),
	}
}

// quantizeChannel scales a linear channel value into [0,255] and clamps
// the scaled result, not the input, so a fully-saturated channel (1.0)
// lands on 255 instead of wrapping through byte() on an out-of-range float.
func quantizeChannel(c float64) byte {
	scaled := c * 255.999
	switch {
	case scaled < 0:
		return 0
	case scaled > 255:
		return 255
	default:
		return byte(scaled)
	}
}

// Gamma applies a power-law gamma correction in place to an 8-bit RGB
// buffer (3 bytes per pixel, row-major). gamma == 0 is a no-op, matching
// the convention used throughout pkg/core for "uncorrected."
func Gamma(pixels []byte, gamma float64) {
	if gamma == 0 {
		return
	}
	invGamma := 1.0 / gamma
	for i, b := range pixels {
		linear := float64(b) / 255.0
		corrected := math.Pow(linear, invGamma)
		pixels[i] = quantizeChannel(corrected)
	}
}
