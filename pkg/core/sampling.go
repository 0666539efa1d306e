package core

import "math/rand"

// Sampler provides the uniform random draws the renderer needs. Every
// worker owns one exclusively; nothing shares a Sampler across goroutines.
type Sampler interface {
	Float() float64
	Vec2InRange(lo, hi float64) Vec2
	Vec3InRange(lo, hi float64) Vec3
}

// RandomSampler wraps a per-worker math/rand source.
type RandomSampler struct {
	rng *rand.Rand
}

// NewRandomSampler seeds a sampler from masterSeed and workerIndex so that
// runs are deterministic per worker while distinct workers never share
// state or a seed.
func NewRandomSampler(masterSeed int64, workerIndex int) *RandomSampler {
	return &RandomSampler{rng: rand.New(rand.NewSource(masterSeed + int64(workerIndex)*9781))}
}

// Float returns a uniform float64 in [0, 1).
func (s *RandomSampler) Float() float64 {
	return s.rng.Float64()
}

// UniformFloat returns a uniform float64 in [lo, hi).
func (s *RandomSampler) UniformFloat(lo, hi float64) float64 {
	return lo + (hi-lo)*s.rng.Float64()
}

// Vec2InRange returns a Vec2 with both components uniform in [lo, hi).
func (s *RandomSampler) Vec2InRange(lo, hi float64) Vec2 {
	return Vec2{X: s.UniformFloat(lo, hi), Y: s.UniformFloat(lo, hi)}
}

// Vec3InRange returns a Vec3 with all three components uniform in [lo, hi).
func (s *RandomSampler) Vec3InRange(lo, hi float64) Vec3 {
	return Vec3{
		X: s.UniformFloat(lo, hi),
		Y: s.UniformFloat(lo, hi),
		Z: s.UniformFloat(lo, hi),
	}
}

// unitVectorMinLenSq guards the rejection sampler below against amplifying
// floating point error when the sampled point lands too close to the
// origin to normalize safely.
const unitVectorMinLenSq = 1e-18

// RandomUnitVector rejection-samples a uniform direction on the unit
// sphere: draw a vector in the unit cube, retry while its squared length
// falls outside (ε², 1], then normalize.
func RandomUnitVector(sampler Sampler) Vec3 {
	for {
		v := sampler.Vec3InRange(-1, 1)
		lenSq := v.LengthSquared()
		if lenSq > unitVectorMinLenSq && lenSq <= 1 {
			return v.Normalize()
		}
	}
}

// PointInUnitDisk rejection-samples a uniform point in the 2D unit disk:
// draw a point in [-1,1]², retry while x²+y² >= 1.
func PointInUnitDisk(sampler Sampler) Vec2 {
	for {
		p := sampler.Vec2InRange(-1, 1)
		if p.X*p.X+p.Y*p.Y < 1 {
			return p
		}
	}
}
