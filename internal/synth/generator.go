// Package synth generates synthetic gesture data for exercising the
// feature pipeline and its consumers before real recordings exist.
package synth

import (
	"fmt"
	"math/rand"

	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/feature"
)

// Gestures lists the gesture classes the generator can synthesize.
var Gestures = []string{"open_hand", "fist", "pinch", "point", "thumbs_up"}

// Generator produces synthetic feature vectors with per-class
// characteristics. It is deterministic for a fixed seed.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator seeded for reproducibility.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate returns n synthetic feature vectors for the named gesture
// class. Unknown class names return an error.
func (g *Generator) Generate(gesture string, n int) ([][]float64, error) {
	switch gesture {
	case "open_hand":
		return g.generateN(n, g.openHand), nil
	case "fist":
		return g.generateN(n, g.fist), nil
	case "pinch":
		return g.generateN(n, g.pinch), nil
	case "point":
		return g.generateN(n, g.point), nil
	case "thumbs_up":
		return g.generateN(n, g.thumbsUp), nil
	default:
		return nil, fmt.Errorf("unknown gesture class %q", gesture)
	}
}

func (g *Generator) generateN(n int, gen func() []float64) [][]float64 {
	vectors := make([][]float64, n)
	for i := range vectors {
		vectors[i] = gen()
	}
	return vectors
}

// uniform returns a random value in [lo, hi).
func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

// fill appends count values drawn uniformly from [lo, hi).
func (g *Generator) fill(dst []float64, count int, lo, hi float64) []float64 {
	for i := 0; i < count; i++ {
		dst = append(dst, g.uniform(lo, hi))
	}
	return dst
}

// openHand: all fingers extended, far fingertips, straight angles,
// wide pinch.
func (g *Generator) openHand() []float64 {
	v := make([]float64, 0, feature.NumFeatures)
	v = g.fill(v, feature.NumInterJointFeatures, 0.15, 0.25)
	v = g.fill(v, feature.NumFingertipFeatures, 0.7, 1.0)
	v = g.fill(v, feature.NumAngleFeatures, 2.5, 3.0)
	v = append(v, g.uniform(0.4, 0.7))
	return v
}

// fist: all fingers curled toward the wrist, sharply bent angles.
func (g *Generator) fist() []float64 {
	v := make([]float64, 0, feature.NumFeatures)
	v = g.fill(v, feature.NumInterJointFeatures, 0.08, 0.15)
	v = g.fill(v, feature.NumFingertipFeatures, 0.2, 0.4)
	v = g.fill(v, feature.NumAngleFeatures, 0.5, 1.5)
	v = append(v, g.uniform(0.1, 0.3))
	return v
}

// pinch: thumb and index extended and touching, other fingers curled.
func (g *Generator) pinch() []float64 {
	v := make([]float64, 0, feature.NumFeatures)
	v = g.fill(v, 8, 0.15, 0.22)  // thumb + index joints
	v = g.fill(v, 12, 0.08, 0.14) // middle, ring, pinky joints
	v = g.fill(v, 2, 0.5, 0.7)    // thumb + index tips
	v = g.fill(v, 3, 0.2, 0.4)    // remaining tips
	v = g.fill(v, 2, 2.0, 2.8)    // thumb + index angles
	v = g.fill(v, 3, 0.5, 1.5)    // remaining angles
	v = append(v, g.uniform(0.01, 0.08))
	return v
}

// point: index extended, thumb relaxed, other fingers curled.
func (g *Generator) point() []float64 {
	v := make([]float64, 0, feature.NumFeatures)
	v = g.fill(v, 4, 0.10, 0.18)  // thumb joints (semi-extended)
	v = g.fill(v, 4, 0.18, 0.24)  // index joints (extended)
	v = g.fill(v, 12, 0.08, 0.14) // remaining joints
	v = append(v, g.uniform(0.4, 0.6))
	v = append(v, g.uniform(0.7, 0.9))
	v = g.fill(v, 3, 0.2, 0.4)
	v = append(v, g.uniform(1.5, 2.2))
	v = append(v, g.uniform(2.5, 3.0))
	v = g.fill(v, 3, 0.5, 1.5)
	v = append(v, g.uniform(0.3, 0.5))
	return v
}

// thumbsUp: thumb extended, everything else curled.
func (g *Generator) thumbsUp() []float64 {
	v := make([]float64, 0, feature.NumFeatures)
	v = g.fill(v, 4, 0.18, 0.25)  // thumb joints
	v = g.fill(v, 16, 0.08, 0.14) // remaining joints
	v = append(v, g.uniform(0.7, 0.9))
	v = g.fill(v, 4, 0.2, 0.4)
	v = append(v, g.uniform(2.5, 3.0))
	v = g.fill(v, 4, 0.5, 1.5)
	v = append(v, g.uniform(0.5, 0.8))
	return v
}

// OpenHandPose returns a canonical open-hand landmark pose in raw
// MediaPipe image coordinates, used as a fixture by tests and demos.
func OpenHandPose() []detector.Point3D {
	return []detector.Point3D{
		{X: 0.50, Y: 0.80, Z: 0.00}, // wrist
		{X: 0.42, Y: 0.72, Z: -0.02}, {X: 0.36, Y: 0.66, Z: -0.03}, {X: 0.32, Y: 0.60, Z: -0.04}, {X: 0.29, Y: 0.54, Z: -0.05}, // thumb
		{X: 0.46, Y: 0.58, Z: -0.01}, {X: 0.45, Y: 0.48, Z: -0.02}, {X: 0.44, Y: 0.41, Z: -0.03}, {X: 0.43, Y: 0.35, Z: -0.04}, // index
		{X: 0.50, Y: 0.57, Z: 0.00}, {X: 0.50, Y: 0.46, Z: -0.01}, {X: 0.50, Y: 0.38, Z: -0.02}, {X: 0.50, Y: 0.31, Z: -0.03}, // middle
		{X: 0.54, Y: 0.58, Z: -0.01}, {X: 0.55, Y: 0.48, Z: -0.02}, {X: 0.56, Y: 0.41, Z: -0.03}, {X: 0.56, Y: 0.34, Z: -0.04}, // ring
		{X: 0.58, Y: 0.61, Z: -0.02}, {X: 0.60, Y: 0.53, Z: -0.03}, {X: 0.61, Y: 0.47, Z: -0.04}, {X: 0.62, Y: 0.42, Z: -0.05}, // pinky
	}
}
