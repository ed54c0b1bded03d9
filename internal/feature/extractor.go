// Package feature converts 21-point hand poses into fixed-length,
// pose-invariant feature vectors for gesture classification.
//
// The vector layout is positional and consumed downstream as columns
// feature_0..feature_30: 20 inter-joint distances (4 per finger,
// thumb to pinky, proximal to distal), 5 fingertip-to-wrist distances,
// 5 PIP bend angles in radians, 1 thumb-to-index pinch distance.
package feature

import (
	"math"

	"github.com/ayusman/mudra/internal/detector"
)

// Feature group sizes. Their sum is NumFeatures.
const (
	NumInterJointFeatures = 4 * int(detector.NumFingers)
	NumFingertipFeatures  = int(detector.NumFingers)
	NumAngleFeatures      = int(detector.NumFingers)
	NumPinchFeatures      = 1
)

// NumFeatures is the length of every extracted feature vector.
const NumFeatures = NumInterJointFeatures + NumFingertipFeatures + NumAngleFeatures + NumPinchFeatures

// Extractor converts hand landmarks into NumFeatures-dimensional
// feature vectors. It holds no state and is safe for concurrent use
// from multiple goroutines.
type Extractor struct{}

// NewExtractor creates a new Extractor instance.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract computes the feature vector for a single hand pose.
// The input must be exactly 21 landmarks in MediaPipe order; anything
// else returns a *ShapeError. The output is deterministic and always
// finite for finite input.
func (e *Extractor) Extract(points []detector.Point3D) ([]float64, error) {
	if len(points) != detector.NumLandmarks {
		return nil, &ShapeError{Got: len(points)}
	}

	pose := normalize(points)

	features := make([]float64, 0, NumFeatures)
	features = appendInterJointDistances(features, &pose)
	features = appendFingertipDistances(features, &pose)
	features = appendFingerAngles(features, &pose)
	features = append(features, pinchDistance(&pose))

	return features, nil
}

// ExtractHand computes the feature vector for a detected hand.
func (e *Extractor) ExtractHand(hand *detector.HandLandmarks) ([]float64, error) {
	if hand == nil {
		return nil, &ShapeError{Got: 0}
	}
	return e.Extract(hand.Points[:])
}

// appendInterJointDistances appends the distance between consecutive
// joints along each finger chain (wrist, MCP, PIP, DIP, tip): four
// values per finger, proximal to distal, fingers in canonical order.
func appendInterJointDistances(dst []float64, pose *[detector.NumLandmarks]detector.Point3D) []float64 {
	for f := detector.Thumb; f < detector.NumFingers; f++ {
		joints := detector.FingerJoints[f]
		prev := pose[detector.Wrist]
		for _, idx := range joints {
			dst = append(dst, detector.Distance(pose[idx], prev))
			prev = pose[idx]
		}
	}
	return dst
}

// appendFingertipDistances appends the distance from each fingertip to
// the wrist, which is the origin after normalization.
func appendFingertipDistances(dst []float64, pose *[detector.NumLandmarks]detector.Point3D) []float64 {
	wrist := pose[detector.Wrist]
	for f := detector.Thumb; f < detector.NumFingers; f++ {
		dst = append(dst, detector.Distance(pose[detector.FingerTips[f]], wrist))
	}
	return dst
}

// appendFingerAngles appends the bend angle at each finger's PIP joint,
// formed by the vectors from PIP to MCP and from PIP to DIP. The angle
// is in radians in [0, pi]. If either vector is shorter than
// degenerateEps the joints are coincident and the angle is 0.0.
func appendFingerAngles(dst []float64, pose *[detector.NumLandmarks]detector.Point3D) []float64 {
	for f := detector.Thumb; f < detector.NumFingers; f++ {
		joints := detector.FingerJoints[f]
		mcp := pose[joints[0]]
		pip := pose[joints[1]]
		dip := pose[joints[2]]

		v1 := detector.Point3D{X: mcp.X - pip.X, Y: mcp.Y - pip.Y, Z: mcp.Z - pip.Z}
		v2 := detector.Point3D{X: dip.X - pip.X, Y: dip.Y - pip.Y, Z: dip.Z - pip.Z}

		norm1 := math.Sqrt(v1.X*v1.X + v1.Y*v1.Y + v1.Z*v1.Z)
		norm2 := math.Sqrt(v2.X*v2.X + v2.Y*v2.Y + v2.Z*v2.Z)

		if norm1 < degenerateEps || norm2 < degenerateEps {
			dst = append(dst, 0.0)
			continue
		}

		cos := (v1.X*v2.X + v1.Y*v2.Y + v1.Z*v2.Z) / (norm1 * norm2)
		// Clamp against floating-point drift before acos.
		if cos > 1.0 {
			cos = 1.0
		} else if cos < -1.0 {
			cos = -1.0
		}

		dst = append(dst, math.Acos(cos))
	}
	return dst
}

// pinchDistance returns the distance between the thumb tip and the
// index fingertip.
func pinchDistance(pose *[detector.NumLandmarks]detector.Point3D) float64 {
	return detector.Distance(pose[detector.IndexTip], pose[detector.ThumbTip])
}
