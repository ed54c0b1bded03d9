package feature

import (
	"math"

	"github.com/ayusman/mudra/internal/detector"
)

// degenerateEps is the threshold below which a length is treated as
// degenerate. Changing it would silently change every downstream
// feature vector.
const degenerateEps = 1e-6

// normalize makes a pose translation- and scale-invariant. All points
// are translated so the wrist sits exactly at the origin, then every
// coordinate is divided by the palm size: the norm of the translated
// middle finger MCP, identical to the wrist-to-middle-MCP distance
// before translation. A collapsed pose (palm size below degenerateEps)
// keeps a divisor of 1.0 so the output stays finite instead of
// magnifying noise.
func normalize(points []detector.Point3D) [detector.NumLandmarks]detector.Point3D {
	var out [detector.NumLandmarks]detector.Point3D

	wrist := points[detector.Wrist]
	for i := 0; i < detector.NumLandmarks; i++ {
		out[i] = detector.Point3D{
			X: points[i].X - wrist.X,
			Y: points[i].Y - wrist.Y,
			Z: points[i].Z - wrist.Z,
		}
	}

	m := out[detector.MiddleMCP]
	palm := math.Sqrt(m.X*m.X + m.Y*m.Y + m.Z*m.Z)
	if palm < degenerateEps {
		palm = 1.0
	}

	for i := 0; i < detector.NumLandmarks; i++ {
		out[i].X /= palm
		out[i].Y /= palm
		out[i].Z /= palm
	}

	return out
}
