package feature

import (
	"fmt"

	"github.com/ayusman/mudra/internal/detector"
)

// ShapeError reports input that does not match the 21-landmark hand
// contract. It indicates a programming error in the upstream landmark
// source, not a transient condition.
type ShapeError struct {
	Got int // number of points received
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("landmark shape mismatch: got %d points, want %d", e.Got, detector.NumLandmarks)
}
