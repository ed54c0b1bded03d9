package detector

import (
	"math"
	"testing"
)

func TestFingerJoints_ContiguousRanges(t *testing.T) {
	// Each finger occupies four consecutive landmark indices starting
	// right after the previous finger, with the thumb starting at 1.
	next := Wrist + 1
	for f := Thumb; f < NumFingers; f++ {
		joints := FingerJoints[f]
		for i, idx := range joints {
			if idx != next {
				t.Errorf("finger %s joint %d: index = %d, want %d", f, i, idx, next)
			}
			next++
		}
	}

	if next != NumLandmarks {
		t.Errorf("finger ranges cover %d landmarks, want %d", next, NumLandmarks)
	}
}

func TestFingerTips_MatchJointTable(t *testing.T) {
	for f := Thumb; f < NumFingers; f++ {
		if FingerTips[f] != FingerJoints[f][3] {
			t.Errorf("finger %s: tip index %d does not match last joint %d",
				f, FingerTips[f], FingerJoints[f][3])
		}
	}
}

func TestFinger_String(t *testing.T) {
	names := map[Finger]string{
		Thumb:  "thumb",
		Index:  "index",
		Middle: "middle",
		Ring:   "ring",
		Pinky:  "pinky",
	}

	for f, want := range names {
		if got := f.String(); got != want {
			t.Errorf("Finger(%d).String() = %q, want %q", f, got, want)
		}
	}

	if got := Finger(99).String(); got != "unknown" {
		t.Errorf("Finger(99).String() = %q, want %q", got, "unknown")
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Point3D
		want float64
	}{
		{"same point", Point3D{1, 2, 3}, Point3D{1, 2, 3}, 0},
		{"unit x", Point3D{0, 0, 0}, Point3D{1, 0, 0}, 1},
		{"pythagorean", Point3D{0, 0, 0}, Point3D{3, 4, 0}, 5},
		{"3d diagonal", Point3D{0, 0, 0}, Point3D{1, 2, 2}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Distance() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestDistance_Symmetric(t *testing.T) {
	a := Point3D{0.1, -0.4, 2.5}
	b := Point3D{-1.3, 0.7, 0.2}

	if d1, d2 := Distance(a, b), Distance(b, a); d1 != d2 {
		t.Errorf("Distance not symmetric: %f vs %f", d1, d2)
	}
}
