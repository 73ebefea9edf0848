package math

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestIdentity3(t *testing.T) {
	m := Identity3()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			want := 0.0
			if row == col {
				want = 1
			}
			if m.At(row, col) != want {
				t.Errorf("Identity3[%d][%d] = %v, want %v", row, col, m.At(row, col), want)
			}
		}
	}
}

func TestRotationFromEulerZero(t *testing.T) {
	if got := RotationFromEuler(0, 0, 0); got != Identity3() {
		t.Errorf("RotationFromEuler(0,0,0) = %v, want identity", got)
	}
}

func TestRotationFromEulerMatchesComposition(t *testing.T) {
	angles := [][3]float64{
		{math.Pi / 6, math.Pi / 4, math.Pi / 3},
		{-1.2, 0.4, 2.9},
		{0, math.Pi / 2, 0},
		{10, -7, 3},
	}
	for _, a := range angles {
		got := RotationFromEuler(a[0], a[1], a[2])
		want := RotateZ(a[2]).Mul(RotateY(a[1])).Mul(RotateX(a[0]))
		for i := range got {
			if math.Abs(got[i]-want[i]) > 1e-12 {
				t.Errorf("angles %v element %d: got %v, want %v", a, i, got[i], want[i])
			}
		}
	}
}

func TestRotationFromEulerOrthonormal(t *testing.T) {
	angles := [][3]float64{
		{0.1, 0.2, 0.3},
		{math.Pi, -math.Pi / 2, 1.5},
		{-3.3, 12.7, 0.01},
		{1e3, -1e3, 42},
	}
	for _, a := range angles {
		r := RotationFromEuler(a[0], a[1], a[2])
		dense := mat.NewDense(3, 3, r[:])

		var rrt mat.Dense
		rrt.Mul(dense, dense.T())
		if !mat.EqualApprox(&rrt, mat.NewDiagDense(3, []float64{1, 1, 1}), 1e-9) {
			t.Errorf("angles %v: R*R^T = %v, want identity", a, mat.Formatted(&rrt))
		}

		if det := mat.Det(dense); math.Abs(det-1) > 1e-9 {
			t.Errorf("angles %v: gonum det = %v, want 1", a, det)
		}
		if det := r.Determinant(); math.Abs(det-1) > 1e-9 {
			t.Errorf("angles %v: Determinant() = %v, want 1", a, det)
		}
	}
}

func TestRotationFromEulerPeriodic(t *testing.T) {
	a := RotationFromEuler(0.3, -0.7, 1.1)
	b := RotationFromEuler(0.3+2*math.Pi, -0.7-2*math.Pi, 1.1+4*math.Pi)
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-9 {
			t.Errorf("element %d not periodic: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestRotateZ90(t *testing.T) {
	m := RotateZ(math.Pi / 2)
	result := m.MulVec3(Vec3{1, 0, 0})

	// (1,0,0) rotated 90 degrees about Z should become (0,1,0)
	if math.Abs(result.X) > 1e-12 || math.Abs(result.Y-1) > 1e-12 || math.Abs(result.Z) > 1e-12 {
		t.Errorf("RotateZ 90: got %v, want (0, 1, 0)", result)
	}
}

func TestTransposeInvertsRotation(t *testing.T) {
	r := RotationFromEuler(0.5, 0.25, -1)
	v := Vec3{1, 2, 3}
	back := r.Transpose().MulVec3(r.MulVec3(v))
	if back.Distance(v) > 1e-12 {
		t.Errorf("R^T * R * v = %v, want %v", back, v)
	}
}

func TestMat3Rows(t *testing.T) {
	m := Mat3{1, 2, 3, 4, 5, 6, 7, 8, 9}
	rows := m.Rows()
	if rows[1][2] != 6 || rows[2][0] != 7 {
		t.Errorf("Rows() = %v, want row-major layout", rows)
	}
	if m.Determinant() != 0 {
		t.Errorf("singular matrix determinant = %v, want 0", m.Determinant())
	}
}
