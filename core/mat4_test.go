package core

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-5

func transform(m *Mat4, x, y, z, w float32) [4]float32 {
	return [4]float32{
		m[0]*x + m[4]*y + m[8]*z + m[12]*w,
		m[1]*x + m[5]*y + m[9]*z + m[13]*w,
		m[2]*x + m[6]*y + m[10]*z + m[14]*w,
		m[3]*x + m[7]*y + m[11]*z + m[15]*w,
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	var p Mat4
	near, far := float32(0.1), float32(100.0)
	Perspective(&p, math.Pi/4, 16.0/9.0, near, far)

	nearClip := transform(&p, 0, 0, -near, 1)
	if ndc := nearClip[2] / nearClip[3]; math.Abs(float64(ndc+1)) > eps {
		t.Errorf("near plane maps to ndc depth %f, want -1", ndc)
	}

	farClip := transform(&p, 0, 0, -far, 1)
	if ndc := farClip[2] / farClip[3]; math.Abs(float64(ndc-1)) > eps {
		t.Errorf("far plane maps to ndc depth %f, want +1", ndc)
	}
}

func TestPerspectiveMatchesReference(t *testing.T) {
	var p Mat4
	Perspective(&p, math.Pi/3, 4.0/3.0, 0.5, 50)

	ref := mgl32.Perspective(math.Pi/3, 4.0/3.0, 0.5, 50)
	for i := 0; i < 16; i++ {
		if math.Abs(float64(p[i]-ref[i])) > eps {
			t.Errorf("element %d: got %f, want %f", i, p[i], ref[i])
		}
	}
}

func TestLookAtOrthonormalBasis(t *testing.T) {
	var v Mat4
	LookAt(&v, Vec3{3, 4, 5}, Vec3{0, 0, 0}, Vec3{0, 1, 0})

	x := Vec3{v[0], v[4], v[8]}
	y := Vec3{v[1], v[5], v[9]}
	z := Vec3{v[2], v[6], v[10]}

	for i, b := range []Vec3{x, y, z} {
		if l := b.Len(); math.Abs(float64(l-1)) > eps {
			t.Errorf("basis vector %d has length %f", i, l)
		}
	}
	if d := x.Dot(y); math.Abs(float64(d)) > eps {
		t.Errorf("x·y = %f, want 0", d)
	}
	if d := x.Dot(z); math.Abs(float64(d)) > eps {
		t.Errorf("x·z = %f, want 0", d)
	}
	if d := y.Dot(z); math.Abs(float64(d)) > eps {
		t.Errorf("y·z = %f, want 0", d)
	}
}

func TestLookAtMatchesReference(t *testing.T) {
	var v Mat4
	LookAt(&v, Vec3{0, 5, 12}, Vec3{0, 0, 0}, Vec3{0, 1, 0})

	ref := mgl32.LookAtV(mgl32.Vec3{0, 5, 12}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
	for i := 0; i < 16; i++ {
		if math.Abs(float64(v[i]-ref[i])) > eps {
			t.Errorf("element %d: got %f, want %f", i, v[i], ref[i])
		}
	}
}

func TestComposeOrder(t *testing.T) {
	// Translate, rotate, scale composed right to left: the point is
	// scaled first, then rotated, then translated.
	var m Mat4
	Identity(&m)
	Translate(&m, Vec3{1, 2, 3})
	RotateY(&m, math.Pi/2)
	Scale(&m, Vec3{2, 2, 2})

	got := transform(&m, 1, 0, 0, 1)
	want := [3]float32{1, 2, 1} // (2,0,0) rotated to (0,0,-2), then translated
	for i := 0; i < 3; i++ {
		if math.Abs(float64(got[i]-want[i])) > eps {
			t.Errorf("component %d: got %f, want %f", i, got[i], want[i])
		}
	}

	ref := mgl32.Translate3D(1, 2, 3).
		Mul4(mgl32.HomogRotate3DY(math.Pi / 2)).
		Mul4(mgl32.Scale3D(2, 2, 2))
	for i := 0; i < 16; i++ {
		if math.Abs(float64(m[i]-ref[i])) > eps {
			t.Errorf("element %d: got %f, want %f", i, m[i], ref[i])
		}
	}
}

func TestNormalFromMat4UniformScale(t *testing.T) {
	var m Mat4
	Identity(&m)
	Scale(&m, Vec3{2, 2, 2})

	var n Mat3
	if NormalFromMat4(&n, &m) == nil {
		t.Fatal("unexpected singular matrix")
	}

	want := Mat3{0.5, 0, 0, 0, 0.5, 0, 0, 0, 0.5}
	for i := 0; i < 9; i++ {
		if math.Abs(float64(n[i]-want[i])) > eps {
			t.Errorf("element %d: got %f, want %f", i, n[i], want[i])
		}
	}
}

func TestNormalFromMat4NonUniformScale(t *testing.T) {
	var m Mat4
	Identity(&m)
	Scale(&m, Vec3{1, 2, 4})

	var n Mat3
	if NormalFromMat4(&n, &m) == nil {
		t.Fatal("unexpected singular matrix")
	}

	want := Mat3{1, 0, 0, 0, 0.5, 0, 0, 0, 0.25}
	for i := 0; i < 9; i++ {
		if math.Abs(float64(n[i]-want[i])) > eps {
			t.Errorf("element %d: got %f, want %f", i, n[i], want[i])
		}
	}
}

func TestNormalFromMat4KeepsRotation(t *testing.T) {
	// For a pure rotation the inverse-transpose is the rotation itself.
	var m Mat4
	Identity(&m)
	RotateY(&m, 0.7)

	var n Mat3
	if NormalFromMat4(&n, &m) == nil {
		t.Fatal("unexpected singular matrix")
	}

	upper := [9]int{0, 1, 2, 4, 5, 6, 8, 9, 10}
	for i, mi := range upper {
		if math.Abs(float64(n[i]-m[mi])) > eps {
			t.Errorf("element %d: got %f, want %f", i, n[i], m[mi])
		}
	}
}

func TestNormalFromMat4Singular(t *testing.T) {
	var m Mat4
	Identity(&m)
	Scale(&m, Vec3{0, 1, 1})

	var n Mat3
	if NormalFromMat4(&n, &m) != nil {
		t.Error("expected nil for a zero-determinant matrix")
	}
}
