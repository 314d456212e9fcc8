package core

import "math"

// Column-major 4x4 matrix, OpenGL memory layout. Element (row r, col c)
// lives at index c*4+r, so the slice can be handed to UniformMatrix4fv
// directly.
type Mat4 [16]float32

// Column-major 3x3 matrix, used for normal transforms.
type Mat3 [9]float32

type Vec3 [3]float32

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

func (v Vec3) Dot(o Vec3) float32 {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2]
}

func (v Vec3) Len() float32 {
	return float32(math.Sqrt(float64(v.Dot(v))))
}

// Normalized returns v scaled to unit length. A zero vector is returned
// unchanged; callers constructing a view basis from degenerate input get a
// degenerate basis, not a panic.
func (v Vec3) Normalized() Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec3{v[0] / l, v[1] / l, v[2] / l}
}

// Identity writes the identity matrix into out and returns it.
func Identity(out *Mat4) *Mat4 {
	*out = Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	return out
}

// Perspective writes a right-handed perspective projection into out. The
// view axis depth `near` maps to clip -1 and `far` to +1. aspect must be
// positive; the result is ill-defined otherwise.
func Perspective(out *Mat4, fovY, aspect, near, far float32) *Mat4 {
	f := float32(1.0 / math.Tan(float64(fovY)/2))
	nf := 1 / (near - far)
	*out = Mat4{}
	out[0] = f / aspect
	out[5] = f
	out[10] = (far + near) * nf
	out[11] = -1
	out[14] = 2 * far * near * nf
	return out
}

// LookAt writes a view matrix into out for a camera at eye looking at
// target with the given up hint. If up is parallel to the view direction
// the basis degenerates to zero vectors; no guard is applied.
func LookAt(out *Mat4, eye, target, up Vec3) *Mat4 {
	z := eye.Sub(target).Normalized()
	x := up.Cross(z).Normalized()
	y := z.Cross(x)

	*out = Mat4{
		x[0], y[0], z[0], 0,
		x[1], y[1], z[1], 0,
		x[2], y[2], z[2], 0,
		-x.Dot(eye), -y.Dot(eye), -z.Dot(eye), 1,
	}
	return out
}

// Translate composes a translation onto out in place (out = out * T) and
// returns it.
func Translate(out *Mat4, v Vec3) *Mat4 {
	out[12] += out[0]*v[0] + out[4]*v[1] + out[8]*v[2]
	out[13] += out[1]*v[0] + out[5]*v[1] + out[9]*v[2]
	out[14] += out[2]*v[0] + out[6]*v[1] + out[10]*v[2]
	out[15] += out[3]*v[0] + out[7]*v[1] + out[11]*v[2]
	return out
}

// Scale composes a per-axis scale onto out in place (out = out * S) and
// returns it.
func Scale(out *Mat4, v Vec3) *Mat4 {
	for i := 0; i < 4; i++ {
		out[i] *= v[0]
		out[4+i] *= v[1]
		out[8+i] *= v[2]
	}
	return out
}

// RotateY composes a rotation about the Y axis onto out in place
// (out = out * R) and returns it.
func RotateY(out *Mat4, rad float32) *Mat4 {
	s := float32(math.Sin(float64(rad)))
	c := float32(math.Cos(float64(rad)))

	a00, a01, a02, a03 := out[0], out[1], out[2], out[3]
	a20, a21, a22, a23 := out[8], out[9], out[10], out[11]

	out[0] = a00*c - a20*s
	out[1] = a01*c - a21*s
	out[2] = a02*c - a22*s
	out[3] = a03*c - a23*s
	out[8] = a00*s + a20*c
	out[9] = a01*s + a21*c
	out[10] = a02*s + a22*c
	out[11] = a03*s + a23*c
	return out
}

// NormalFromMat4 writes the inverse-transpose of the upper-left 3x3 block
// of m into out. Returns nil when the block is singular (zero determinant);
// the caller is expected to skip the normal transform for that draw.
func NormalFromMat4(out *Mat3, m *Mat4) *Mat3 {
	a00, a01, a02 := m[0], m[1], m[2]
	a10, a11, a12 := m[4], m[5], m[6]
	a20, a21, a22 := m[8], m[9], m[10]

	b01 := a22*a11 - a12*a21
	b11 := -a22*a10 + a12*a20
	b21 := a21*a10 - a11*a20

	det := a00*b01 + a01*b11 + a02*b21
	if det == 0 {
		return nil
	}
	inv := 1 / det

	// Transposed assignment yields the inverse-transpose in one pass.
	out[0] = b01 * inv
	out[3] = (-a22*a01 + a02*a21) * inv
	out[6] = (a12*a01 - a02*a11) * inv
	out[1] = b11 * inv
	out[4] = (a22*a00 - a02*a20) * inv
	out[7] = (-a12*a00 + a02*a10) * inv
	out[2] = b21 * inv
	out[5] = (-a21*a00 + a01*a20) * inv
	out[8] = (a11*a00 - a01*a10) * inv
	return out
}

// IdentityMat3 writes the identity into out and returns it.
func IdentityMat3(out *Mat3) *Mat3 {
	*out = Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
	return out
}
