package movement

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// JumpVelocity returns the launch speed that reaches height under gravity.
func JumpVelocity(height, gravity float32) float32 {
	return math32.Sqrt(height * -2 * gravity)
}

// ClampAngle wraps angle at most once into (-360, 360) and clamps it to [min, max].
func ClampAngle(angle, min, max float32) float32 {
	if angle < -360 {
		angle += 360
	}
	if angle > 360 {
		angle -= 360
	}
	return clamp(angle, min, max)
}

// Lerp interpolates from a to b with t clamped to [0, 1].
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*clamp(t, 0, 1)
}

// Round3 rounds v to three decimal places, halves to even.
func Round3(v float32) float32 {
	return roundHalfEven(v*1000) / 1000
}

func roundHalfEven(v float32) float32 {
	return float32(math.RoundToEven(float64(v)))
}

func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// normalize returns v with unit length, or the zero vector when v has no length.
func normalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l < 1e-5 {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}
