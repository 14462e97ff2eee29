package path

import (
	"github.com/df07/go-outdoor-mapgen/pkg/core"
)

// CatmullRom evaluates the uniform Catmull-Rom interpolant between p1 and p2
// at local parameter t ∈ [0,1], with p0 and p3 as the neighboring controls
func CatmullRom(p0, p1, p2, p3 core.Vec3, t float64) core.Vec3 {
	t2 := t * t
	t3 := t2 * t

	// 0.5 * (2*p1 + (-p0+p2)*t + (2*p0-5*p1+4*p2-p3)*t² + (-p0+3*p1-3*p2+p3)*t³)
	result := p1.Multiply(2)
	result = result.Add(p2.Subtract(p0).Multiply(t))
	result = result.Add(p0.Multiply(2).Subtract(p1.Multiply(5)).Add(p2.Multiply(4)).Subtract(p3).Multiply(t2))
	result = result.Add(p1.Multiply(3).Subtract(p0).Subtract(p2.Multiply(3)).Add(p3).Multiply(t3))
	return result.Multiply(0.5)
}

// CatmullRomTangent evaluates the derivative of the interpolant at local
// parameter t. The result is not normalized.
func CatmullRomTangent(p0, p1, p2, p3 core.Vec3, t float64) core.Vec3 {
	t2 := t * t

	result := p2.Subtract(p0)
	result = result.Add(p0.Multiply(2).Subtract(p1.Multiply(5)).Add(p2.Multiply(4)).Subtract(p3).Multiply(2 * t))
	result = result.Add(p1.Multiply(3).Subtract(p0).Subtract(p2.Multiply(3)).Add(p3).Multiply(3 * t2))
	return result.Multiply(0.5)
}
