package path

import (
	"fmt"
	"math"
	"sort"

	"github.com/df07/go-outdoor-mapgen/pkg/core"
)

// arcSamples is the fixed number of steps used to build the arc-length table.
// 256 keeps the length estimate well inside the ±10% tolerance for the
// default path parameters.
const arcSamples = 256

// Spec holds the generation parameters for one path. Immutable input.
type Spec struct {
	ControlPoints int
	Wander        float64
	TargetLength  float64
}

// Sample is one point on the curve with its unit tangent
type Sample struct {
	Position core.Vec3
	Tangent  core.Vec3
}

// Curve is a Catmull-Rom interpolant over seeded control points with a
// precomputed arc-length table. Immutable once built; downstream stages only
// read from it.
type Curve struct {
	controls []core.Vec3
	arc      []float64 // cumulative arc length at parameter i/arcSamples
	length   float64
}

// Generate builds a winding curve from spec. The first and last control points
// anchor the path on the forward (+Z) axis at 0 and TargetLength; interior
// points are evenly spaced along it and displaced sideways by a uniform draw
// bounded by Wander. Fewer than two control points is a configuration error.
func Generate(spec Spec, sampler core.Sampler) (*Curve, error) {
	if spec.ControlPoints < 2 {
		return nil, fmt.Errorf("path requires at least 2 control points, got %d", spec.ControlPoints)
	}

	controls := make([]core.Vec3, spec.ControlPoints)
	step := spec.TargetLength / float64(spec.ControlPoints-1)
	controls[0] = core.NewVec3(0, 0, 0)
	for i := 1; i < spec.ControlPoints-1; i++ {
		offset := sampler.Range(-spec.Wander, spec.Wander)
		controls[i] = core.NewVec3(offset, 0, step*float64(i))
	}
	controls[spec.ControlPoints-1] = core.NewVec3(0, 0, spec.TargetLength)

	curve := &Curve{controls: controls}
	curve.buildArcTable()
	return curve, nil
}

// segment maps the natural parameter t ∈ [0,1] to a control segment and its
// four Catmull-Rom controls. End controls are duplicated (clamped tangents),
// so the curve never overshoots past the first or last point.
func (c *Curve) segment(t float64) (p0, p1, p2, p3 core.Vec3, local float64) {
	numSegments := len(c.controls) - 1
	u := math.Min(math.Max(t, 0), 1) * float64(numSegments)
	seg := int(u)
	if seg >= numSegments {
		seg = numSegments - 1
	}
	local = u - float64(seg)

	at := func(i int) core.Vec3 {
		if i < 0 {
			i = 0
		}
		if i >= len(c.controls) {
			i = len(c.controls) - 1
		}
		return c.controls[i]
	}
	return at(seg - 1), at(seg), at(seg + 1), at(seg + 2), local
}

// Sample evaluates the curve at its natural parameter t ∈ [0,1]
func (c *Curve) Sample(t float64) Sample {
	p0, p1, p2, p3, local := c.segment(t)
	return Sample{
		Position: CatmullRom(p0, p1, p2, p3, local),
		Tangent:  CatmullRomTangent(p0, p1, p2, p3, local).Normalize(),
	}
}

// SampleByDistance evaluates the curve at an arc-length distance from its
// start. Distances are clamped to [0, Length].
func (c *Curve) SampleByDistance(d float64) Sample {
	return c.Sample(c.paramAtDistance(d))
}

// Length returns the curve's approximate total arc length
func (c *Curve) Length() float64 {
	return c.length
}

// Controls returns the curve's control points. Callers must not modify them.
func (c *Curve) Controls() []core.Vec3 {
	return c.controls
}

// Start returns the first point of the path
func (c *Curve) Start() core.Vec3 {
	return c.controls[0]
}

func (c *Curve) buildArcTable() {
	c.arc = make([]float64, arcSamples+1)
	prev := c.Sample(0).Position
	for i := 1; i <= arcSamples; i++ {
		t := float64(i) / arcSamples
		pos := c.Sample(t).Position
		c.arc[i] = c.arc[i-1] + pos.Subtract(prev).Length()
		prev = pos
	}
	c.length = c.arc[arcSamples]
}

// paramAtDistance inverts the arc-length table: binary search for the bracket,
// then linear interpolation inside it
func (c *Curve) paramAtDistance(d float64) float64 {
	if d <= 0 {
		return 0
	}
	if d >= c.length {
		return 1
	}

	i := sort.SearchFloat64s(c.arc, d)
	if i <= 0 {
		return 0
	}
	lo, hi := c.arc[i-1], c.arc[i]
	frac := 0.0
	if hi > lo {
		frac = (d - lo) / (hi - lo)
	}
	return (float64(i-1) + frac) / arcSamples
}
