package path

import (
	"math"
	"testing"

	"github.com/df07/go-outdoor-mapgen/pkg/core"
)

func TestGenerateRejectsDegenerateSpec(t *testing.T) {
	tests := []struct {
		name   string
		points int
	}{
		{"zero points", 0},
		{"one point", 1},
		{"negative points", -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := Spec{ControlPoints: tt.points, Wander: 10, TargetLength: 200}
			_, err := Generate(spec, core.NewSeededSampler(42))
			if err == nil {
				t.Errorf("Expected error for %d control points", tt.points)
			}
		})
	}
}

func TestGenerateStraightLine(t *testing.T) {
	spec := Spec{ControlPoints: 5, Wander: 0, TargetLength: 100}
	curve, err := Generate(spec, core.NewSeededSampler(1))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// With zero wander the curve is a straight segment along +Z
	if math.Abs(curve.Length()-100) > 0.01 {
		t.Errorf("Straight path length should be 100, got %f", curve.Length())
	}

	mid := curve.Sample(0.5)
	if math.Abs(mid.Position.X) > 1e-9 {
		t.Errorf("Straight path should stay on the Z axis, got X=%f", mid.Position.X)
	}
	if math.Abs(mid.Tangent.Z-1.0) > 1e-9 {
		t.Errorf("Straight path tangent should be +Z, got %v", mid.Tangent)
	}
}

func TestGenerateLengthTolerance(t *testing.T) {
	// seed=42, control_point_count=5, wander=10, target_length=200
	spec := Spec{ControlPoints: 5, Wander: 10, TargetLength: 200}
	curve, err := Generate(spec, core.NewSeededSampler(42))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if curve.Length() < 200*0.9 || curve.Length() > 200*1.1 {
		t.Errorf("Curve length %f outside ±10%% of target 200", curve.Length())
	}
}

func TestGenerateDeterminism(t *testing.T) {
	spec := Spec{ControlPoints: 5, Wander: 10, TargetLength: 200}

	c1, err := Generate(spec, core.NewSeededSampler(42))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	c2, err := Generate(spec, core.NewSeededSampler(42))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for i := 0; i <= 50; i++ {
		tParam := float64(i) / 50
		a, b := c1.Sample(tParam), c2.Sample(tParam)
		if a != b {
			t.Fatalf("Curves with identical seeds diverged at t=%f: %v vs %v", tParam, a, b)
		}
	}
}

func TestGenerateAnchorsEndpoints(t *testing.T) {
	spec := Spec{ControlPoints: 8, Wander: 18, TargetLength: 200}
	curve, err := Generate(spec, core.NewSeededSampler(7))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	start := curve.Sample(0).Position
	end := curve.Sample(1).Position
	if start.Subtract(core.NewVec3(0, 0, 0)).Length() > 1e-9 {
		t.Errorf("Path should start at the origin, got %v", start)
	}
	if end.Subtract(core.NewVec3(0, 0, 200)).Length() > 1e-9 {
		t.Errorf("Path should end at (0,0,200), got %v", end)
	}
}

func TestSampleTangentIsUnit(t *testing.T) {
	spec := Spec{ControlPoints: 8, Wander: 18, TargetLength: 200}
	curve, err := Generate(spec, core.NewSeededSampler(7))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for i := 0; i <= 20; i++ {
		s := curve.Sample(float64(i) / 20)
		if math.Abs(s.Tangent.Length()-1.0) > 1e-9 {
			t.Errorf("Tangent at t=%f not unit length: %f", float64(i)/20, s.Tangent.Length())
		}
	}
}

func TestSampleByDistance(t *testing.T) {
	spec := Spec{ControlPoints: 5, Wander: 10, TargetLength: 200}
	curve, err := Generate(spec, core.NewSeededSampler(42))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Distance 0 and full length hit the endpoints
	if got := curve.SampleByDistance(0).Position; got != curve.Sample(0).Position {
		t.Errorf("Distance 0 should map to t=0, got %v", got)
	}
	if got := curve.SampleByDistance(curve.Length()).Position; got != curve.Sample(1).Position {
		t.Errorf("Full distance should map to t=1, got %v", got)
	}

	// Out-of-range distances clamp instead of extrapolating
	if got := curve.SampleByDistance(-5).Position; got != curve.Sample(0).Position {
		t.Errorf("Negative distance should clamp to start, got %v", got)
	}
	if got := curve.SampleByDistance(curve.Length() + 5).Position; got != curve.Sample(1).Position {
		t.Errorf("Overlong distance should clamp to end, got %v", got)
	}

	// Walking the curve in equal distance steps covers roughly equal space
	stepLen := curve.Length() / 10
	prev := curve.SampleByDistance(0).Position
	for i := 1; i <= 10; i++ {
		pos := curve.SampleByDistance(stepLen * float64(i)).Position
		moved := pos.Subtract(prev).Length()
		if math.Abs(moved-stepLen) > stepLen*0.2 {
			t.Errorf("Step %d moved %f, expected about %f", i, moved, stepLen)
		}
		prev = pos
	}
}

func TestCatmullRomInterpolatesControls(t *testing.T) {
	p0 := core.NewVec3(0, 0, -1)
	p1 := core.NewVec3(0, 0, 0)
	p2 := core.NewVec3(1, 0, 1)
	p3 := core.NewVec3(1, 0, 2)

	// The interpolant passes through p1 at t=0 and p2 at t=1
	if got := CatmullRom(p0, p1, p2, p3, 0); got.Subtract(p1).Length() > 1e-12 {
		t.Errorf("CatmullRom(0) should equal p1, got %v", got)
	}
	if got := CatmullRom(p0, p1, p2, p3, 1); got.Subtract(p2).Length() > 1e-12 {
		t.Errorf("CatmullRom(1) should equal p2, got %v", got)
	}
}
