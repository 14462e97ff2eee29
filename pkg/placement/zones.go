package placement

// Zone is a named distance band around the path with its own radius range and
// placement-density weight. Configuration, not derived data.
type Zone struct {
	Name          string
	InnerRadius   float64
	OuterRadius   float64
	DensityWeight float64
}

// DefaultZones splits the scatter band [inner, outer] into near/mid/far thirds.
// Most objects land near the path so the walkable corridor reads as dense
// forest while the far band stays sparse.
func DefaultZones(inner, outer float64) []Zone {
	third := (outer - inner) / 3
	return []Zone{
		{Name: "near", InnerRadius: inner, OuterRadius: inner + third, DensityWeight: 0.5},
		{Name: "mid", InnerRadius: inner + third, OuterRadius: inner + 2*third, DensityWeight: 0.3},
		{Name: "far", InnerRadius: inner + 2*third, OuterRadius: outer, DensityWeight: 0.2},
	}
}
