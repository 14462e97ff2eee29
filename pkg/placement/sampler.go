package placement

import (
	"math"

	"github.com/df07/go-outdoor-mapgen/pkg/assets"
	"github.com/df07/go-outdoor-mapgen/pkg/core"
	"github.com/df07/go-outdoor-mapgen/pkg/path"
)

// Config holds the scatter parameters. Immutable input.
type Config struct {
	SegmentLength     float64
	ObjectsPerSegment int
	MinSpacing        float64
	RetryBudget       int
}

// PlacedObject is one accepted placement: the unit the output scene is built
// from. Immutable after creation.
type PlacedObject struct {
	Role     assets.Role
	Asset    assets.AssetFile
	Position core.Vec3
	Yaw      float64 // rotation about the vertical axis, radians
	Scale    float64
	Zone     string
	Offset   float64 // signed perpendicular distance from the path
}

// Stats aggregates the recoverable conditions hit during placement. None of
// them stop generation; the pipeline reports them as warnings.
type Stats struct {
	Candidates   int // candidate draws attempted, including retries
	Dropped      int // candidates dropped after the retry budget ran out
	SkippedDraws int // draws skipped for an empty role table or zone list
}

// Place scatters objects along the curve. The path is split into equal-length
// segments; each segment gets ObjectsPerSegment candidates drawn as: arc-length
// offset inside the segment, weighted zone pick, signed perpendicular offset
// within the zone's band. A candidate is accepted only when it clears
// MinSpacing against every prior acceptance; otherwise it is redrawn up to
// RetryBudget times and then dropped, thinning local density instead of
// violating the constraint.
//
// Every draw comes from the one threaded sampler, so the result is a pure
// function of the curve, the role table, and the sampler's seed.
func Place(curve *path.Curve, table *assets.RoleTable, zones []Zone, cfg Config, sampler core.Sampler) ([]PlacedObject, Stats) {
	var stats Stats

	segments := int(math.Ceil(curve.Length() / cfg.SegmentLength))
	if segments < 1 {
		segments = 1
	}
	draws := segments * cfg.ObjectsPerSegment

	roles := table.Roles()
	if len(roles) == 0 || len(zones) == 0 {
		stats.SkippedDraws = draws
		return nil, stats
	}

	roleWeights := make([]float64, len(roles))
	for i, role := range roles {
		roleWeights[i] = PropertiesFor(role).Weight
	}
	zoneWeights := make([]float64, len(zones))
	for i, zone := range zones {
		zoneWeights[i] = zone.DensityWeight
	}

	var placed []PlacedObject
	for seg := 0; seg < segments; seg++ {
		segStart := float64(seg) * cfg.SegmentLength
		segEnd := math.Min(segStart+cfg.SegmentLength, curve.Length())

		for i := 0; i < cfg.ObjectsPerSegment; i++ {
			object, ok := placeOne(curve, roles, roleWeights, zones, zoneWeights, table, cfg, sampler, placed, segStart, segEnd, &stats)
			if ok {
				placed = append(placed, object)
			}
		}
	}
	return placed, stats
}

func placeOne(curve *path.Curve, roles []assets.Role, roleWeights []float64, zones []Zone, zoneWeights []float64,
	table *assets.RoleTable, cfg Config, sampler core.Sampler, placed []PlacedObject, segStart, segEnd float64, stats *Stats) (PlacedObject, bool) {

	for try := 0; try <= cfg.RetryBudget; try++ {
		stats.Candidates++

		distance := sampler.Range(segStart, segEnd)
		zoneIdx := core.WeightedIndex(zoneWeights, sampler.Get1D())
		if zoneIdx < 0 {
			// All zone weights are zero; retrying cannot help
			stats.SkippedDraws++
			return PlacedObject{}, false
		}
		zone := zones[zoneIdx]

		offset := sampler.Range(zone.InnerRadius, zone.OuterRadius) * sampler.Sign()
		sample := curve.SampleByDistance(distance)
		normal := sample.Tangent.PerpXZ()
		position := sample.Position.Add(normal.Multiply(offset))

		if !clearsSpacing(position, placed, cfg.MinSpacing) {
			continue
		}

		roleIdx := core.WeightedIndex(roleWeights, sampler.Get1D())
		if roleIdx < 0 {
			stats.SkippedDraws++
			return PlacedObject{}, false
		}
		role := roles[roleIdx]
		files := table.Files(role)
		props := PropertiesFor(role)

		return PlacedObject{
			Role:     role,
			Asset:    files[sampler.Intn(len(files))],
			Position: position,
			Yaw:      core.SampleYaw(sampler.Get1D()),
			Scale:    sampler.Range(props.ScaleMin, props.ScaleMax),
			Zone:     zone.Name,
			Offset:   offset,
		}, true
	}

	stats.Dropped++
	return PlacedObject{}, false
}

// clearsSpacing reports whether a candidate keeps more than minSpacing of
// ground-plane distance to every accepted placement
func clearsSpacing(position core.Vec3, placed []PlacedObject, minSpacing float64) bool {
	for _, other := range placed {
		if position.DistanceXZ(other.Position) <= minSpacing {
			return false
		}
	}
	return true
}
