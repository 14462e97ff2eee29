package placement

import "github.com/df07/go-outdoor-mapgen/pkg/assets"

// Properties configure how one role is placed: its draw weight relative to the
// other roles and the uniform scale jitter applied to each instance
type Properties struct {
	Weight   float64
	ScaleMin float64
	ScaleMax float64
}

// roleProperties mirrors the density intent of the source asset pack: ground
// cover dominates, trees are common, dead trees and boulders stay rare accents
var roleProperties = map[assets.Role]Properties{
	assets.RoleTreePine:  {Weight: 3.0, ScaleMin: 0.8, ScaleMax: 1.3},
	assets.RoleTreeOak:   {Weight: 3.0, ScaleMin: 0.8, ScaleMax: 1.3},
	assets.RoleTreeBare:  {Weight: 1.0, ScaleMin: 0.8, ScaleMax: 1.2},
	assets.RoleRockLarge: {Weight: 1.5, ScaleMin: 0.7, ScaleMax: 1.5},
	assets.RoleRockSmall: {Weight: 2.0, ScaleMin: 0.5, ScaleMax: 1.2},
	assets.RoleBush:      {Weight: 2.5, ScaleMin: 0.8, ScaleMax: 1.2},
	assets.RoleFern:      {Weight: 2.0, ScaleMin: 0.7, ScaleMax: 1.1},
	assets.RoleGrass:     {Weight: 4.0, ScaleMin: 0.8, ScaleMax: 1.4},
}

// PropertiesFor returns the placement properties for a role, with a neutral
// fallback so an unconfigured role still places sensibly
func PropertiesFor(role assets.Role) Properties {
	if props, ok := roleProperties[role]; ok {
		return props
	}
	return Properties{Weight: 1.0, ScaleMin: 1.0, ScaleMax: 1.0}
}
