package assets

import "fmt"

// Role identifies the semantic category an asset file belongs to.
// The vocabulary is closed and ordered: resolution and scene composition
// both iterate roles in declaration order so results never depend on map order.
type Role int

const (
	RoleNone Role = iota // no role matched above threshold
	RoleTreePine
	RoleTreeOak
	RoleTreeBare
	RoleRockLarge
	RoleRockSmall
	RoleBush
	RoleFern
	RoleGrass
)

// Vocabulary lists every placeable role in declaration order
var Vocabulary = []Role{
	RoleTreePine,
	RoleTreeOak,
	RoleTreeBare,
	RoleRockLarge,
	RoleRockSmall,
	RoleBush,
	RoleFern,
	RoleGrass,
}

var roleNames = map[Role]string{
	RoleNone:      "none",
	RoleTreePine:  "tree_pine",
	RoleTreeOak:   "tree_oak",
	RoleTreeBare:  "tree_bare",
	RoleRockLarge: "rock_large",
	RoleRockSmall: "rock_small",
	RoleBush:      "bush",
	RoleFern:      "fern",
	RoleGrass:     "grass",
}

// roleKeywords maps each role to its canonical keyword patterns, most specific
// first. Keywords are matched against normalized filenames, so underscores are
// written here for readability but ignored during comparison.
// The numbered keywords mirror the KayKit pack's family naming (Tree_1 = pines,
// Tree_3 = oaks, Rock_1 = boulders, Rock_3 = small rocks, Grass_2 = ferns).
var roleKeywords = map[Role][]string{
	RoleTreePine:  {"tree_pine", "pine_tree", "pine", "tree_1"},
	RoleTreeOak:   {"tree_oak", "oak_tree", "oak", "tree_3"},
	RoleTreeBare:  {"tree_bare", "bare_tree", "dead_tree", "tree_dead"},
	RoleRockLarge: {"rock_large", "large_rock", "boulder", "rock_1"},
	RoleRockSmall: {"rock_small", "small_rock", "pebble", "rock_3"},
	RoleBush:      {"bush", "shrub"},
	RoleFern:      {"fern", "grass_2"},
	RoleGrass:     {"grass", "grass_1"},
}

func init() {
	// The vocabulary is fixed at build time; an empty keyword list would make a
	// role silently unmatchable, so treat it as a programming error.
	for _, role := range Vocabulary {
		if len(roleKeywords[role]) == 0 {
			panic(fmt.Sprintf("role %s has no keywords", role))
		}
	}
}

// String returns the role's snake_case name as used in scene node names
func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("role(%d)", int(r))
}

// Keywords returns the role's canonical keyword patterns in priority order
func (r Role) Keywords() []string {
	return roleKeywords[r]
}
