package scene

import (
	"strconv"

	"github.com/df07/go-outdoor-mapgen/pkg/assets"
	"github.com/df07/go-outdoor-mapgen/pkg/placement"
)

// RootName is the name of the generated scene's root node
const RootName = "GeneratedMap"

// Compose assembles accepted placements into a scene graph: the root holds one
// grouping node per role present, in vocabulary order (not discovery order),
// and each group holds one leaf per placement in acceptance order. Determinism
// of this ordering is the component's contract; there is no other logic here.
func Compose(placements []placement.PlacedObject) *Node {
	root := &Node{Name: RootName}

	byRole := make(map[assets.Role][]placement.PlacedObject)
	for _, p := range placements {
		byRole[p.Role] = append(byRole[p.Role], p)
	}

	for _, role := range assets.Vocabulary {
		group := composeGroup(role, byRole[role])
		if group != nil {
			root.AddChild(group)
		}
	}
	return root
}

func composeGroup(role assets.Role, placements []placement.PlacedObject) *Node {
	if len(placements) == 0 {
		return nil
	}

	group := &Node{Name: role.String()}
	for i, p := range placements {
		transform := YawScaleTransform(p.Yaw, p.Scale, p.Position)
		group.AddChild(&Node{
			Name:        strconv.Itoa(i),
			Transform:   &transform,
			ResourceRef: p.Asset.Path,
		})
	}
	return group
}
