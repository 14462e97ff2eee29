package scene

import (
	"math"
	"testing"

	"github.com/df07/go-outdoor-mapgen/pkg/assets"
	"github.com/df07/go-outdoor-mapgen/pkg/core"
	"github.com/df07/go-outdoor-mapgen/pkg/placement"
)

func placedAt(role assets.Role, x, z float64) placement.PlacedObject {
	return placement.PlacedObject{
		Role:     role,
		Asset:    assets.AssetFile{Path: role.String() + ".fbx", Role: role, Confidence: 1},
		Position: core.NewVec3(x, 0, z),
		Scale:    1.0,
		Zone:     "near",
	}
}

func TestComposeGroupsByVocabularyOrder(t *testing.T) {
	// Discovery order deliberately reversed from vocabulary order
	placements := []placement.PlacedObject{
		placedAt(assets.RoleGrass, 0, 1),
		placedAt(assets.RoleRockLarge, 0, 2),
		placedAt(assets.RoleTreePine, 0, 3),
		placedAt(assets.RoleGrass, 0, 4),
	}

	root := Compose(placements)

	if root.Name != RootName {
		t.Errorf("Root name incorrect: got %q", root.Name)
	}
	if len(root.Children) != 3 {
		t.Fatalf("Expected 3 role groups, got %d", len(root.Children))
	}

	// Groups in vocabulary order regardless of discovery order
	expected := []string{"tree_pine", "rock_large", "grass"}
	for i, name := range expected {
		if root.Children[i].Name != name {
			t.Errorf("Group %d should be %q, got %q", i, name, root.Children[i].Name)
		}
	}

	// Leaves keep acceptance order within their group
	grass := root.Children[2]
	if len(grass.Children) != 2 {
		t.Fatalf("Expected 2 grass leaves, got %d", len(grass.Children))
	}
	if grass.Children[0].Transform.Origin.Z != 1 || grass.Children[1].Transform.Origin.Z != 4 {
		t.Error("Grass leaves should preserve acceptance order")
	}
	if grass.Children[0].Name != "0" || grass.Children[1].Name != "1" {
		t.Errorf("Leaf names should be sequential indexes, got %q, %q", grass.Children[0].Name, grass.Children[1].Name)
	}
}

func TestComposeEmptyPlacements(t *testing.T) {
	root := Compose(nil)

	if len(root.Children) != 0 {
		t.Errorf("Empty placements should yield a root with no groups, got %d", len(root.Children))
	}
	if root.Count() != 1 {
		t.Errorf("Tree should contain only the root, got %d nodes", root.Count())
	}
}

func TestYawScaleTransform(t *testing.T) {
	// Quarter turn with scale 2: basis x maps to (0,0,-1)*2... verify key cells
	tr := YawScaleTransform(math.Pi/2, 2.0, core.NewVec3(1, 2, 3))

	if math.Abs(tr.Basis[0]) > 1e-12 || math.Abs(tr.Basis[2]-2) > 1e-12 {
		t.Errorf("Quarter-turn basis row incorrect: %v", tr.Basis)
	}
	if tr.Basis[4] != 2.0 {
		t.Errorf("Vertical scale should be 2, got %f", tr.Basis[4])
	}
	if tr.Origin != core.NewVec3(1, 2, 3) {
		t.Errorf("Origin incorrect: %v", tr.Origin)
	}
}

func TestWalkVisitsDepthFirst(t *testing.T) {
	root := Compose([]placement.PlacedObject{
		placedAt(assets.RoleTreePine, 0, 1),
		placedAt(assets.RoleBush, 0, 2),
	})

	var order []string
	root.Walk(func(node *Node, parent *Node) {
		order = append(order, node.Name)
	})

	expected := []string{RootName, "tree_pine", "0", "bush", "0"}
	if len(order) != len(expected) {
		t.Fatalf("Walk visited %d nodes, expected %d", len(order), len(expected))
	}
	for i := range expected {
		if order[i] != expected[i] {
			t.Errorf("Walk order[%d] = %q, expected %q", i, order[i], expected[i])
		}
	}
}
