package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "Bush.glb", "bush"},
		{"lod suffix", "PineTree_LOD1.fbx", "pinetree"},
		{"numeric suffix", "Rock_Small_02.glb", "rocksmall"},
		{"kaykit family name", "Tree_1_A_Color1.fbx", "tree1acolor1"},
		{"nested path", "models/fbx/Grass_1_B.fbx", "grass1b"},
		{"dash separators", "dead-tree-03.obj", "deadtree"},
		{"all digits keeps last token", "01_02.glb", "01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestResolveExactMatches(t *testing.T) {
	resolver := NewResolver()
	files, table := resolver.Resolve([]string{
		"PineTree_LOD1.fbx",
		"Rock_Small_02.glb",
		"Skybox_Day.png",
	})

	require.Len(t, files, 3)

	byPath := map[string]AssetFile{}
	for _, f := range files {
		byPath[f.Path] = f
	}

	assert.Equal(t, RoleTreePine, byPath["PineTree_LOD1.fbx"].Role)
	assert.Equal(t, 1.0, byPath["PineTree_LOD1.fbx"].Confidence)

	assert.Equal(t, RoleRockSmall, byPath["Rock_Small_02.glb"].Role)
	assert.Equal(t, 1.0, byPath["Rock_Small_02.glb"].Confidence)

	// Below threshold for every role: excluded but not an error
	assert.Equal(t, RoleNone, byPath["Skybox_Day.png"].Role)
	assert.Equal(t, 2, table.Len())
}

func TestResolveKayKitFamilies(t *testing.T) {
	resolver := NewResolver()
	_, table := resolver.Resolve([]string{
		"Tree_1_A_Color1.fbx",
		"Tree_3_B_Color1.fbx",
		"Rock_1_C_Color1.fbx",
		"Rock_3_F_Color1.fbx",
		"Bush_1_A_Color1.fbx",
		"Grass_1_A_Color1.fbx",
		"Grass_2_D_Color1.fbx",
	})

	assert.Len(t, table.Files(RoleTreePine), 1)
	assert.Len(t, table.Files(RoleTreeOak), 1)
	assert.Len(t, table.Files(RoleRockLarge), 1)
	assert.Len(t, table.Files(RoleRockSmall), 1)
	assert.Len(t, table.Files(RoleBush), 1)
	assert.Len(t, table.Files(RoleGrass), 1)
	// Grass_2 is the fern family; fern is declared before grass so it wins
	assert.Len(t, table.Files(RoleFern), 1)
}

func TestResolveFuzzyFallback(t *testing.T) {
	resolver := NewResolver()
	files, _ := resolver.Resolve([]string{"Pinne_Tree_2.glb"}) // typo, no exact containment

	require.Len(t, files, 1)
	assert.Equal(t, RoleTreePine, files[0].Role)
	assert.Less(t, files[0].Confidence, 1.0)
	assert.GreaterOrEqual(t, files[0].Confidence, FuzzyThreshold)
}

func TestResolveStability(t *testing.T) {
	names := []string{
		"Tree_1_A_Color1.fbx",
		"Rock_Small_02.glb",
		"Bush_1_A_Color1.fbx",
		"Skybox_Day.png",
	}
	reversed := []string{names[3], names[2], names[1], names[0]}

	resolver := NewResolver()
	filesA, tableA := resolver.Resolve(names)
	filesB, tableB := resolver.Resolve(reversed)

	// Same outcome regardless of input enumeration order
	assert.Equal(t, filesA, filesB)
	for _, role := range Vocabulary {
		assert.Equal(t, tableA.Files(role), tableB.Files(role), "role %s differs", role)
	}
}

func TestRoleTableSingleMembership(t *testing.T) {
	// A name matching several vocabularies lands only in the first-declared role
	resolver := NewResolver()
	_, table := resolver.Resolve([]string{"pine_oak_hybrid.glb"})

	assert.Len(t, table.Files(RoleTreePine), 1)
	assert.Empty(t, table.Files(RoleTreeOak))
	assert.Equal(t, 1, table.Len())
}

func TestRoleTableVocabularyOrder(t *testing.T) {
	table := NewRoleTable()
	table.Add(AssetFile{Path: "g.glb", Role: RoleGrass, Confidence: 1})
	table.Add(AssetFile{Path: "t.glb", Role: RoleTreePine, Confidence: 1})
	table.Add(AssetFile{Path: "r.glb", Role: RoleRockLarge, Confidence: 1})

	require.Equal(t, []Role{RoleTreePine, RoleRockLarge, RoleGrass}, table.Roles())
}
