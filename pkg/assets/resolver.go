package assets

import (
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// FuzzyThreshold is the minimum similarity score for a fuzzy role match.
// Scores below it leave the file unassigned rather than guessing.
const FuzzyThreshold = 0.6

// AssetFile records the outcome of resolving one filename.
// Confidence is 1.0 for exact keyword containment, the similarity score for
// fuzzy matches, and 0 when no role matched.
type AssetFile struct {
	Path       string
	Role       Role
	Confidence float64
}

// RoleTable maps roles to the files resolved for them, preserving insertion
// order within each role. A file appears in at most one role's list.
type RoleTable struct {
	files map[Role][]AssetFile
}

// NewRoleTable creates an empty role table
func NewRoleTable() *RoleTable {
	return &RoleTable{files: make(map[Role][]AssetFile)}
}

// Add appends a resolved file to its role's list
func (t *RoleTable) Add(file AssetFile) {
	if file.Role == RoleNone {
		return
	}
	t.files[file.Role] = append(t.files[file.Role], file)
}

// Files returns the resolved files for a role in insertion order
func (t *RoleTable) Files(role Role) []AssetFile {
	return t.files[role]
}

// Roles returns every role with at least one resolved file, in vocabulary order
func (t *RoleTable) Roles() []Role {
	var roles []Role
	for _, role := range Vocabulary {
		if len(t.files[role]) > 0 {
			roles = append(roles, role)
		}
	}
	return roles
}

// Len returns the total number of resolved files across all roles
func (t *RoleTable) Len() int {
	n := 0
	for _, files := range t.files {
		n += len(files)
	}
	return n
}

var trailingNoise = regexp.MustCompile(`^(\d+|lod\d*)$`)

// Normalize reduces a filename to a comparable key: lower-cased, extension
// stripped, trailing numeric and LOD suffix tokens removed, separators dropped.
// "PineTree_LOD1.fbx" and "pinetree" normalize to the same key.
func Normalize(name string) string {
	base := strings.ToLower(filepath.Base(name))
	base = strings.TrimSuffix(base, filepath.Ext(base))

	tokens := strings.FieldsFunc(base, func(r rune) bool {
		return r == '_' || r == '-' || r == ' ' || r == '.'
	})
	for len(tokens) > 1 && trailingNoise.MatchString(tokens[len(tokens)-1]) {
		tokens = tokens[:len(tokens)-1]
	}
	return strings.Join(tokens, "")
}

// normalizeKeyword lower-cases a keyword and drops its separators, keeping the
// numeric family suffixes that Normalize would strip: "tree_1" must stay
// "tree1" or every tree family would collapse into the first tree role.
func normalizeKeyword(keyword string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(keyword) {
		if r == '_' || r == '-' || r == ' ' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Resolver maps filenames to roles, exact keyword containment first and a
// similarity metric as fallback
type Resolver struct {
	metric *metrics.SorensenDice
}

// NewResolver creates a resolver with the default bigram Dice metric.
// Dice over bigrams ignores token order, so "PineTree" still scores high
// against "tree_pine".
func NewResolver() *Resolver {
	sd := metrics.NewSorensenDice()
	sd.NgramSize = 2
	return &Resolver{metric: sd}
}

// Resolve assigns a role to every filename. Input order does not matter: names
// are sorted first so the result is independent of filesystem enumeration.
// Returns one AssetFile per input name; files that matched no role carry
// RoleNone and are excluded from the table.
func (r *Resolver) Resolve(names []string) ([]AssetFile, *RoleTable) {
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Strings(sorted)

	table := NewRoleTable()
	files := make([]AssetFile, 0, len(sorted))
	for _, name := range sorted {
		file := r.resolveOne(name)
		files = append(files, file)
		table.Add(file)
	}
	return files, table
}

func (r *Resolver) resolveOne(name string) AssetFile {
	key := Normalize(name)

	// Exact pass: first keyword contained in the normalized name wins,
	// in vocabulary declaration order
	for _, role := range Vocabulary {
		for _, keyword := range role.Keywords() {
			if strings.Contains(key, normalizeKeyword(keyword)) {
				return AssetFile{Path: name, Role: role, Confidence: 1.0}
			}
		}
	}

	// Fuzzy pass: best score over every role's keywords; strictly-greater
	// comparison keeps ties on the earliest-declared role
	best := AssetFile{Path: name, Role: RoleNone}
	for _, role := range Vocabulary {
		for _, keyword := range role.Keywords() {
			score := strutil.Similarity(key, normalizeKeyword(keyword), r.metric)
			if score > best.Confidence {
				best = AssetFile{Path: name, Role: role, Confidence: score}
			}
		}
	}
	if best.Confidence < FuzzyThreshold {
		return AssetFile{Path: name, Role: RoleNone}
	}
	return best
}
