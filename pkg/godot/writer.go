package godot

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-outdoor-mapgen/pkg/core"
	"github.com/df07/go-outdoor-mapgen/pkg/path"
	"github.com/df07/go-outdoor-mapgen/pkg/scene"
)

// Sun angles for a bright mid-day scene, in degrees
const (
	sunAngleX = -50.0
	sunAngleY = -30.0
)

// Writer serializes a composed scene graph into the Godot text scene format.
// The grammar is owned by the engine; this component conforms to it.
type Writer struct {
	Seed       int64
	ResPath    string // res:// path of the extracted assets, e.g. "res://assets/nature"
	GroundSize float64
}

// WriteMapScene serializes the scene tree plus its environment nodes to
// destPath. The file is written to a temp location and renamed into place, so
// an I/O failure leaves no partial output. Identical trees and seeds produce
// byte-identical files.
func (w *Writer) WriteMapScene(root *scene.Node, curve *path.Curve, destPath string) error {
	refs := collectResourceRefs(root)
	ids := resourceIDs(refs)

	// ext resources + Curve3D/ground mesh/ground shape subresources + the scene itself
	loadSteps := len(refs) + 3 + 1

	var lines []string
	lines = append(lines, fmt.Sprintf("[gd_scene load_steps=%d format=3 uid=\"%s\"]", loadSteps, makeUID(w.Seed, "map_scene")))
	lines = append(lines, "")

	for _, ref := range refs {
		wrapper := w.ResPath + "/" + wrapperName(ref)
		lines = append(lines, fmt.Sprintf("[ext_resource type=\"PackedScene\" uid=\"%s\" path=\"%s\" id=\"%s\"]",
			makeUID(w.Seed, "wrapper:"+ref), wrapper, ids[ref]))
	}
	if len(refs) > 0 {
		lines = append(lines, "")
	}

	lines = append(lines, w.subResources(curve)...)
	lines = append(lines, w.environmentNodes(curve)...)
	lines = append(lines, placementNodes(root, ids)...)

	return writeFileAtomic(destPath, []byte(strings.Join(lines, "\n")))
}

// collectResourceRefs returns the distinct wrapper references in tree walk
// order, which is deterministic for identical input trees
func collectResourceRefs(root *scene.Node) []string {
	seen := make(map[string]bool)
	var refs []string
	root.Walk(func(node *scene.Node, _ *scene.Node) {
		if node.ResourceRef != "" && !seen[node.ResourceRef] {
			seen[node.ResourceRef] = true
			refs = append(refs, node.ResourceRef)
		}
	})
	return refs
}

// resourceIDs assigns the stable "N_name" ext resource ids the grammar uses
func resourceIDs(refs []string) map[string]string {
	ids := make(map[string]string, len(refs))
	for i, ref := range refs {
		base := strings.TrimSuffix(ref, filepath.Ext(ref))
		ids[ref] = fmt.Sprintf("%d_%s", i+1, sanitizeID(base))
	}
	return ids
}

func sanitizeID(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

func (w *Writer) subResources(curve *path.Curve) []string {
	var lines []string

	lines = append(lines, "[sub_resource type=\"PlaneMesh\" id=\"ground_mesh\"]")
	lines = append(lines, fmt.Sprintf("size = Vector2(%.1f, %.1f)", w.GroundSize, w.GroundSize))
	lines = append(lines, "")

	lines = append(lines, "[sub_resource type=\"WorldBoundaryShape3D\" id=\"ground_shape\"]")
	lines = append(lines, "")

	lines = append(lines, curveResource(curve, "path_curve")...)
	return lines
}

// curveResource bakes the path into a Curve3D sub-resource so the trail is
// visible in the engine. Interior points get in/out tangents from their
// neighbors for smooth rendering.
func curveResource(curve *path.Curve, id string) []string {
	const pointCount = 33

	points := make([]core.Vec3, pointCount)
	for i := range points {
		d := curve.Length() * float64(i) / float64(pointCount-1)
		points[i] = curve.SampleByDistance(d).Position
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("[sub_resource type=\"Curve3D\" id=\"%s\"]", id))
	lines = append(lines, fmt.Sprintf("point_count = %d", pointCount))
	for i, p := range points {
		lines = append(lines, fmt.Sprintf("point_%d/position = Vector3(%.2f, 0.02, %.2f)", i, p.X, p.Z))
		if i > 0 && i < pointCount-1 {
			dx := points[i+1].X - points[i-1].X
			dz := points[i+1].Z - points[i-1].Z
			lines = append(lines, fmt.Sprintf("point_%d/in = Vector3(%.2f, 0, %.2f)", i, -dx*0.2, -dz*0.2))
			lines = append(lines, fmt.Sprintf("point_%d/out = Vector3(%.2f, 0, %.2f)", i, dx*0.2, dz*0.2))
		}
	}
	lines = append(lines, "")
	return lines
}

func (w *Writer) environmentNodes(curve *path.Curve) []string {
	var lines []string

	lines = append(lines, fmt.Sprintf("[node name=\"%s\" type=\"Node3D\"]", scene.RootName))
	lines = append(lines, "")

	// Ground plane with collision, centered on the path midpoint
	lines = append(lines, "[node name=\"Ground\" type=\"StaticBody3D\" parent=\".\"]")
	lines = append(lines, fmt.Sprintf("transform = Transform3D(1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, %.1f)", curve.Length()/2))
	lines = append(lines, "")
	lines = append(lines, "[node name=\"GroundMesh\" type=\"MeshInstance3D\" parent=\"Ground\"]")
	lines = append(lines, "mesh = SubResource(\"ground_mesh\")")
	lines = append(lines, "")
	lines = append(lines, "[node name=\"GroundCollision\" type=\"CollisionShape3D\" parent=\"Ground\"]")
	lines = append(lines, "shape = SubResource(\"ground_shape\")")
	lines = append(lines, "")

	// Directional sun with warm daylight
	m := sunBasis()
	lines = append(lines, "[node name=\"Sun\" type=\"DirectionalLight3D\" parent=\".\"]")
	lines = append(lines, fmt.Sprintf("transform = Transform3D(%.4f, %.4f, %.4f, %.4f, %.4f, %.4f, %.4f, %.4f, %.4f, 0, 50, 0)",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8]))
	lines = append(lines, "light_color = Color(1.0, 0.95, 0.9, 1)")
	lines = append(lines, "light_energy = 2.0")
	lines = append(lines, "shadow_enabled = true")
	lines = append(lines, "")

	// Visible trail along the generated curve
	lines = append(lines, "[node name=\"PathTrail\" type=\"Path3D\" parent=\".\"]")
	lines = append(lines, "curve = SubResource(\"path_curve\")")
	lines = append(lines, "")

	// Static camera looking down the path start
	start := curve.Start()
	lines = append(lines, "[node name=\"Camera3D\" type=\"Camera3D\" parent=\".\"]")
	lines = append(lines, fmt.Sprintf("transform = Transform3D(1, 0, 0, 0, 0.9659, 0.2588, 0, -0.2588, 0.9659, %.2f, %.2f, %.2f)",
		start.X, start.Y+8.0, start.Z-10.0))
	lines = append(lines, "current = true")
	lines = append(lines, "fov = 70.0")
	lines = append(lines, "")

	return lines
}

// sunBasis builds the sun's rotation basis from the fixed mid-day angles
func sunBasis() [9]float64 {
	rx := sunAngleX * math.Pi / 180
	ry := sunAngleY * math.Pi / 180
	cx, sx := math.Cos(rx), math.Sin(rx)
	cy, sy := math.Cos(ry), math.Sin(ry)
	return [9]float64{
		cy, sx * sy, -cx * sy,
		0, cx, sx,
		sy, -sx * cy, cx * cy,
	}
}

// placementNodes emits the role group nodes and their instanced children in
// tree order: groups under the root, leaves under their group
func placementNodes(root *scene.Node, ids map[string]string) []string {
	var lines []string
	root.Walk(func(node *scene.Node, parent *scene.Node) {
		switch {
		case parent == nil:
			// Root already emitted with the environment
		case parent.Name == scene.RootName:
			lines = append(lines, fmt.Sprintf("[node name=\"%s\" type=\"Node3D\" parent=\".\"]", node.Name))
			lines = append(lines, "")
		default:
			lines = append(lines, fmt.Sprintf("[node name=\"%s\" parent=\"%s\" instance=ExtResource(\"%s\")]",
				node.Name, parent.Name, ids[node.ResourceRef]))
			if node.Transform != nil {
				lines = append(lines, "transform = "+formatTransform(*node.Transform))
			}
			lines = append(lines, "")
		}
	})
	return lines
}

// formatTransform renders a transform in the grammar's Transform3D form with
// fixed 4-decimal precision, so equal transforms always serialize equally
func formatTransform(t scene.Transform) string {
	b := t.Basis
	return fmt.Sprintf("Transform3D(%.4f, %.4f, %.4f, %.4f, %.4f, %.4f, %.4f, %.4f, %.4f, %.4f, %.4f, %.4f)",
		b[0], b[1], b[2], b[3], b[4], b[5], b[6], b[7], b[8], t.Origin.X, t.Origin.Y, t.Origin.Z)
}

// writeFileAtomic writes data to a temp file in the destination directory and
// renames it over the target, so readers never observe a partial file
func writeFileAtomic(destPath string, data []byte) error {
	dir := filepath.Dir(destPath)
	tmp, err := os.CreateTemp(dir, ".mapgen-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write %s: %w", destPath, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("sync %s: %w", destPath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close %s: %w", destPath, err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("chmod %s: %w", destPath, err)
	}
	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename into %s: %w", destPath, err)
	}
	return nil
}
