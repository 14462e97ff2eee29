package godot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-outdoor-mapgen/pkg/assets"
)

// EnsureProject creates the Godot project directory and a minimal
// project.godot when one is not already present
func EnsureProject(projectDir string) error {
	if err := os.MkdirAll(projectDir, 0o755); err != nil {
		return fmt.Errorf("create project dir: %w", err)
	}

	projectFile := filepath.Join(projectDir, "project.godot")
	if _, err := os.Stat(projectFile); err == nil {
		return nil
	}

	content := strings.Join([]string{
		"; Engine configuration file.",
		"",
		"config_version=5",
		"",
		"[application]",
		"",
		`config/name="GeneratedMap"`,
		`config/features=PackedStringArray("4.3", "Forward Plus")`,
		"",
	}, "\n")
	return writeFileAtomic(projectFile, []byte(content))
}

// WriteWrapperScenes writes one minimal .tscn next to each extracted model
// that instances the model file directly. The map scene references these
// wrappers rather than the raw models. Returns the number of wrappers written.
func WriteWrapperScenes(table *assets.RoleTable, assetsDir, resPath string, seed int64) (int, error) {
	written := 0
	for _, role := range table.Roles() {
		for _, file := range table.Files(role) {
			scenePath := filepath.Join(assetsDir, wrapperName(file.Path))
			if err := writeWrapperScene(file.Path, scenePath, resPath, seed); err != nil {
				return written, fmt.Errorf("wrapper for %s: %w", file.Path, err)
			}
			written++
		}
	}
	return written, nil
}

func writeWrapperScene(modelFile, scenePath, resPath string, seed int64) error {
	name := strings.TrimSuffix(modelFile, filepath.Ext(modelFile))
	sceneUID := makeUID(seed, "wrapper:"+modelFile)
	modelUID := makeUID(seed, "model:"+modelFile)

	content := fmt.Sprintf(
		"[gd_scene load_steps=2 format=3 uid=\"%s\"]\n\n"+
			"[ext_resource type=\"PackedScene\" uid=\"%s\" path=\"%s/%s\" id=\"1_%s\"]\n\n"+
			"[node name=\"%s\" instance=ExtResource(\"1_%s\")]\n",
		sceneUID, modelUID, resPath, modelFile, name, name, name)
	return writeFileAtomic(scenePath, []byte(content))
}

// wrapperName converts a model filename to its wrapper scene filename
func wrapperName(modelFile string) string {
	return strings.TrimSuffix(modelFile, filepath.Ext(modelFile)) + ".tscn"
}
