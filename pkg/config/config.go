package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config is the single immutable configuration value for one generation run.
// Defaults mirror the tool's built-in constants; an optional TOML file and CLI
// flags overlay them before validation. Nothing here changes after Validate.
type Config struct {
	ProjectDir   string `toml:"project_dir"`
	AssetsSubdir string `toml:"assets_subdir"`
	OutputScene  string `toml:"output_scene"`

	PathLength        float64 `toml:"path_length"`
	PathControlPoints int     `toml:"path_control_points"`
	PathWander        float64 `toml:"path_wander"`

	ScatterInner      float64 `toml:"scatter_inner"`
	ScatterOuter      float64 `toml:"scatter_outer"`
	SegmentLength     float64 `toml:"segment_length"`
	ObjectsPerSegment int     `toml:"objects_per_segment"`
	MinSpacing        float64 `toml:"min_spacing"`
	RetryBudget       int     `toml:"retry_budget"`

	GroundSize float64 `toml:"ground_size"`
	Seed       int64   `toml:"seed"`

	ExtractTextures bool `toml:"extract_textures"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		ProjectDir:   "./godot_project",
		AssetsSubdir: "assets/nature",
		OutputScene:  "generated_map.tscn",

		PathLength:        200.0,
		PathControlPoints: 8,
		PathWander:        18.0,

		ScatterInner:      2.5,
		ScatterOuter:      14.0,
		SegmentLength:     10.0,
		ObjectsPerSegment: 6,
		MinSpacing:        1.0,
		RetryBudget:       10,

		GroundSize: 500.0,
		Seed:       42,

		ExtractTextures: true,
	}
}

// Load returns the default configuration overlaid with the TOML file at path.
// A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations the pipeline cannot run with
func (c Config) Validate() error {
	if c.PathControlPoints < 2 {
		return fmt.Errorf("path_control_points must be at least 2, got %d", c.PathControlPoints)
	}
	if c.PathLength <= 0 {
		return fmt.Errorf("path_length must be positive, got %f", c.PathLength)
	}
	if c.PathWander < 0 {
		return fmt.Errorf("path_wander must not be negative, got %f", c.PathWander)
	}
	if c.ScatterInner < 0 || c.ScatterOuter <= c.ScatterInner {
		return fmt.Errorf("scatter band [%f, %f] is not a valid range", c.ScatterInner, c.ScatterOuter)
	}
	if c.SegmentLength <= 0 {
		return fmt.Errorf("segment_length must be positive, got %f", c.SegmentLength)
	}
	if c.ObjectsPerSegment < 0 {
		return fmt.Errorf("objects_per_segment must not be negative, got %d", c.ObjectsPerSegment)
	}
	if c.MinSpacing < 0 {
		return fmt.Errorf("min_spacing must not be negative, got %f", c.MinSpacing)
	}
	if c.RetryBudget < 0 {
		return fmt.Errorf("retry_budget must not be negative, got %d", c.RetryBudget)
	}
	return nil
}

// AssetsDir returns the absolute-ish path models are extracted into
func (c Config) AssetsDir() string {
	return filepath.Join(c.ProjectDir, filepath.FromSlash(c.AssetsSubdir))
}

// OutputPath returns the path of the generated map scene
func (c Config) OutputPath() string {
	return filepath.Join(c.ProjectDir, c.OutputScene)
}

// ResPath returns the engine-facing res:// path of the assets directory
func (c Config) ResPath() string {
	return "res://" + c.AssetsSubdir
}
