package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/df07/go-outdoor-mapgen/pkg/assets"
	"github.com/df07/go-outdoor-mapgen/pkg/config"
	"github.com/df07/go-outdoor-mapgen/pkg/core"
	"github.com/df07/go-outdoor-mapgen/pkg/godot"
	"github.com/df07/go-outdoor-mapgen/pkg/path"
	"github.com/df07/go-outdoor-mapgen/pkg/placement"
	"github.com/df07/go-outdoor-mapgen/pkg/scene"
)

// Report summarizes one generation run: what was found, what was placed, and
// every recoverable condition hit along the way
type Report struct {
	ArchivePath       string
	ModelCount        int
	ResolvedCount     int
	UnmatchedFiles    []string
	Extracted         int
	TexturesExtracted int
	Wrappers          int
	PathLength        float64
	Placements        int
	PlacementsByRole  map[string]int
	PlacementStats    placement.Stats
	Warnings          []string
}

func (r *Report) warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	slog.Warn(msg)
	r.Warnings = append(r.Warnings, msg)
}

// Run executes the whole generation pipeline: locate archive, resolve roles,
// extract assets, synthesize the path, scatter placements, compose the scene
// graph, and write the map scene. The stages run strictly in that order with
// one seeded generator threaded through path and placement, so the result is
// a pure function of (archive contents, cfg).
//
// Fatal conditions (missing archive, invalid config, write failure) return an
// error and leave no partial output; recoverable ones land in the report.
func Run(cfg config.Config, workDir string) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	report := &Report{PlacementsByRole: make(map[string]int)}

	// Stage 1: locate and inventory the asset archive
	archivePath, err := assets.FindArchive(workDir)
	if err != nil {
		return nil, fmt.Errorf("find archive: %w", err)
	}
	report.ArchivePath = archivePath
	slog.Info("found asset archive", "path", archivePath)

	models, err := assets.ListModels(archivePath)
	if err != nil {
		return nil, fmt.Errorf("list models: %w", err)
	}
	if len(models) == 0 {
		return nil, fmt.Errorf("archive %s contains no model files", archivePath)
	}
	report.ModelCount = len(models)

	// Stage 2: resolve filenames to roles
	files, table := assets.NewResolver().Resolve(assets.ModelNames(models))
	for _, file := range files {
		if file.Role == assets.RoleNone {
			report.UnmatchedFiles = append(report.UnmatchedFiles, file.Path)
		}
	}
	report.ResolvedCount = table.Len()
	slog.Info("resolved asset roles", "models", len(models), "resolved", table.Len(), "unmatched", len(report.UnmatchedFiles))

	for _, file := range report.UnmatchedFiles {
		report.warn("file %s matched no role", file)
	}
	for _, role := range assets.Vocabulary {
		if len(table.Files(role)) == 0 {
			report.warn("role %s has no assets, its placements will be skipped", role)
		}
	}

	// Stage 3: set up the project tree and extract assets
	if err := godot.EnsureProject(cfg.ProjectDir); err != nil {
		return nil, fmt.Errorf("set up project: %w", err)
	}
	report.Extracted, err = assets.Extract(archivePath, table, models, cfg.AssetsDir())
	if err != nil {
		return nil, fmt.Errorf("extract models: %w", err)
	}
	if cfg.ExtractTextures {
		report.TexturesExtracted, err = assets.ExtractTextures(archivePath, cfg.AssetsDir())
		if err != nil {
			return nil, fmt.Errorf("extract textures: %w", err)
		}
	}
	report.Wrappers, err = godot.WriteWrapperScenes(table, cfg.AssetsDir(), cfg.ResPath(), cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("write wrapper scenes: %w", err)
	}
	slog.Info("extracted assets", "models", report.Extracted, "textures", report.TexturesExtracted, "wrappers", report.Wrappers)

	// Stage 4: path synthesis and placement, sharing one seeded generator
	sampler := core.NewSeededSampler(cfg.Seed)
	curve, err := path.Generate(path.Spec{
		ControlPoints: cfg.PathControlPoints,
		Wander:        cfg.PathWander,
		TargetLength:  cfg.PathLength,
	}, sampler)
	if err != nil {
		return nil, fmt.Errorf("generate path: %w", err)
	}
	report.PathLength = curve.Length()
	slog.Info("generated path", "target_length", cfg.PathLength, "arc_length", curve.Length())

	placed, stats := placement.Place(curve, table, placement.DefaultZones(cfg.ScatterInner, cfg.ScatterOuter), placement.Config{
		SegmentLength:     cfg.SegmentLength,
		ObjectsPerSegment: cfg.ObjectsPerSegment,
		MinSpacing:        cfg.MinSpacing,
		RetryBudget:       cfg.RetryBudget,
	}, sampler)
	report.Placements = len(placed)
	report.PlacementStats = stats
	for _, p := range placed {
		report.PlacementsByRole[p.Role.String()]++
	}
	slog.Info("placed objects", "accepted", len(placed), "candidates", stats.Candidates)

	if stats.Dropped > 0 {
		report.warn("%d placement candidates dropped after retry budget", stats.Dropped)
	}
	if stats.SkippedDraws > 0 {
		report.warn("%d placement draws skipped", stats.SkippedDraws)
	}

	// Stage 5: compose and serialize the scene
	root := scene.Compose(placed)
	writer := &godot.Writer{Seed: cfg.Seed, ResPath: cfg.ResPath(), GroundSize: cfg.GroundSize}
	if err := writer.WriteMapScene(root, curve, cfg.OutputPath()); err != nil {
		return nil, fmt.Errorf("write map scene: %w", err)
	}
	slog.Info("wrote map scene", "path", cfg.OutputPath(), "nodes", root.Count())

	return report, nil
}
