package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/df07/go-outdoor-mapgen/pkg/assets"
	"github.com/df07/go-outdoor-mapgen/pkg/config"
	"github.com/df07/go-outdoor-mapgen/pkg/pipeline"
)

var (
	configPath string
	verbose    bool

	projectDir  string
	outputScene string
	seed        int64

	pathLength    float64
	controlPoints int
	pathWander    float64

	scatterInner      float64
	scatterOuter      float64
	objectsPerSegment int
	minSpacing        float64

	noTextures bool
)

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "mapgen.toml", "Path to TOML config file")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	flags.StringVar(&projectDir, "project-dir", "", "Godot project directory to generate into")
	flags.StringVar(&outputScene, "output", "", "Output scene filename inside the project")
	flags.Int64Var(&seed, "seed", 0, "Random seed for path and placement")

	flags.Float64Var(&pathLength, "path-length", 0, "Target arc length of the main path")
	flags.IntVar(&controlPoints, "control-points", 0, "Number of spline control points")
	flags.Float64Var(&pathWander, "wander", 0, "Lateral wander of interior control points")

	flags.Float64Var(&scatterInner, "scatter-inner", 0, "Inner scatter radius around the path")
	flags.Float64Var(&scatterOuter, "scatter-outer", 0, "Outer scatter radius around the path")
	flags.IntVar(&objectsPerSegment, "objects-per-segment", 0, "Placement candidates per path segment")
	flags.Float64Var(&minSpacing, "min-spacing", 0, "Minimum distance between placed objects")

	flags.BoolVar(&noTextures, "no-textures", false, "Skip texture extraction")
}

var rootCmd = &cobra.Command{
	Use:   "mapgen [workdir]",
	Short: "Generate a Godot outdoor map scene from a nature asset pack",
	Long: `mapgen locates a nature asset archive in the working directory, sorts its
models into placement roles, synthesizes a wandering path, scatters objects
around it, and writes a ready-to-open Godot scene. The same archive, config,
and seed always produce the same scene.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

		workDir := "."
		if len(args) == 1 {
			workDir = args[0]
		}

		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		// Flags the user actually set override the file
		overlay := map[string]func(){
			"project-dir":         func() { cfg.ProjectDir = projectDir },
			"output":              func() { cfg.OutputScene = outputScene },
			"seed":                func() { cfg.Seed = seed },
			"path-length":         func() { cfg.PathLength = pathLength },
			"control-points":      func() { cfg.PathControlPoints = controlPoints },
			"wander":              func() { cfg.PathWander = pathWander },
			"scatter-inner":       func() { cfg.ScatterInner = scatterInner },
			"scatter-outer":       func() { cfg.ScatterOuter = scatterOuter },
			"objects-per-segment": func() { cfg.ObjectsPerSegment = objectsPerSegment },
			"min-spacing":         func() { cfg.MinSpacing = minSpacing },
			"no-textures":         func() { cfg.ExtractTextures = !noTextures },
		}
		for name, apply := range overlay {
			if cmd.Flags().Changed(name) {
				apply()
			}
		}

		report, err := pipeline.Run(cfg, workDir)
		if err != nil {
			return err
		}

		printReport(cmd, report, cfg)
		return nil
	},
}

func printReport(cmd *cobra.Command, report *pipeline.Report, cfg config.Config) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Archive:    %s\n", report.ArchivePath)
	fmt.Fprintf(out, "Models:     %d found, %d resolved\n", report.ModelCount, report.ResolvedCount)
	fmt.Fprintf(out, "Extracted:  %d models, %d textures, %d wrapper scenes\n",
		report.Extracted, report.TexturesExtracted, report.Wrappers)
	fmt.Fprintf(out, "Path:       %.1f units\n", report.PathLength)
	fmt.Fprintf(out, "Placed:     %d objects\n", report.Placements)
	for _, role := range assets.Vocabulary {
		if n := report.PlacementsByRole[role.String()]; n > 0 {
			fmt.Fprintf(out, "  %-12s %d\n", role, n)
		}
	}
	if len(report.Warnings) > 0 {
		fmt.Fprintf(out, "Warnings:   %d (see log)\n", len(report.Warnings))
	}
	fmt.Fprintf(out, "Scene:      %s\n", cfg.OutputPath())
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
