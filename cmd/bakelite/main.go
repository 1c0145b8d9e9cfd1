package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/chazu/bakelite/pkg/enclosure"
	"github.com/chazu/bakelite/pkg/kernel/sdfx"
	"github.com/chazu/bakelite/pkg/param"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "bakelite",
	Short: "bakelite - parametric calculator enclosure generator",
	Long: `bakelite generates the parts of a handheld calculator enclosure
(bottom shell, top shell, display frame, logo indent, button cap) from a
single parameter table.

Each part is described as a CSG tree, lowered to signed distance
functions, and meshed with marching cubes.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// buildCmd meshes a single part and writes it as JSON
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build one enclosure part and write its mesh",
	RunE: func(cmd *cobra.Command, args []string) error {
		partName, _ := cmd.Flags().GetString("part")
		outPath, _ := cmd.Flags().GetString("out")
		cells, _ := cmd.Flags().GetInt("cells")

		table, err := loadTable()
		if err != nil {
			return err
		}

		solid, err := enclosure.Build(enclosure.Part(partName), table)
		if err != nil {
			return err
		}
		logger.Info("solid built", zap.String("part", partName))

		k := sdfx.New(cells)
		mesh, err := k.Mesh(partName, solid)
		if err != nil {
			return err
		}
		logger.Info("part meshed",
			zap.String("part", partName),
			zap.Int("triangles", mesh.TriangleCount()),
			zap.Int("vertices", mesh.VertexCount()))

		data, err := json.Marshal(mesh)
		if err != nil {
			return fmt.Errorf("failed to encode mesh: %w", err)
		}
		if outPath == "" || outPath == "-" {
			_, err = os.Stdout.Write(data)
			return err
		}
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", outPath, err)
		}
		logger.Info("mesh written", zap.String("path", outPath))
		return nil
	},
}

// partsCmd lists buildable parts
var partsCmd = &cobra.Command{
	Use:   "parts",
	Short: "List the buildable enclosure parts",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, p := range enclosure.Parts() {
			fmt.Println(p)
		}
		return nil
	},
}

// validateCmd checks a parameter table without building anything
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a parameter table",
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := loadTable()
		if err != nil {
			return err
		}
		problems := param.Validate(table)
		if len(problems) == 0 {
			fmt.Println("parameter table is valid")
			return nil
		}
		var b strings.Builder
		for _, p := range problems {
			fmt.Fprintf(&b, "  %s: %s\n", p.Field, p.Message)
		}
		return fmt.Errorf("%d validation error(s):\n%s", len(problems), b.String())
	},
}

// loadTable reads the parameter table named by --config, falling back
// to the built-in defaults.
func loadTable() (param.Table, error) {
	if configPath == "" {
		return param.Default(), nil
	}
	table, err := param.Load(configPath)
	if err != nil {
		return param.Table{}, fmt.Errorf("failed to load %s: %w", configPath, err)
	}
	logger.Info("parameter table loaded", zap.String("path", configPath))
	return table, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "parameter table YAML (defaults built in)")

	buildCmd.Flags().String("part", "", "part to build (see 'bakelite parts')")
	buildCmd.Flags().String("out", "-", "output path for the JSON mesh ('-' for stdout)")
	buildCmd.Flags().Int("cells", 0, "marching cubes resolution (0 selects the default)")
	_ = buildCmd.MarkFlagRequired("part")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(partsCmd)
	rootCmd.AddCommand(validateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
