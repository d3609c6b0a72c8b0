package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/df07/court-model/pkg/court"
	"github.com/df07/court-model/pkg/export"
	"github.com/df07/court-model/pkg/scene"
	"github.com/npillmayer/schuko/tracing"
)

const (
	defaultFilename = "tennis_court.glb"
	// containerOutputDir is used for bare file names when it exists
	containerOutputDir = "/app/output"
)

var traceKeys = []string{"geometry", "court", "export"}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run executes the command line in args and returns the process exit status
func run(args []string, stdout io.Writer) int {
	// Parse command line flags
	flags := flag.NewFlagSet("court-model", flag.ContinueOnError)
	flags.SetOutput(stdout)
	output := flags.String("output", defaultFilename, "Output file name or path (.glb)")
	configPath := flags.String("config", "", "YAML file overriding court dimensions")
	printConfig := flags.Bool("print-config", false, "Print the effective court dimensions as YAML and exit")
	verbose := flags.Bool("verbose", false, "Trace geometry construction")
	help := flags.Bool("help", false, "Show help information")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	// Show help if requested
	if *help {
		fmt.Fprintln(stdout, "Tennis Court Model Generator")
		fmt.Fprintln(stdout, "Usage: court-model [options]")
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "Options:")
		flags.PrintDefaults()
		fmt.Fprintln(stdout)
		fmt.Fprintf(stdout, "A bare output name is written to %s when that directory exists,\n", containerOutputDir)
		fmt.Fprintln(stdout, "otherwise to the current directory.")
		return 0
	}

	setTraceLevel(*verbose)

	dims, err := loadDimensions(*configPath)
	if err != nil {
		fmt.Fprintf(stdout, "Error loading dimensions: %v\n", err)
		return 1
	}

	if *printConfig {
		data, err := dims.YAML()
		if err != nil {
			fmt.Fprintf(stdout, "Error rendering dimensions: %v\n", err)
			return 1
		}
		fmt.Fprint(stdout, string(data))
		return 0
	}

	outputPath := resolveOutputPath(*output, containerOutputDir)
	courtScene, err := generate(dims, outputPath)
	if err != nil {
		fmt.Fprintf(stdout, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "Tennis court model exported to %s\n", outputPath)
	printSummary(stdout, courtScene)
	return 0
}

// setTraceLevel quiets tracing unless verbose output was requested
func setTraceLevel(verbose bool) {
	level := tracing.LevelError
	if verbose {
		level = tracing.LevelDebug
	}
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}

// loadDimensions returns the default court, or the overrides in path
func loadDimensions(path string) (court.Dimensions, error) {
	if path == "" {
		return court.DefaultDimensions(), nil
	}
	return court.LoadDimensions(path)
}

// resolveOutputPath places a bare file name in containerDir when that
// directory exists. Names that carry a directory are used as given.
func resolveOutputPath(name, containerDir string) string {
	if name == "" {
		name = defaultFilename
	}
	if filepath.Base(name) != name {
		return name
	}
	if info, err := os.Stat(containerDir); err == nil && info.IsDir() {
		return filepath.Join(containerDir, name)
	}
	return name
}

// generate builds the court and writes it to outputPath
func generate(dims court.Dimensions, outputPath string) (*scene.Scene, error) {
	courtScene, err := court.Build(dims)
	if err != nil {
		return nil, fmt.Errorf("building court: %w", err)
	}
	if err := export.WriteFile(outputPath, courtScene); err != nil {
		return nil, fmt.Errorf("exporting court: %w", err)
	}
	return courtScene, nil
}

func printSummary(w io.Writer, s *scene.Scene) {
	bbox := s.BoundingBox()
	size := bbox.Size()
	fmt.Fprintf(w, "Solids: %d, vertices: %d, triangles: %d\n",
		s.Len(), s.GetVertexCount(), s.GetTriangleCount())
	fmt.Fprintf(w, "Bounds: %.3f x %.3f x %.3f m\n", size.X, size.Y, size.Z)
}
