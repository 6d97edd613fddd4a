package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-raycaster/pkg/renderer"
	"github.com/df07/go-raycaster/pkg/scene"
)

// sceneOverrides replaces scene settings when non-zero
type sceneOverrides struct {
	width, height int
	fov           float64
	legacySphere  bool
}

func main() {
	// Parse command line flags
	sceneName := flag.String("scene", "default", "Built-in scene name, scene file name, or path to a .scene file")
	width := flag.Int("width", 0, "Override image width in pixels (must exceed height)")
	height := flag.Int("height", 0, "Override image height in pixels")
	fov := flag.Float64("fov", 0, "Override vertical field of view in degrees")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	tileSize := flag.Int("tile", renderer.DefaultRenderConfig().TileSize, "Tile size in pixels")
	outputRoot := flag.String("output", "output", "Root directory for rendered images")
	legacySphere := flag.Bool("legacy-sphere", false, "Use the original renderer's sphere distance formula")
	list := flag.Bool("list", false, "List available scenes and exit")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		showHelp()
		return
	}

	if *list {
		if err := listScenes(); err != nil {
			log.Fatalf("Error listing scenes: %v", err)
		}
		return
	}

	fmt.Println("Starting Ray Caster...")

	selectedScene, err := createScene(*sceneName, sceneOverrides{
		width:        *width,
		height:       *height,
		fov:          *fov,
		legacySphere: *legacySphere,
	})
	if err != nil {
		fmt.Printf("Error creating scene: %v\n", err)
		os.Exit(1)
	}

	config := renderer.RenderConfig{
		TileSize:   *tileSize,
		NumWorkers: *workers,
	}
	raster, stats := renderer.NewRenderer(selectedScene, config, renderer.NewDefaultLogger()).Render()
	fmt.Printf("Average luminance: %.3f\n", renderer.CalculateAverageLuminance(raster))

	// Create output directory for this scene
	outputDir := filepath.Join(*outputRoot, outputName(*sceneName))
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		log.Fatalf("Error creating output directory: %v", err)
	}

	// Create timestamped filename
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))

	if err := savePNG(filename, raster); err != nil {
		log.Fatalf("Error saving render: %v", err)
	}

	fmt.Printf("Render saved as %s (%d tiles, %d workers)\n", filename, stats.Tiles, stats.Workers)
}

func showHelp() {
	fmt.Println("Ray Caster")
	fmt.Println("Usage: raycaster [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	if scenes, err := scene.ListAllScenes(); err == nil {
		for _, info := range scenes {
			fmt.Printf("  %-16s %s\n", info.ID, info.Description)
		}
	}
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.png")
}

func listScenes() error {
	scenes, err := scene.ListAllScenes()
	if err != nil {
		return err
	}
	for _, info := range scenes {
		fmt.Printf("%-16s %-8s %s\n", info.ID, info.Type, info.Name)
	}
	return nil
}

// createScene looks up a scene by name, applies command line overrides and validates the result
func createScene(name string, overrides sceneOverrides) (*scene.Scene, error) {
	s, err := scene.LookupScene(name)
	if err != nil {
		return nil, err
	}

	if overrides.width > 0 {
		s.Width = overrides.width
	}
	if overrides.height > 0 {
		s.Height = overrides.height
	}
	if overrides.fov > 0 {
		s.FOV = overrides.fov
	}
	if overrides.legacySphere {
		s.UseLegacySphereDistance()
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene %q: %v", name, err)
	}
	return s, nil
}

// outputName turns a scene name or file path into an output directory name
func outputName(sceneName string) string {
	base := filepath.Base(sceneName)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func savePNG(filename string, raster *renderer.Raster) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %v", filename, err)
	}

	if err := png.Encode(file, raster); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode PNG: %v", err)
	}
	return file.Close()
}
