package renderer

import (
	"fmt"
	"time"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/scene"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// RenderConfig contains configuration for parallel rendering
type RenderConfig struct {
	TileSize   int // Size of each square tile in pixels
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		TileSize:   64,
		NumWorkers: 0, // Auto-detect CPU count
	}
}

// Renderer turns a scene into a raster
type Renderer struct {
	scene  *scene.Scene
	config RenderConfig
	logger core.Logger
}

// NewRenderer creates a renderer. The scene must not be modified until Render returns.
func NewRenderer(s *scene.Scene, config RenderConfig, logger core.Logger) *Renderer {
	if config.TileSize <= 0 {
		config.TileSize = DefaultRenderConfig().TileSize
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	return &Renderer{
		scene:  s,
		config: config,
		logger: logger,
	}
}

// Render casts one primary ray per pixel and returns the finished raster.
// Pixels that hit an object get its shaded color, the rest the background color.
// It panics unless the image is wider than it is tall.
func (r *Renderer) Render() (*Raster, RenderStats) {
	startTime := time.Now()

	// Fail fast on the caller's goroutine rather than inside a worker
	NewCamera(r.scene)

	raster := NewRaster(r.scene.Width, r.scene.Height)
	tiles := NewTileGrid(r.scene.Width, r.scene.Height, r.config.TileSize)

	workerPool := NewWorkerPool(r.scene, len(tiles), r.config.NumWorkers)
	workerPool.Start()

	r.logger.Printf("Rendering %dx%d (%d objects) in %d tiles using %d workers...\n",
		r.scene.Width, r.scene.Height, len(r.scene.Objects), len(tiles), workerPool.GetNumWorkers())

	for i, tile := range tiles {
		workerPool.SubmitTask(TileTask{
			Tile:   tile,
			TaskID: i,
			Raster: raster,
		})
	}

	stats := RenderStats{Workers: workerPool.GetNumWorkers()}
	for range tiles {
		result, _ := workerPool.GetResult()
		stats.Merge(result.Stats)
	}
	workerPool.Stop()

	stats.Duration = time.Since(startTime)
	r.logger.Printf("Render completed in %v (%d hit, %d shadowed, %d background pixels)\n",
		stats.Duration, stats.HitPixels, stats.ShadowedPixels, stats.BackgroundPixels())

	return raster, stats
}

// Render renders a scene without progress logging
func Render(s *scene.Scene, config RenderConfig) (*Raster, RenderStats) {
	return NewRenderer(s, config, nopLogger{}).Render()
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...interface{}) {}
