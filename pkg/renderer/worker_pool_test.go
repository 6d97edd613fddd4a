package renderer

import (
	"runtime"
	"testing"
)

func TestWorkerPool(t *testing.T) {
	s := newTestScene()
	raster := NewRaster(s.Width, s.Height)
	tiles := NewTileGrid(s.Width, s.Height, 3)

	pool := NewWorkerPool(s, len(tiles), 2)
	if pool.GetNumWorkers() != 2 {
		t.Errorf("Expected 2 workers, got %d", pool.GetNumWorkers())
	}
	pool.Start()

	for i, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: i, Raster: raster})
	}

	seen := make(map[int]bool)
	totalPixels := 0
	for range tiles {
		result, ok := pool.GetResult()
		if !ok {
			t.Fatal("Result queue closed early")
		}
		if seen[result.TaskID] {
			t.Errorf("Task %d reported twice", result.TaskID)
		}
		seen[result.TaskID] = true
		totalPixels += result.Stats.TotalPixels
	}
	pool.Stop()

	if len(seen) != len(tiles) {
		t.Errorf("Expected %d results, got %d", len(tiles), len(seen))
	}
	if totalPixels != s.Width*s.Height {
		t.Errorf("Expected %d pixels, got %d", s.Width*s.Height, totalPixels)
	}
	if _, ok := pool.GetResult(); ok {
		t.Error("Expected result queue to be closed after Stop")
	}
}

func TestWorkerPoolDefaultsToCPUCount(t *testing.T) {
	pool := NewWorkerPool(newTestScene(), 1, 0)
	if pool.GetNumWorkers() != runtime.NumCPU() {
		t.Errorf("Expected %d workers, got %d", runtime.NumCPU(), pool.GetNumWorkers())
	}
}
