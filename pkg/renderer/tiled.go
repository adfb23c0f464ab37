package renderer

import (
	"context"
	"fmt"
	"image"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-cubemap-raytracer/pkg/core"
	"github.com/df07/go-cubemap-raytracer/pkg/integrator"
	"github.com/df07/go-cubemap-raytracer/pkg/scene"
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

// TiledConfig contains configuration for tiled rendering
type TiledConfig struct {
	ChunkSize        int           // Columns per chunk
	NumWorkers       int           // Number of parallel workers (0 = use CPU count)
	MaxDepth         int           // Bounce budget per primary ray
	IntermediatePath string        // Where snapshots are written during the render
	DumpInterval     time.Duration // Time between snapshots (0 = derive from width)
	ProgressInterval time.Duration // Time between progress reports
}

// DefaultTiledConfig returns sensible default values
func DefaultTiledConfig() TiledConfig {
	return TiledConfig{
		ChunkSize:        16,
		NumWorkers:       8,
		MaxDepth:         10,
		IntermediatePath: "intermediate.png",
		DumpInterval:     0,
		ProgressInterval: time.Second,
	}
}

// TiledRaytracer owns the scene, the camera and the shared image buffer for one render
type TiledRaytracer struct {
	scene      *scene.Scene
	camera     *Camera
	integrator integrator.Integrator
	config     TiledConfig
	buffer     *ImageBuffer
	logger     core.Logger
}

// NewTiledRaytracer creates a raytracer for a single render of s through camera
func NewTiledRaytracer(s *scene.Scene, camera *Camera, integratorInst integrator.Integrator, config TiledConfig, logger core.Logger) *TiledRaytracer {
	defaults := DefaultTiledConfig()
	if config.ChunkSize <= 0 {
		config.ChunkSize = defaults.ChunkSize
	}
	if config.IntermediatePath == "" {
		config.IntermediatePath = defaults.IntermediatePath
	}
	if config.ProgressInterval <= 0 {
		config.ProgressInterval = defaults.ProgressInterval
	}

	return &TiledRaytracer{
		scene:      s,
		camera:     camera,
		integrator: integratorInst,
		config:     config,
		buffer:     NewImageBuffer(camera.Width(), camera.Height()),
		logger:     logger,
	}
}

// Render runs the sky pre-pass, traces every chunk on the worker pool while the
// dumper saves snapshots, and returns the tone-mapped final image once workers
// and dumper have joined.
func (tr *TiledRaytracer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	width, height := tr.buffer.Width(), tr.buffer.Height()
	stats := RenderStats{Width: width, Height: height}

	var completed atomic.Int64
	chunkRenderer := NewChunkRenderer(tr.scene, tr.camera, tr.integrator, tr.buffer, tr.config.MaxDepth, &completed)

	// Sky pre-pass gives a cheap full-frame placeholder
	start := time.Now()
	tr.logger.Printf("Sky pre-pass: %dx%d pixels...\n", width, height)
	column := make([]core.Vec3, height)
	for x := 0; x < width; x++ {
		chunkRenderer.RenderSkyColumn(x, column)
	}
	if err := saveSnapshot(tr.buffer, tr.config.IntermediatePath); err != nil {
		return nil, stats, err
	}
	stats.Snapshots++
	stats.SkyPass = time.Since(start)
	tr.logger.Printf("Sky pre-pass completed in %v\n", stats.SkyPass)

	chunks := PartitionColumns(width, tr.config.ChunkSize)
	workerPool := NewWorkerPool(chunkRenderer, len(chunks), tr.config.NumWorkers)
	dumper := NewDumper(tr.buffer, tr.config.IntermediatePath, tr.config.DumpInterval, &completed, tr.logger)
	progress := NewProgressMonitor(&completed, width, tr.config.ProgressInterval, tr.logger)

	stats.Chunks = len(chunks)
	stats.Workers = workerPool.GetNumWorkers()
	tr.logger.Printf("Tracing %d chunks of %d columns with %d workers (depth %d, snapshots every %v)...\n",
		len(chunks), tr.config.ChunkSize, stats.Workers, tr.config.MaxDepth, dumper.interval)

	start = time.Now()
	progress.Start()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return dumper.Run(gctx)
	})
	g.Go(func() error {
		workerPool.Start()
		for _, chunk := range chunks {
			workerPool.SubmitTask(ChunkTask{Chunk: chunk, TaskID: chunk.ID})
		}
		workerPool.Stop()

		for {
			result, ok := workerPool.GetResult()
			if !ok {
				break
			}
			stats.PixelsTraced += result.Pixels
		}
		return nil
	})

	err := g.Wait()
	progress.Stop()
	stats.Snapshots += dumper.Saves()
	stats.TracePass = time.Since(start)
	if err != nil {
		return nil, stats, fmt.Errorf("render failed: %w", err)
	}

	tr.logger.Printf("Trace pass completed in %v (%d pixels, %d snapshots)\n",
		stats.TracePass, stats.PixelsTraced, stats.Snapshots)

	return tr.buffer.ToneMap(), stats, nil
}

// Buffer returns the shared radiance buffer
func (tr *TiledRaytracer) Buffer() *ImageBuffer {
	return tr.buffer
}
