package renderer

import (
	"sync/atomic"

	"github.com/df07/go-cubemap-raytracer/pkg/core"
	"github.com/df07/go-cubemap-raytracer/pkg/integrator"
	"github.com/df07/go-cubemap-raytracer/pkg/scene"
)

// ChunkRenderer traces the pixels of a chunk into the shared image buffer
type ChunkRenderer struct {
	scene      *scene.Scene
	camera     *Camera
	integrator integrator.Integrator
	buffer     *ImageBuffer
	maxDepth   int
	completed  *atomic.Int64 // columns finished so far
}

// NewChunkRenderer creates a chunk renderer. completed is incremented once per finished column.
func NewChunkRenderer(s *scene.Scene, camera *Camera, integratorInst integrator.Integrator, buffer *ImageBuffer, maxDepth int, completed *atomic.Int64) *ChunkRenderer {
	return &ChunkRenderer{
		scene:      s,
		camera:     camera,
		integrator: integratorInst,
		buffer:     buffer,
		maxDepth:   maxDepth,
		completed:  completed,
	}
}

// RenderChunk traces every pixel of the chunk column by column and returns the pixel count
func (cr *ChunkRenderer) RenderChunk(chunk Chunk) int {
	column := make([]core.Vec3, cr.buffer.Height())
	pixels := 0

	for x := chunk.X0; x < chunk.X1; x++ {
		for y := range column {
			column[y] = cr.integrator.RayColor(cr.camera.GetRay(x, y), cr.scene, cr.maxDepth)
		}
		cr.buffer.SetColumn(x, column)
		pixels += len(column)

		cr.completed.Add(1)
	}

	return pixels
}

// RenderSkyColumn fills column x with the environment only, skipping triangle tracing
func (cr *ChunkRenderer) RenderSkyColumn(x int, column []core.Vec3) {
	for y := range column {
		column[y] = cr.integrator.Background(cr.camera.GetRay(x, y), cr.scene)
	}
	cr.buffer.SetColumn(x, column)
}
