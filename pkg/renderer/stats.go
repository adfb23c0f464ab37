package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width, Height int
	Chunks        int           // Number of column chunks dispatched
	Workers       int           // Size of the worker pool
	PixelsTraced  int           // Pixels traced by the chunk workers
	Snapshots     int           // Snapshots written, including the sky pre-pass
	SkyPass       time.Duration // Time spent on the environment-only pre-pass
	TracePass     time.Duration // Time from dispatch until workers and dumper joined
}
