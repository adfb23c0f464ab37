package renderer

import (
	"sync/atomic"
	"time"

	"github.com/df07/go-cubemap-raytracer/pkg/core"
)

// ProgressMonitor reports completed columns on a fixed cadence. It only reads
// the counter and never holds up the workers or the dumper.
type ProgressMonitor struct {
	completed *atomic.Int64
	total     int64
	interval  time.Duration
	logger    core.Logger
	stop      chan struct{}
	done      chan struct{}
}

// NewProgressMonitor creates a monitor polling completed once per interval
func NewProgressMonitor(completed *atomic.Int64, total int, interval time.Duration, logger core.Logger) *ProgressMonitor {
	return &ProgressMonitor{
		completed: completed,
		total:     int64(total),
		interval:  interval,
		logger:    logger,
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// Start launches the polling goroutine
func (pm *ProgressMonitor) Start() {
	go pm.run()
}

// Stop ends polling and waits for the goroutine to exit
func (pm *ProgressMonitor) Stop() {
	close(pm.stop)
	<-pm.done
}

func (pm *ProgressMonitor) run() {
	defer close(pm.done)

	ticker := time.NewTicker(pm.interval)
	defer ticker.Stop()

	last := int64(-1)
	for {
		select {
		case <-pm.stop:
			return
		case <-ticker.C:
			completed := pm.completed.Load()
			if completed == last {
				continue
			}
			last = completed
			pm.logger.Printf("[PROGRESS] %d/%d columns (%.1f%%)\n",
				completed, pm.total, float64(completed)*100/float64(max(pm.total, 1)))
		}
	}
}
