package renderer

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/df07/go-cubemap-raytracer/pkg/core"
)

const minDumpInterval = time.Second

// DumpInterval scales the snapshot interval with image width: ten seconds per 250 columns
func DumpInterval(width int) time.Duration {
	return max(time.Duration(width)*10*time.Second/250, minDumpInterval)
}

// Dumper periodically persists the shared buffer while chunks are being traced
type Dumper struct {
	buffer    *ImageBuffer
	path      string
	interval  time.Duration
	completed *atomic.Int64
	target    int64
	logger    core.Logger
	saves     int
}

// NewDumper creates a dumper that finishes once completed reaches the buffer width
func NewDumper(buffer *ImageBuffer, path string, interval time.Duration, completed *atomic.Int64, logger core.Logger) *Dumper {
	if interval <= 0 {
		interval = DumpInterval(buffer.Width())
	}
	return &Dumper{
		buffer:    buffer,
		path:      path,
		interval:  interval,
		completed: completed,
		target:    int64(buffer.Width()),
		logger:    logger,
	}
}

// Run wakes every interval and saves a snapshot. When it observes every column
// complete it saves once more and returns. A save error ends the loop.
func (d *Dumper) Run(ctx context.Context) error {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		done := d.completed.Load() >= d.target
		if err := saveSnapshot(d.buffer, d.path); err != nil {
			return err
		}
		d.saves++

		if done {
			d.logger.Printf("Final snapshot saved to %s\n", d.path)
			return nil
		}
		d.logger.Printf("Snapshot saved to %s (%d/%d columns)\n", d.path, d.completed.Load(), d.target)
	}
}

// Saves returns how many snapshots Run has written. Only valid after Run returns.
func (d *Dumper) Saves() int {
	return d.saves
}
