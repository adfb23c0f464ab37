package renderer

import (
	"runtime"
	"sync"
)

// ChunkTask represents a chunk rendering task for the worker pool
type ChunkTask struct {
	Chunk  Chunk
	TaskID int
}

// ChunkResult contains the result from rendering a chunk
type ChunkResult struct {
	TaskID   int
	WorkerID int
	Columns  int // Columns traced
	Pixels   int // Pixels traced
}

// WorkerPool runs chunk tasks on a fixed number of goroutines
type WorkerPool struct {
	taskQueue   chan ChunkTask
	resultQueue chan ChunkResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker renders chunks until the task queue is closed
type Worker struct {
	ID          int
	renderer    *ChunkRenderer
	taskQueue   chan ChunkTask
	resultQueue chan ChunkResult
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// maxTasks bounds the queues so submitting never blocks.
func NewWorkerPool(renderer *ChunkRenderer, maxTasks, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan ChunkTask, maxTasks),
		resultQueue: make(chan ChunkResult, maxTasks),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			renderer:    renderer,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop closes the task queue and waits for every worker to finish its remaining tasks
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a chunk task to the worker pool
func (wp *WorkerPool) SubmitTask(task ChunkTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed chunk result
func (wp *WorkerPool) GetResult() (ChunkResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		// Chunks cover disjoint columns, so workers never write the same pixel
		pixels := w.renderer.RenderChunk(task.Chunk)

		w.resultQueue <- ChunkResult{
			TaskID:   task.TaskID,
			WorkerID: w.ID,
			Columns:  task.Chunk.Columns(),
			Pixels:   pixels,
		}
	}
}
