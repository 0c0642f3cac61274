package renderer

import (
	"sync"

	"github.com/df07/go-pathtracer/pkg/core"
)

// PixelTask identifies one pixel of the frame
type PixelTask struct {
	X, Y int
}

// WorkerPool manages parallel pixel rendering
type WorkerPool struct {
	taskQueue  chan PixelTask
	workers    []*Worker
	numWorkers int
	wg         sync.WaitGroup
}

// Worker handles individual pixel rendering tasks
type Worker struct {
	ID        int
	tracer    *pixelTracer
	sampler   *core.RandomSampler // owned by this worker, reseeded per pixel
	taskQueue chan PixelTask
	paths     int64
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(tracer *pixelTracer, numWorkers int) *WorkerPool {
	wp := &WorkerPool{
		taskQueue:  make(chan PixelTask, numWorkers*64),
		numWorkers: numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		worker := &Worker{
			ID:        i,
			tracer:    tracer,
			sampler:   core.NewSeededSampler(tracer.seed),
			taskQueue: wp.taskQueue,
		}
		wp.workers = append(wp.workers, worker)
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

// Stop closes the queue and waits until every submitted pixel is written
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
}

// SubmitTask submits a pixel task to the worker pool
func (wp *WorkerPool) SubmitTask(task PixelTask) {
	wp.taskQueue <- task
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// PathsTraced returns the camera paths traced by all workers. Only valid after Stop.
func (wp *WorkerPool) PathsTraced() int64 {
	var total int64
	for _, worker := range wp.workers {
		total += worker.paths
	}
	return total
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		w.sampler.Reseed(core.MixSeed(w.tracer.seed, w.tracer.pixelIndex(task.X, task.Y)))
		w.paths += w.tracer.renderPixel(task.X, task.Y, w.sampler)
	}
}
