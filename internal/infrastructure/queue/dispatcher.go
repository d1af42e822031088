package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/atelieranj/client-portal/internal/api/metrics"
	"github.com/atelieranj/client-portal/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Dispatcher routes side-channel jobs (spreadsheet sync, email copy) to a
// fixed set of workers using consistent hashing on the job key, so jobs for
// the same user or project keep their order. Processing failures are logged
// and counted, never surfaced to the workflow caller.
type Dispatcher struct {
	workers []chan ports.SideChannelJob
	sink    ports.SideChannel
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, sink ports.SideChannel, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.SideChannelJob, numWorkers),
		sink:    sink,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.SideChannelJob, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a job to the worker responsible for its key. Non-blocking up
// to channelBuffer capacity.
func (d *Dispatcher) Enqueue(job ports.SideChannelJob) {
	idx := d.shardIndex(job.Key())
	d.workers[idx] <- job
	metrics.SideChannelQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// shardIndex maps a job key deterministically to a worker index.
func (d *Dispatcher) shardIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.SideChannelJob) {
	worker := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-ch:
			if !ok {
				return
			}
			metrics.SideChannelQueueDepth.WithLabelValues(worker).Set(float64(len(ch)))
			if err := d.sink.Process(ctx, job); err != nil {
				metrics.SideChannelJobsTotal.WithLabelValues(string(job.Kind), "error").Inc()
				d.log.Error().Err(err).
					Str("kind", string(job.Kind)).
					Int("worker_id", id).
					Msg("side-channel job failed")
				continue
			}
			metrics.SideChannelJobsTotal.WithLabelValues(string(job.Kind), "ok").Inc()
		}
	}
}
