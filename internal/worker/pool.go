// Package worker prefetches episode preview audio in the background so
// native playback can start from the local cache.
package worker

import (
	"context"
	"log"
	"sync"
)

// Job identifies one preview to prefetch.
type Job struct {
	EpisodeID  string
	PreviewURL string
}

// Fetcher resolves a preview URL to a local file.
type Fetcher interface {
	Fetch(ctx context.Context, sourceURL string) (string, error)
}

// Pool manages background workers for prefetch jobs.
type Pool struct {
	fetcher Fetcher
	jobs    chan Job
	wg      sync.WaitGroup
}

// NewPool creates a worker pool with the given queue size.
func NewPool(fetcher Fetcher, queueSize int) *Pool {
	if queueSize < 1 {
		queueSize = 1
	}
	return &Pool{fetcher: fetcher, jobs: make(chan Job, queueSize)}
}

// Start launches the worker goroutines.
func (p *Pool) Start(workers int) {
	if workers < 1 {
		workers = 1
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				p.processJob(job)
			}
		}()
	}
}

// Stop waits for workers to finish after closing the queue.
func (p *Pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}

// Submit queues a job without blocking. When the queue is full the job is
// dropped; prefetching is opportunistic.
func (p *Pool) Submit(job Job) {
	select {
	case p.jobs <- job:
	default:
		log.Printf("WARN worker: dropping prefetch for %s", job.EpisodeID)
	}
}

func (p *Pool) processJob(job Job) {
	if job.PreviewURL == "" {
		return
	}

	path, err := p.fetcher.Fetch(context.Background(), job.PreviewURL)
	if err != nil {
		log.Printf("WARN worker: prefetch for %s failed: %v", job.EpisodeID, err)
		return
	}
	log.Printf("DEBUG worker: cached preview for %s at %s", job.EpisodeID, path)
}
