package stats

import (
	"log"
	"time"

	"github.com/go-co-op/gocron"
)

// CacheSizer is the slice of the weather client the reporter needs.
type CacheSizer interface {
	CacheSize() int
}

// Reporter periodically logs the number of live cached snapshots. It only
// reads through the cache's public contract, so cached data and eviction
// semantics are untouched.
type Reporter struct {
	scheduler *gocron.Scheduler
	sizer     CacheSizer
	interval  time.Duration
}

// New creates a Reporter logging every interval.
func New(sizer CacheSizer, interval time.Duration) *Reporter {
	return &Reporter{
		scheduler: gocron.NewScheduler(time.UTC),
		sizer:     sizer,
		interval:  interval,
	}
}

// Start schedules the periodic job and starts the underlying scheduler.
func (r *Reporter) Start() error {
	_, err := r.scheduler.Every(r.interval).Do(func() {
		log.Printf("cache stats: %d live entries", r.sizer.CacheSize())
	})
	if err != nil {
		return err
	}

	r.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (r *Reporter) Stop() {
	if r.scheduler != nil {
		r.scheduler.Stop()
	}
}
