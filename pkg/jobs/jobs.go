// Package jobs holds the periodic jobs run by the Hackhub server.
package jobs

import (
	"context"
	"sort"
	"sync"
)

// Job is a runner registered under a name, along with the scheduler entry it
// was given.
type Job struct {
	ID     int
	Runner Runner
}

// Runner is a periodic job.
type Runner interface {
	// Spec returns the cron schedule of the job. An empty spec disables it.
	Spec(context.Context) string
	// Func returns the function run on every tick.
	Func(context.Context) func()
}

var (
	mtx  sync.Mutex
	jobs = make(map[string]*Job)
)

// Register registers a job under name, replacing any previous job with the
// same name.
func Register(name string, runner Runner) {
	mtx.Lock()
	defer mtx.Unlock()
	jobs[name] = &Job{Runner: runner}
}

// List returns the registered jobs by name.
func List() map[string]*Job {
	mtx.Lock()
	defer mtx.Unlock()
	return jobs
}

// Names returns the names of the registered jobs in order.
func Names() []string {
	mtx.Lock()
	defer mtx.Unlock()
	names := make([]string, 0, len(jobs))
	for n := range jobs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
