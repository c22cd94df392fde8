// Package cron schedules the registered jobs.
package cron

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/hackhub/hackhub/pkg/jobs"
	"github.com/robfig/cron/v3"
)

// Scheduler is a cron-like job scheduler.
type Scheduler struct {
	*cron.Cron
	logger *log.Logger
}

// cronLogger adapts a charm logger to the cron logger interface.
type cronLogger struct {
	logger *log.Logger
}

// Info logs routine messages about cron's operation.
func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

// Error logs an error condition.
func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, append(keysAndValues, "err", err)...)
}

// NewScheduler returns a new Scheduler. Panicking jobs are recovered and
// logged.
func NewScheduler(ctx context.Context) *Scheduler {
	logger := log.FromContext(ctx).WithPrefix("cron")
	clog := cronLogger{logger}
	return &Scheduler{
		Cron:   cron.New(cron.WithLogger(clog), cron.WithChain(cron.Recover(clog))),
		logger: logger,
	}
}

// AddJobs schedules every registered job with a non-empty spec.
func (s *Scheduler) AddJobs(ctx context.Context) {
	all := jobs.List()
	for _, name := range jobs.Names() {
		j := all[name]
		spec := j.Runner.Spec(ctx)
		if spec == "" {
			s.logger.Debug("job disabled", "job", name)
			continue
		}

		id, err := s.AddFunc(spec, j.Runner.Func(ctx))
		if err != nil {
			s.logger.Warn("error adding cron job", "job", name, "spec", spec, "err", err)
			continue
		}

		j.ID = id
	}
}

// RemoveJobs unschedules every registered job.
func (s *Scheduler) RemoveJobs() {
	for _, j := range jobs.List() {
		if j.ID != 0 {
			s.Remove(j.ID)
			j.ID = 0
		}
	}
}

// Shutdown stops the scheduler and waits for running jobs to finish or ctx
// to be done.
func (s *Scheduler) Shutdown(ctx context.Context) error {
	select {
	case <-s.Cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Start starts the Scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
}

// AddFunc adds a job to the Scheduler.
func (s *Scheduler) AddFunc(spec string, fn func()) (int, error) {
	id, err := s.Cron.AddFunc(spec, fn)
	return int(id), err
}

// Remove removes a job from the Scheduler.
func (s *Scheduler) Remove(id int) {
	s.Cron.Remove(cron.EntryID(id))
}
