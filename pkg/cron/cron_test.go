package cron

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hackhub/hackhub/pkg/config"
	"github.com/hackhub/hackhub/pkg/jobs"
	"github.com/matryer/is"
)

func TestCronLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)
	clogger := cronLogger{logger}
	clogger.Info("foo")
	clogger.Error(fmt.Errorf("bar"), "test")
	if buf.String() != "DEBU foo\nERRO test err=bar\n" {
		t.Errorf("unexpected log output: %s", buf.String())
	}
}

func TestSchedulerAddRemove(t *testing.T) {
	is := is.New(t)
	s := NewScheduler(context.TODO())
	id, err := s.AddFunc("* * * * *", func() {})
	is.NoErr(err)
	is.Equal(len(s.Entries()), 1)
	s.Remove(id)
	is.Equal(len(s.Entries()), 0)

	_, err = s.AddFunc("not a spec", func() {})
	is.True(err != nil)
}

type countRunner struct {
	spec string
	runs chan struct{}
}

func (r countRunner) Spec(context.Context) string { return r.spec }

func (r countRunner) Func(context.Context) func() {
	return func() { r.runs <- struct{}{} }
}

func TestSchedulerJobs(t *testing.T) {
	is := is.New(t)
	ctx := config.WithContext(context.TODO(), config.DefaultConfig())

	runs := make(chan struct{}, 4)
	jobs.Register("test-every-second", countRunner{"@every 1s", runs})
	jobs.Register("test-disabled", countRunner{"", runs})
	defer func() {
		delete(jobs.List(), "test-every-second")
		delete(jobs.List(), "test-disabled")
	}()

	s := NewScheduler(ctx)
	s.AddJobs(ctx)
	is.True(jobs.List()["test-every-second"].ID != 0)
	is.Equal(jobs.List()["test-disabled"].ID, 0)

	s.Start()
	select {
	case <-runs:
	case <-time.After(5 * time.Second):
		t.Fatal("job did not run")
	}

	s.RemoveJobs()
	is.Equal(len(s.Entries()), 0)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	is.NoErr(s.Shutdown(ctx))
}
