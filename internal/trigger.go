package internal

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type Schedules struct {
	Sweep     string
	Priority  string
	Retention string
}

// Trigger drives the queue jobs on their schedules. Runs of the same job
// may overlap; store writes are guarded by the expected status.
type Trigger struct {
	cron      *cron.Cron
	queue     *Queue
	retention *Retention
	logger    *zap.SugaredLogger
	ctx       context.Context
}

func NewTrigger(ctx context.Context, queue *Queue, retention *Retention, s Schedules, logger *zap.SugaredLogger) (*Trigger, error) {
	c := cron.New(cron.WithChain(cron.Recover(cronLogger{logger})))
	t := &Trigger{cron: c, queue: queue, retention: retention, logger: logger, ctx: ctx}

	if _, err := c.AddFunc(s.Sweep, t.sweep); err != nil {
		return nil, err
	}
	if _, err := c.AddFunc(s.Priority, t.priorities); err != nil {
		return nil, err
	}
	if _, err := c.AddFunc(s.Retention, t.archive); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Trigger) Start() {
	t.cron.Start()
}

// Stop waits for running jobs to finish.
func (t *Trigger) Stop() {
	<-t.cron.Stop().Done()
}

func (t *Trigger) sweep() {
	res, err := t.queue.Sweep(t.ctx)
	if err != nil {
		t.logger.Errorf("queue sweep failed: %s", err.Error())
		return
	}
	if res.Started+res.Ready+res.Failed+res.Skipped > 0 {
		t.logger.Infof("queue sweep: evaluated=%d started=%d ready=%d failed=%d skipped=%d",
			res.Evaluated, res.Started, res.Ready, res.Failed, res.Skipped)
	}
}

func (t *Trigger) priorities() {
	if _, err := t.queue.RecomputePriorities(t.ctx); err != nil {
		t.logger.Errorf("priority recompute failed: %s", err.Error())
	}
}

func (t *Trigger) archive() {
	if _, err := t.retention.Archive(t.ctx); err != nil {
		t.logger.Errorf("retention sweep failed: %s", err.Error())
	}
}

type cronLogger struct {
	s *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.s.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.s.Errorw(msg, append(keysAndValues, "error", err)...)
}
