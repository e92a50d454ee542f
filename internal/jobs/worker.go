// Package jobs runs periodic background work for the daemon.
package jobs

import (
	"context"
	"log/slog"
	"time"
)

// Task is one round of periodic work.
type Task interface {
	Run(ctx context.Context) error
}

// TaskFunc adapts a plain function to Task.
type TaskFunc func(ctx context.Context) error

func (f TaskFunc) Run(ctx context.Context) error {
	return f(ctx)
}

// Worker runs a Task on a fixed interval until stopped.
type Worker struct {
	name     string
	task     Task
	interval time.Duration
	logger   *slog.Logger
	stopChan chan struct{}
	doneChan chan struct{}
}

func NewWorker(name string, task Task, interval time.Duration, logger *slog.Logger) *Worker {
	return &Worker{
		name:     name,
		task:     task,
		interval: interval,
		logger:   logger.With(slog.String("worker", name)),
		stopChan: make(chan struct{}),
		doneChan: make(chan struct{}),
	}
}

// Start blocks running the task every interval until ctx is cancelled or
// Stop is called.
func (w *Worker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	defer close(w.doneChan)

	w.logger.Info("worker_started", slog.Duration("interval", w.interval))

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("worker_stopped", slog.String("reason", "context_cancelled"))
			return
		case <-w.stopChan:
			w.logger.Info("worker_stopped", slog.String("reason", "stop_requested"))
			return
		case <-ticker.C:
			if err := w.task.Run(ctx); err != nil {
				w.logger.Error("worker_task_failed", slog.String("error", err.Error()))
			}
		}
	}
}

// Stop signals the worker and waits for Start to return. It must be called
// at most once, after Start.
func (w *Worker) Stop() {
	close(w.stopChan)
	<-w.doneChan
}
