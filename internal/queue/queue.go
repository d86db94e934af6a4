// Package queue serializes outbound provider calls through a single worker.
// Tasks run one at a time in submission order, so a provider never sees more
// than one concurrent request from this process.
package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrQueueClosed is returned for submissions after Close.
var ErrQueueClosed = errors.New("queue closed")

type job struct {
	ctx    context.Context //nolint:containedctx // carried to the worker with the task
	run    func(context.Context) error
	result chan error
}

// Queue runs submitted tasks sequentially on one goroutine.
type Queue struct {
	jobs      chan job
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// New creates a queue and starts its worker.
func New() *Queue {
	q := &Queue{
		jobs: make(chan job),
		done: make(chan struct{}),
	}

	q.wg.Add(1)
	go q.loop()

	return q
}

// Enqueue hands task to the worker and blocks until it has settled.
// The returned error is the task's own outcome.
func (q *Queue) Enqueue(ctx context.Context, task func(context.Context) error) error {
	if task == nil {
		return errors.New("task cannot be nil")
	}

	j := job{ctx: ctx, run: task, result: make(chan error, 1)}

	select {
	case <-q.done:
		return ErrQueueClosed
	case q.jobs <- j:
	}

	return <-j.result
}

// Close stops the worker. Tasks already running are allowed to finish.
func (q *Queue) Close() {
	q.closeOnce.Do(func() {
		close(q.done)
	})
	q.wg.Wait()
}

func (q *Queue) loop() {
	defer q.wg.Done()

	for {
		select {
		case <-q.done:
			return
		case j := <-q.jobs:
			j.result <- execute(j)
		}
	}
}

func execute(j job) (err error) {
	if ctxErr := j.ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("queued task panicked: %v", r)
		}
	}()

	return j.run(j.ctx)
}

// Submit runs a value-returning task through q.
func Submit[T any](ctx context.Context, q *Queue, task func(context.Context) (T, error)) (T, error) {
	var result T
	err := q.Enqueue(ctx, func(ctx context.Context) error {
		value, taskErr := task(ctx)
		if taskErr != nil {
			return taskErr
		}
		result = value
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}
