package queue_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/nepersonaj/internal/queue"
)

func TestQueue_Submit(t *testing.T) {
	t.Run("should return the task result", func(t *testing.T) {
		q := queue.New()
		defer q.Close()

		result, err := queue.Submit(context.Background(), q, func(_ context.Context) (string, error) {
			return "done", nil
		})

		require.NoError(t, err)
		require.Equal(t, "done", result)
	})

	t.Run("should return the task error", func(t *testing.T) {
		q := queue.New()
		defer q.Close()

		sentinel := errors.New("provider failed")
		_, err := queue.Submit(context.Background(), q, func(_ context.Context) (int, error) {
			return 0, sentinel
		})

		require.ErrorIs(t, err, sentinel)
	})

	t.Run("should recover from a panicking task", func(t *testing.T) {
		q := queue.New()
		defer q.Close()

		err := q.Enqueue(context.Background(), func(_ context.Context) error {
			panic("kaboom")
		})
		require.ErrorContains(t, err, "kaboom")

		result, err := queue.Submit(context.Background(), q, func(_ context.Context) (int, error) {
			return 7, nil
		})
		require.NoError(t, err)
		require.Equal(t, 7, result)
	})

	t.Run("should not start a task whose context is already done", func(t *testing.T) {
		q := queue.New()
		defer q.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		ran := false
		err := q.Enqueue(ctx, func(_ context.Context) error {
			ran = true
			return nil
		})

		require.ErrorIs(t, err, context.Canceled)
		require.False(t, ran)
	})

	t.Run("should reject submissions after close", func(t *testing.T) {
		q := queue.New()
		q.Close()

		err := q.Enqueue(context.Background(), func(_ context.Context) error { return nil })
		require.ErrorIs(t, err, queue.ErrQueueClosed)
	})
}

func TestQueue_SerializesTasks(t *testing.T) {
	q := queue.New()
	defer q.Close()

	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})
	secondStarted := make(chan struct{})

	var mu sync.Mutex
	var order []string

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		_ = q.Enqueue(context.Background(), func(_ context.Context) error {
			close(firstStarted)
			<-releaseFirst
			mu.Lock()
			order = append(order, "first")
			mu.Unlock()
			return errors.New("first settles with failure")
		})
	}()

	<-firstStarted

	go func() {
		defer wg.Done()
		_ = q.Enqueue(context.Background(), func(_ context.Context) error {
			close(secondStarted)
			mu.Lock()
			order = append(order, "second")
			mu.Unlock()
			return nil
		})
	}()

	select {
	case <-secondStarted:
		t.Fatal("second task started before the first settled")
	case <-time.After(50 * time.Millisecond):
	}

	close(releaseFirst)
	wg.Wait()

	require.Equal(t, []string{"first", "second"}, order)
}
