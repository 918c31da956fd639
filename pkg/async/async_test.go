package async_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/async"
)

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("returns the computed result", func(t *testing.T) {
		t.Parallel()

		f := async.Run(context.Background(), 21, func(_ context.Context, n int) (int, error) {
			return n * 2, nil
		})

		result, err := f.Await()
		require.NoError(t, err)
		assert.Equal(t, 42, result)
	})

	t.Run("propagates the computation error", func(t *testing.T) {
		t.Parallel()

		wantErr := errors.New("boom")
		f := async.Run(context.Background(), "x", func(_ context.Context, _ string) (string, error) {
			return "", wantErr
		})

		_, err := f.Await()
		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("pre-canceled context skips the computation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var calls atomic.Int32
		f := async.Run(ctx, 0, func(_ context.Context, _ int) (int, error) {
			calls.Add(1)
			return 1, nil
		})

		_, err := f.Await()
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, int32(0), calls.Load())
	})

	t.Run("await is repeatable", func(t *testing.T) {
		t.Parallel()

		f := async.Run(context.Background(), "hi", func(_ context.Context, s string) (string, error) {
			return s, nil
		})

		first, err := f.Await()
		require.NoError(t, err)
		second, err := f.Await()
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestAwaitWithTimeout(t *testing.T) {
	t.Parallel()

	t.Run("times out on a slow computation", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})
		f := async.Run(context.Background(), 0, func(_ context.Context, _ int) (int, error) {
			<-release
			return 1, nil
		})

		_, err := f.AwaitWithTimeout(10 * time.Millisecond)
		assert.ErrorIs(t, err, async.ErrTimeout)

		close(release)
		result, err := f.Await()
		require.NoError(t, err)
		assert.Equal(t, 1, result)
	})
}

func TestAll(t *testing.T) {
	t.Parallel()

	t.Run("results follow launch order", func(t *testing.T) {
		t.Parallel()

		delays := []time.Duration{30 * time.Millisecond, 0, 15 * time.Millisecond}
		futures := make([]*async.Future[int], len(delays))
		for i := range delays {
			futures[i] = async.Run(context.Background(), i, func(_ context.Context, n int) (int, error) {
				time.Sleep(delays[n])
				return n, nil
			})
		}

		results, err := async.All(futures...)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 2}, results)
	})

	t.Run("first error wins but all futures are drained", func(t *testing.T) {
		t.Parallel()

		errA := errors.New("a")
		errB := errors.New("b")
		futures := []*async.Future[int]{
			async.Run(context.Background(), 0, func(_ context.Context, _ int) (int, error) {
				time.Sleep(20 * time.Millisecond)
				return 0, errB
			}),
			async.Run(context.Background(), 0, func(_ context.Context, _ int) (int, error) {
				return 0, errA
			}),
			async.Run(context.Background(), 0, func(_ context.Context, _ int) (int, error) {
				return 7, nil
			}),
		}

		results, err := async.All(futures...)
		assert.ErrorIs(t, err, errB)
		assert.Equal(t, 7, results[2])
		assert.True(t, futures[1].Done())
	})
}
