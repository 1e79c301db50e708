package asset

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFuture(t *testing.T) {
	t.Run("SettlesOnce", func(t *testing.T) {
		f := newFuture()
		f.settle("first", nil)
		f.settle("second", errors.New("ignored"))

		v, err := f.Await(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "first", v)
	})

	t.Run("AwaitHonoursContext", func(t *testing.T) {
		f := newFuture()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		_, err := f.Await(ctx)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("Async", func(t *testing.T) {
		release := make(chan struct{})
		f := Async(func() (Asset, error) {
			<-release
			return 7, nil
		})

		select {
		case <-f.Done():
			t.Fatal("future settled early")
		default:
		}

		close(release)
		v, err := f.Await(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 7, v)
	})

	t.Run("NilFuture", func(t *testing.T) {
		var f *Future
		_, err := f.Await(context.Background())
		assert.ErrorIs(t, err, ErrInvalidRequest)
	})
}
