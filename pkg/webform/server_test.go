package webform_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/webform"
)

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("nil handler", func(t *testing.T) {
		t.Parallel()

		err := webform.Run(context.Background(), webform.Config{}, nil, nil)
		assert.ErrorIs(t, err, webform.ErrNilHandler)
	})

	t.Run("shuts down cleanly on context cancel", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cfg := webform.Config{Addr: "127.0.0.1:0", ShutdownTimeout: time.Second}

		done := make(chan error, 1)
		go func() {
			done <- webform.Run(ctx, cfg, http.NewServeMux(), nil)
		}()

		time.Sleep(100 * time.Millisecond)
		cancel()

		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			require.Fail(t, "server did not shut down")
		}
	})

	t.Run("surfaces listen errors", func(t *testing.T) {
		t.Parallel()

		cfg := webform.Config{Addr: "256.0.0.1:bad", ShutdownTimeout: time.Second}
		err := webform.Run(context.Background(), cfg, http.NewServeMux(), nil)
		assert.Error(t, err)
	})
}
