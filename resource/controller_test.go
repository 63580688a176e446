package resource

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_Memory(t *testing.T) {
	c := NewController(Config{MemoryLimitBytes: 100})

	err := c.AcquireMemory(50)
	require.NoError(t, err)
	assert.Equal(t, int64(50), c.MemoryUsage())

	err = c.AcquireMemory(40)
	require.NoError(t, err)
	assert.Equal(t, int64(90), c.MemoryUsage())

	// Limit exceeded
	err = c.AcquireMemory(20)
	assert.ErrorIs(t, err, ErrMemoryLimitExceeded)
	assert.Equal(t, int64(90), c.MemoryUsage())

	c.ReleaseMemory(50)
	assert.Equal(t, int64(40), c.MemoryUsage())

	err = c.AcquireMemory(20)
	require.NoError(t, err)
	assert.Equal(t, int64(60), c.MemoryUsage())
	assert.Equal(t, int64(100), c.MemoryLimit())
}

func TestController_UnlimitedMemory(t *testing.T) {
	c := NewController(Config{MemoryLimitBytes: 0})

	err := c.AcquireMemory(1000)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), c.MemoryUsage())

	c.ReleaseMemory(500)
	assert.Equal(t, int64(500), c.MemoryUsage())
	assert.Equal(t, int64(0), c.MemoryLimit())
}

func TestController_NilChecks(t *testing.T) {
	var c *Controller
	assert.NoError(t, c.AcquireMemory(10))
	c.ReleaseMemory(10) // Should not panic
	assert.Equal(t, int64(0), c.MemoryUsage())
	assert.NoError(t, c.AcquireIO(context.Background(), 10))
}

func TestController_IO(t *testing.T) {
	c := NewController(Config{IOLimitBytesPerSec: 1000})

	// The first burst is free; the next wait observes the cancelled context.
	require.NoError(t, c.AcquireIO(context.Background(), 1000))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, c.AcquireIO(ctx, 500))

	unlimited := NewController(Config{})
	assert.NoError(t, unlimited.AcquireIO(ctx, 1000000))
}

func TestController_AcquireIO_LargerThanBurst(t *testing.T) {
	c := NewController(Config{IOLimitBytesPerSec: 1 << 20})

	// Two bursts' worth must be split rather than rejected by the limiter.
	err := c.AcquireIO(context.Background(), 1<<20+1)
	assert.NoError(t, err)
}

func TestRateLimitedWriter(t *testing.T) {
	c := NewController(Config{IOLimitBytesPerSec: 10000})

	var buf bytes.Buffer
	w := NewRateLimitedWriter(context.Background(), &buf, c)

	n, err := w.Write([]byte("hello"))
	assert.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "hello", buf.String())
}

func TestRateLimitedReader(t *testing.T) {
	c := NewController(Config{IOLimitBytesPerSec: 10000})

	data := bytes.NewReader([]byte("hello world"))
	r := NewRateLimitedReader(context.Background(), data, c)

	buf := make([]byte, 5)
	n, err := r.Read(buf)
	assert.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "hello", string(buf))
}

func TestRateLimitedWriter_ContextCanceled(t *testing.T) {
	c := NewController(Config{IOLimitBytesPerSec: 1}) // Very slow
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	w := NewRateLimitedWriter(ctx, &buf, c)

	_, err := w.Write(make([]byte, 1000))
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}
