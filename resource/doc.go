// Package resource implements the Controller for shared memory and IO limits.
//
// The Controller provides centralized management of two resource types:
//
//   - Memory: Track and limit bytes held by buffers (non-blocking, fail-fast)
//   - IO: Rate-limit snapshot reads and writes (token bucket)
//
// # Architecture
//
//	┌───────────────────────────────────────────────┐
//	│                  Controller                   │
//	├──────────────────────┬────────────────────────┤
//	│  Memory Limit        │  IO Rate Limiter       │
//	│  (fail-fast)         │  (token bucket)        │
//	├──────────────────────┼────────────────────────┤
//	│  AcquireMemory       │  AcquireIO             │
//	│  ReleaseMemory       │  RateLimitedWriter     │
//	│  MemoryUsage         │  RateLimitedReader     │
//	└──────────────────────┴────────────────────────┘
//
// # Memory Management
//
// Memory tracking uses a weighted semaphore for hard limits and atomic counters
// for usage tracking. AcquireMemory is non-blocking and returns immediately
// with ErrMemoryLimitExceeded if the limit would be exceeded:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 1 << 30, // 1GB limit
//	})
//
//	if err := rc.AcquireMemory(1024*1024); err != nil {
//	    // ErrMemoryLimitExceeded
//	}
//	defer rc.ReleaseMemory(1024*1024)
//
// # IO Rate Limiting
//
//	rc := resource.NewController(resource.Config{
//	    IOLimitBytesPerSec: 100 * 1024 * 1024, // 100MB/s
//	})
//
//	writer := resource.NewRateLimitedWriter(ctx, file, rc)
//	reader := resource.NewRateLimitedReader(ctx, file, rc)
//
// # Thread Safety
//
// All Controller methods are safe for concurrent use, so one Controller can
// govern many containers.
//
// # Nil Safety
//
// All methods handle nil Controller gracefully - they become no-ops.
package resource
