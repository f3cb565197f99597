// Package resource implements the memory budget behind the allocator.
//
// A Controller tracks reserved bytes with atomic counters and, when a limit
// is configured, enforces it with a weighted semaphore. Reservation is
// non-blocking: AcquireMemory returns ErrMemoryLimitExceeded immediately
// instead of waiting for another owner to free memory.
//
//	c := resource.NewController(resource.Config{MemoryLimitBytes: 1 << 20})
//	if err := c.AcquireMemory(512); err != nil {
//	    // over budget
//	}
//	defer c.ReleaseMemory(512)
//
// A nil *Controller is valid and accounts nothing.
package resource
