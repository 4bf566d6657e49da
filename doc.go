// Package lazyvec provides a lazily-allocated, chunked dynamic array.
//
// A Vector supports a very large logical index space while paying only for
// the parts that are actually touched. Storage is organized in fixed-size
// chunks addressed by index / ChunkSize; the slot table grows with Resize,
// but a chunk's elements are allocated only on first access.
//
// # Quick Start
//
//	v, _ := lazyvec.New[uint32](1024)
//	v.Resize(1 << 30)           // no element storage allocated
//	v.Set(123456789, 7)         // allocates one chunk of 1024 elements
//	fmt.Println(v.Get(123456789), v.AllocatedElements()) // 7 1024
//
// # Capacity vs. Allocated Storage
//
// Cap is the index space covered by the slot table and is always a multiple
// of ChunkSize. AllocatedElements is what is actually backed by memory:
//
//	v.Resize(3000)              // Cap() == 3072, AllocatedElements() == 0
//	_ = v.Get(20)               // AllocatedElements() == 1024
//
// Any element access through At, Get or Set materializes its chunk, because
// the returned reference may be written later. Use Peek for a read that never
// allocates.
//
// # Shrinking
//
// Resize to a smaller size releases every chunk that starts at or beyond the
// new size. A chunk straddling the boundary stays allocated and its tail is
// reset to the default value, so growing again never resurrects old values.
//
// # Memory Budget
//
// Several vectors can charge a shared resource.Controller:
//
//	rc := resource.NewController(resource.Config{MemoryLimitBytes: 64 << 20})
//	v, _ := lazyvec.New[Entry](4096, lazyvec.WithMemoryBudget(rc))
//
// When the budget refuses a chunk the accessor panics with *AllocationError.
// Running out of memory is fatal, exactly like a failed make.
//
// # Errors
//
// Index and size violations are programmer errors and panic with
// *IndexOutOfRangeError or *NegativeSizeError. New returns
// ErrInvalidChunkSize for a non-positive chunk size.
//
// # Thread Safety
//
// A Vector has a single owner and no internal synchronization.
package lazyvec
