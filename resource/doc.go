// Package resource implements a shared memory budget for lazily
// materialized storage.
//
// A Controller tracks bytes reserved by one or more lazyvec.Vector values.
// Reservation is non-blocking and fail-fast:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 64 << 20, // 64MB for all side tables
//	})
//
//	names, _ := lazyvec.New[string](4096, lazyvec.WithMemoryBudget(rc))
//	types, _ := lazyvec.New[uint32](4096, lazyvec.WithMemoryBudget(rc))
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully - they become no-ops.
//
// # Thread Safety
//
// All Controller methods are safe for concurrent use.
package resource
