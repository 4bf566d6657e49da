// Package container implements the chunk-slot table behind lazyvec.Vector.
//
// # Layout
//
//	slots:  [ nil | chunk | nil | nil | chunk | ... ]
//	           0     1      2     3     4
//	live:   roaring bitmap {1, 4}
//
// Each non-nil slot owns exactly ChunkSize elements. The slot table grows
// with nil entries only; element storage is materialized per slot on demand
// and released again by ReleaseFrom or Reset.
package container
