// Package testutil provides testing utilities for lazyvec.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded RNG and a generator for random operation scripts
// that can be replayed against a Vector and a dense reference model.
//
// # Random Scripts
//
//	rng := testutil.NewRNG(seed)
//	script := rng.Script(1000, 5000) // 1000 ops, sizes in [0, 5000]
//	for _, op := range script {
//	    switch op.Kind {
//	    case testutil.OpResize:
//	        v.Resize(op.Size)
//	    case testutil.OpSet:
//	        v.Set(op.Index, op.Value)
//	    }
//	}
package testutil
