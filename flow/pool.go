package flow

import "sync"

// ============================================================================
// Size Slice Pooling
// ============================================================================
//
// Measure and Place run on every layout pass and both need a scratch slice of
// item sizes. Pooling them keeps per-frame layout allocation-free for the
// common case of a few dozen chips.
//
// Usage:
//   sizes := acquireSizes(len(items))
//   ... fill and use sizes ...
//   releaseSizes(sizes)

var sizeSlicePool = sync.Pool{
	New: func() interface{} {
		return make([]Size, 0, 32)
	},
}

// acquireSizes gets a size slice from the pool with len == n.
// Caller must call releaseSizes when done.
func acquireSizes(n int) []Size {
	slice := sizeSlicePool.Get().([]Size)
	if cap(slice) < n {
		sizeSlicePool.Put(slice[:0])
		return make([]Size, n, n*2)
	}
	return slice[:n]
}

// releaseSizes returns a size slice to the pool.
// The slice should not be used after calling this.
func releaseSizes(slice []Size) {
	if slice == nil {
		return
	}
	// Only pool slices up to a reasonable size to avoid memory bloat
	if cap(slice) <= 512 {
		sizeSlicePool.Put(slice[:0])
	}
}
