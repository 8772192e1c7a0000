// This file provides pooled scratch buffers for the multiplication kernels.

package bigint

import (
	"math/bits"
	"sync"
)

// limbSlicePools pools []uint32 scratch slices by size class.
// Size classes are powers of 4 from 64 to 4M limbs; larger requests are
// allocated directly.
var limbSlicePools = [...]sync.Pool{
	{New: func() any { return make([]uint32, 64) }},
	{New: func() any { return make([]uint32, 256) }},
	{New: func() any { return make([]uint32, 1024) }},
	{New: func() any { return make([]uint32, 4096) }},
	{New: func() any { return make([]uint32, 16384) }},
	{New: func() any { return make([]uint32, 65536) }},
	{New: func() any { return make([]uint32, 262144) }},
	{New: func() any { return make([]uint32, 1048576) }}, // 1M limbs = 4MB
	{New: func() any { return make([]uint32, 4194304) }}, // 4M limbs = 16MB
}

// limbSliceSizes defines the size classes for limb slice pools.
var limbSliceSizes = [...]int{64, 256, 1024, 4096, 16384, 65536, 262144, 1048576, 4194304}

// getLimbSlicePoolIndex returns the pool index for a given size, or -1 if the
// size is too large for pooling.
//
// Index i holds slices of 4^(i+3) limbs, so bits.Len(size-1) maps directly to
// the index.
func getLimbSlicePoolIndex(size int) int {
	if size <= 0 {
		return 0
	}
	if size > limbSliceSizes[len(limbSliceSizes)-1] {
		return -1
	}
	idx := (bits.Len(uint(size-1)) - 5) / 2
	if idx < 0 {
		idx = 0
	}
	return idx
}

// acquireLimbSlice returns a zeroed slice of exactly size limbs, taken from the
// pool when a size class fits. Release it with releaseLimbSlice:
//
//	buf := acquireLimbSlice(n)
//	defer releaseLimbSlice(buf)
func acquireLimbSlice(size int) []uint32 {
	idx := getLimbSlicePoolIndex(size)
	if idx < 0 {
		return make([]uint32, size)
	}
	slice := limbSlicePools[idx].Get().([]uint32)
	clear(slice)
	return slice[:size]
}

// releaseLimbSlice returns a slice obtained from acquireLimbSlice to its pool.
// Slices whose capacity is not a pool size class are left to the GC. Safe to
// call with nil.
func releaseLimbSlice(slice []uint32) {
	if slice == nil {
		return
	}
	c := cap(slice)
	idx := getLimbSlicePoolIndex(c)
	if idx >= 0 && limbSliceSizes[idx] == c {
		limbSlicePools[idx].Put(slice[:c])
	}
}
