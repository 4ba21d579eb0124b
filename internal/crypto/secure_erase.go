package crypto

import (
	"runtime"
	"sync/atomic"
)

// secureEraseNoop keeps the compiler from treating the cleared buffer as dead.
var secureEraseNoop atomic.Uint64

// SecureErase overwrites the contents of a byte slice with zeros.
// Remnants of the data may still live in registers, caches or swap.
func SecureErase(b []byte) {
	if len(b) == 0 {
		return
	}
	clear(b)
	runtime.KeepAlive(b)

	var sum uint64
	for _, v := range b {
		sum += uint64(v)
	}
	secureEraseNoop.Add(sum)
}
