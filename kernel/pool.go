// SPDX-License-Identifier: MIT

package kernel

import (
	"runtime"
	"sync"

	"github.com/ajroetker/go-highway/hwy/contrib/workerpool"
)

var (
	poolOnce   sync.Once
	sharedPool *workerpool.Pool
)

// pool returns the process-wide worker pool handed to go-highway's parallel
// entry points. Created on first use and kept for the process lifetime, which
// amortizes goroutine spawn cost across all kernel calls.
func pool() *workerpool.Pool {
	poolOnce.Do(func() {
		sharedPool = workerpool.New(runtime.GOMAXPROCS(0))
	})

	return sharedPool
}
