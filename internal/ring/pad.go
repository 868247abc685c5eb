// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// CacheLineSize is the cache line size of the target architecture.
const CacheLineSize = int(unsafe.Sizeof(cpu.CacheLinePad{}))

// padBytes is the minimum padding placed before and after the live slots.
// Two lines cover adjacent-line prefetch.
const padBytes = 128

// padWord fills the remainder of a cache line after an 8-byte field.
type padWord [CacheLineSize - 8]byte
