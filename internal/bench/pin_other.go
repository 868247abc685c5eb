// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !linux

package bench

import (
	"fmt"
	"runtime"
)

// PinCurrentThread locks the calling goroutine to its OS thread.
// CPU affinity is not set on this platform.
func PinCurrentThread(cpu int) error {
	if cpu < 0 || cpu >= runtime.NumCPU() {
		return fmt.Errorf("cpu %d out of range [0, %d)", cpu, runtime.NumCPU())
	}
	runtime.LockOSThread()
	return nil
}
