// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import "math/bits"

// MaxCapacity is the largest requested capacity accepted by [New].
const MaxCapacity = 1 << (bits.UintSize - 2)

// RoundUpPow2 returns the smallest power of 2 that is >= n.
// n must be positive and not exceed MaxCapacity.
func RoundUpPow2(n int) int {
	if n <= 1 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	if bits.UintSize == 64 {
		n |= n >> 32
	}
	return n + 1
}
