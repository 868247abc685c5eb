// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ring provides the storage primitives shared by the ringq queues:
// a padded slot array addressed by power-of-two masking and a padded
// monotonic index cell.
//
// Layout contract:
// Live slots are surrounded by padding slots that are never addressed, and
// every [Index] carries a full cache line of filler on both sides. Layout
// is verified by tests.
//
// Ordering contract:
// Slot sequence words and index cells are read with acquire loads and
// written with release stores. Element payloads are plain memory published
// through the sequence word of their slot.
package ring
