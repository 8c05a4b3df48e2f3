// Copyright 2024 Harald Albrecht.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy
// of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations
// under the License.

package rdytbl

import (
	"fmt"
	"math/bits"
)

// unmapTbl maps a non-zero byte to the index of its lowest set bit. Entry 0
// is never consulted.
var unmapTbl = func() (tbl [256]uint8) {
	for v := 1; v < len(tbl); v++ {
		tbl[v] = uint8(bits.TrailingZeros8(uint8(v)))
	}
	return
}()

// lowestSetBitIndex returns the 0-based index of the least significant set
// bit in the specified mask. It panics on an all-clear mask, as callers only
// ever ask for masks the ready table invariants guarantee to be non-zero.
func lowestSetBitIndex(mask uint8) int {
	if mask == 0 {
		panic(fmt.Sprintf("ready table corrupted: lowest set bit of empty mask %#02x", mask))
	}
	return int(unmapTbl[mask])
}
