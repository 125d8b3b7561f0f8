// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package units

import (
	"unsafe"

	"test/kernel"
)

type buffer struct {
	size  int // want size:`\(test/units\.buffer\)\.size=byte\|page`
	count int // want count:`\(test/units\.buffer\)\.count=element_count`
}

func timeout(ms uint) uint64 { // want timeout:`units p0=msec, units ret=jiffy`
	return kernel.MsecsToJiffies(ms)
}

func wait() uint64 { // want wait:`units ret=jiffy`
	x := timeout(5)

	return x
}

func convert(pages int) int { // want convert:`units p0=page`
	bytes := pages << kernel.PAGE_SHIFT

	return bytes + pages // want `missing conversion: 'bytes \+ pages' 'byte \+ page'`
}

func quiet(pages int) int { // want quiet:`units p0=page`
	bytes := pages << kernel.PAGE_SHIFT

	return bytes + pages //nolint:units
}

func footprint() uintptr {
	return kernel.BITS_PER_LONG * unsafe.Sizeof(0) // want `multiplying bits \* bytes 'kernel\.BITS_PER_LONG \* unsafe\.Sizeof\(0\)'`
}

func late(deadline uint64) bool { // want late:`units p0=jiffy`
	limit := kernel.JiffiesToMsecs(deadline)

	return kernel.Jiffies > uint64(limit) // want `comparing different units: 'kernel\.Jiffies > uint64\(limit\)' 'jiffy > msec'`
}

func within(j, limit uint64) bool { // want within:`units p0=jiffy, units p1=jiffy`
	_ = kernel.JiffiesToMsecs(j)

	return limit < j
}

func consume(int) {}

func pick(fast bool) int {
	var n int
	if fast {
		n = 1 << kernel.PAGE_SHIFT
	} else {
		n = kernel.PAGE_SIZE >> kernel.PAGE_SHIFT
	}

	consume(n) // want `ambiguous units merge 'n' 'byte' or 'page'`

	return n
}

func pickReturn(fast bool) int {
	var n int
	if fast {
		n = 1 << kernel.PAGE_SHIFT
	} else {
		n = kernel.PAGE_SIZE >> kernel.PAGE_SHIFT
	}

	return n
}

func shift(size int) int { // want shift:`units ret=page`
	n := size
	n >>= kernel.PAGE_SHIFT

	return n
}

func setBytes(b *buffer, n int) { // want setBytes:`units p1=page`
	b.size = n << kernel.PAGE_SHIFT
}

func setPages(b *buffer, n int) { // want setPages:`units p1=byte`
	b.size = n >> kernel.PAGE_SHIFT // want `other places set '\(test/units\.buffer\)\.size' to 'byte' instead of 'page'`
}

func setCount(b *buffer, n int) { // want setCount:`units p1=element_count`
	_ = make([]int32, n)
	b.count = n
}

func countOf(b *buffer) int { // want countOf:`units ret=element_count`
	return b.count
}

func kcalloc(n, size uintptr) unsafe.Pointer { return nil }

func allocate(n uintptr) unsafe.Pointer { // want allocate:`units p0=element_count`
	return kcalloc(n, unsafe.Sizeof(buffer{}))
}

func table(n int) []int32 { // want table:`units p0=element_count`
	return make([]int32, n)
}

var slots [4]int

func entries() int { // want entries:`units ret=element_count`
	return len(slots)
}
