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

package unitquery

import "test/kernel"

func show(any) {}

func timeout(ms uint) uint64 {
	return kernel.MsecsToJiffies(ms)
}

func replay() {
	x := timeout(5)
	show(x) // want `x: jiffy`

	var arr [8]byte
	show(len(arr)) // want `len\(arr\): element_count array`

	show(kernel.PAGE_SIZE) // want `kernel\.PAGE_SIZE: byte`

	var n int
	show(n) // want `n: none`
}
