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

package basic

func show(int) {} // want "exits 1"

func straight() { // want "exits 1"
	x := 1
	show(x) // want "x: 1"
}

func branch(c bool) { // want "exits 1"
	x := 1
	if c {
		x = 2
	}
	show(x) // want "merge x 1 2" "x: merged"
}

func loop(n int) { // want "exits 1"
	x := 0
	for i := 0; i < n; i++ { // want "merge x 0 1"
		x = 1
	}
	show(x) // want "x: merged"
}

func early(c bool) int { // want "exits 2"
	x := 1
	if c {
		return x
	}
	x = 2
	show(x) // want "x: 2"
	return x
}

func returnJoin(c bool) int { // want "exits 1"
	x := 1
	if c {
		x = 2
	}
	return x // want "at return merge x 1 2"
}

func copies() { // want "exits 1"
	x := 3
	y := x
	var z = y
	show(z) // want "z: 3"
}

func tuple() (int, int) { return 1, 2 } // want "exits 1"

func fields() { // want "exits 1"
	var s struct{ f int }
	p := &s
	p.f = 4
	show((*p).f) // want `\(\*p\)\.f: 4`
	show(s.f)    // want `s\.f: undefined`
}

func noReturn() { // want "exits 0"
	panic("boom")
}
