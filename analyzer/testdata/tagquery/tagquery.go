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

package tagquery

import "test/mtag"

var value int

type device struct {
	id  int
	irq int
}

var dev device

func show(any) {}

func Use() {
	mtag.Register(&value)
	show(&value) // want `links -8 data 8:&test/tagquery\.value`

	var local int
	show(&local) // want `no tag`

	mtag.Register(&dev.irq)
	show(&dev)     // want `links -8 data 8:`
	show(&dev.irq) // want `links -8 data 8:`

	var state device
	mtag.Register(&state.irq)
	show(&state.id) // want `links -8 data 8:`
}
