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

package mtag

type handler struct {
	fn   func()
	data *int
}

func Register(data *int) { // want Register:`mtag_assign p0=\d+\+8`
	h := new(handler)
	h.data = data
}

func RegisterLit(data *int) { // want RegisterLit:`mtag_assign p0=\d+\+8`
	h := &handler{}
	h.data = data
}

func Wrap(data *int) { // want Wrap:`mtag_assign p0\$->\[8\]=\d+\+8`
	Register(data)
}

func WrapTwice(data *int) { // want WrapTwice:`mtag_assign p0\$->\[8\]=\d+\+8`
	Wrap(data)
}
