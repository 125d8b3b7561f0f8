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

package ignored

import "test/kernel"

type frame struct {
	scratch int
	size    int // want size:`\(test/ignored\.frame\)\.size=byte\|page`
}

func setBytes(f *frame, n int) { // want setBytes:`units p1=page`
	f.scratch = n << kernel.PAGE_SHIFT
	f.size = n << kernel.PAGE_SHIFT
}

func setPages(f *frame, n int) { // want setPages:`units p1=byte`
	f.scratch = n >> kernel.PAGE_SHIFT
	f.size = n >> kernel.PAGE_SHIFT // want `other places set '\(test/ignored\.frame\)\.size' to 'byte' instead of 'page'`
}
