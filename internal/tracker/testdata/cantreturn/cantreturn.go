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

package cantreturn

import (
	"log"
	"os"
	"runtime"
	"syscall"
)

func fatal() {
	log.Fatal() // want "Can't return"
}

func panics() {
	panic("") // want "Can't return"
}

func loggerFatalf() {
	l := log.Default()

	l.Fatalf("") // want "Can't return"
}

func exit() {
	os.Exit(1) // want "Can't return"
}

func rawExit() {
	syscall.Exit(1) // want "Can't return"
}

func goexit() {
	runtime.Goexit() // want "Can't return"
}

func returns() {
	println("hello") // OK
}

func indirect() {
	panic := log.Fatal

	panic("hello") // OK
}

func bug() {
	panic("bug") // want "Can't return"
}

func oops(ok bool) {
	if !ok {
		bug() // want "Can't return"
	}
}
