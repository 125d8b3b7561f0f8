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
	"errors"
	"fmt"

	"fillmore-labs.com/unitflow/internal/lattice"
)

// Unit is the measurement unit kind of an integer valued expression.
type Unit uint8

//go:generate go tool stringer -type Unit -linecomment
const (
	// Bit is a count of bits.
	Bit Unit = iota + 1 // bit

	// Byte is a count of bytes.
	Byte // byte

	// Page is a count of memory pages.
	Page // page

	// Msec is a duration in milliseconds.
	Msec // msec

	// Jiffy is a duration in timer ticks.
	Jiffy // jiffy

	// WordCount is a count of machine words, the result of dividing bits by the word width.
	WordCount // word_count

	// ElementCount is a count of array elements.
	ElementCount // element_count
)

// Fact is the lattice element of the unit inference pass.
type Fact = lattice.Fact[Unit]

// ParseUnit returns the unit named by s.
// Besides the canonical names it accepts the legacy names "longs" and "array_size".
// "unknown" and unrecognized names yield no unit.
func ParseUnit(s string) (Unit, bool) {
	switch s {
	case "bit":
		return Bit, true

	case "byte":
		return Byte, true

	case "page":
		return Page, true

	case "msec":
		return Msec, true

	case "jiffy":
		return Jiffy, true

	case "word_count", "longs":
		return WordCount, true

	case "element_count", "array_size":
		return ElementCount, true

	default:
		return 0, false
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (u Unit) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// ErrUnknownUnit is returned when decoding an unrecognized unit name.
var ErrUnknownUnit = errors.New("unknown unit")

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *Unit) UnmarshalText(text []byte) error {
	v, ok := ParseUnit(string(text))
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownUnit, text)
	}

	*u = v

	return nil
}
