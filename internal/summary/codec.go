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

package summary

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformed is returned when a persisted value can't be decoded.
var ErrMalformed = errors.New("malformed summary value")

// AccessPath locates a value relative to a parameter.
type AccessPath struct {
	// Deref is true when the value lives inside the object the parameter points to.
	Deref bool
	// Offset is the byte offset inside that object.
	Offset int
}

// Self is the [AccessPath] of the parameter itself.
var Self = AccessPath{}

// Field returns the [AccessPath] of the value offset bytes inside the parameter's object.
func Field(offset int) AccessPath { return AccessPath{Deref: true, Offset: offset} }

// String returns the encoded form of p.
func (p AccessPath) String() string {
	if !p.Deref {
		return "$"
	}

	return "$->[" + strconv.Itoa(p.Offset) + "]"
}

// ParseAccessPath decodes an [AccessPath].
func ParseAccessPath(s string) (AccessPath, error) {
	if s == "$" {
		return Self, nil
	}

	inner, ok := strings.CutPrefix(s, "$->[")
	if !ok {
		return AccessPath{}, fmt.Errorf("%w: access path %q", ErrMalformed, s)
	}

	inner, ok = strings.CutSuffix(inner, "]")
	if !ok {
		return AccessPath{}, fmt.Errorf("%w: access path %q", ErrMalformed, s)
	}

	offset, err := strconv.Atoi(inner)
	if err != nil {
		return AccessPath{}, fmt.Errorf("%w: access path %q: %w", ErrMalformed, s, err)
	}

	return Field(offset), nil
}

// Tag identifies a memory region.
type Tag uint64

// String implements [fmt.Stringer].
func (t Tag) String() string { return strconv.FormatUint(uint64(t), 10) }

// TagOffset is a byte offset inside the region identified by Tag.
type TagOffset struct {
	Tag    Tag
	Offset int
}

// String returns the encoded form of t.
func (t TagOffset) String() string {
	return t.Tag.String() + "+" + strconv.Itoa(t.Offset)
}

// ParseTagOffset decodes a [TagOffset]. The "+offset" suffix is mandatory.
func ParseTagOffset(s string) (TagOffset, error) {
	tag, offset, ok := strings.Cut(s, "+")
	if !ok {
		return TagOffset{}, fmt.Errorf("%w: tag %q without offset", ErrMalformed, s)
	}

	t, err := strconv.ParseUint(tag, 10, 64)
	if err != nil {
		return TagOffset{}, fmt.Errorf("%w: tag %q: %w", ErrMalformed, s, err)
	}

	o, err := strconv.Atoi(offset)
	if err != nil {
		return TagOffset{}, fmt.Errorf("%w: offset %q: %w", ErrMalformed, s, err)
	}

	return TagOffset{Tag: Tag(t), Offset: o}, nil
}
