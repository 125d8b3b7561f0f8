// Copyright 2025 Oliver Eikemeier. All Rights Reserved.
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

package analyzer

import (
	"fillmore-labs.com/unitflow/internal/mtag"
	"fillmore-labs.com/unitflow/internal/store"
	"fillmore-labs.com/unitflow/internal/summary"
	"fillmore-labs.com/unitflow/internal/units"
)

type (
	// UnitsResult answers unit queries for the expressions of a package.
	UnitsResult = units.Result

	// Unit is the measurement unit of an expression.
	Unit = units.Unit

	// MTagResult answers memory tag queries.
	MTagResult = mtag.Result

	// Tag identifies a memory region.
	Tag = summary.Tag

	// TagData is a value recorded inside a tagged region.
	TagData = store.TagData

	// TagLink relates two tags at a signed offset.
	TagLink = store.TagLink
)

// Units of measurement.
const (
	Bit          = units.Bit
	Byte         = units.Byte
	Page         = units.Page
	Msec         = units.Msec
	Jiffy        = units.Jiffy
	WordCount    = units.WordCount
	ElementCount = units.ElementCount
)
