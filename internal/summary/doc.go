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

// Package summary defines the interprocedural summary records persisted by the
// dataflow passes and their textual encoding.
//
// Records are keyed by function, fact kind, parameter index and access path.
// Structured values are only encoded to text when they are written to a
// repository, and only decoded when read back:
//
//	"$"            [AccessPath] of the parameter itself
//	"$->[8]"       [AccessPath] of the object the parameter points to, 8 bytes in
//	"123+8"        [TagOffset] of tag 123 at byte offset 8
//
// A value that does not decode is ignored by its consumer.
package summary
