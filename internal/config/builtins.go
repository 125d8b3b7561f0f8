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

package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// ErrBuiltins is returned when a builtins file can't be read.
var ErrBuiltins = errors.New("invalid builtins")

//go:embed builtins.yaml
var builtinsYAML []byte

// Builtins hold the declarative knowledge of well known names and functions.
type Builtins struct {
	Names         Names          `yaml:"names"`
	Functions     []FunctionUnit `yaml:"functions"`
	Allocators    []Allocator    `yaml:"allocators"`
	Members       []MemberUnit   `yaml:"members"`
	IgnoreMembers []string       `yaml:"ignore_members"`
	NoReturn      []string       `yaml:"noreturn"`
}

// Names are identifier hints recognized without further analysis.
type Names struct {
	Sizeof    []string `yaml:"sizeof"`
	PageSize  []string `yaml:"page_size"`
	PageShift []string `yaml:"page_shift"`
	WordBits  []string `yaml:"word_bits"`
	Jiffies   []string `yaml:"jiffies"`
	ArraySize []string `yaml:"array_size"`
}

// FunctionUnit seeds the unit of a parameter, or of the result for param -1.
type FunctionUnit struct {
	Name  string `yaml:"name"`
	Param int    `yaml:"param"`
	Unit  string `yaml:"unit"`
}

// Allocator describes the size arguments of an allocation function.
// Unused arguments are nil.
type Allocator struct {
	Name  string `yaml:"name"`
	Size  *int   `yaml:"size,omitempty"`
	Count *int   `yaml:"count,omitempty"`
	Elem  *int   `yaml:"elem,omitempty"`
}

// MemberUnit seeds the unit of a struct member, written as "Type.field".
type MemberUnit struct {
	Name string `yaml:"name"`
	Unit string `yaml:"unit"`
}

// DefaultBuiltins returns the embedded builtin tables.
func DefaultBuiltins() (*Builtins, error) {
	var b Builtins
	if err := yaml.Unmarshal(builtinsYAML, &b); err != nil {
		return nil, fmt.Errorf("%w: embedded: %w", ErrBuiltins, err)
	}

	return &b, nil
}

// LoadBuiltins returns the embedded builtin tables, extended by the YAML file at path.
// An empty path yields the embedded tables.
func LoadBuiltins(path string) (*Builtins, error) {
	b, err := DefaultBuiltins()
	if err != nil || path == "" {
		return b, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuiltins, err)
	}
	defer func() { _ = f.Close() }()

	if err := b.Extend(f); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrBuiltins, path, err)
	}

	return b, nil
}

// Extend appends the tables of the YAML document read from r.
func (b *Builtins) Extend(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var ext Builtins
	if err := dec.Decode(&ext); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	b.Names.Sizeof = append(b.Names.Sizeof, ext.Names.Sizeof...)
	b.Names.PageSize = append(b.Names.PageSize, ext.Names.PageSize...)
	b.Names.PageShift = append(b.Names.PageShift, ext.Names.PageShift...)
	b.Names.WordBits = append(b.Names.WordBits, ext.Names.WordBits...)
	b.Names.Jiffies = append(b.Names.Jiffies, ext.Names.Jiffies...)
	b.Names.ArraySize = append(b.Names.ArraySize, ext.Names.ArraySize...)
	b.Functions = append(b.Functions, ext.Functions...)
	b.Allocators = append(b.Allocators, ext.Allocators...)
	b.Members = append(b.Members, ext.Members...)
	b.IgnoreMembers = append(b.IgnoreMembers, ext.IgnoreMembers...)
	b.NoReturn = append(b.NoReturn, ext.NoReturn...)

	return nil
}

// Match reports whether one of names equals name or qualified.
func Match(names []string, name, qualified string) bool {
	return slices.Contains(names, name) || qualified != "" && slices.Contains(names, qualified)
}
