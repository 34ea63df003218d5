// Copyright 2024 OdmKit Authors.
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

package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Positional is the path segment denoting the array element matched by the update's filter.
// It is opaque to alias resolution.
const Positional = "$"

// Path errors.
var (
	// ErrPathElementEmpty is returned when a path element is empty.
	ErrPathElementEmpty = errors.New("path element must not be empty")

	// ErrPathEmpty is returned when the whole path is empty.
	ErrPathEmpty = errors.New("path must not be empty")
)

// Path represents a dotted field path pointing to a value inside a document.
//
// Path should be considered immutable; all methods return copies.
type Path struct {
	s []string
}

// NewPath returns a Path from a slice of segments.
// It panics on invalid segments; use NewPathFromString for untrusted input.
func NewPath(segments ...string) Path {
	if len(segments) == 0 {
		panic("types.NewPath: empty path")
	}

	for _, s := range segments {
		if s == "" {
			panic("types.NewPath: empty path element")
		}
	}

	p := Path{s: make([]string, len(segments))}
	copy(p.s, segments)

	return p
}

// NewPathFromString returns a Path from a dotted path string.
//
// It returns an error if the path is empty or contains empty segments.
func NewPathFromString(s string) (Path, error) {
	var res Path

	if s == "" {
		return res, ErrPathEmpty
	}

	segments := strings.Split(s, ".")
	for _, segment := range segments {
		if segment == "" {
			return res, ErrPathElementEmpty
		}
	}

	res = Path{s: make([]string, len(segments))}
	copy(res.s, segments)

	return res, nil
}

// String returns a dotted path value.
func (p Path) String() string {
	return strings.Join(p.s, ".")
}

// Len returns the number of path segments.
func (p Path) Len() int {
	return len(p.s)
}

// Slice returns a copy of the path segments.
func (p Path) Slice() []string {
	path := make([]string, len(p.s))
	copy(path, p.s)

	return path
}

// Prefix returns the first path segment.
func (p Path) Prefix() string {
	if p.Len() == 0 {
		panic("types.Path.Prefix: path is empty")
	}

	return p.s[0]
}

// Suffix returns the last path segment.
func (p Path) Suffix() string {
	if p.Len() == 0 {
		panic("types.Path.Suffix: path is empty")
	}

	return p.s[len(p.s)-1]
}

// TrimPrefix returns a copy of the path without the first segment.
func (p Path) TrimPrefix() Path {
	if p.Len() <= 1 {
		panic("types.Path.TrimPrefix: path should have more than 1 segment")
	}

	return NewPath(p.s[1:]...)
}

// TrimSuffix returns a copy of the path without the last segment.
func (p Path) TrimSuffix() Path {
	if p.Len() <= 1 {
		panic("types.Path.TrimSuffix: path should have more than 1 segment")
	}

	return NewPath(p.s[:len(p.s)-1]...)
}

// Append returns a copy of the path with the given segment appended.
func (p Path) Append(s string) Path {
	segments := p.Slice()
	segments = append(segments, s)

	return NewPath(segments...)
}

// IsIndex returns true if the given path segment addresses an array element:
// either the positional placeholder or a numeric index.
func IsIndex(segment string) bool {
	if segment == Positional {
		return true
	}

	i, err := strconv.Atoi(segment)

	return err == nil && i >= 0 && fmt.Sprintf("%d", i) == segment
}
