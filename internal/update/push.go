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

package update

import (
	"github.com/AlekSi/pointer"

	"github.com/odmkit/updatemap/internal/types"
)

// Each is the "$each" wrapper of a "$push" mutation:
// an ordered sequence of elements appended in one call,
// with optional $position, $slice and $sort modifiers.
//
// The wrapper itself is a protocol marker, not a domain value;
// the mapper evaluates only the elements inside it.
type Each struct {
	values   []any
	position *int
	slice    *int
	sort     *types.Document
}

// Values returns the wrapped elements in order. Do not modify it.
func (e *Each) Values() []any {
	return e.values
}

// PositionModifier returns the $position modifier, or nil if unset.
func (e *Each) PositionModifier() *int {
	return e.position
}

// SliceModifier returns the $slice modifier, or nil if unset.
func (e *Each) SliceModifier() *int {
	return e.slice
}

// SortModifier returns the $sort modifier, or nil if unset.
func (e *Each) SortModifier() *types.Document {
	return e.sort
}

// PushBuilder builds a single "$push" mutation.
type PushBuilder struct {
	u        *Update
	path     string
	position *int
	slice    *int
	sort     *types.Document
}

// Push starts a "$push" mutation for the given path.
// Finish it with Value or Each.
func (u *Update) Push(path string) *PushBuilder {
	return &PushBuilder{u: u, path: path}
}

// Position sets the $position modifier for a following Each call.
func (b *PushBuilder) Position(n int) *PushBuilder {
	b.position = pointer.To(n)
	return b
}

// Slice sets the $slice modifier for a following Each call.
func (b *PushBuilder) Slice(n int) *PushBuilder {
	b.slice = pointer.To(n)
	return b
}

// Sort sets the $sort modifier for a following Each call.
func (b *PushBuilder) Sort(doc *types.Document) *PushBuilder {
	b.sort = doc
	return b
}

// Value finishes the mutation, appending a single element.
func (b *PushBuilder) Value(value any) *Update {
	return b.u.add("$push", b.path, value)
}

// Each finishes the mutation, appending the given elements in order.
func (b *PushBuilder) Each(values ...any) *Update {
	return b.u.add("$push", b.path, &Each{
		values:   values,
		position: b.position,
		slice:    b.slice,
		sort:     b.sort,
	})
}
