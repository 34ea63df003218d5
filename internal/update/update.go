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

// Package update provides a builder for update specifications.
//
// An update specification is an ordered mapping from update operator
// ("$set", "$push", ...) to an ordered mapping from dotted field path to
// a target value. Field paths use logical field names; the mapper resolves
// wire aliases. Values may be types scalars, *types.Document, *types.Array,
// *mapping.Object, []any, or nil.
package update

// Update is an ordered update specification.
//
// The zero value is not usable; use New.
type Update struct {
	keys []string
	ops  map[string]*opEntries
}

// opEntries is the ordered path -> value mapping of a single operator.
type opEntries struct {
	keys []string
	m    map[string]any
}

// Entry is a single path/value pair of an operator.
type Entry struct {
	Path  string
	Value any
}

// New creates an empty update specification.
func New() *Update {
	return &Update{
		ops: map[string]*opEntries{},
	}
}

// add records the value for the given operator and path.
// A repeated path under the same operator replaces the value, keeping its position.
func (u *Update) add(op, path string, value any) *Update {
	e, ok := u.ops[op]
	if !ok {
		e = &opEntries{m: map[string]any{}}
		u.keys = append(u.keys, op)
		u.ops[op] = e
	}

	if _, ok := e.m[path]; !ok {
		e.keys = append(e.keys, path)
	}
	e.m[path] = value

	return u
}

// Set adds a "$set" mutation for the given path.
func (u *Update) Set(path string, value any) *Update {
	return u.add("$set", path, value)
}

// SetOnInsert adds a "$setOnInsert" mutation for the given path.
func (u *Update) SetOnInsert(path string, value any) *Update {
	return u.add("$setOnInsert", path, value)
}

// Unset adds an "$unset" mutation for the given path.
func (u *Update) Unset(path string) *Update {
	return u.add("$unset", path, int32(1))
}

// Inc adds an "$inc" mutation for the given path.
func (u *Update) Inc(path string, delta any) *Update {
	return u.add("$inc", path, delta)
}

// Mul adds a "$mul" mutation for the given path.
func (u *Update) Mul(path string, factor any) *Update {
	return u.add("$mul", path, factor)
}

// Min adds a "$min" mutation for the given path.
func (u *Update) Min(path string, value any) *Update {
	return u.add("$min", path, value)
}

// Max adds a "$max" mutation for the given path.
func (u *Update) Max(path string, value any) *Update {
	return u.add("$max", path, value)
}

// Rename adds a "$rename" mutation moving the field at path to newPath.
func (u *Update) Rename(path, newPath string) *Update {
	return u.add("$rename", path, newPath)
}

// CurrentDate adds a "$currentDate" mutation for the given path.
func (u *Update) CurrentDate(path string) *Update {
	return u.add("$currentDate", path, true)
}

// PopFirst adds a "$pop" mutation removing the first element of the array at path.
func (u *Update) PopFirst(path string) *Update {
	return u.add("$pop", path, int32(-1))
}

// PopLast adds a "$pop" mutation removing the last element of the array at path.
func (u *Update) PopLast(path string) *Update {
	return u.add("$pop", path, int32(1))
}

// Pull adds a "$pull" mutation removing matching elements from the array at path.
func (u *Update) Pull(path string, value any) *Update {
	return u.add("$pull", path, value)
}

// PullAll adds a "$pullAll" mutation removing all given values from the array at path.
func (u *Update) PullAll(path string, values ...any) *Update {
	return u.add("$pullAll", path, values)
}

// AddToSet adds an "$addToSet" mutation for the given path.
func (u *Update) AddToSet(path string, value any) *Update {
	return u.add("$addToSet", path, value)
}

// Len returns the number of operators in the update.
func (u *Update) Len() int {
	return len(u.keys)
}

// Operators returns operator names in insertion order. Do not modify it.
func (u *Update) Operators() []string {
	return u.keys
}

// Entries returns the path/value pairs of the given operator in insertion order.
func (u *Update) Entries(op string) []Entry {
	e, ok := u.ops[op]
	if !ok {
		return nil
	}

	res := make([]Entry, len(e.keys))
	for i, path := range e.keys {
		res[i] = Entry{Path: path, Value: e.m[path]}
	}

	return res
}
