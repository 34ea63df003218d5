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
	"github.com/odmkit/updatemap/internal/util/iterator"
)

// documentIterator iterates over the document fields in order.
type documentIterator struct {
	doc *Document
	n   int
}

// Iterator returns an iterator over the document fields.
func (d *Document) Iterator() iterator.Interface[string, any] {
	return &documentIterator{doc: d}
}

// Next implements iterator.Interface.
func (it *documentIterator) Next() (string, any, error) {
	if it.doc == nil || it.n >= it.doc.Len() {
		return "", nil, iterator.ErrIteratorDone
	}

	key := it.doc.keys[it.n]
	it.n++

	return key, it.doc.m[key], nil
}

// Close implements iterator.Interface.
func (it *documentIterator) Close() {
	it.doc = nil
}

// check interfaces
var (
	_ iterator.Interface[string, any] = (*documentIterator)(nil)
)
