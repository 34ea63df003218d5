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

// arrayIterator iterates over the array elements in order.
type arrayIterator struct {
	arr *Array
	n   int
}

// Iterator returns an iterator over the array elements.
func (a *Array) Iterator() iterator.Interface[int, any] {
	return &arrayIterator{arr: a}
}

// Next implements iterator.Interface.
func (it *arrayIterator) Next() (int, any, error) {
	if it.arr == nil || it.n >= it.arr.Len() {
		return 0, nil, iterator.ErrIteratorDone
	}

	i := it.n
	it.n++

	return i, it.arr.s[i], nil
}

// Close implements iterator.Interface.
func (it *arrayIterator) Close() {
	it.arr = nil
}

// check interfaces
var (
	_ iterator.Interface[int, any] = (*arrayIterator)(nil)
)
