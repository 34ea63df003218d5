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
	"bytes"
	"fmt"
	"time"
)

// Equal returns true if the given values are equal.
//
// Composite values are compared recursively; documents are equal only if
// their fields are in the same order.
func Equal[T Type](v1, v2 T) bool {
	return equal(v1, v2)
}

// equal compares any value types.
func equal(v1, v2 any) bool {
	switch v1 := v1.(type) {
	case *Document:
		d, ok := v2.(*Document)
		if !ok {
			return false
		}
		return equalDocuments(v1, d)

	case *Array:
		a, ok := v2.(*Array)
		if !ok {
			return false
		}
		return equalArrays(v1, a)

	default:
		return equalScalars(v1, v2)
	}
}

// equalDocuments compares documents, including field order.
func equalDocuments(d1, d2 *Document) bool {
	if d1 == nil {
		panic("types.equalDocuments: d1 is nil")
	}
	if d2 == nil {
		panic("types.equalDocuments: d2 is nil")
	}

	keys1, keys2 := d1.Keys(), d2.Keys()
	if len(keys1) != len(keys2) {
		return false
	}

	for i, key := range keys1 {
		if keys2[i] != key {
			return false
		}

		v1 := d1.m[key]
		v2, ok := d2.m[key]
		if !ok {
			return false
		}

		if !equal(v1, v2) {
			return false
		}
	}

	return true
}

// equalArrays compares arrays, including element order.
func equalArrays(a1, a2 *Array) bool {
	if a1 == nil {
		panic("types.equalArrays: a1 is nil")
	}
	if a2 == nil {
		panic("types.equalArrays: a2 is nil")
	}

	if a1.Len() != a2.Len() {
		return false
	}

	for i, v1 := range a1.s {
		if !equal(v1, a2.s[i]) {
			return false
		}
	}

	return true
}

// equalScalars compares scalar values.
func equalScalars(v1, v2 any) bool {
	switch v1 := v1.(type) {
	case float64:
		v, ok := v2.(float64)
		return ok && v1 == v
	case string:
		v, ok := v2.(string)
		return ok && v1 == v
	case Binary:
		v, ok := v2.(Binary)
		return ok && v1.Subtype == v.Subtype && bytes.Equal(v1.B, v.B)
	case ObjectID:
		v, ok := v2.(ObjectID)
		return ok && v1 == v
	case bool:
		v, ok := v2.(bool)
		return ok && v1 == v
	case time.Time:
		v, ok := v2.(time.Time)
		return ok && v1.Equal(v)
	case NullType:
		_, ok := v2.(NullType)
		return ok
	case Regex:
		v, ok := v2.(Regex)
		return ok && v1 == v
	case int32:
		v, ok := v2.(int32)
		return ok && v1 == v
	case Timestamp:
		v, ok := v2.(Timestamp)
		return ok && v1 == v
	case int64:
		v, ok := v2.(int64)
		return ok && v1 == v
	default:
		panic(fmt.Sprintf("types.equalScalars: unsupported type: %[1]T (%[1]v)", v1))
	}
}
