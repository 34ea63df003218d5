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

// Package types provides the in-memory document value model used by the update mapper.
//
// Composite types (passed by pointers):
//
//	*types.Document  ordered field name -> value mapping
//	*types.Array     ordered value sequence
//
// Scalar types (passed by values):
//
//	float64          64-bit binary floating point
//	string           UTF-8 string
//	types.Binary     binary data
//	types.ObjectID   document object ID
//	bool             boolean
//	time.Time        UTC datetime
//	types.NullType   null
//	types.Regex      regular expression
//	int32            32-bit integer
//	types.Timestamp  timestamp
//	int64            64-bit integer
//
// No other types are allowed inside documents and arrays.
package types

import (
	"fmt"
	"time"
)

// ScalarType represents scalar type.
type ScalarType interface {
	float64 | string | Binary | ObjectID | bool | time.Time | NullType | Regex | int32 | Timestamp | int64
}

// CompositeType represents composite type - *Document or *Array.
type CompositeType interface {
	*Document | *Array
}

// Type represents any value type (scalar or composite).
type Type interface {
	ScalarType | CompositeType
}

type (
	// ObjectID represents document object ID.
	ObjectID [12]byte

	// Timestamp represents an opaque timestamp value.
	Timestamp uint64

	// NullType represents null.
	//
	// Most callers should use types.Null value instead.
	NullType struct{}
)

// Null represents the null value.
var Null = NullType{}

// validateValue checks that the value belongs to the sealed set of types above.
func validateValue(value any) error {
	switch value := value.(type) {
	case *Document:
		return value.validate()
	case *Array:
		// it is impossible to construct an invalid Array using exported functions
		return nil
	case float64:
		return nil
	case string:
		return nil
	case Binary:
		return nil
	case ObjectID:
		return nil
	case bool:
		return nil
	case time.Time:
		return nil
	case NullType:
		return nil
	case Regex:
		return nil
	case int32:
		return nil
	case Timestamp:
		return nil
	case int64:
		return nil
	default:
		return fmt.Errorf("types.validateValue: unsupported type: %[1]T (%[1]v)", value)
	}
}

// deepCopy returns a deep copy of the given value.
func deepCopy(value any) any {
	if value == nil {
		panic("types.deepCopy: nil value")
	}

	switch value := value.(type) {
	case *Document:
		keys := make([]string, len(value.keys))
		copy(keys, value.keys)

		m := make(map[string]any, len(value.m))
		for k, v := range value.m {
			m[k] = deepCopy(v)
		}

		return &Document{
			keys: keys,
			m:    m,
		}

	case *Array:
		s := make([]any, len(value.s))
		for i, v := range value.s {
			s[i] = deepCopy(v)
		}

		return &Array{
			s: s,
		}

	case Binary:
		b := make([]byte, len(value.B))
		copy(b, value.B)

		return Binary{
			Subtype: value.Subtype,
			B:       b,
		}

	case float64, string, ObjectID, bool, time.Time, NullType, Regex, int32, Timestamp, int64:
		return value

	default:
		panic(fmt.Sprintf("types.deepCopy: unsupported type: %[1]T (%[1]v)", value))
	}
}
