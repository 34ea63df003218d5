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

package mapping

import (
	"fmt"
	"time"

	"github.com/odmkit/updatemap/internal/types"
)

// Object is a structured domain value tagged with its runtime type.
//
// Field values may be types scalars, *types.Document, *types.Array,
// nested *Object values, or []any sequences of the same.
// Field names are logical names; the mapper resolves wire aliases.
type Object struct {
	typ  TypeName
	keys []string
	m    map[string]any
}

// NewObject creates an object of the given runtime type with the given
// field name/value pairs.
func NewObject(typ TypeName, pairs ...any) (*Object, error) {
	if typ == "" {
		return nil, fmt.Errorf("mapping.NewObject: empty type name")
	}

	l := len(pairs)
	if l%2 != 0 {
		return nil, fmt.Errorf("mapping.NewObject: invalid number of arguments: %d", l)
	}

	o := &Object{
		typ:  typ,
		keys: make([]string, 0, l/2),
		m:    make(map[string]any, l/2),
	}

	for i := 0; i < l; i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("mapping.NewObject: invalid key type: %T", pairs[i])
		}

		if key == "" {
			return nil, fmt.Errorf("mapping.NewObject: empty field name")
		}

		if _, ok := o.m[key]; ok {
			return nil, fmt.Errorf("mapping.NewObject: duplicate field: %q", key)
		}

		value := pairs[i+1]
		if err := validateObjectValue(value); err != nil {
			return nil, fmt.Errorf("mapping.NewObject: field %q: %w", key, err)
		}

		o.keys = append(o.keys, key)
		o.m[key] = value
	}

	return o, nil
}

// Type returns the object's runtime type name.
func (o *Object) Type() TypeName {
	return o.typ
}

// Keys returns the object's field names in order. Do not modify it.
func (o *Object) Keys() []string {
	return o.keys
}

// Get returns a field value by its logical name.
func (o *Object) Get(key string) (any, error) {
	if value, ok := o.m[key]; ok {
		return value, nil
	}

	return nil, fmt.Errorf("mapping.Object.Get: field not found: %q", key)
}

// validateObjectValue checks that the value can be a field of an Object.
func validateObjectValue(value any) error {
	switch value := value.(type) {
	case *Object:
		if value == nil {
			return fmt.Errorf("mapping.validateObjectValue: nil object")
		}
		return nil

	case []any:
		for i, v := range value {
			if err := validateObjectValue(v); err != nil {
				return fmt.Errorf("mapping.validateObjectValue: index %d: %w", i, err)
			}
		}
		return nil

	case nil, *types.Document, *types.Array,
		float64, string, types.Binary, types.ObjectID, bool,
		time.Time, types.NullType, types.Regex, int32, types.Timestamp, int64:
		return nil

	default:
		return fmt.Errorf("mapping.validateObjectValue: unsupported type: %[1]T (%[1]v)", value)
	}
}
