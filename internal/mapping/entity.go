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

import "fmt"

// Field describes a single persistent field of an entity.
type Field struct {
	// Name is the logical (in-memory) field name.
	Name string

	// Alias is the wire-level field name. If empty, Name is used.
	Alias string

	// Type is the declared field type. Empty if unknown or untracked.
	Type TypeName

	// Elem is the declared element type for array-valued fields.
	Elem TypeName
}

// alias returns the effective wire name of the field.
func (f Field) alias() string {
	if f.Alias == "" {
		return f.Name
	}
	return f.Alias
}

// Entity describes the persistent field set of a single type.
//
// Entity is immutable after construction and safe for concurrent use.
type Entity struct {
	name     TypeName
	abstract bool
	keys     []string
	fields   map[string]Field
}

// NewEntity creates a concrete entity with the given fields.
func NewEntity(name TypeName, fields ...Field) (*Entity, error) {
	return newEntity(name, false, fields)
}

// NewAbstractEntity creates an entity for an abstract base or interface type.
// A field declared with such a type is a polymorphic slot:
// the actual runtime type of its value may be any subtype.
func NewAbstractEntity(name TypeName, fields ...Field) (*Entity, error) {
	return newEntity(name, true, fields)
}

func newEntity(name TypeName, abstract bool, fields []Field) (*Entity, error) {
	if name == "" {
		return nil, fmt.Errorf("mapping.NewEntity: empty entity name")
	}

	e := &Entity{
		name:     name,
		abstract: abstract,
		keys:     make([]string, 0, len(fields)),
		fields:   make(map[string]Field, len(fields)),
	}

	aliases := make(map[string]struct{}, len(fields))

	for _, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("mapping.NewEntity: %s: empty field name", name)
		}

		if _, ok := e.fields[f.Name]; ok {
			return nil, fmt.Errorf("mapping.NewEntity: %s: duplicate field: %q", name, f.Name)
		}

		// store the effective wire name so that lookups need no fallback
		f.Alias = f.alias()

		if _, ok := aliases[f.Alias]; ok {
			return nil, fmt.Errorf("mapping.NewEntity: %s: duplicate alias: %q", name, f.Alias)
		}
		aliases[f.Alias] = struct{}{}

		e.keys = append(e.keys, f.Name)
		e.fields[f.Name] = f
	}

	return e, nil
}

// Name returns the entity's type name.
func (e *Entity) Name() TypeName {
	return e.name
}

// Abstract returns true if the entity describes an abstract base or interface type.
func (e *Entity) Abstract() bool {
	return e.abstract
}

// Field returns the field with the given logical name.
func (e *Entity) Field(name string) (Field, bool) {
	f, ok := e.fields[name]
	return f, ok
}

// FieldNames returns logical field names in declaration order. Do not modify it.
func (e *Entity) FieldNames() []string {
	return e.keys
}
