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

// Registry holds entity metadata and the simple-type set.
//
// Register all entities before the first lookup;
// after that, the registry must be treated as read-only.
// A read-only registry is safe for concurrent use.
type Registry struct {
	entities map[TypeName]*Entity
	simple   map[TypeName]struct{}
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entities: map[TypeName]*Entity{},
		simple:   map[TypeName]struct{}{},
	}
}

// Register adds the given entities to the registry.
func (r *Registry) Register(entities ...*Entity) error {
	for _, e := range entities {
		if e == nil {
			panic("mapping.Registry.Register: nil entity")
		}

		if _, ok := r.entities[e.name]; ok {
			return fmt.Errorf("mapping.Registry.Register: duplicate entity: %q", e.name)
		}

		r.entities[e.name] = e
	}

	return nil
}

// RegisterSimple marks the given type names as simple value types.
// Values of simple types never receive a type discriminator.
func (r *Registry) RegisterSimple(names ...TypeName) {
	for _, name := range names {
		r.simple[name] = struct{}{}
	}
}

// Entity returns the entity with the given type name.
func (r *Registry) Entity(name TypeName) (*Entity, bool) {
	e, ok := r.entities[name]
	return e, ok
}

// Simple returns true if the given type name is registered as a simple value type.
func (r *Registry) Simple(name TypeName) bool {
	_, ok := r.simple[name]
	return ok
}
