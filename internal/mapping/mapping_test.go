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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odmkit/updatemap/internal/types"
)

func TestNewEntity(t *testing.T) {
	t.Parallel()

	t.Run("AliasDefaultsToName", func(t *testing.T) {
		t.Parallel()

		e, err := NewEntity("shop.Order", Field{Name: "status"})
		require.NoError(t, err)

		f, ok := e.Field("status")
		require.True(t, ok)
		assert.Equal(t, "status", f.Alias)
	})

	t.Run("EmptyName", func(t *testing.T) {
		t.Parallel()

		_, err := NewEntity("")
		assert.EqualError(t, err, "mapping.NewEntity: empty entity name")
	})

	t.Run("DuplicateField", func(t *testing.T) {
		t.Parallel()

		_, err := NewEntity("shop.Order", Field{Name: "status"}, Field{Name: "status"})
		assert.EqualError(t, err, `mapping.NewEntity: shop.Order: duplicate field: "status"`)
	})

	t.Run("DuplicateAlias", func(t *testing.T) {
		t.Parallel()

		_, err := NewEntity("shop.Order", Field{Name: "a", Alias: "x"}, Field{Name: "b", Alias: "x"})
		assert.EqualError(t, err, `mapping.NewEntity: shop.Order: duplicate alias: "x"`)
	})

	t.Run("FieldNames", func(t *testing.T) {
		t.Parallel()

		e, err := NewEntity("shop.Order", Field{Name: "b"}, Field{Name: "a"})
		require.NoError(t, err)
		assert.Equal(t, []string{"b", "a"}, e.FieldNames())
		assert.False(t, e.Abstract())
	})
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	order, err := NewEntity("shop.Order", Field{Name: "status"})
	require.NoError(t, err)

	item, err := NewAbstractEntity("shop.Item")
	require.NoError(t, err)

	require.NoError(t, r.Register(order, item))

	e, ok := r.Entity("shop.Order")
	require.True(t, ok)
	assert.Equal(t, TypeName("shop.Order"), e.Name())

	e, ok = r.Entity("shop.Item")
	require.True(t, ok)
	assert.True(t, e.Abstract())

	_, ok = r.Entity("shop.Unknown")
	assert.False(t, ok)

	err = r.Register(order)
	assert.EqualError(t, err, `mapping.Registry.Register: duplicate entity: "shop.Order"`)

	r.RegisterSimple("time.Duration")
	assert.True(t, r.Simple("time.Duration"))
	assert.False(t, r.Simple("shop.Order"))
}

func TestNewObject(t *testing.T) {
	t.Parallel()

	t.Run("KeepsOrder", func(t *testing.T) {
		t.Parallel()

		o, err := NewObject("shop.Item", "name", "widget", "price", 9.99)
		require.NoError(t, err)

		assert.Equal(t, TypeName("shop.Item"), o.Type())
		assert.Equal(t, []string{"name", "price"}, o.Keys())

		v, err := o.Get("name")
		require.NoError(t, err)
		assert.Equal(t, "widget", v)
	})

	t.Run("EmptyType", func(t *testing.T) {
		t.Parallel()

		_, err := NewObject("")
		assert.EqualError(t, err, "mapping.NewObject: empty type name")
	})

	t.Run("NestedValues", func(t *testing.T) {
		t.Parallel()

		inner, err := NewObject("shop.Tag", "label", "new")
		require.NoError(t, err)

		arr, err := types.NewArray("a", "b")
		require.NoError(t, err)

		_, err = NewObject("shop.Item", "tag", inner, "codes", arr, "mixed", []any{inner, "x"}, "none", nil)
		require.NoError(t, err)
	})

	t.Run("UnsupportedValue", func(t *testing.T) {
		t.Parallel()

		_, err := NewObject("shop.Item", "ch", make(chan int))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported type")
	})
}

func TestLoadSchema(t *testing.T) {
	t.Parallel()

	schema := `{
		"simple": ["time.Duration"],
		"entities": [
			{
				"name": "shop.Order",
				"fields": [
					{"name": "items", "alias": "its", "elem": "shop.Item"},
					{"name": "status"}
				]
			},
			{"name": "shop.Item", "abstract": true, "fields": [{"name": "name"}]}
		]
	}`

	r, err := LoadSchema(strings.NewReader(schema))
	require.NoError(t, err)

	assert.True(t, r.Simple("time.Duration"))

	order, ok := r.Entity("shop.Order")
	require.True(t, ok)
	assert.False(t, order.Abstract())

	items, ok := order.Field("items")
	require.True(t, ok)
	assert.Equal(t, "its", items.Alias)
	assert.Equal(t, TypeName("shop.Item"), items.Elem)

	item, ok := r.Entity("shop.Item")
	require.True(t, ok)
	assert.True(t, item.Abstract())
}

func TestLoadSchemaErrors(t *testing.T) {
	t.Parallel()

	for name, schema := range map[string]string{
		"BadJSON":         `{`,
		"EmptyEntityName": `{"entities": [{"name": ""}]}`,
		"DuplicateEntity": `{"entities": [{"name": "a"}, {"name": "a"}]}`,
	} {
		name, schema := name, schema
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := LoadSchema(strings.NewReader(schema))
			assert.Error(t, err)
		})
	}
}
