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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odmkit/updatemap/internal/mapping"
	"github.com/odmkit/updatemap/internal/types"
	"github.com/odmkit/updatemap/internal/util/must"
)

func TestUpdateBuilder(t *testing.T) {
	t.Parallel()

	t.Run("KeepsOperatorOrder", func(t *testing.T) {
		t.Parallel()

		u := New().
			Set("name", "foo").
			Inc("counter", int32(1)).
			Set("status", "new").
			Unset("legacy")

		assert.Equal(t, []string{"$set", "$inc", "$unset"}, u.Operators())
		assert.Equal(t, 3, u.Len())

		assert.Equal(t, []Entry{
			{Path: "name", Value: "foo"},
			{Path: "status", Value: "new"},
		}, u.Entries("$set"))

		assert.Equal(t, []Entry{{Path: "legacy", Value: int32(1)}}, u.Entries("$unset"))
	})

	t.Run("RepeatedPathReplacesValue", func(t *testing.T) {
		t.Parallel()

		u := New().Set("name", "foo").Set("name", "bar")
		assert.Equal(t, []Entry{{Path: "name", Value: "bar"}}, u.Entries("$set"))
	})

	t.Run("UnknownOperator", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, New().Entries("$set"))
	})

	t.Run("Operators", func(t *testing.T) {
		t.Parallel()

		u := New().
			SetOnInsert("created", true).
			Mul("price", 2.0).
			Min("low", int32(1)).
			Max("high", int32(9)).
			Rename("old", "new").
			CurrentDate("modified").
			PopFirst("queue").
			Pull("tags", "old").
			PullAll("codes", int32(1), int32(2)).
			AddToSet("tags", "new")

		assert.Equal(t, []Entry{{Path: "old", Value: "new"}}, u.Entries("$rename"))
		assert.Equal(t, []Entry{{Path: "modified", Value: true}}, u.Entries("$currentDate"))
		assert.Equal(t, []Entry{{Path: "queue", Value: int32(-1)}}, u.Entries("$pop"))
		assert.Equal(t, []Entry{{Path: "codes", Value: []any{int32(1), int32(2)}}}, u.Entries("$pullAll"))
	})
}

func TestPushBuilder(t *testing.T) {
	t.Parallel()

	t.Run("Value", func(t *testing.T) {
		t.Parallel()

		u := New().Push("tags").Value("new")
		assert.Equal(t, []Entry{{Path: "tags", Value: "new"}}, u.Entries("$push"))
	})

	t.Run("Each", func(t *testing.T) {
		t.Parallel()

		u := New().Push("values").Each("spring", "data", "mongodb")

		entries := u.Entries("$push")
		require.Len(t, entries, 1)

		e, ok := entries[0].Value.(*Each)
		require.True(t, ok)
		assert.Equal(t, []any{"spring", "data", "mongodb"}, e.Values())
		assert.Nil(t, e.PositionModifier())
		assert.Nil(t, e.SliceModifier())
		assert.Nil(t, e.SortModifier())
	})

	t.Run("EachWithModifiers", func(t *testing.T) {
		t.Parallel()

		sort := must.NotFail(types.NewDocument("score", int32(-1)))
		u := New().Push("scores").Position(0).Slice(5).Sort(sort).Each(int32(7))

		e := u.Entries("$push")[0].Value.(*Each)
		require.NotNil(t, e.PositionModifier())
		assert.Equal(t, 0, *e.PositionModifier())
		require.NotNil(t, e.SliceModifier())
		assert.Equal(t, 5, *e.SliceModifier())
		assert.Equal(t, sort, e.SortModifier())
	})

	t.Run("IndependentFields", func(t *testing.T) {
		t.Parallel()

		u := New().Push("category").Each("spring", "data").Push("type").Each("mongodb")

		entries := u.Entries("$push")
		require.Len(t, entries, 2)
		assert.Equal(t, "category", entries[0].Path)
		assert.Equal(t, "type", entries[1].Path)
		assert.Equal(t, []any{"mongodb"}, entries[1].Value.(*Each).Values())
	})
}

func TestFromDocument(t *testing.T) {
	t.Parallel()

	t.Run("Set", func(t *testing.T) {
		t.Parallel()

		doc := must.NotFail(types.NewDocument(
			"$set", must.NotFail(types.NewDocument("name", "foo", "count", int32(2))),
		))

		u, err := FromDocument(doc, nil)
		require.NoError(t, err)

		assert.Equal(t, []string{"$set"}, u.Operators())
		assert.Equal(t, []Entry{
			{Path: "name", Value: "foo"},
			{Path: "count", Value: int32(2)},
		}, u.Entries("$set"))
	})

	t.Run("TaggedObject", func(t *testing.T) {
		t.Parallel()

		doc := must.NotFail(types.NewDocument(
			"$set", must.NotFail(types.NewDocument(
				"item", must.NotFail(types.NewDocument("_class", "shop.Widget", "name", "sprocket")),
			)),
		))

		u, err := FromDocument(doc, nil)
		require.NoError(t, err)

		obj, ok := u.Entries("$set")[0].Value.(*mapping.Object)
		require.True(t, ok)
		assert.Equal(t, mapping.TypeName("shop.Widget"), obj.Type())
		assert.Equal(t, []string{"name"}, obj.Keys())
	})

	t.Run("PushEach", func(t *testing.T) {
		t.Parallel()

		doc := must.NotFail(types.NewDocument(
			"$push", must.NotFail(types.NewDocument(
				"values", must.NotFail(types.NewDocument(
					"$each", must.NotFail(types.NewArray("spring", "data")),
					"$position", int32(0),
				)),
			)),
		))

		u, err := FromDocument(doc, nil)
		require.NoError(t, err)

		e, ok := u.Entries("$push")[0].Value.(*Each)
		require.True(t, ok)
		assert.Equal(t, []any{"spring", "data"}, e.Values())
		require.NotNil(t, e.PositionModifier())
		assert.Equal(t, 0, *e.PositionModifier())
	})

	t.Run("CustomTypeKey", func(t *testing.T) {
		t.Parallel()

		doc := must.NotFail(types.NewDocument(
			"$set", must.NotFail(types.NewDocument(
				"item", must.NotFail(types.NewDocument("$type", "shop.Widget")),
			)),
		))

		u, err := FromDocument(doc, &FromDocumentOpts{TypeKey: "$type"})
		require.NoError(t, err)

		obj, ok := u.Entries("$set")[0].Value.(*mapping.Object)
		require.True(t, ok)
		assert.Equal(t, mapping.TypeName("shop.Widget"), obj.Type())
	})

	t.Run("Errors", func(t *testing.T) {
		t.Parallel()

		for name, doc := range map[string]*types.Document{
			"NotAnOperator": must.NotFail(types.NewDocument("set", must.NotFail(types.NewDocument()))),
			"NotADocument":  must.NotFail(types.NewDocument("$set", "foo")),
			"BadEach": must.NotFail(types.NewDocument(
				"$push", must.NotFail(types.NewDocument(
					"values", must.NotFail(types.NewDocument("$each", "not-an-array")),
				)),
			)),
		} {
			name, doc := name, doc
			t.Run(name, func(t *testing.T) {
				t.Parallel()

				_, err := FromDocument(doc, nil)
				assert.Error(t, err)
			})
		}
	})
}
