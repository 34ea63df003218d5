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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocument(t *testing.T) {
	t.Parallel()

	t.Run("Empty", func(t *testing.T) {
		t.Parallel()

		doc, err := NewDocument()
		require.NoError(t, err)
		assert.Equal(t, 0, doc.Len())
	})

	t.Run("KeepsOrder", func(t *testing.T) {
		t.Parallel()

		doc, err := NewDocument("z", int32(1), "a", int32(2), "m", int32(3))
		require.NoError(t, err)
		assert.Equal(t, []string{"z", "a", "m"}, doc.Keys())
	})

	t.Run("OddArguments", func(t *testing.T) {
		t.Parallel()

		_, err := NewDocument("foo")
		assert.EqualError(t, err, "types.NewDocument: invalid number of arguments: 1")
	})

	t.Run("DuplicateKey", func(t *testing.T) {
		t.Parallel()

		_, err := NewDocument("foo", int32(1), "foo", int32(2))
		assert.EqualError(t, err, `types.NewDocument: types.Document.add: key already present: "foo"`)
	})

	t.Run("InvalidValue", func(t *testing.T) {
		t.Parallel()

		_, err := NewDocument("foo", 42)
		assert.EqualError(t, err, "types.NewDocument: types.Document.add: types.validateValue: unsupported type: int (42)")
	})
}

func TestDocumentSetGetRemove(t *testing.T) {
	t.Parallel()

	doc, err := NewDocument("foo", "bar")
	require.NoError(t, err)

	require.NoError(t, doc.Set("baz", int32(42)))
	assert.Equal(t, []string{"foo", "baz"}, doc.Keys())

	v, err := doc.Get("baz")
	require.NoError(t, err)
	assert.Equal(t, int32(42), v)

	require.NoError(t, doc.Set("foo", "qux"))
	assert.Equal(t, []string{"foo", "baz"}, doc.Keys(), "replacing a value must keep the key position")

	assert.True(t, doc.Has("foo"))
	doc.Remove("foo")
	assert.False(t, doc.Has("foo"))
	assert.Equal(t, []string{"baz"}, doc.Keys())

	_, err = doc.Get("foo")
	assert.EqualError(t, err, `types.Document.Get: key not found: "foo"`)
}

func TestDocumentDeepCopy(t *testing.T) {
	t.Parallel()

	arr, err := NewArray("spring", "data")
	require.NoError(t, err)

	doc, err := NewDocument("values", arr)
	require.NoError(t, err)

	copied := doc.DeepCopy()
	assert.True(t, Equal(doc, copied))

	require.NoError(t, arr.Append("mongodb"))
	assert.False(t, Equal(doc, copied), "deep copy must not share elements")
}
