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

func TestNewPathFromString(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		s        string
		expected []string
		err      error
	}{
		"Simple":     {s: "foo", expected: []string{"foo"}},
		"Dotted":     {s: "foo.bar", expected: []string{"foo", "bar"}},
		"Positional": {s: "list.$.value", expected: []string{"list", "$", "value"}},
		"Index":      {s: "list.0", expected: []string{"list", "0"}},
		"Empty":      {s: "", err: ErrPathEmpty},
		"EmptyHead":  {s: ".foo", err: ErrPathElementEmpty},
		"EmptyTail":  {s: "foo.", err: ErrPathElementEmpty},
		"EmptyMid":   {s: "foo..bar", err: ErrPathElementEmpty},
	} {
		name, tc := name, tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			p, err := NewPathFromString(tc.s)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, p.Slice())
			assert.Equal(t, tc.s, p.String())
		})
	}
}

func TestPath(t *testing.T) {
	t.Parallel()

	p := NewPath("list", "$", "value")

	assert.Equal(t, 3, p.Len())
	assert.Equal(t, "list", p.Prefix())
	assert.Equal(t, "value", p.Suffix())
	assert.Equal(t, "$.value", p.TrimPrefix().String())
	assert.Equal(t, "list.$", p.TrimSuffix().String())
	assert.Equal(t, "list.$.value.x", p.Append("x").String())

	// the original path must not be modified
	assert.Equal(t, "list.$.value", p.String())
}

func TestIsIndex(t *testing.T) {
	t.Parallel()

	assert.True(t, IsIndex("$"))
	assert.True(t, IsIndex("0"))
	assert.True(t, IsIndex("42"))
	assert.False(t, IsIndex("foo"))
	assert.False(t, IsIndex("-1"))
	assert.False(t, IsIndex("007"))
	assert.False(t, IsIndex("4x"))
}
