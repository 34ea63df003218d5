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

package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/odmkit/updatemap/internal/convert"
	"github.com/odmkit/updatemap/internal/types"
	"github.com/odmkit/updatemap/internal/util/must"
)

// Dump returns a readable form of the given value as extended JSON.
func Dump[T types.Type](tb testing.TB, v T) string {
	tb.Helper()

	b, err := convert.MarshalExtJSONIndent(wrap(v))
	require.NoError(tb, err)

	return string(b)
}

// wrap returns the given value as a document, wrapping non-documents.
func wrap(v any) *types.Document {
	if doc, ok := v.(*types.Document); ok {
		return doc
	}

	return must.NotFail(types.NewDocument("v", v))
}
