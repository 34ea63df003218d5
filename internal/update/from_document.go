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
	"errors"
	"strings"

	"github.com/odmkit/updatemap/internal/mapping"
	"github.com/odmkit/updatemap/internal/types"
	"github.com/odmkit/updatemap/internal/util/iterator"
	"github.com/odmkit/updatemap/internal/util/lazyerrors"
	"github.com/odmkit/updatemap/internal/util/must"
)

// FromDocumentOpts sets options for FromDocument.
type FromDocumentOpts struct {
	// TypeKey is the field marking a document's runtime type.
	// Defaults to "_class".
	TypeKey string
}

// FromDocument builds an update specification from a raw generic update document
// of the shape {"$op": {"path": value, ...}, ...}.
//
// A nested document containing the type-key field becomes a typed mapping.Object
// with that field removed. Under "$push" and "$addToSet", a document containing
// "$each" becomes an Each wrapper, together with its $position, $slice and
// $sort modifiers.
func FromDocument(doc *types.Document, opts *FromDocumentOpts) (*Update, error) {
	if doc == nil {
		panic("update.FromDocument: doc is nil")
	}

	if opts == nil {
		opts = new(FromDocumentOpts)
	}

	typeKey := opts.TypeKey
	if typeKey == "" {
		typeKey = "_class"
	}

	u := New()

	iter := doc.Iterator()
	defer iter.Close()

	for {
		op, v, err := iter.Next()
		if err != nil {
			if errors.Is(err, iterator.ErrIteratorDone) {
				return u, nil
			}

			return nil, lazyerrors.Error(err)
		}

		if !strings.HasPrefix(op, "$") {
			return nil, lazyerrors.Errorf("update.FromDocument: unknown update operator %q", op)
		}

		opDoc, ok := v.(*types.Document)
		if !ok {
			return nil, lazyerrors.Errorf("update.FromDocument: %s value must be a document, got %T", op, v)
		}

		for _, path := range opDoc.Keys() {
			pv := must.NotFail(opDoc.Get(path))

			var value any

			if pushDoc, ok := pv.(*types.Document); ok && isPushOperator(op) && pushDoc.Has("$each") {
				if value, err = fromEachDocument(typeKey, pushDoc); err != nil {
					return nil, lazyerrors.Errorf("update.FromDocument: %s %q: %w", op, path, err)
				}
			} else {
				if value, err = fromValue(typeKey, pv); err != nil {
					return nil, lazyerrors.Errorf("update.FromDocument: %s %q: %w", op, path, err)
				}
			}

			u.add(op, path, value)
		}
	}
}

// isPushOperator returns true for operators whose target values are array elements.
func isPushOperator(op string) bool {
	return op == "$push" || op == "$addToSet"
}

// fromEachDocument converts a {"$each": [...], ...modifiers} document into an Each wrapper.
func fromEachDocument(typeKey string, doc *types.Document) (*Each, error) {
	arr, ok := must.NotFail(doc.Get("$each")).(*types.Array)
	if !ok {
		return nil, lazyerrors.New("$each value must be an array")
	}

	elements, err := iterator.ConsumeValues(arr.Iterator())
	if err != nil {
		return nil, lazyerrors.Error(err)
	}

	e := &Each{
		values: make([]any, len(elements)),
	}

	for i, el := range elements {
		v, err := fromValue(typeKey, el)
		if err != nil {
			return nil, lazyerrors.Error(err)
		}

		e.values[i] = v
	}

	for _, key := range doc.Keys() {
		v := must.NotFail(doc.Get(key))

		switch key {
		case "$each":
			// already handled

		case "$position", "$slice":
			var n int
			switch v := v.(type) {
			case int32:
				n = int(v)
			case int64:
				n = int(v)
			default:
				return nil, lazyerrors.Errorf("%s value must be an integer, got %T", key, v)
			}

			if key == "$position" {
				e.position = &n
			} else {
				e.slice = &n
			}

		case "$sort":
			sort, ok := v.(*types.Document)
			if !ok {
				return nil, lazyerrors.Errorf("$sort value must be a document, got %T", v)
			}
			e.sort = sort

		default:
			return nil, lazyerrors.Errorf("unknown $each modifier %q", key)
		}
	}

	return e, nil
}

// fromValue converts tagged documents into typed objects, recursively.
// Untagged values are returned unchanged.
func fromValue(typeKey string, v any) (any, error) {
	switch v := v.(type) {
	case *types.Document:
		if !v.Has(typeKey) {
			return v, nil
		}

		typ, ok := must.NotFail(v.Get(typeKey)).(string)
		if !ok {
			return nil, lazyerrors.Errorf("%s value must be a string", typeKey)
		}

		pairs := make([]any, 0, 2*v.Len())

		for _, key := range v.Keys() {
			if key == typeKey {
				continue
			}

			fv, err := fromValue(typeKey, must.NotFail(v.Get(key)))
			if err != nil {
				return nil, lazyerrors.Error(err)
			}

			pairs = append(pairs, key, fv)
		}

		obj, err := mapping.NewObject(mapping.TypeName(typ), pairs...)
		if err != nil {
			return nil, lazyerrors.Error(err)
		}

		return obj, nil

	case *types.Array:
		values := make([]any, v.Len())
		var tagged bool

		for i := 0; i < v.Len(); i++ {
			el, err := fromValue(typeKey, must.NotFail(v.Get(i)))
			if err != nil {
				return nil, lazyerrors.Error(err)
			}

			values[i] = el

			switch el.(type) {
			case *mapping.Object, []any:
				tagged = true
			}
		}

		if !tagged {
			return v, nil
		}

		return values, nil

	default:
		return v, nil
	}
}
