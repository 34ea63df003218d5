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

// Package convert translates between the types value model and
// MongoDB driver values.
package convert

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/odmkit/updatemap/internal/types"
	"github.com/odmkit/updatemap/internal/util/lazyerrors"
)

// FromDriver converts a driver document to *types.Document.
func FromDriver(d bson.D) (*types.Document, error) {
	doc, err := types.NewDocument()
	if err != nil {
		return nil, lazyerrors.Error(err)
	}

	for _, e := range d {
		v, err := fromDriverValue(e.Value)
		if err != nil {
			return nil, lazyerrors.Errorf("%q: %w", e.Key, err)
		}

		if err = doc.Set(e.Key, v); err != nil {
			return nil, lazyerrors.Errorf("%q: %w", e.Key, err)
		}
	}

	return doc, nil
}

// fromDriverValue converts a single driver value.
func fromDriverValue(v any) (any, error) {
	switch v := v.(type) {
	case bson.D:
		return FromDriver(v)

	case bson.A:
		arr := types.MakeArray(len(v))
		for i, el := range v {
			converted, err := fromDriverValue(el)
			if err != nil {
				return nil, lazyerrors.Errorf("index %d: %w", i, err)
			}

			if err = arr.Append(converted); err != nil {
				return nil, lazyerrors.Error(err)
			}
		}
		return arr, nil

	case nil, primitive.Null:
		return types.Null, nil

	case primitive.ObjectID:
		return types.ObjectID(v), nil

	case primitive.Binary:
		return types.Binary{
			Subtype: types.BinarySubtype(v.Subtype),
			B:       v.Data,
		}, nil

	case primitive.DateTime:
		return v.Time().UTC(), nil

	case time.Time:
		return v.UTC(), nil

	case primitive.Regex:
		return types.Regex{
			Pattern: v.Pattern,
			Options: v.Options,
		}, nil

	case primitive.Timestamp:
		return types.Timestamp(uint64(v.T)<<32 | uint64(v.I)), nil

	case float64, string, bool, int32, int64:
		return v, nil

	default:
		return nil, lazyerrors.Errorf("convert.fromDriverValue: unsupported type: %[1]T (%[1]v)", v)
	}
}

// ToDriver converts a *types.Document to a driver document.
func ToDriver(doc *types.Document) (bson.D, error) {
	d := make(bson.D, 0, doc.Len())

	for _, key := range doc.Keys() {
		v, err := doc.Get(key)
		if err != nil {
			return nil, lazyerrors.Error(err)
		}

		converted, err := toDriverValue(v)
		if err != nil {
			return nil, lazyerrors.Errorf("%q: %w", key, err)
		}

		d = append(d, bson.E{Key: key, Value: converted})
	}

	return d, nil
}

// toDriverValue converts a single types value.
func toDriverValue(v any) (any, error) {
	switch v := v.(type) {
	case *types.Document:
		return ToDriver(v)

	case *types.Array:
		arr := make(bson.A, v.Len())
		for i := 0; i < v.Len(); i++ {
			el, err := v.Get(i)
			if err != nil {
				return nil, lazyerrors.Error(err)
			}

			if arr[i], err = toDriverValue(el); err != nil {
				return nil, lazyerrors.Errorf("index %d: %w", i, err)
			}
		}
		return arr, nil

	case types.NullType:
		return primitive.Null{}, nil

	case types.ObjectID:
		return primitive.ObjectID(v), nil

	case types.Binary:
		return primitive.Binary{
			Subtype: byte(v.Subtype),
			Data:    v.B,
		}, nil

	case time.Time:
		return primitive.NewDateTimeFromTime(v), nil

	case types.Regex:
		return primitive.Regex{
			Pattern: v.Pattern,
			Options: v.Options,
		}, nil

	case types.Timestamp:
		return primitive.Timestamp{
			T: uint32(v >> 32),
			I: uint32(v),
		}, nil

	case float64, string, bool, int32, int64:
		return v, nil

	default:
		return nil, lazyerrors.Errorf("convert.toDriverValue: unsupported type: %[1]T (%[1]v)", v)
	}
}

// UnmarshalExtJSON converts an extended JSON document to *types.Document.
func UnmarshalExtJSON(b []byte) (*types.Document, error) {
	var d bson.D
	if err := bson.UnmarshalExtJSON(b, false, &d); err != nil {
		return nil, lazyerrors.Error(err)
	}

	return FromDriver(d)
}

// MarshalExtJSONIndent converts a *types.Document to indented extended JSON.
func MarshalExtJSONIndent(doc *types.Document) ([]byte, error) {
	d, err := ToDriver(doc)
	if err != nil {
		return nil, lazyerrors.Error(err)
	}

	b, err := bson.MarshalExtJSONIndent(d, false, false, "", "  ")
	if err != nil {
		return nil, lazyerrors.Error(err)
	}

	return b, nil
}
