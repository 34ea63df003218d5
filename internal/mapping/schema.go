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
	"encoding/json"
	"io"

	"github.com/odmkit/updatemap/internal/util/lazyerrors"
)

// schemaFile is the JSON representation of a registry.
type schemaFile struct {
	Simple   []TypeName     `json:"simple"`
	Entities []schemaEntity `json:"entities"`
}

// schemaEntity is the JSON representation of a single entity.
type schemaEntity struct {
	Name     TypeName      `json:"name"`
	Abstract bool          `json:"abstract,omitempty"`
	Fields   []schemaField `json:"fields"`
}

// schemaField is the JSON representation of a single field.
type schemaField struct {
	Name  string   `json:"name"`
	Alias string   `json:"alias,omitempty"`
	Type  TypeName `json:"type,omitempty"`
	Elem  TypeName `json:"elem,omitempty"`
}

// LoadSchema reads a JSON schema document and builds a registry from it.
func LoadSchema(r io.Reader) (*Registry, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, lazyerrors.Error(err)
	}

	var file schemaFile
	if err = json.Unmarshal(b, &file); err != nil {
		return nil, lazyerrors.Error(err)
	}

	res := NewRegistry()
	res.RegisterSimple(file.Simple...)

	for _, se := range file.Entities {
		fields := make([]Field, len(se.Fields))
		for i, sf := range se.Fields {
			fields[i] = Field{
				Name:  sf.Name,
				Alias: sf.Alias,
				Type:  sf.Type,
				Elem:  sf.Elem,
			}
		}

		var e *Entity
		if se.Abstract {
			e, err = NewAbstractEntity(se.Name, fields...)
		} else {
			e, err = NewEntity(se.Name, fields...)
		}
		if err != nil {
			return nil, lazyerrors.Error(err)
		}

		if err = res.Register(e); err != nil {
			return nil, lazyerrors.Error(err)
		}
	}

	return res, nil
}
