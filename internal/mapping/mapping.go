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

// Package mapping provides entity field metadata for the update mapper.
//
// Metadata tables are built once per entity type and treated as immutable,
// read-only data after registration. There is no runtime reflection:
// every declared type is carried as an explicit TypeName token,
// and typed values carry their runtime TypeName alongside their fields.
package mapping

// TypeName is a fully-qualified type identifier token, e.g. "shop.OrderItem".
//
// An empty TypeName means the type is unknown or untracked.
type TypeName string
