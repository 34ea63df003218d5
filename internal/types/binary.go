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

// Binary represents binary data with a subtype.
type Binary struct {
	B       []byte
	Subtype BinarySubtype
}

// BinarySubtype represents the subtype of binary data.
type BinarySubtype byte

const (
	// BinaryGeneric represents a generic binary subtype.
	BinaryGeneric = BinarySubtype(0x00)

	// BinaryUUID represents a UUID subtype.
	BinaryUUID = BinarySubtype(0x04)

	// BinaryUser represents a user-defined subtype.
	BinaryUser = BinarySubtype(0x80)
)
