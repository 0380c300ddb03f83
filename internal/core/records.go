// Copyright 2026 the original author or authors.
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

package core

// Leading bytes of O5M records.
const (
	RecordNode        byte = 0x10
	RecordWay         byte = 0x11
	RecordRelation    byte = 0x12
	RecordBoundingBox byte = 0xDB
	RecordHeader      byte = 0xE0
	RecordEOF         byte = 0xFE
	RecordReset       byte = 0xFF

	// Records from here up carry no length prefix.
	FirstSingleByteRecord byte = 0xF0
)

// Header payloads.
const (
	HeaderO5M = "o5m2"
	HeaderO5C = "o5c2"
)

// RecordName returns a human readable name for a record type.
func RecordName(t byte) string {
	switch t {
	case RecordNode:
		return "node"
	case RecordWay:
		return "way"
	case RecordRelation:
		return "relation"
	case RecordBoundingBox:
		return "bounding box"
	case RecordHeader:
		return "header"
	case RecordEOF:
		return "end of file"
	case RecordReset:
		return "reset"
	default:
		return "unknown"
	}
}
