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

// Package o5m reads and writes OpenStreetMap data in the O5M binary format.
//
// An O5M stream is a sequence of records: nodes, ways and relations framed
// by a type byte and a length, plus a header, an optional bounding box,
// reset markers and an end-of-file marker.  Numbers are varints, most of
// them stored as deltas from the previous value of the same kind, and
// strings repeated within a block are replaced by back-references into a
// table of the 15000 most recent ones.
//
// Encoder and Decoder convert whole model.Map values.  NewMapEncoder and
// NewMapDecoder select between O5M and OSM XML.
package o5m
