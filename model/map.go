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

package model

import (
	"iter"
)

// Map is a complete OpenStreetMap document.  Collections are always encoded
// nodes first, then ways, then relations.
type Map struct {
	Boundary  *Boundary  `json:"boundary,omitempty"`
	Nodes     []Node     `json:"nodes"`
	Ways      []Way      `json:"ways"`
	Relations []Relation `json:"relations"`
}

// Len returns the number of entities in the map.
func (m *Map) Len() int {
	return len(m.Nodes) + len(m.Ways) + len(m.Relations)
}

// CalcBoundary returns the smallest boundary holding every node, or nil when
// the map has no nodes.
func (m *Map) CalcBoundary() *Boundary {
	b := InitialBoundary()
	for i := range m.Nodes {
		b.Expand(m.Nodes[i].Coordinate)
	}

	if b.IsEmpty() {
		return nil
	}

	return b
}

// Entities iterates over every entity in encoding order.
func (m *Map) Entities() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for i := range m.Nodes {
			if !yield(&m.Nodes[i]) {
				return
			}
		}

		for i := range m.Ways {
			if !yield(&m.Ways[i]) {
				return
			}
		}

		for i := range m.Relations {
			if !yield(&m.Relations[i]) {
				return
			}
		}
	}
}
