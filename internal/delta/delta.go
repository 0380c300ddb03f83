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

// Package delta tracks the running values that O5M delta-codes against.
package delta

// Category selects one of the independent running values.
type Category int

const (
	ID Category = iota
	Lat
	Lon
	Timestamp
	Changeset
	WayRef
	RelNodeRef
	RelWayRef
	RelRelRef

	numCategories
)

var categoryNames = [numCategories]string{
	"ID", "Lat", "Lon", "Timestamp", "Changeset", "WayRef", "RelNodeRef", "RelWayRef", "RelRelRef",
}

func (c Category) String() string {
	if c < 0 || c >= numCategories {
		return "Category(?)"
	}

	return categoryNames[c]
}

// State holds the last absolute value seen for every category.  The zero
// value is ready to use.
type State struct {
	prev [numCategories]int64
}

// Encode returns the difference between v and the previous value of c, and
// remembers v.
func (s *State) Encode(c Category, v int64) int64 {
	d := v - s.prev[c]
	s.prev[c] = v

	return d
}

// Decode reverses Encode: it adds d to the previous value of c and remembers
// the result.
func (s *State) Decode(c Category, d int64) int64 {
	v := s.prev[c] + d
	s.prev[c] = v

	return v
}

// Last returns the previous value of c.
func (s *State) Last(c Category) int64 {
	return s.prev[c]
}

// Reset zeroes every category.
func (s *State) Reset() {
	s.prev = [numCategories]int64{}
}
