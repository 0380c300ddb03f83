// Copyright 2017-26 the original author or authors.
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

package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"m4o.io/o5m/model"
)

func london() *model.Boundary {
	return &model.Boundary{
		Min: model.NewCoordinate(51.28554, -0.511482),
		Max: model.NewCoordinate(51.69344, 0.335437),
	}
}

func TestInitialBoundary(t *testing.T) {
	initial := model.InitialBoundary()
	assert.Equal(t, model.MaxLat.E7(), initial.Min.Lat)
	assert.Equal(t, model.MaxLon.E7(), initial.Min.Lon)
	assert.Equal(t, model.MinLat.E7(), initial.Max.Lat)
	assert.Equal(t, model.MinLon.E7(), initial.Max.Lon)
	assert.True(t, initial.IsEmpty())
}

func TestBoundary_Contains(t *testing.T) {
	b := london()

	const e5 model.Degrees = 0.00001

	testCases := []struct {
		name     string
		lat      model.Degrees
		lon      model.Degrees
		expected bool
	}{
		{"bottom/left", 51.28554, -0.511482, true},
		{"top/left", 51.69344, -0.511482, true},
		{"top/right", 51.69344, 0.335437, true},
		{"bottom/right", 51.28554, 0.335437, true},

		{"bottom/left-E5", 51.28554, -0.511482 - e5, false},
		{"bottom-E5/left", 51.28554 - e5, -0.511482, false},
		{"bottom/left+E5", 51.28554, -0.511482 + e5, true},
		{"bottom+E5/left", 51.28554 + e5, -0.511482, true},

		{"top/right+E5", 51.69344, 0.335437 + e5, false},
		{"top+E5/right", 51.69344 + e5, 0.335437, false},
		{"top/right-E5", 51.69344, 0.335437 - e5, true},
		{"top-E5/right", 51.69344 - e5, 0.335437, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, b.Contains(model.NewCoordinate(tc.lat, tc.lon)))
		})
	}
}

func TestBoundary_Expand(t *testing.T) {
	b := model.InitialBoundary()
	b.Expand(model.NewCoordinate(-45, 90))
	b.Expand(model.NewCoordinate(45, -90))

	assert.False(t, b.IsEmpty())
	assert.True(t, b.Contains(model.NewCoordinate(-45, 90)))
	assert.True(t, b.Contains(model.NewCoordinate(45, -90)))
	assert.True(t, b.Contains(model.NewCoordinate(-45, -90)))
	assert.True(t, b.Contains(model.NewCoordinate(45, 90)))
	assert.False(t, b.Contains(model.NewCoordinate(46, 90)))
}

func TestBoundaryString(t *testing.T) {
	assert.Equal(t, "[(51.28554, -0.511482) (51.69344, 0.335437)]", london().String())
}
