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
	"math"
	"testing"

	"github.com/golang/geo/s1"
	"github.com/stretchr/testify/assert"

	"m4o.io/o5m/model"
)

func TestDegreesAngle(t *testing.T) {
	assert.InDelta(t, math.Pi/4, float64(model.Degrees(45.0).Angle()), 1e-12)
	assert.Equal(t, s1.Angle(0), model.Degrees(0).Angle())
}

func TestDegreesE7(t *testing.T) {
	testCases := []struct {
		deg      model.Degrees
		expected int32
	}{
		{53.123456789, 531234568},
		{-53.123456789, -531234568},
		{-0.511482, -5114820},
		{180, 1800000000},
		{-90, -900000000},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, tc.deg.E7(), "%v", float64(tc.deg))
	}
}

func TestFromE7(t *testing.T) {
	for _, v := range []int32{0, 1, -1, -65, 4, 531234568, -1799999999, 1800000000, -900000000} {
		assert.Equal(t, v, model.FromE7(v).E7())
	}
}
