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

package model

import (
	"strconv"
	"strings"

	"github.com/golang/geo/s1"
)

// Degrees is the decimal degree representation of a longitude or latitude.
type Degrees float64

// TenMillionths is the number of O5M coordinate units in a degree.
const TenMillionths = 10_000_000

// Angle returns the equivalent s1.Angle.
func (d Degrees) Angle() s1.Angle { return s1.Angle(d) * s1.Degree }

// E7 returns the angle in ten millionths of degrees, rounded half away from
// zero.
func (d Degrees) E7() int32 { return d.Angle().E7() }

// FromE7 converts ten millionths of degrees into Degrees.
func FromE7(v int32) Degrees {
	return Degrees(float64(v) / TenMillionths)
}

// ftoa formats f with at most seven decimals, the precision of an O5M
// coordinate, dropping trailing zeros.
func ftoa(f float64) string {
	s := strconv.FormatFloat(f, 'f', 7, 64)
	s = strings.TrimRight(s, "0")

	return strings.TrimSuffix(s, ".")
}
