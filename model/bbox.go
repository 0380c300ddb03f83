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
	"fmt"
)

const (
	MaxLat Degrees = 90.0
	MaxLon Degrees = 180.0
	MinLat Degrees = -90.0
	MinLon Degrees = -180.0
)

// Coordinate is a point in ten millionths of a degree.  Values are not
// range checked.
type Coordinate struct {
	Lat int32 `json:"lat"`
	Lon int32 `json:"lon"`
}

// NewCoordinate converts a latitude and longitude in degrees to a Coordinate.
func NewCoordinate(lat, lon Degrees) Coordinate {
	return Coordinate{Lat: lat.E7(), Lon: lon.E7()}
}

// LatDegrees returns the latitude in degrees.
func (c Coordinate) LatDegrees() Degrees { return FromE7(c.Lat) }

// LonDegrees returns the longitude in degrees.
func (c Coordinate) LonDegrees() Degrees { return FromE7(c.Lon) }

func (c Coordinate) String() string {
	return fmt.Sprintf("(%s, %s)", ftoa(float64(c.LatDegrees())), ftoa(float64(c.LonDegrees())))
}

// Boundary is simply a bounding box.
type Boundary struct {
	Min Coordinate `json:"min"`
	Max Coordinate `json:"max"`
}

// InitialBoundary creates a Boundary that is meant to be expanded.
func InitialBoundary() *Boundary {
	return &Boundary{
		Min: NewCoordinate(MaxLat, MaxLon),
		Max: NewCoordinate(MinLat, MinLon),
	}
}

// IsEmpty reports whether the boundary has not been expanded by anything.
func (b *Boundary) IsEmpty() bool {
	return b.Min.Lat > b.Max.Lat || b.Min.Lon > b.Max.Lon
}

// Contains checks if the boundary contains the coordinate.
func (b *Boundary) Contains(c Coordinate) bool {
	return b.Min.Lon <= c.Lon && c.Lon <= b.Max.Lon && b.Min.Lat <= c.Lat && c.Lat <= b.Max.Lat
}

// Expand grows the boundary to include c.
func (b *Boundary) Expand(c Coordinate) {
	b.Min.Lat = min(b.Min.Lat, c.Lat)
	b.Min.Lon = min(b.Min.Lon, c.Lon)
	b.Max.Lat = max(b.Max.Lat, c.Lat)
	b.Max.Lon = max(b.Max.Lon, c.Lon)
}

func (b *Boundary) String() string {
	return fmt.Sprintf("[%s %s]", b.Min, b.Max)
}
