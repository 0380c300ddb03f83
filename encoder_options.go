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

package o5m

import (
	"m4o.io/o5m/internal/core"
)

// HeaderType is the payload of the O5M header record.
type HeaderType string

const (
	// HeaderO5M marks a data file.
	HeaderO5M HeaderType = core.HeaderO5M

	// HeaderO5C marks a change file.
	HeaderO5C HeaderType = core.HeaderO5C
)

// encoderOptions provides optional configuration parameters for Encoder construction.
type encoderOptions struct {
	bufferSize       int
	header           HeaderType
	computedBoundary bool
	generator        string
}

// EncoderOption configures how we set up the encoder.
type EncoderOption func(*encoderOptions)

// WithEncoderBufferSize sets the size of the output buffer.
func WithEncoderBufferSize(s int) EncoderOption {
	return func(o *encoderOptions) {
		o.bufferSize = s
	}
}

// WithHeaderType selects the header written at the start of the stream.  The
// default is HeaderO5M.
func WithHeaderType(h HeaderType) EncoderOption {
	return func(o *encoderOptions) {
		o.header = h
	}
}

// WithComputedBoundary makes the encoder write a bounding box derived from
// the node coordinates when the map has none.
func WithComputedBoundary(enabled bool) EncoderOption {
	return func(o *encoderOptions) {
		o.computedBoundary = enabled
	}
}

// WithGenerator sets the generator attribute of OSM XML documents.
func WithGenerator(generator string) EncoderOption {
	return func(o *encoderOptions) {
		o.generator = generator
	}
}

// defaultEncoderConfig provides a default configuration for encoders.
var defaultEncoderConfig = encoderOptions{
	bufferSize: core.DefaultBufferSize,
	header:     HeaderO5M,
	generator:  "m4o.io/o5m",
}
