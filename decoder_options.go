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
	"m4o.io/o5m/internal/decoder"
)

const (
	// DefaultBufferSize is the default size of the input and output buffers.
	DefaultBufferSize = core.DefaultBufferSize

	// DefaultMaxFrameSize is the default limit on a single record's length.
	DefaultMaxFrameSize = decoder.DefaultMaxFrameSize
)

// decoderOptions provides optional configuration parameters for Decoder construction.
type decoderOptions struct {
	bufferSize         int
	maxFrameSize       uint64
	skipUnknownRecords bool
}

// DecoderOption configures how we set up the decoder.
type DecoderOption func(*decoderOptions)

// WithBufferSize sets the size of the input buffer.
func WithBufferSize(s int) DecoderOption {
	return func(o *decoderOptions) {
		o.bufferSize = s
	}
}

// WithMaxFrameSize limits the length a record may declare.  Longer records
// fail with ErrLengthMismatch before anything is allocated for them.
func WithMaxFrameSize(s uint64) DecoderOption {
	return func(o *decoderOptions) {
		o.maxFrameSize = s
	}
}

// WithSkipUnknownRecords makes the decoder skip length-prefixed records of
// unknown type instead of failing with ErrUnknownRecordType.
func WithSkipUnknownRecords(skip bool) DecoderOption {
	return func(o *decoderOptions) {
		o.skipUnknownRecords = skip
	}
}

// defaultDecoderConfig provides a default configuration for decoders.
var defaultDecoderConfig = decoderOptions{
	bufferSize:   DefaultBufferSize,
	maxFrameSize: DefaultMaxFrameSize,
}
