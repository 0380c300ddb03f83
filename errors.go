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

var (
	// ErrTruncatedVarInt is returned when input ends inside a varint.
	ErrTruncatedVarInt = core.ErrTruncatedVarInt

	// ErrVarIntOverflow is returned for varints encoding more than 64 bits.
	ErrVarIntOverflow = core.ErrVarIntOverflow

	// ErrUnknownRecordType is returned for record types the decoder does not
	// know and was not told to skip.
	ErrUnknownRecordType = core.ErrUnknownRecordType

	// ErrMalformedStringToken is returned for string tokens missing a
	// terminator or referencing outside the string table.
	ErrMalformedStringToken = core.ErrMalformedStringToken

	// ErrUnknownMemberType is returned for relation members that are not a
	// node, a way or a relation.
	ErrUnknownMemberType = core.ErrUnknownMemberType

	// ErrIO wraps failures of the underlying reader or writer.
	ErrIO = core.ErrIO

	// ErrLengthMismatch is returned when a length prefix disagrees with the
	// data it describes.
	ErrLengthMismatch = core.ErrLengthMismatch

	// ErrInvalidHeader is returned for a header record other than "o5m2" or
	// "o5c2".
	ErrInvalidHeader = core.ErrInvalidHeader

	// ErrUnexpectedEnd is returned when a stream ends before its end-of-file
	// marker.
	ErrUnexpectedEnd = core.ErrUnexpectedEnd

	ErrUnknownFormat      = core.ErrUnknownFormat
	ErrUnknownCompression = core.ErrUnknownCompression
	ErrMalformedXML       = core.ErrMalformedXML

	// ErrZeroTimestamp is returned by the O5M encoder for an author whose
	// Created timestamp is zero.  O5M reads a zero timestamp as "no author".
	ErrZeroTimestamp = core.ErrZeroTimestamp
)

// ParseError locates a decoding failure within an O5M stream.
type ParseError = core.ParseError
