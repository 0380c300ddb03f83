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

package core

import (
	"errors"
	"fmt"
)

var (
	ErrTruncatedVarInt      = errors.New("truncated varint")
	ErrVarIntOverflow       = errors.New("varint overflows 64 bits")
	ErrUnknownRecordType    = errors.New("unknown record type")
	ErrMalformedStringToken = errors.New("malformed string token")
	ErrUnknownMemberType    = errors.New("unknown relation member type")
	ErrIO                   = errors.New("i/o failure")
	ErrLengthMismatch       = errors.New("length mismatch")
	ErrInvalidHeader        = errors.New("invalid o5m header")
	ErrUnexpectedEnd        = errors.New("stream ended before end-of-file marker")
	ErrUnknownFormat        = errors.New("unknown format")
	ErrUnknownCompression   = errors.New("unknown compression")
	ErrMalformedXML         = errors.New("malformed osm xml")
	ErrZeroTimestamp        = errors.New("author has a zero timestamp")
)

// ParseError locates a decoding failure within an O5M stream.
type ParseError struct {
	Offset int64 // byte offset of the start of the failing record
	Record int   // 0-based index of the failing record
	Type   byte  // leading byte of the failing record
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("o5m: record %d (type 0x%02x) at offset %d: %v", e.Record, e.Type, e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IOError marks err as an I/O failure while doing op.
func IOError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrIO, op, err)
}
