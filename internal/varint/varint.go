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

// Package varint implements the O5M variable length integers.
//
// Unsigned values are stored seven bits per byte, least significant group
// first, with the high bit flagging that another byte follows.  Signed values
// carry the sign in bit 0 of the first byte; a negative v is stored as the
// magnitude -v-1 so that every bit pattern is a distinct value.
package varint

import (
	"errors"
	"io"

	"golang.org/x/exp/constraints"

	"m4o.io/o5m/internal/core"
)

// MaxLen64 is the maximum length of a varint-encoded 64-bit integer.
const MaxLen64 = 10

const (
	continuation = 0x80
	payload      = 0x7f
)

// AppendUnsigned appends the unsigned varint encoding of v to dst.  Zero is
// encoded as the single byte 0x00.
func AppendUnsigned[T constraints.Unsigned](dst []byte, v T) []byte {
	u := uint64(v)
	for u >= continuation {
		dst = append(dst, byte(u)|continuation)
		u >>= 7
	}

	return append(dst, byte(u))
}

// AppendSigned appends the signed varint encoding of v to dst.
func AppendSigned[T constraints.Signed](dst []byte, v T) []byte {
	return AppendUnsigned(dst, zigzag(int64(v)))
}

// Unsigned decodes an unsigned varint from the front of buf, returning the
// value and the number of bytes consumed.
func Unsigned(buf []byte) (uint64, int, error) {
	var v uint64

	for i, b := range buf {
		if i == MaxLen64 || (i == MaxLen64-1 && b > 1) {
			return 0, i, core.ErrVarIntOverflow
		}

		v |= uint64(b&payload) << (7 * i)

		if b < continuation {
			return v, i + 1, nil
		}
	}

	return 0, len(buf), core.ErrTruncatedVarInt
}

// Signed decodes a signed varint from the front of buf, returning the value
// and the number of bytes consumed.
func Signed(buf []byte) (int64, int, error) {
	u, n, err := Unsigned(buf)
	if err != nil {
		return 0, n, err
	}

	return unzigzag(u), n, nil
}

// ReadUnsigned decodes an unsigned varint from r.  Running out of input,
// including before the first byte, is reported as core.ErrTruncatedVarInt.
func ReadUnsigned(r io.ByteReader) (uint64, int, error) {
	var v uint64

	for i := 0; ; i++ {
		b, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return 0, i, core.ErrTruncatedVarInt
			}

			return 0, i, err
		}

		if i == MaxLen64 || (i == MaxLen64-1 && b > 1) {
			return 0, i + 1, core.ErrVarIntOverflow
		}

		v |= uint64(b&payload) << (7 * i)

		if b < continuation {
			return v, i + 1, nil
		}
	}
}

// ReadSigned decodes a signed varint from r.
func ReadSigned(r io.ByteReader) (int64, int, error) {
	u, n, err := ReadUnsigned(r)
	if err != nil {
		return 0, n, err
	}

	return unzigzag(u), n, nil
}

func zigzag(v int64) uint64 {
	if v < 0 {
		return uint64(-(v+1))<<1 | 1
	}

	return uint64(v) << 1
}

func unzigzag(u uint64) int64 {
	if u&1 != 0 {
		return -int64(u>>1) - 1
	}

	return int64(u >> 1)
}
