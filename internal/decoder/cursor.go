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

package decoder

import (
	"bytes"
	"fmt"

	"m4o.io/o5m/internal/core"
	"m4o.io/o5m/internal/varint"
)

// cursor walks a record body.
type cursor struct {
	buf []byte
	pos int
}

func (c *cursor) done() bool {
	return c.pos >= len(c.buf)
}

func (c *cursor) rest() []byte {
	return c.buf[c.pos:]
}

func (c *cursor) unsigned() (uint64, error) {
	v, n, err := varint.Unsigned(c.rest())
	if err != nil {
		return 0, fmt.Errorf("at body offset %d: %w", c.pos, err)
	}

	c.pos += n

	return v, nil
}

func (c *cursor) signed() (int64, error) {
	v, n, err := varint.Signed(c.rest())
	if err != nil {
		return 0, fmt.Errorf("at body offset %d: %w", c.pos, err)
	}

	c.pos += n

	return v, nil
}

// section splits off the next n bytes as their own cursor.
func (c *cursor) section(n uint64) (*cursor, error) {
	if n > uint64(len(c.buf)-c.pos) {
		return nil, fmt.Errorf("%w: section of %d bytes at body offset %d exceeds the %d remaining",
			core.ErrLengthMismatch, n, c.pos, len(c.buf)-c.pos)
	}

	s := &cursor{buf: c.buf[c.pos : c.pos+int(n)]}
	c.pos += int(n)

	return s, nil
}

// cstring returns the bytes of buf up to the first zero byte and the number
// of bytes consumed including the terminator.
func cstring(buf []byte) ([]byte, int, error) {
	i := bytes.IndexByte(buf, 0x00)
	if i < 0 {
		return nil, 0, fmt.Errorf("%w: missing terminator", core.ErrMalformedStringToken)
	}

	return buf[:i], i + 1, nil
}

func expectZero(buf []byte) error {
	if len(buf) == 0 || buf[0] != 0x00 {
		return fmt.Errorf("%w: missing leading zero byte", core.ErrMalformedStringToken)
	}

	return nil
}

// scanPair parses a `00 key 00 value 00` token.
func scanPair(buf []byte) (key, value []byte, n int, err error) {
	if err = expectZero(buf); err != nil {
		return nil, nil, 0, err
	}

	key, kn, err := cstring(buf[1:])
	if err != nil {
		return nil, nil, 0, err
	}

	value, vn, err := cstring(buf[1+kn:])
	if err != nil {
		return nil, nil, 0, err
	}

	return key, value, 1 + kn + vn, nil
}

// scanUser parses a `00 uvarint(uid) 00 user 00` token.
func scanUser(buf []byte) (uid uint64, user []byte, n int, err error) {
	if err = expectZero(buf); err != nil {
		return 0, nil, 0, err
	}

	uid, un, err := varint.Unsigned(buf[1:])
	if err != nil {
		return 0, nil, 0, fmt.Errorf("%w: bad user id: %w", core.ErrMalformedStringToken, err)
	}

	n = 1 + un
	if err = expectZero(buf[n:]); err != nil {
		return 0, nil, 0, err
	}

	n++

	user, sn, err := cstring(buf[n:])
	if err != nil {
		return 0, nil, 0, err
	}

	return uid, user, n + sn, nil
}

// scanRole parses a `00 digit role 00` token, returning the digit unchecked.
func scanRole(buf []byte) (digit byte, role []byte, n int, err error) {
	if err = expectZero(buf); err != nil {
		return 0, nil, 0, err
	}

	if len(buf) < 2 {
		return 0, nil, 0, fmt.Errorf("%w: missing member type", core.ErrMalformedStringToken)
	}

	role, rn, err := cstring(buf[2:])
	if err != nil {
		return 0, nil, 0, err
	}

	return buf[1], role, 2 + rn, nil
}
