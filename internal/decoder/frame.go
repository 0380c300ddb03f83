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
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"m4o.io/o5m/internal/core"
	"m4o.io/o5m/internal/varint"
	"m4o.io/o5m/model"
)

// DefaultMaxFrameSize bounds the length prefix accepted for a single record.
const DefaultMaxFrameSize = 64 * 1024 * 1024

type Config struct {
	BufferSize         int
	MaxFrameSize       uint64
	SkipUnknownRecords bool
}

// countingReader tracks the stream offset of everything read through it.
type countingReader struct {
	r      *bufio.Reader
	offset int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.offset += int64(n)

	return n, err
}

func (c *countingReader) ReadByte() (byte, error) {
	b, err := c.r.ReadByte()
	if err == nil {
		c.offset++
	}

	return b, err
}

// FrameReader demultiplexes the records of an O5M stream.
type FrameReader struct {
	r        *countingReader
	cfg      Config
	entities *EntityDecoder
	header   string
}

func NewFrameReader(r io.Reader, cfg Config) *FrameReader {
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = core.DefaultBufferSize
	}

	if cfg.MaxFrameSize == 0 {
		cfg.MaxFrameSize = DefaultMaxFrameSize
	}

	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReaderSize(r, cfg.BufferSize)
	}

	return &FrameReader{
		r:        &countingReader{r: br},
		cfg:      cfg,
		entities: NewEntityDecoder(),
	}
}

// Header returns the payload of the last header record read, if any.
func (f *FrameReader) Header() string {
	return f.header
}

// ReadMap reads records up to and including the end-of-file marker.  Bytes
// following the marker are left unread.
func (f *FrameReader) ReadMap() (*model.Map, error) {
	m := &model.Map{}

	buf := core.NewPooledBuffer()
	defer buf.Close()

	for record := 0; ; record++ {
		start := f.r.offset

		t, err := f.r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = core.ErrUnexpectedEnd
			} else {
				err = core.IOError("read record type", err)
			}

			return nil, &core.ParseError{Offset: start, Record: record, Err: err}
		}

		fail := func(err error) error {
			return &core.ParseError{Offset: start, Record: record, Type: t, Err: err}
		}

		switch {
		case t == core.RecordReset:
			f.entities.Reset()

			continue
		case t == core.RecordEOF:
			slog.Debug("read o5m stream", "records", record+1, "bytes", f.r.offset,
				"nodes", len(m.Nodes), "ways", len(m.Ways), "relations", len(m.Relations))

			return m, nil
		case t >= core.FirstSingleByteRecord:
			return nil, fail(core.ErrUnknownRecordType)
		}

		if !known(t) && !f.cfg.SkipUnknownRecords {
			return nil, fail(core.ErrUnknownRecordType)
		}

		length, _, err := varint.ReadUnsigned(f.r)
		if err != nil {
			return nil, fail(f.readError("read record length", err))
		}

		if length > f.cfg.MaxFrameSize {
			return nil, fail(fmt.Errorf("%w: record of %d bytes exceeds the maximum of %d",
				core.ErrLengthMismatch, length, f.cfg.MaxFrameSize))
		}

		if !known(t) {
			slog.Debug("skipping unknown record", "type", fmt.Sprintf("0x%02x", t), "offset", start, "length", length)

			if _, err := io.CopyN(io.Discard, f.r, int64(length)); err != nil {
				return nil, fail(f.readError("skip record", err))
			}

			continue
		}

		buf.Reset()

		if _, err := io.CopyN(buf, f.r, int64(length)); err != nil {
			return nil, fail(f.readError("read "+core.RecordName(t), err))
		}

		if err := f.dispatch(m, t, buf.Bytes()); err != nil {
			return nil, fail(err)
		}
	}
}

func (f *FrameReader) dispatch(m *model.Map, t byte, body []byte) error {
	switch t {
	case core.RecordHeader:
		h := string(body)
		if h != core.HeaderO5M && h != core.HeaderO5C {
			return fmt.Errorf("%w: %q", core.ErrInvalidHeader, h)
		}

		f.header = h
	case core.RecordBoundingBox:
		b, err := decodeBoundary(body)
		if err != nil {
			return err
		}

		m.Boundary = b
	case core.RecordNode:
		n, err := f.entities.DecodeNode(body)
		if err != nil {
			return err
		}

		m.Nodes = append(m.Nodes, n)
	case core.RecordWay:
		w, err := f.entities.DecodeWay(body)
		if err != nil {
			return err
		}

		m.Ways = append(m.Ways, w)
	case core.RecordRelation:
		r, err := f.entities.DecodeRelation(body)
		if err != nil {
			return err
		}

		m.Relations = append(m.Relations, r)
	}

	return nil
}

func (f *FrameReader) readError(op string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %s", core.ErrUnexpectedEnd, op)
	}

	if errors.Is(err, core.ErrTruncatedVarInt) {
		return fmt.Errorf("%w: %s: %w", core.ErrUnexpectedEnd, op, err)
	}

	if errors.Is(err, core.ErrVarIntOverflow) {
		return err
	}

	return core.IOError(op, err)
}

func known(t byte) bool {
	switch t {
	case core.RecordHeader, core.RecordBoundingBox, core.RecordNode, core.RecordWay, core.RecordRelation:
		return true
	default:
		return false
	}
}

func decodeBoundary(body []byte) (*model.Boundary, error) {
	c := &cursor{buf: body}

	var v [4]int64

	for i := range v {
		d, err := c.signed()
		if err != nil {
			return nil, fmt.Errorf("bounding box: %w", err)
		}

		v[i] = d
	}

	if !c.done() {
		return nil, fmt.Errorf("%w: %d trailing bytes after bounding box", core.ErrLengthMismatch, len(c.rest()))
	}

	return &model.Boundary{
		Min: model.Coordinate{Lon: int32(v[0]), Lat: int32(v[1])},
		Max: model.Coordinate{Lon: int32(v[2]), Lat: int32(v[3])},
	}, nil
}
