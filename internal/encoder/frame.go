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

package encoder

import (
	"bufio"
	"io"
	"log/slog"

	"m4o.io/o5m/internal/core"
	"m4o.io/o5m/internal/varint"
	"m4o.io/o5m/model"
)

// FrameWriter writes O5M records to a buffered stream.  Entity frames are
// assembled in memory so that their length prefix is known before the first
// byte is written.
type FrameWriter struct {
	w        *bufio.Writer
	entities *EntityEncoder
	body     []byte
	prefix   []byte
	written  int64
}

func NewFrameWriter(w io.Writer, bufferSize int) *FrameWriter {
	return &FrameWriter{
		w:        bufio.NewWriterSize(w, bufferSize),
		entities: NewEntityEncoder(),
	}
}

// Written returns the number of bytes handed to the underlying writer so
// far, including buffered ones.
func (f *FrameWriter) Written() int64 {
	return f.written
}

// WriteMap writes a complete stream: header, optional bounding box, one
// block each of nodes, ways and relations, and the end-of-file marker.
func (f *FrameWriter) WriteMap(m *model.Map, header string, bbox *model.Boundary) error {
	if err := f.WriteReset(); err != nil {
		return err
	}

	if err := f.WriteHeader(header); err != nil {
		return err
	}

	if bbox != nil {
		if err := f.WriteBoundary(bbox); err != nil {
			return err
		}
	}

	if err := f.WriteReset(); err != nil {
		return err
	}

	for i := range m.Nodes {
		if err := f.WriteNode(&m.Nodes[i]); err != nil {
			return err
		}
	}

	slog.Debug("wrote node block", "count", len(m.Nodes), "offset", f.written)

	if err := f.WriteReset(); err != nil {
		return err
	}

	for i := range m.Ways {
		if err := f.WriteWay(&m.Ways[i]); err != nil {
			return err
		}
	}

	slog.Debug("wrote way block", "count", len(m.Ways), "offset", f.written)

	if err := f.WriteReset(); err != nil {
		return err
	}

	for i := range m.Relations {
		if err := f.WriteRelation(&m.Relations[i]); err != nil {
			return err
		}
	}

	slog.Debug("wrote relation block", "count", len(m.Relations), "offset", f.written)

	return f.WriteEnd()
}

// WriteReset writes a reset marker and clears the delta state and string
// table.
func (f *FrameWriter) WriteReset() error {
	f.entities.Reset()

	return f.writeByte(core.RecordReset)
}

func (f *FrameWriter) WriteHeader(header string) error {
	return f.writeFrame(core.RecordHeader, []byte(header))
}

// WriteBoundary writes a bounding box record.  Coordinates are absolute.
func (f *FrameWriter) WriteBoundary(b *model.Boundary) error {
	body := f.body[:0]
	body = varint.AppendSigned(body, b.Min.Lon)
	body = varint.AppendSigned(body, b.Min.Lat)
	body = varint.AppendSigned(body, b.Max.Lon)
	body = varint.AppendSigned(body, b.Max.Lat)
	f.body = body

	return f.writeFrame(core.RecordBoundingBox, body)
}

func (f *FrameWriter) WriteNode(n *model.Node) error {
	if err := f.separate(&n.Meta); err != nil {
		return err
	}

	body, err := f.entities.AppendNode(f.body[:0], n)
	if err != nil {
		return err
	}

	f.body = body

	return f.writeFrame(core.RecordNode, body)
}

func (f *FrameWriter) WriteWay(w *model.Way) error {
	if err := f.separate(&w.Meta); err != nil {
		return err
	}

	body, err := f.entities.AppendWay(f.body[:0], w)
	if err != nil {
		return err
	}

	f.body = body

	return f.writeFrame(core.RecordWay, body)
}

func (f *FrameWriter) WriteRelation(r *model.Relation) error {
	if err := f.separate(&r.Meta); err != nil {
		return err
	}

	body, err := f.entities.AppendRelation(f.body[:0], r)
	if err != nil {
		return err
	}

	f.body = body

	return f.writeFrame(core.RecordRelation, body)
}

// separate writes a reset marker when the author of m repeats the running
// timestamp.
func (f *FrameWriter) separate(m *model.Meta) error {
	if !f.entities.NeedsReset(m) {
		return nil
	}

	return f.WriteReset()
}

// WriteEnd writes the end-of-file marker and flushes the stream.
func (f *FrameWriter) WriteEnd() error {
	if err := f.writeByte(core.RecordEOF); err != nil {
		return err
	}

	if err := f.w.Flush(); err != nil {
		return core.IOError("flush", err)
	}

	return nil
}

func (f *FrameWriter) writeByte(b byte) error {
	if err := f.w.WriteByte(b); err != nil {
		return core.IOError("write "+core.RecordName(b), err)
	}

	f.written++

	return nil
}

func (f *FrameWriter) writeFrame(t byte, body []byte) error {
	prefix := append(f.prefix[:0], t)
	prefix = varint.AppendUnsigned(prefix, uint(len(body)))
	f.prefix = prefix

	if _, err := f.w.Write(prefix); err != nil {
		return core.IOError("write "+core.RecordName(t), err)
	}

	if _, err := f.w.Write(body); err != nil {
		return core.IOError("write "+core.RecordName(t), err)
	}

	f.written += int64(len(prefix) + len(body))

	return nil
}
