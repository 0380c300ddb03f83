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
	"fmt"

	"m4o.io/o5m/internal/core"
	"m4o.io/o5m/internal/delta"
	"m4o.io/o5m/internal/strtab"
	"m4o.io/o5m/internal/varint"
	"m4o.io/o5m/model"
)

// EntityEncoder serializes entity bodies.  It owns the delta state and the
// string table of a single stream and must not be shared.
type EntityEncoder struct {
	delta   delta.State
	strings *strtab.Table
	token   []byte
	section []byte
}

func NewEntityEncoder() *EntityEncoder {
	return &EntityEncoder{
		strings: strtab.New(),
	}
}

// Reset mirrors a reset marker: every running value returns to zero and the
// string table is emptied.
func (e *EntityEncoder) Reset() {
	e.delta.Reset()
	e.strings.Reset()
}

// NeedsReset reports whether m carries an author whose timestamp equals the
// running one.  Its delta would be zero, which reads back as "no author", so
// the caller must write a reset marker and call Reset before appending.
func (e *EntityEncoder) NeedsReset(m *model.Meta) bool {
	if m.Version == 0 || m.Author == nil || m.Author.Created == 0 {
		return false
	}

	return m.Author.Created == e.delta.Last(delta.Timestamp)
}

// AppendNode appends the body of a node frame to dst.
func (e *EntityEncoder) AppendNode(dst []byte, n *model.Node) ([]byte, error) {
	if err := checkMeta(n.ID, &n.Meta); err != nil {
		return dst, err
	}

	dst = e.appendID(dst, n.ID)
	dst = e.appendMeta(dst, &n.Meta)
	dst = varint.AppendSigned(dst, e.delta.Encode(delta.Lon, int64(n.Coordinate.Lon)))
	dst = varint.AppendSigned(dst, e.delta.Encode(delta.Lat, int64(n.Coordinate.Lat)))

	return e.appendTags(dst, n.Meta.Tags), nil
}

// AppendWay appends the body of a way frame to dst.
func (e *EntityEncoder) AppendWay(dst []byte, w *model.Way) ([]byte, error) {
	if err := checkMeta(w.ID, &w.Meta); err != nil {
		return dst, err
	}

	dst = e.appendID(dst, w.ID)
	dst = e.appendMeta(dst, &w.Meta)

	section := e.section[:0]
	for _, ref := range w.Refs {
		section = varint.AppendSigned(section, e.delta.Encode(delta.WayRef, int64(ref)))
	}

	e.section = section

	dst = varint.AppendUnsigned(dst, uint(len(section)))
	dst = append(dst, section...)

	return e.appendTags(dst, w.Meta.Tags), nil
}

// AppendRelation appends the body of a relation frame to dst.  Members are
// checked before anything is written so that a rejected relation leaves the
// stream state untouched.
func (e *EntityEncoder) AppendRelation(dst []byte, r *model.Relation) ([]byte, error) {
	if err := checkMeta(r.ID, &r.Meta); err != nil {
		return dst, err
	}

	for i := range r.Members {
		if !r.Members[i].Type.Valid() {
			return dst, fmt.Errorf("%w: relation %d member %d has type %s",
				core.ErrUnknownMemberType, r.ID, i, r.Members[i].Type)
		}
	}

	dst = e.appendID(dst, r.ID)
	dst = e.appendMeta(dst, &r.Meta)

	section := e.section[:0]
	for i := range r.Members {
		m := &r.Members[i]
		section = varint.AppendSigned(section, e.delta.Encode(memberCategory(m.Type), int64(m.ID)))
		section = e.appendRole(section, m.Type, m.Role)
	}

	e.section = section

	dst = varint.AppendUnsigned(dst, uint(len(section)))
	dst = append(dst, section...)

	return e.appendTags(dst, r.Meta.Tags), nil
}

func (e *EntityEncoder) appendID(dst []byte, id model.ID) []byte {
	return varint.AppendSigned(dst, e.delta.Encode(delta.ID, int64(id)))
}

// checkMeta rejects authors that O5M cannot tell apart from a missing one.
func checkMeta(id model.ID, m *model.Meta) error {
	if m.Version != 0 && m.Author != nil && m.Author.Created == 0 {
		return fmt.Errorf("%w: entity %d", core.ErrZeroTimestamp, id)
	}

	return nil
}

// appendMeta writes the version and author block.  A missing author is a
// single zero byte and leaves the running timestamp alone.
func (e *EntityEncoder) appendMeta(dst []byte, m *model.Meta) []byte {
	if m.Version == 0 {
		return append(dst, 0x00)
	}

	dst = varint.AppendUnsigned(dst, m.Version)

	a := m.Author
	if a == nil {
		return append(dst, 0x00)
	}

	dst = varint.AppendSigned(dst, e.delta.Encode(delta.Timestamp, a.Created))
	dst = varint.AppendSigned(dst, e.delta.Encode(delta.Changeset, int64(a.Changeset)))

	tok := append(e.token[:0], 0x00)
	tok = varint.AppendUnsigned(tok, a.UID)
	tok = append(tok, 0x00)
	tok = append(tok, a.User...)
	tok = append(tok, 0x00)
	e.token = tok

	return e.appendToken(dst, tok)
}

func (e *EntityEncoder) appendTags(dst []byte, tags model.Tags) []byte {
	for _, t := range tags {
		tok := append(e.token[:0], 0x00)
		tok = append(tok, t.Key...)
		tok = append(tok, 0x00)
		tok = append(tok, t.Value...)
		tok = append(tok, 0x00)
		e.token = tok

		dst = e.appendToken(dst, tok)
	}

	return dst
}

func (e *EntityEncoder) appendRole(dst []byte, t model.EntityType, role string) []byte {
	tok := append(e.token[:0], 0x00, t.Digit())
	tok = append(tok, role...)
	tok = append(tok, 0x00)
	e.token = tok

	return e.appendToken(dst, tok)
}

// appendToken appends either the literal token or its back-reference.  The
// table returns the literal itself when the token is not referenced.
func (e *EntityEncoder) appendToken(dst, tok []byte) []byte {
	return append(dst, e.strings.Intern(tok)...)
}

func memberCategory(t model.EntityType) delta.Category {
	switch t {
	case model.NODE:
		return delta.RelNodeRef
	case model.WAY:
		return delta.RelWayRef
	default:
		return delta.RelRelRef
	}
}
