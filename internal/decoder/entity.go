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
	"fmt"

	"m4o.io/o5m/internal/core"
	"m4o.io/o5m/internal/delta"
	"m4o.io/o5m/internal/strtab"
	"m4o.io/o5m/model"
)

// EntityDecoder parses entity bodies.  It owns the delta state and the
// string table of a single stream and must not be shared.
type EntityDecoder struct {
	delta   delta.State
	strings *strtab.Table
}

func NewEntityDecoder() *EntityDecoder {
	return &EntityDecoder{
		strings: strtab.New(),
	}
}

// Reset mirrors a reset marker.
func (d *EntityDecoder) Reset() {
	d.delta.Reset()
	d.strings.Reset()
}

func (d *EntityDecoder) DecodeNode(body []byte) (model.Node, error) {
	c := &cursor{buf: body}

	var n model.Node

	id, err := d.id(c)
	if err != nil {
		return n, err
	}

	n.ID = id

	if n.Meta, err = d.meta(c); err != nil {
		return n, err
	}

	lon, err := c.signed()
	if err != nil {
		return n, fmt.Errorf("longitude: %w", err)
	}

	lat, err := c.signed()
	if err != nil {
		return n, fmt.Errorf("latitude: %w", err)
	}

	n.Coordinate = model.Coordinate{
		Lat: int32(d.delta.Decode(delta.Lat, lat)),
		Lon: int32(d.delta.Decode(delta.Lon, lon)),
	}

	n.Meta.Tags, err = d.tags(c)

	return n, err
}

func (d *EntityDecoder) DecodeWay(body []byte) (model.Way, error) {
	c := &cursor{buf: body}

	var w model.Way

	id, err := d.id(c)
	if err != nil {
		return w, err
	}

	w.ID = id

	if w.Meta, err = d.meta(c); err != nil {
		return w, err
	}

	refs, err := d.section(c)
	if err != nil {
		return w, fmt.Errorf("node references: %w", err)
	}

	for !refs.done() {
		v, err := refs.signed()
		if err != nil {
			return w, fmt.Errorf("node reference %d: %w", len(w.Refs), err)
		}

		w.Refs = append(w.Refs, model.ID(d.delta.Decode(delta.WayRef, v)))
	}

	w.Meta.Tags, err = d.tags(c)

	return w, err
}

func (d *EntityDecoder) DecodeRelation(body []byte) (model.Relation, error) {
	c := &cursor{buf: body}

	var r model.Relation

	id, err := d.id(c)
	if err != nil {
		return r, err
	}

	r.ID = id

	if r.Meta, err = d.meta(c); err != nil {
		return r, err
	}

	members, err := d.section(c)
	if err != nil {
		return r, fmt.Errorf("members: %w", err)
	}

	for !members.done() {
		m, err := d.member(members)
		if err != nil {
			return r, fmt.Errorf("member %d: %w", len(r.Members), err)
		}

		r.Members = append(r.Members, m)
	}

	r.Meta.Tags, err = d.tags(c)

	return r, err
}

func (d *EntityDecoder) id(c *cursor) (model.ID, error) {
	v, err := c.signed()
	if err != nil {
		return 0, fmt.Errorf("id: %w", err)
	}

	return model.ID(d.delta.Decode(delta.ID, v)), nil
}

func (d *EntityDecoder) section(c *cursor) (*cursor, error) {
	n, err := c.unsigned()
	if err != nil {
		return nil, err
	}

	return c.section(n)
}

// meta reads the version and author block.  A zero timestamp delta marks an
// entity without author.
func (d *EntityDecoder) meta(c *cursor) (model.Meta, error) {
	var m model.Meta

	version, err := c.unsigned()
	if err != nil {
		return m, fmt.Errorf("version: %w", err)
	}

	if version == 0 {
		return m, nil
	}

	m.Version = version

	ts, err := c.signed()
	if err != nil {
		return m, fmt.Errorf("timestamp: %w", err)
	}

	if ts == 0 {
		return m, nil
	}

	created := d.delta.Decode(delta.Timestamp, ts)

	cs, err := c.signed()
	if err != nil {
		return m, fmt.Errorf("changeset: %w", err)
	}

	changeset := d.delta.Decode(delta.Changeset, cs)

	raw, err := d.token(c, func(buf []byte) (int, error) {
		_, _, n, err := scanUser(buf)
		return n, err
	})
	if err != nil {
		return m, fmt.Errorf("user: %w", err)
	}

	uid, user, _, _ := scanUser(raw)

	m.Author = &model.Author{
		Created:   created,
		Changeset: uint64(changeset),
		UID:       uid,
		User:      string(user),
	}

	return m, nil
}

func (d *EntityDecoder) tags(c *cursor) (model.Tags, error) {
	var tags model.Tags

	for !c.done() {
		raw, err := d.token(c, func(buf []byte) (int, error) {
			_, _, n, err := scanPair(buf)
			return n, err
		})
		if err != nil {
			return nil, fmt.Errorf("tag %d: %w", len(tags), err)
		}

		k, v, _, _ := scanPair(raw)
		tags = append(tags, model.Tag{Key: string(k), Value: string(v)})
	}

	return tags, nil
}

func (d *EntityDecoder) member(c *cursor) (model.Member, error) {
	var m model.Member

	ref, err := c.signed()
	if err != nil {
		return m, fmt.Errorf("reference: %w", err)
	}

	raw, err := d.token(c, func(buf []byte) (int, error) {
		_, _, n, err := scanRole(buf)
		return n, err
	})
	if err != nil {
		return m, fmt.Errorf("role: %w", err)
	}

	digit, role, _, _ := scanRole(raw)

	t, ok := model.EntityTypeFromDigit(digit)
	if !ok {
		return m, fmt.Errorf("%w: %q", core.ErrUnknownMemberType, digit)
	}

	var cat delta.Category

	switch t {
	case model.NODE:
		cat = delta.RelNodeRef
	case model.WAY:
		cat = delta.RelWayRef
	default:
		cat = delta.RelRelRef
	}

	m.Type = t
	m.ID = model.ID(d.delta.Decode(cat, ref))
	m.Role = string(role)

	return m, nil
}

// token returns the raw bytes of the string token at the cursor, resolving
// back-references through the string table and recording literals in it.
// The scan function reports the length of a well formed literal.
func (d *EntityDecoder) token(c *cursor, scan func([]byte) (int, error)) ([]byte, error) {
	if c.done() {
		return nil, fmt.Errorf("%w: body ends before token", core.ErrMalformedStringToken)
	}

	if c.buf[c.pos] != 0x00 {
		ref, err := c.unsigned()
		if err != nil {
			return nil, err
		}

		raw, err := d.strings.Lookup(ref)
		if err != nil {
			return nil, err
		}

		if n, err := scan(raw); err != nil {
			return nil, err
		} else if n != len(raw) {
			return nil, fmt.Errorf("%w: reference %d points to a different kind of token",
				core.ErrMalformedStringToken, ref)
		}

		return raw, nil
	}

	n, err := scan(c.rest())
	if err != nil {
		return nil, err
	}

	raw := c.buf[c.pos : c.pos+n]
	c.pos += n

	d.strings.Insert(raw)

	return raw, nil
}
