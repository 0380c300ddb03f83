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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m4o.io/o5m/internal/core"
	"m4o.io/o5m/model"
)

func tag(k, v string) []byte {
	return []byte("\x00" + k + "\x00" + v + "\x00")
}

func concat(parts ...[]byte) []byte {
	return bytes.Join(parts, nil)
}

func TestDecodeNode(t *testing.T) {
	body := concat([]byte{0x80, 0x01, 0x00, 0x08, 0x81, 0x01}, tag("oneway", "yes"))

	n, err := NewEntityDecoder().DecodeNode(body)
	require.NoError(t, err)

	assert.Equal(t, model.Node{
		ID:         64,
		Coordinate: model.Coordinate{Lat: -65, Lon: 4},
		Meta:       model.Meta{Tags: model.Tags{{Key: "oneway", Value: "yes"}}},
	}, n)
}

func TestDecodeNodeWithAuthor(t *testing.T) {
	body := concat(
		[]byte{
			0x80, 0x01, 0x01, 0xe4, 0x8e, 0xa7, 0xca, 0x09, 0x94, 0xfe, 0xd2, 0x05,
			0x00, 0x85, 0xe3, 0x02, 0x00, 0x55, 0x53, 0x63, 0x68, 0x61, 0x00, 0x08, 0x81, 0x01,
		},
		tag("oneway", "yes"),
	)

	n, err := NewEntityDecoder().DecodeNode(body)
	require.NoError(t, err)

	assert.Equal(t, model.Meta{
		Tags:    model.Tags{{Key: "oneway", Value: "yes"}},
		Version: 1,
		Author: &model.Author{
			Created:   1285874610,
			Changeset: 5922698,
			UID:       45445,
			User:      "UScha",
		},
	}, n.Meta)
}

func TestDecodeUserWithZeroUID(t *testing.T) {
	body := []byte{0x02, 0x01, 0x02, 0x00, 0x00, 0x00, 0x00, 'a', 0x00, 0x00, 0x00}

	n, err := NewEntityDecoder().DecodeNode(body)
	require.NoError(t, err)

	assert.Equal(t, &model.Author{Created: 1, UID: 0, User: "a"}, n.Meta.Author)
}

func TestDecodeVersionWithoutAuthor(t *testing.T) {
	d := NewEntityDecoder()

	_, err := d.DecodeNode([]byte{0x02, 0x01, 0x02, 0x00, 0x00, 0x00, 0x00, 'a', 0x00, 0x00, 0x00})
	require.NoError(t, err)

	n, err := d.DecodeNode([]byte{0x02, 0x01, 0x00, 0x02, 0x02})
	require.NoError(t, err)
	assert.Equal(t, model.Node{ID: 2, Coordinate: model.Coordinate{Lat: 1, Lon: 1}, Meta: model.Meta{Version: 1}}, n)

	// the missing author leaves the running timestamp at 1
	n, err = d.DecodeNode([]byte{0x02, 0x01, 0x02, 0x00, 0x01, 0x00, 0x00})
	require.NoError(t, err)
	assert.Equal(t, &model.Author{Created: 2, UID: 0, User: "a"}, n.Meta.Author)
}

func TestDecodeWay(t *testing.T) {
	body := concat([]byte{0x80, 0x01, 0x01, 0x00, 0x03, 0x80, 0x01, 0x02}, tag("highway", "secondary"))

	w, err := NewEntityDecoder().DecodeWay(body)
	require.NoError(t, err)

	assert.Equal(t, model.Way{
		ID:   64,
		Refs: []model.ID{64, 65},
		Meta: model.Meta{Tags: model.Tags{{Key: "highway", Value: "secondary"}}, Version: 1},
	}, w)
}

func TestDecodeRelation(t *testing.T) {
	body := concat(
		[]byte{0x80, 0x01, 0x00, 0x14},
		[]byte{0x08, 0x00, 0x31}, []byte("outer"), []byte{0x00},
		[]byte{0x08, 0x00, 0x31}, []byte("inner"), []byte{0x00},
		[]byte{0x08, 0x01},
		tag("type", "multipolygon"),
	)

	r, err := NewEntityDecoder().DecodeRelation(body)
	require.NoError(t, err)

	assert.Equal(t, model.Relation{
		ID: 64,
		Members: []model.Member{
			{Type: model.WAY, ID: 4, Role: "outer"},
			{Type: model.WAY, ID: 8, Role: "inner"},
			{Type: model.WAY, ID: 12, Role: "inner"},
		},
		Meta: model.Meta{Tags: model.Tags{{Key: "type", Value: "multipolygon"}}},
	}, r)
}

func TestDecodeRelationMemberCategories(t *testing.T) {
	// node 10, relation 10, node 11: each type keeps its own running value
	body := []byte{
		0x02, 0x00, 0x0a,
		0x14, 0x00, '0', 0x00,
		0x14, 0x00, '2', 0x00,
		0x02, 0x02,
	}

	r, err := NewEntityDecoder().DecodeRelation(body)
	require.NoError(t, err)

	assert.Equal(t, []model.Member{
		{Type: model.NODE, ID: 10},
		{Type: model.RELATION, ID: 10},
		{Type: model.NODE, ID: 11},
	}, r.Members)
}

func TestDecodeStringReferences(t *testing.T) {
	d := NewEntityDecoder()

	bodies := [][]byte{
		concat([]byte{0x02, 0x00, 0x00, 0x00}, tag("oneway", "yes")),
		concat([]byte{0x02, 0x00, 0x00, 0x00}, tag("atm", "no")),
		{0x02, 0x00, 0x00, 0x00, 0x02},
		{0x02, 0x00, 0x00, 0x00, 0x02, 0x01},
	}

	var tags []model.Tags

	for _, b := range bodies {
		n, err := d.DecodeNode(b)
		require.NoError(t, err)

		tags = append(tags, n.Meta.Tags)
	}

	oneway := model.Tag{Key: "oneway", Value: "yes"}
	atm := model.Tag{Key: "atm", Value: "no"}

	assert.Equal(t, []model.Tags{{oneway}, {atm}, {oneway}, {oneway, atm}}, tags)
}

func TestDecodeResetForgetsStrings(t *testing.T) {
	d := NewEntityDecoder()

	_, err := d.DecodeNode(concat([]byte{0x02, 0x00, 0x00, 0x00}, tag("oneway", "yes")))
	require.NoError(t, err)

	d.Reset()

	_, err = d.DecodeNode([]byte{0x02, 0x00, 0x00, 0x00, 0x01})
	assert.True(t, errors.Is(err, core.ErrMalformedStringToken))
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name string
		body []byte
		kind func(*EntityDecoder, []byte) error
		err  error
	}{
		{"empty node", nil, node, core.ErrTruncatedVarInt},
		{"truncated id", []byte{0x80}, node, core.ErrTruncatedVarInt},
		{"missing coordinates", []byte{0x02, 0x00}, node, core.ErrTruncatedVarInt},
		{"unterminated tag", []byte{0x02, 0x00, 0x00, 0x00, 0x00, 'k', 0x00, 'v'}, node, core.ErrMalformedStringToken},
		{"dangling reference", []byte{0x02, 0x00, 0x00, 0x00, 0x05}, node, core.ErrMalformedStringToken},
		{"overflowing id", bytes.Repeat([]byte{0xff}, 11), node, core.ErrVarIntOverflow},
		{"refs exceed body", []byte{0x02, 0x00, 0x05, 0x02}, way, core.ErrLengthMismatch},
		{"truncated ref", []byte{0x02, 0x00, 0x01, 0x80}, way, core.ErrTruncatedVarInt},
		{"unknown member type", []byte{0x02, 0x00, 0x04, 0x02, 0x00, '7', 0x00}, relation, core.ErrUnknownMemberType},
		{"missing member type", []byte{0x02, 0x00, 0x02, 0x02, 0x00}, relation, core.ErrMalformedStringToken},
		{"role reference into empty table", []byte{0x02, 0x00, 0x02, 0x02, 0x01}, relation, core.ErrMalformedStringToken},
		{"truncated author", []byte{0x02, 0x01, 0x02}, node, core.ErrTruncatedVarInt},
		{"bad user token", []byte{0x02, 0x01, 0x02, 0x00, 0x00, 0x01, 'x'}, node, core.ErrMalformedStringToken},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.kind(NewEntityDecoder(), tc.body)
			assert.True(t, errors.Is(err, tc.err), "got %v", err)
		})
	}
}

func TestReferenceToWrongTokenKind(t *testing.T) {
	d := NewEntityDecoder()

	_, err := d.DecodeNode(concat([]byte{0x02, 0x00, 0x00, 0x00}, tag("type", "route")))
	require.NoError(t, err)

	// the only table entry is a tag pair, not a role
	_, err = d.DecodeRelation([]byte{0x02, 0x00, 0x02, 0x02, 0x01})
	assert.True(t, errors.Is(err, core.ErrMalformedStringToken), "got %v", err)
}

func node(d *EntityDecoder, b []byte) error {
	_, err := d.DecodeNode(b)
	return err
}

func way(d *EntityDecoder, b []byte) error {
	_, err := d.DecodeWay(b)
	return err
}

func relation(d *EntityDecoder, b []byte) error {
	_, err := d.DecodeRelation(b)
	return err
}
