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

// Package xmlio reads and writes maps in the OSM XML format, version 0.6.
package xmlio

import (
	"encoding/xml"
	"fmt"
	"time"

	"github.com/paulmach/osm"

	"m4o.io/o5m/internal/core"
	"m4o.io/o5m/model"
)

// Version is the OSM API version written to, and expected from, documents.
const Version = "0.6"

type document struct {
	XMLName   xml.Name      `xml:"osm"`
	Version   string        `xml:"version,attr"`
	Generator string        `xml:"generator,attr,omitempty"`
	Bounds    *osm.Bounds   `xml:"bounds,omitempty"`
	Nodes     osm.Nodes     `xml:"node"`
	Ways      osm.Ways      `xml:"way"`
	Relations osm.Relations `xml:"relation"`
}

type author struct {
	user      string
	uid       osm.UserID
	changeset osm.ChangesetID
	timestamp time.Time
}

func fromMeta(m *model.Meta) (version int, a author, tags osm.Tags) {
	for _, t := range m.Tags {
		tags = append(tags, osm.Tag{Key: t.Key, Value: t.Value})
	}

	if m.Version == 0 {
		return 0, a, tags
	}

	if m.Author != nil {
		a = author{
			user:      m.Author.User,
			uid:       osm.UserID(m.Author.UID),
			changeset: osm.ChangesetID(m.Author.Changeset),
			timestamp: m.Author.Time(),
		}
	}

	return int(m.Version), a, tags
}

func toMeta(version int, a author, tags osm.Tags) model.Meta {
	var m model.Meta

	for _, t := range tags {
		m.Tags = append(m.Tags, model.Tag{Key: t.Key, Value: t.Value})
	}

	if version > 0 {
		m.Version = uint64(version)
	}

	if a.user == "" && a.uid == 0 && a.changeset == 0 && a.timestamp.IsZero() {
		return m
	}

	m.Author = &model.Author{
		Changeset: uint64(a.changeset),
		UID:       uint64(a.uid),
		User:      a.user,
	}

	if !a.timestamp.IsZero() {
		m.Author.Created = a.timestamp.Unix()
	}

	return m
}

func fromNode(n *model.Node) *osm.Node {
	version, a, tags := fromMeta(&n.Meta)

	return &osm.Node{
		ID:          osm.NodeID(n.ID),
		Lat:         float64(n.Coordinate.LatDegrees()),
		Lon:         float64(n.Coordinate.LonDegrees()),
		User:        a.user,
		UserID:      a.uid,
		Visible:     true,
		Version:     version,
		ChangesetID: a.changeset,
		Timestamp:   a.timestamp,
		Tags:        tags,
	}
}

func toNode(n *osm.Node) model.Node {
	return model.Node{
		ID:         model.ID(n.ID),
		Coordinate: model.NewCoordinate(model.Degrees(n.Lat), model.Degrees(n.Lon)),
		Meta:       toMeta(n.Version, author{n.User, n.UserID, n.ChangesetID, n.Timestamp}, n.Tags),
	}
}

func fromWay(w *model.Way) *osm.Way {
	version, a, tags := fromMeta(&w.Meta)

	nodes := make(osm.WayNodes, len(w.Refs))
	for i, ref := range w.Refs {
		nodes[i] = osm.WayNode{ID: osm.NodeID(ref)}
	}

	return &osm.Way{
		ID:          osm.WayID(w.ID),
		User:        a.user,
		UserID:      a.uid,
		Visible:     true,
		Version:     version,
		ChangesetID: a.changeset,
		Timestamp:   a.timestamp,
		Nodes:       nodes,
		Tags:        tags,
	}
}

func toWay(w *osm.Way) model.Way {
	var refs []model.ID
	for _, wn := range w.Nodes {
		refs = append(refs, model.ID(wn.ID))
	}

	return model.Way{
		ID:   model.ID(w.ID),
		Refs: refs,
		Meta: toMeta(w.Version, author{w.User, w.UserID, w.ChangesetID, w.Timestamp}, w.Tags),
	}
}

var memberTypes = [...]osm.Type{osm.TypeNode, osm.TypeWay, osm.TypeRelation}

func fromRelation(r *model.Relation) (*osm.Relation, error) {
	version, a, tags := fromMeta(&r.Meta)

	members := make(osm.Members, len(r.Members))
	for i, m := range r.Members {
		if !m.Type.Valid() {
			return nil, fmt.Errorf("%w: relation %d member %d has type %s",
				core.ErrUnknownMemberType, r.ID, i, m.Type)
		}

		members[i] = osm.Member{Type: memberTypes[m.Type], Ref: int64(m.ID), Role: m.Role}
	}

	return &osm.Relation{
		ID:          osm.RelationID(r.ID),
		User:        a.user,
		UserID:      a.uid,
		Visible:     true,
		Version:     version,
		ChangesetID: a.changeset,
		Timestamp:   a.timestamp,
		Members:     members,
		Tags:        tags,
	}, nil
}

func toRelation(r *osm.Relation) (model.Relation, error) {
	var members []model.Member

	for i, m := range r.Members {
		var t model.EntityType

		switch m.Type {
		case osm.TypeNode:
			t = model.NODE
		case osm.TypeWay:
			t = model.WAY
		case osm.TypeRelation:
			t = model.RELATION
		default:
			return model.Relation{}, fmt.Errorf("%w: relation %d member %d has type %q",
				core.ErrUnknownMemberType, r.ID, i, m.Type)
		}

		members = append(members, model.Member{Type: t, ID: model.ID(m.Ref), Role: m.Role})
	}

	return model.Relation{
		ID:      model.ID(r.ID),
		Members: members,
		Meta:    toMeta(r.Version, author{r.User, r.UserID, r.ChangesetID, r.Timestamp}, r.Tags),
	}, nil
}

func fromBoundary(b *model.Boundary) *osm.Bounds {
	if b == nil {
		return nil
	}

	return &osm.Bounds{
		MinLat: float64(b.Min.LatDegrees()),
		MaxLat: float64(b.Max.LatDegrees()),
		MinLon: float64(b.Min.LonDegrees()),
		MaxLon: float64(b.Max.LonDegrees()),
	}
}

func toBoundary(b *osm.Bounds) *model.Boundary {
	if b == nil {
		return nil
	}

	return &model.Boundary{
		Min: model.NewCoordinate(model.Degrees(b.MinLat), model.Degrees(b.MinLon)),
		Max: model.NewCoordinate(model.Degrees(b.MaxLat), model.Degrees(b.MaxLon)),
	}
}
