// Copyright 2017-26 the original author or authors.
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

// Package model contains the shared OpenStreetMap model for the O5M and XML
// encoders/decoders.
package model

import (
	"fmt"
	"time"
)

// ID is the primary key of an entity.
type ID int64

// Tag is a single key/value pair.
type Tag struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Tags is an ordered list of tags.  Order is preserved by the codecs.
type Tags []Tag

// Get returns the value of the first tag with the key.
func (t Tags) Get(key string) (string, bool) {
	for _, tag := range t {
		if tag.Key == key {
			return tag.Value, true
		}
	}

	return "", false
}

// Author describes who last changed an entity and when.
type Author struct {
	Created   int64  `json:"created"` // seconds since the Unix epoch
	Changeset uint64 `json:"changeset"`
	UID       uint64 `json:"uid"`
	User      string `json:"user"`
}

// Time returns Created as a UTC time.
func (a *Author) Time() time.Time {
	return time.Unix(a.Created, 0).UTC()
}

// Meta holds what Node, Way, and Relation entities have in common besides
// their id.  A zero Version means the version is unknown; Author is only
// meaningful when Version is set.
type Meta struct {
	Tags    Tags    `json:"tags,omitempty"`
	Version uint64  `json:"version,omitempty"`
	Author  *Author `json:"author,omitempty"`
}

type Entity interface {
	isEntity() // prevents extensions

	GetID() ID

	GetMeta() *Meta
}

// Node represents a specific point on the earth's surface defined by its
// latitude and longitude. Each node comprises at least an id number and a
// pair of coordinates.
type Node struct {
	ID         ID         `json:"id"`
	Coordinate Coordinate `json:"coordinate"`
	Meta       Meta       `json:"meta"`
}

var _ Entity = (*Node)(nil)

func (n *Node) isEntity() {}

func (n *Node) GetID() ID {
	return n.ID
}

func (n *Node) GetMeta() *Meta {
	return &n.Meta
}

// Way is an ordered list of between 2 and 2,000 nodes that define a polyline.
type Way struct {
	ID   ID   `json:"id"`
	Refs []ID `json:"refs"`
	Meta Meta `json:"meta"`
}

var _ Entity = (*Way)(nil)

func (w *Way) isEntity() {}

func (w *Way) GetID() ID {
	return w.ID
}

func (w *Way) GetMeta() *Meta {
	return &w.Meta
}

// EntityType is an enumeration of entity types.
type EntityType int32

const (
	// NODE denotes that the member is a node.
	NODE EntityType = iota

	// WAY denotes that the member is a way.
	WAY

	// RELATION denotes that the member is a relation.
	RELATION
)

var entityTypeNames = [...]string{"node", "way", "relation"}

// Valid reports whether t is one of NODE, WAY or RELATION.
func (t EntityType) Valid() bool {
	return t >= NODE && t <= RELATION
}

func (t EntityType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("EntityType(%d)", int32(t))
	}

	return entityTypeNames[t]
}

// Digit returns the character O5M uses for the type in member roles.
func (t EntityType) Digit() byte {
	return '0' + byte(t)
}

// EntityTypeFromDigit is the inverse of Digit.
func EntityTypeFromDigit(d byte) (EntityType, bool) {
	t := EntityType(d) - '0'

	return t, t.Valid()
}

// Member is one element referenced by a relation.
type Member struct {
	Type EntityType `json:"type"`
	ID   ID         `json:"id"`
	Role string     `json:"role"`
}

// Relation is a multipurpose data structure that documents a relationship
// between two or more data entities (nodes, ways, and/or other relations).
type Relation struct {
	ID      ID       `json:"id"`
	Members []Member `json:"members"`
	Meta    Meta     `json:"meta"`
}

var _ Entity = (*Relation)(nil)

func (r *Relation) isEntity() {}

func (r *Relation) GetID() ID {
	return r.ID
}

func (r *Relation) GetMeta() *Meta {
	return &r.Meta
}
