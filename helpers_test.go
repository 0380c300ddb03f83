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

package o5m

import (
	"math/rand/v2"
	"strings"

	"m4o.io/o5m/model"
)

const letters = "abcdefghijklmnopqrstuvwxyzÄÖÜß0123456789 :_-"

func randomString(r *rand.Rand, maxLen int) string {
	var sb strings.Builder

	runes := []rune(letters)
	for range r.IntN(maxLen + 1) {
		sb.WriteRune(runes[r.IntN(len(runes))])
	}

	return sb.String()
}

// randomTags draws keys and values from small pools so that the string
// table sees repeats.
func randomTags(r *rand.Rand) model.Tags {
	keys := []string{"highway", "name", "oneway", "building", "amenity", "note"}
	values := []string{"yes", "no", "secondary", "residential", "atm", ""}

	n := r.IntN(4)
	if n == 0 {
		return nil
	}

	tags := make(model.Tags, n)
	for i := range tags {
		tags[i] = model.Tag{Key: keys[r.IntN(len(keys))], Value: values[r.IntN(len(values))]}

		switch r.IntN(10) {
		case 0:
			tags[i].Value = randomString(r, 20)
		case 1:
			tags[i].Value = strings.Repeat("long", 60+r.IntN(10))
		}
	}

	return tags
}

func randomMeta(r *rand.Rand) model.Meta {
	m := model.Meta{Tags: randomTags(r)}

	if r.IntN(3) == 0 {
		return m
	}

	m.Version = r.Uint64N(1000) + 1

	if r.IntN(4) == 0 {
		return m
	}

	created := r.Int64N(2_000_000_000) + 1
	if r.IntN(2) == 0 {
		// few distinct values, so consecutive timestamps repeat
		created = 1_285_874_610 + r.Int64N(3)
	}

	users := []string{"UScha", "John", "", "mapper_42"}
	m.Author = &model.Author{
		Created:   created,
		Changeset: r.Uint64N(200_000_000),
		UID:       r.Uint64N(30_000_000),
		User:      users[r.IntN(len(users))],
	}

	return m
}

func randomMap(seed uint64, n int) *model.Map {
	r := rand.New(rand.NewPCG(seed, seed^0x5eed))

	m := &model.Map{}

	id := r.Int64N(1 << 40)
	for range n {
		id += r.Int64N(100) - 10
		m.Nodes = append(m.Nodes, model.Node{
			ID:         model.ID(id),
			Coordinate: model.Coordinate{Lat: r.Int32() - r.Int32(), Lon: r.Int32() - r.Int32()},
			Meta:       randomMeta(r),
		})
	}

	for i := range n / 4 {
		w := model.Way{ID: model.ID(i * 3), Meta: randomMeta(r)}

		for range r.IntN(12) {
			w.Refs = append(w.Refs, m.Nodes[r.IntN(n)].ID)
		}

		m.Ways = append(m.Ways, w)
	}

	roles := []string{"outer", "inner", "", "stop", "platform"}
	for i := range n / 10 {
		rel := model.Relation{ID: model.ID(-i), Meta: randomMeta(r)}

		for range r.IntN(8) {
			t := model.EntityType(r.IntN(3))
			rel.Members = append(rel.Members, model.Member{
				Type: t,
				ID:   model.ID(r.Int64() - r.Int64()),
				Role: roles[r.IntN(len(roles))],
			})
		}

		m.Relations = append(m.Relations, rel)
	}

	return m
}
