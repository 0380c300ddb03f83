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

package xmlio

import (
	"bufio"
	"encoding/xml"
	"io"

	"m4o.io/o5m/internal/core"
	"m4o.io/o5m/model"
)

// Encoder writes maps as OSM XML documents.
type Encoder struct {
	w         io.Writer
	generator string
	indent    string
}

func NewEncoder(w io.Writer, generator string) *Encoder {
	return &Encoder{w: w, generator: generator, indent: "  "}
}

// Encode writes one complete document.  Relations with a member type
// outside NODE, WAY and RELATION are rejected before anything is written.
func (e *Encoder) Encode(m *model.Map) error {
	doc := document{
		Version:   Version,
		Generator: e.generator,
		Bounds:    fromBoundary(m.Boundary),
	}

	for i := range m.Relations {
		r, err := fromRelation(&m.Relations[i])
		if err != nil {
			return err
		}

		doc.Relations = append(doc.Relations, r)
	}

	for i := range m.Nodes {
		doc.Nodes = append(doc.Nodes, fromNode(&m.Nodes[i]))
	}

	for i := range m.Ways {
		doc.Ways = append(doc.Ways, fromWay(&m.Ways[i]))
	}

	bw := bufio.NewWriter(e.w)

	if _, err := bw.WriteString(xml.Header); err != nil {
		return core.IOError("write xml header", err)
	}

	enc := xml.NewEncoder(bw)
	enc.Indent("", e.indent)

	if err := enc.Encode(&doc); err != nil {
		return core.IOError("write osm xml", err)
	}

	if err := bw.WriteByte('\n'); err != nil {
		return core.IOError("write osm xml", err)
	}

	if err := bw.Flush(); err != nil {
		return core.IOError("flush", err)
	}

	return nil
}
