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
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"m4o.io/o5m/internal/core"
	"m4o.io/o5m/model"
)

// readRecorder remembers the first failure of the underlying reader so that
// I/O problems can be told apart from malformed documents.
type readRecorder struct {
	r   io.Reader
	err error
}

func (rr *readRecorder) Read(p []byte) (int, error) {
	n, err := rr.r.Read(p)
	if err != nil && !errors.Is(err, io.EOF) && rr.err == nil {
		rr.err = err
	}

	return n, err
}

// Decoder reads maps from OSM XML documents.
type Decoder struct {
	r *readRecorder
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: &readRecorder{r: r}}
}

// Decode reads one complete document.  Elements other than bounds, nodes,
// ways and relations are ignored.
func (d *Decoder) Decode() (*model.Map, error) {
	var doc document

	if err := xml.NewDecoder(d.r).Decode(&doc); err != nil {
		if d.r.err != nil {
			return nil, core.IOError("read osm xml", d.r.err)
		}

		return nil, fmt.Errorf("%w: %w", core.ErrMalformedXML, err)
	}

	if doc.Version != Version {
		return nil, fmt.Errorf("%w: unsupported version %q", core.ErrMalformedXML, doc.Version)
	}

	m := &model.Map{Boundary: toBoundary(doc.Bounds)}

	for _, n := range doc.Nodes {
		m.Nodes = append(m.Nodes, toNode(n))
	}

	for _, w := range doc.Ways {
		m.Ways = append(m.Ways, toWay(w))
	}

	for _, r := range doc.Relations {
		rel, err := toRelation(r)
		if err != nil {
			return nil, err
		}

		m.Relations = append(m.Relations, rel)
	}

	return m, nil
}
