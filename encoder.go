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
	"io"
	"log/slog"

	"m4o.io/o5m/internal/encoder"
	"m4o.io/o5m/model"
)

// Encoder writes OpenStreetMap maps as O5M streams.
type Encoder struct {
	w   io.Writer
	cfg encoderOptions
}

// NewEncoder returns a new encoder, configured with options, that writes to
// w.
func NewEncoder(w io.Writer, opts ...EncoderOption) *Encoder {
	cfg := defaultEncoderConfig

	for _, opt := range opts {
		opt(&cfg)
	}

	return &Encoder{w: w, cfg: cfg}
}

// Encode writes m as one complete stream: header, bounding box when known,
// a block each of nodes, ways and relations, and the end-of-file marker.
// Every call starts from fresh delta state and an empty string table.
func (e *Encoder) Encode(m *model.Map) error {
	bbox := m.Boundary
	if bbox == nil && e.cfg.computedBoundary {
		bbox = m.CalcBoundary()
	}

	f := encoder.NewFrameWriter(e.w, e.cfg.bufferSize)

	if err := f.WriteMap(m, string(e.cfg.header), bbox); err != nil {
		slog.Error("unable to encode o5m map", "error", err)
		return err
	}

	slog.Debug("encoded o5m map", "entities", m.Len(), "bytes", f.Written())

	return nil
}
