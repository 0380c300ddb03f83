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
	"bufio"
	"io"
	"log/slog"

	"m4o.io/o5m/internal/decoder"
	"m4o.io/o5m/model"
)

// Decoder reads OpenStreetMap maps from O5M streams.
type Decoder struct {
	r      *bufio.Reader
	cfg    decoderOptions
	header HeaderType
}

// NewDecoder returns a new decoder, configured with options, that reads from
// r.  Bytes are buffered; successive calls to Decode read successive streams.
func NewDecoder(r io.Reader, opts ...DecoderOption) *Decoder {
	cfg := defaultDecoderConfig

	for _, opt := range opts {
		opt(&cfg)
	}

	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReaderSize(r, cfg.bufferSize)
	}

	return &Decoder{r: br, cfg: cfg}
}

// Decode reads one stream up to and including its end-of-file marker.  The
// map is nil whenever the error is not.
func (d *Decoder) Decode() (*model.Map, error) {
	f := decoder.NewFrameReader(d.r, decoder.Config{
		BufferSize:         d.cfg.bufferSize,
		MaxFrameSize:       d.cfg.maxFrameSize,
		SkipUnknownRecords: d.cfg.skipUnknownRecords,
	})

	m, err := f.ReadMap()
	if err != nil {
		slog.Error("unable to decode o5m map", "error", err)
		return nil, err
	}

	d.header = HeaderType(f.Header())

	return m, nil
}

// Header returns the header of the last stream decoded, or "" when it had
// none.
func (d *Decoder) Header() HeaderType {
	return d.header
}
