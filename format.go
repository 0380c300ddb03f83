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
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"m4o.io/o5m/internal/compress"
	"m4o.io/o5m/internal/xmlio"
	"m4o.io/o5m/model"
)

// Format is an enumeration of the supported file formats.
type Format int

const (
	// FormatXML is OSM XML, version 0.6.
	FormatXML Format = iota

	// FormatO5M is the O5M binary format.
	FormatO5M
)

var formatNames = [...]string{"osm", "o5m"}

func (f Format) String() string {
	if f < FormatXML || f > FormatO5M {
		return fmt.Sprintf("Format(%d)", int(f))
	}

	return formatNames[f]
}

// Extension returns the file name extension of the format, with its dot.
func (f Format) Extension() string {
	return "." + f.String()
}

// ParseFormat maps "osm" (or "xml") and "o5m" to a Format.  Case and a
// leading dot are ignored.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "osm", "xml":
		return FormatXML, nil
	case "o5m", "o5c":
		return FormatO5M, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatFromPath returns the format and compression implied by the file name
// extensions of path, for example FormatO5M and ZSTD for "map.o5m.zst".
func FormatFromPath(path string) (Format, Compression, error) {
	stripped, c := compress.FromPath(path)

	ext := filepath.Ext(stripped)
	if ext == "" {
		return 0, c, fmt.Errorf("%w: no extension in %q", ErrUnknownFormat, path)
	}

	f, err := ParseFormat(ext)
	if err != nil {
		return 0, c, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}

	return f, c, nil
}

// MapEncoder writes complete maps.
type MapEncoder interface {
	Encode(m *model.Map) error
}

// MapDecoder reads complete maps.
type MapDecoder interface {
	Decode() (*model.Map, error)
}

var (
	_ MapEncoder = (*Encoder)(nil)
	_ MapEncoder = (*xmlio.Encoder)(nil)
	_ MapDecoder = (*Decoder)(nil)
	_ MapDecoder = (*xmlio.Decoder)(nil)
)

// NewMapEncoder returns an encoder for the format.  Options that only apply
// to O5M are ignored for XML.
func NewMapEncoder(w io.Writer, f Format, opts ...EncoderOption) (MapEncoder, error) {
	switch f {
	case FormatO5M:
		return NewEncoder(w, opts...), nil
	case FormatXML:
		cfg := defaultEncoderConfig
		for _, opt := range opts {
			opt(&cfg)
		}

		return xmlio.NewEncoder(w, cfg.generator), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
}

// NewMapDecoder returns a decoder for the format.
func NewMapDecoder(r io.Reader, f Format, opts ...DecoderOption) (MapDecoder, error) {
	switch f {
	case FormatO5M:
		return NewDecoder(r, opts...), nil
	case FormatXML:
		return xmlio.NewDecoder(r), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
}

// Compression is the container compression of a file.
type Compression = compress.Compression

// Supported compressions.
const (
	NoCompression = compress.NONE
	GZIP          = compress.GZIP
	ZSTD          = compress.ZSTD
	LZ4           = compress.LZ4
	XZ            = compress.XZ
	LZMA          = compress.LZMA
	BZIP2         = compress.BZIP2
)

// ParseCompression maps a suffix such as "zst" to a Compression.
func ParseCompression(s string) (Compression, error) {
	return compress.Parse(s)
}

// NewCompressedReader returns a reader that decompresses r.
func NewCompressedReader(r io.Reader, c Compression) (io.ReadCloser, error) {
	return compress.NewReader(r, c)
}

// NewCompressedWriter returns a writer that compresses into w.  It must be
// closed to complete the stream.
func NewCompressedWriter(w io.Writer, c Compression) (io.WriteCloser, error) {
	return compress.NewWriter(w, c)
}
