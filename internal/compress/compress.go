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

// Package compress wraps O5M and OSM XML streams in the container
// compression selected by a file name suffix.
package compress

import (
	"fmt"
	"path/filepath"
	"strings"

	"m4o.io/o5m/internal/core"
)

// Compression is an enumeration of supported stream compressions.
type Compression int

const (
	// NONE leaves the stream as is.
	NONE Compression = iota

	// GZIP is deflate in a gzip container, ".gz".
	GZIP

	// ZSTD is Zstandard, ".zst".
	ZSTD

	// LZ4 is the LZ4 frame format, ".lz4".
	LZ4

	// XZ is LZMA2 in an xz container, ".xz".
	XZ

	// LZMA is the legacy lzma_alone format, ".lzma".
	LZMA

	// BZIP2 is bzip2, ".bz2".  It can be read but not written.
	BZIP2
)

var suffixes = [...]string{"", "gz", "zst", "lz4", "xz", "lzma", "bz2"}

func (c Compression) String() string {
	if c == NONE {
		return "none"
	}

	if c < NONE || int(c) >= len(suffixes) {
		return fmt.Sprintf("Compression(%d)", int(c))
	}

	return suffixes[c]
}

// Suffix returns the file name suffix, with its dot, or "" for NONE.
func (c Compression) Suffix() string {
	if c <= NONE || int(c) >= len(suffixes) {
		return ""
	}

	return "." + suffixes[c]
}

// Writable reports whether streams can be compressed with c.
func (c Compression) Writable() bool {
	return c >= NONE && c < BZIP2
}

// Parse maps a suffix such as "zst" or ".zst", or "none", to a Compression.
func Parse(s string) (Compression, error) {
	s = strings.ToLower(strings.TrimPrefix(s, "."))
	if s == "" || s == "none" {
		return NONE, nil
	}

	for i, suffix := range suffixes {
		if i > 0 && s == suffix {
			return Compression(i), nil
		}
	}

	return NONE, fmt.Errorf("%w: %q", core.ErrUnknownCompression, s)
}

// FromPath returns the compression implied by the last extension of path
// and the path with that extension removed.  Paths without a compression
// extension are returned unchanged with NONE.
func FromPath(path string) (string, Compression) {
	ext := filepath.Ext(path)
	if ext == "" {
		return path, NONE
	}

	c, err := Parse(ext)
	if err != nil || c == NONE {
		return path, NONE
	}

	return strings.TrimSuffix(path, ext), c
}
