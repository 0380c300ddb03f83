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

package compress

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4"
	"github.com/ulikunitz/xz"
	"github.com/ulikunitz/xz/lzma"

	"m4o.io/o5m/internal/core"
)

type nopCloserWriter struct {
	io.Writer
}

func (w nopCloserWriter) Close() error {
	return nil
}

// NewWriter returns a writer that compresses into w.  Close must be called
// to flush the compressed trailer; it does not close w.
func NewWriter(w io.Writer, c Compression) (io.WriteCloser, error) {
	var (
		wc  io.WriteCloser
		err error
	)

	switch c {
	case NONE:
		wc = nopCloserWriter{w}
	case GZIP:
		wc, err = gzip.NewWriterLevel(w, gzip.DefaultCompression)
	case ZSTD:
		wc, err = zstd.NewWriter(w)
	case LZ4:
		wc = lz4.NewWriter(w)
	case XZ:
		wc, err = xz.NewWriter(w)
	case LZMA:
		wc, err = lzma.NewWriter(w)
	case BZIP2:
		return nil, fmt.Errorf("%w: %v streams are read-only", core.ErrUnknownCompression, c)
	default:
		return nil, fmt.Errorf("%w: %v", core.ErrUnknownCompression, c)
	}

	if err != nil {
		return nil, core.IOError("open "+c.String()+" stream", err)
	}

	return wc, nil
}
