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
	"compress/bzip2"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4"
	"github.com/ulikunitz/xz"
	"github.com/ulikunitz/xz/lzma"

	"m4o.io/o5m/internal/core"
)

// readCloser releases the decompressor only.  The underlying reader stays
// owned by the caller.
type readCloser struct {
	io.Reader
	close func() error
}

func (r readCloser) Close() error {
	if r.close == nil {
		return nil
	}

	return r.close()
}

// NewReader returns a reader that decompresses r.  Closing it does not close
// r.
func NewReader(r io.Reader, c Compression) (io.ReadCloser, error) {
	var factory func(io.Reader) (io.ReadCloser, error)

	switch c {
	case NONE:
		return readCloser{Reader: r}, nil
	case GZIP:
		factory = func(r io.Reader) (io.ReadCloser, error) {
			return gzip.NewReader(r)
		}
	case ZSTD:
		factory = func(r io.Reader) (io.ReadCloser, error) {
			d, err := zstd.NewReader(r)
			if err != nil {
				return nil, err
			}

			return d.IOReadCloser(), nil
		}
	case LZ4:
		factory = func(r io.Reader) (io.ReadCloser, error) {
			return readCloser{Reader: lz4.NewReader(r)}, nil
		}
	case XZ:
		factory = func(r io.Reader) (io.ReadCloser, error) {
			xr, err := xz.NewReader(r)
			if err != nil {
				return nil, err
			}

			return readCloser{Reader: xr}, nil
		}
	case LZMA:
		factory = func(r io.Reader) (io.ReadCloser, error) {
			lr, err := lzma.NewReader(r)
			if err != nil {
				return nil, err
			}

			return readCloser{Reader: lr}, nil
		}
	case BZIP2:
		factory = func(r io.Reader) (io.ReadCloser, error) {
			return readCloser{Reader: bzip2.NewReader(r)}, nil
		}
	default:
		return nil, fmt.Errorf("%w: %v", core.ErrUnknownCompression, c)
	}

	rc, err := factory(r)
	if err != nil {
		return nil, core.IOError("open "+c.String()+" stream", err)
	}

	return rc, nil
}
