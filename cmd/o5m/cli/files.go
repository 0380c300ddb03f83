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

package cli

import (
	"fmt"
	"io"
	"os"

	"m4o.io/o5m"
	"m4o.io/o5m/model"
)

// File describes a map file on disk.
type File struct {
	Path        string
	Format      o5m.Format
	Compression o5m.Compression
}

// NewFile derives format and compression from the extensions of path.
func NewFile(path string) (File, error) {
	f, c, err := o5m.FormatFromPath(path)
	if err != nil {
		return File{}, err
	}

	return File{Path: path, Format: f, Compression: c}, nil
}

// ReadMap decodes the whole file, optionally showing a progress bar on
// stderr.
func ReadMap(file File, progress bool) (*model.Map, error) {
	f, err := os.Open(file.Path)
	if err != nil {
		return nil, err
	}

	var in io.ReadCloser = f
	if progress {
		if in, err = WrapInputFile(f); err != nil {
			f.Close()
			return nil, err
		}
	}

	defer in.Close()

	r, err := o5m.NewCompressedReader(in, file.Compression)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file.Path, err)
	}

	defer r.Close()

	d, err := o5m.NewMapDecoder(r, file.Format)
	if err != nil {
		return nil, err
	}

	m, err := d.Decode()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file.Path, err)
	}

	return m, nil
}

// WriteMap encodes m into the file, replacing it.
func WriteMap(file File, m *model.Map, opts ...o5m.EncoderOption) (err error) {
	f, err := os.Create(file.Path)
	if err != nil {
		return err
	}

	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	w, err := o5m.NewCompressedWriter(f, file.Compression)
	if err != nil {
		return fmt.Errorf("%s: %w", file.Path, err)
	}

	e, err := o5m.NewMapEncoder(w, file.Format, opts...)
	if err != nil {
		w.Close()
		return err
	}

	if err = e.Encode(m); err != nil {
		w.Close()
		return fmt.Errorf("%s: %w", file.Path, err)
	}

	if err = w.Close(); err != nil {
		return fmt.Errorf("%s: %w", file.Path, err)
	}

	return nil
}
