// Copyright 2025-26 the original author or authors.
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

// Package core holds the pieces shared by the O5M encoder and decoder.
package core

import (
	"bytes"
	"sync"
)

const (
	// DefaultBufferSize is the initial capacity of pooled buffers.
	DefaultBufferSize = 64 * 1024

	// maxPooledSize keeps oversized buffers (huge relations) out of the pool.
	maxPooledSize = 16 * 1024 * 1024
)

var pool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, DefaultBufferSize))
	},
}

// PooledBuffer is a bytes.Buffer borrowed from a shared pool.  Close returns
// it to the pool; the buffer must not be used afterwards.
type PooledBuffer struct {
	*bytes.Buffer
}

// NewPooledBuffer borrows an empty buffer from the pool.
func NewPooledBuffer() *PooledBuffer {
	buf := pool.Get().(*bytes.Buffer)
	buf.Reset()

	return &PooledBuffer{Buffer: buf}
}

// Close returns the buffer to the pool.
func (b *PooledBuffer) Close() {
	if b.Buffer == nil {
		return
	}

	if b.Cap() <= maxPooledSize {
		pool.Put(b.Buffer)
	}

	b.Buffer = nil
}
