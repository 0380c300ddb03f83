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

// Package strtab implements the O5M string reference table.
//
// Both ends of a stream keep an identical table of the most recent raw
// strings (tag pairs, user records and member roles, already in their wire
// form).  A string that is already in the table is written as the 1-based
// distance from the most recent insertion instead of being repeated.
package strtab

import (
	"fmt"

	"m4o.io/o5m/internal/core"
	"m4o.io/o5m/internal/varint"
)

const (
	// Capacity is the maximum number of entries held by a table.
	Capacity = 15000

	// MaxEntryLen is the longest raw string that may enter a table.
	MaxEntryLen = 250
)

// Table is a FIFO of raw strings.  Entries live in a ring buffer; index maps
// each entry to its insertion sequence number, so both Intern and Lookup
// run in constant time.
type Table struct {
	entries [][]byte
	head    int // slot of the next insertion
	size    int
	count   uint64 // insertions since the last Reset
	index   map[string]uint64
}

// New creates an empty table.
func New() *Table {
	return &Table{
		index: make(map[string]uint64),
	}
}

// Len returns the number of entries in the table.
func (t *Table) Len() int {
	return t.size
}

// Reset empties the table.
func (t *Table) Reset() {
	clear(t.entries)
	t.entries = t.entries[:0]
	t.head = 0
	t.size = 0
	t.count = 0
	clear(t.index)
}

// Intern returns the bytes to write for raw: a back-reference when raw is
// already in the table, raw itself otherwise.  In the latter case raw is
// added to the table unless it is longer than MaxEntryLen.
func (t *Table) Intern(raw []byte) []byte {
	if len(raw) > MaxEntryLen {
		return raw
	}

	if seq, ok := t.index[string(raw)]; ok {
		return varint.AppendUnsigned(nil, t.count-seq)
	}

	t.Insert(raw)

	return raw
}

// Insert records a literal string read off the wire.  Strings longer than
// MaxEntryLen are ignored, exactly as Intern does on the writing side.
func (t *Table) Insert(raw []byte) {
	if len(raw) > MaxEntryLen {
		return
	}

	entry := make([]byte, len(raw))
	copy(entry, raw)

	if t.size < Capacity {
		t.entries = append(t.entries, entry)
		t.size++
	} else {
		evicted := t.entries[t.head]
		if seq, ok := t.index[string(evicted)]; ok && seq == t.count-Capacity {
			delete(t.index, string(evicted))
		}

		t.entries[t.head] = entry
	}

	t.head = (t.head + 1) % Capacity
	t.index[string(entry)] = t.count
	t.count++
}

// Lookup resolves a 1-based back-reference.  The table is left unchanged.
func (t *Table) Lookup(ref uint64) ([]byte, error) {
	if ref == 0 || ref > uint64(t.size) {
		return nil, fmt.Errorf("%w: reference %d outside table of %d entries",
			core.ErrMalformedStringToken, ref, t.size)
	}

	slot := (t.head - int(ref) + Capacity) % Capacity

	return t.entries[slot], nil
}
