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

package convert

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m4o.io/o5m"
	"m4o.io/o5m/cmd/o5m/cli"
	"m4o.io/o5m/model"
)

func sample(id model.ID) *model.Map {
	return &model.Map{
		Nodes: []model.Node{
			{ID: id, Coordinate: model.Coordinate{Lat: -65, Lon: 4}, Meta: model.Meta{
				Tags:    model.Tags{{Key: "oneway", Value: "yes"}},
				Version: 1,
				Author:  &model.Author{Created: 1285874610, Changeset: 5922698, UID: 45445, User: "UScha"},
			}},
			{ID: id + 1, Coordinate: model.Coordinate{Lat: 10, Lon: 20}},
		},
		Ways: []model.Way{{ID: id, Refs: []model.ID{id, id + 1}}},
		Relations: []model.Relation{{ID: id, Members: []model.Member{
			{Type: model.WAY, ID: id, Role: "outer"},
		}}},
	}
}

func write(t *testing.T, path string, m *model.Map) cli.File {
	t.Helper()

	f, err := cli.NewFile(path)
	require.NoError(t, err)
	require.NoError(t, cli.WriteMap(f, m))

	return f
}

func TestTarget(t *testing.T) {
	in := cli.File{Path: "/maps/london.osm.gz", Format: o5m.FormatXML, Compression: o5m.GZIP}

	tests := []struct {
		name     string
		opts     options
		expected cli.File
	}{
		{"defaults", options{format: o5m.FormatO5M},
			cli.File{Path: "/maps/london.o5m", Format: o5m.FormatO5M}},
		{"compressed", options{format: o5m.FormatO5M, compression: o5m.ZSTD, compressionSet: true},
			cli.File{Path: "/maps/london.o5m.zst", Format: o5m.FormatO5M, Compression: o5m.ZSTD}},
		{"xml", options{format: o5m.FormatXML, formatSet: true, compression: o5m.XZ, compressionSet: true},
			cli.File{Path: "/maps/london.osm.xz", Format: o5m.FormatXML, Compression: o5m.XZ}},
		{"output", options{output: "/tmp/out.o5m.lz4"},
			cli.File{Path: "/tmp/out.o5m.lz4", Format: o5m.FormatO5M, Compression: o5m.LZ4}},
		{"output with format", options{output: "/tmp/out.dat", format: o5m.FormatO5M, formatSet: true},
			cli.File{Path: "/tmp/out.dat", Format: o5m.FormatO5M}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := target(in, tc.opts)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, out)
		})
	}
}

func TestTargetErrors(t *testing.T) {
	in := cli.File{Path: "map.osm", Format: o5m.FormatXML}

	_, err := target(in, options{output: "out.dat"})
	assert.True(t, errors.Is(err, o5m.ErrUnknownFormat))

	_, err = target(in, options{format: o5m.FormatO5M, compression: o5m.BZIP2, compressionSet: true})
	assert.True(t, errors.Is(err, o5m.ErrUnknownCompression))

	_, err = plan([]string{"a.osm", "b.osm"}, options{output: "c.o5m"})
	assert.True(t, errors.Is(err, errOutputForMany))

	_, err = plan([]string{"a.o5m"}, options{format: o5m.FormatO5M})
	assert.Error(t, err)
}

func TestRunSingle(t *testing.T) {
	dir := t.TempDir()
	m := sample(64)
	in := write(t, filepath.Join(dir, "in.osm.gz"), m)

	out := filepath.Join(dir, "out.o5m.zst")
	require.NoError(t, run([]string{in.Path}, options{output: out, format: o5m.FormatO5M, concurrency: 1}))

	f, err := cli.NewFile(out)
	require.NoError(t, err)

	got, err := cli.ReadMap(f, false)
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestRunMany(t *testing.T) {
	dir := t.TempDir()

	inputs := []string{
		write(t, filepath.Join(dir, "a.osm"), sample(100)).Path,
		write(t, filepath.Join(dir, "b.o5m"), sample(200)).Path,
	}

	err := run(inputs, options{format: o5m.FormatXML, formatSet: true, compression: o5m.GZIP, compressionSet: true, concurrency: 4})
	require.NoError(t, err)

	for name, id := range map[string]model.ID{"a.osm.gz": 100, "b.osm.gz": 200} {
		f, err := cli.NewFile(filepath.Join(dir, name))
		require.NoError(t, err)

		got, err := cli.ReadMap(f, false)
		require.NoError(t, err)
		assert.Equal(t, sample(id), got)
	}
}

func TestRunFailureRemovesOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "broken.o5m")
	require.NoError(t, os.WriteFile(in, []byte{0xff, 0x10, 0x02, 0x02}, 0o600))

	err := run([]string{in}, options{format: o5m.FormatXML, formatSet: true, concurrency: 1})
	assert.True(t, errors.Is(err, o5m.ErrUnexpectedEnd))

	_, err = os.Stat(filepath.Join(dir, "broken.osm"))
	assert.True(t, os.IsNotExist(err))
}
