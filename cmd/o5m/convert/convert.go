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
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/destel/rill"
	"github.com/spf13/cobra"

	"m4o.io/o5m"
	"m4o.io/o5m/cmd/o5m/cli"
)

var errOutputForMany = errors.New("an output file can only be given for a single input")

type options struct {
	output         string
	format         o5m.Format
	formatSet      bool
	compression    o5m.Compression
	compressionSet bool
	concurrency    int
	boundary       bool
	progress       bool
}

var opts = options{format: o5m.FormatO5M}

func init() {
	cli.RootCmd.AddCommand(convertCmd)

	flags := convertCmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "", "output file, only for a single input")
	flags.VarP(cli.NewFormatValue(&opts.format, &opts.formatSet), "to", "t", "output format, o5m or osm")
	flags.VarP(cli.NewCompressionValue(&opts.compression, &opts.compressionSet), "compress", "z",
		"output compression: none, gz, zst, lz4, xz or lzma")
	flags.IntVarP(&opts.concurrency, "concurrency", "c", runtime.GOMAXPROCS(-1), "number of files converted at once")
	flags.BoolVarP(&opts.boundary, "boundary", "b", false, "write a bounding box computed from the nodes when missing")
	flags.BoolVarP(&opts.progress, "progress", "p", false, "show a progress bar while reading a single input")
}

var convertCmd = &cobra.Command{
	Use:   "convert <OSM file>...",
	Short: "Convert OSM files between O5M and OSM XML",
	Long: `Convert OSM files between O5M and OSM XML.

Without --output each input is written next to itself with the extension of
the target format, so london.osm.gz becomes london.o5m.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		if err := run(args, opts); err != nil {
			log.Fatal(err)
		}
	},
}

type job struct {
	in  cli.File
	out cli.File
}

func run(inputs []string, o options) error {
	jobs, err := plan(inputs, o)
	if err != nil {
		return err
	}

	progress := o.progress && len(jobs) == 1

	return rill.ForEach(rill.FromSlice(jobs, nil), max(o.concurrency, 1), func(j job) error {
		if err := convert(j, o, progress); err != nil {
			slog.Error("unable to convert", "input", j.in.Path, "error", err)
			return err
		}

		slog.Info("converted", "input", j.in.Path, "output", j.out.Path)

		return nil
	})
}

func plan(inputs []string, o options) ([]job, error) {
	if o.output != "" && len(inputs) > 1 {
		return nil, errOutputForMany
	}

	jobs := make([]job, 0, len(inputs))

	for _, path := range inputs {
		in, err := cli.NewFile(path)
		if err != nil {
			return nil, err
		}

		out, err := target(in, o)
		if err != nil {
			return nil, err
		}

		if filepath.Clean(out.Path) == filepath.Clean(in.Path) {
			return nil, fmt.Errorf("%s: input and output are the same file", in.Path)
		}

		jobs = append(jobs, job{in: in, out: out})
	}

	return jobs, nil
}

// target works out the output file of in.  Explicit flags win over the
// extensions of --output.
func target(in cli.File, o options) (cli.File, error) {
	var out cli.File

	if o.output != "" {
		out.Path = o.output

		if f, c, err := o5m.FormatFromPath(o.output); err == nil {
			out.Format, out.Compression = f, c
		} else if !o.formatSet {
			return out, err
		}
	} else {
		out.Format = o.format
		out.Compression = o.compression
	}

	if o.formatSet {
		out.Format = o.format
	}

	if o.compressionSet {
		out.Compression = o.compression
	}

	if !out.Compression.Writable() {
		return out, fmt.Errorf("%w: cannot write %s", o5m.ErrUnknownCompression, out.Compression)
	}

	if out.Path == "" {
		base := strings.TrimSuffix(in.Path, in.Compression.Suffix())
		base = strings.TrimSuffix(base, filepath.Ext(base))
		out.Path = base + out.Format.Extension() + out.Compression.Suffix()
	}

	return out, nil
}

func convert(j job, o options, progress bool) error {
	m, err := cli.ReadMap(j.in, progress)
	if err != nil {
		return err
	}

	if err := cli.WriteMap(j.out, m, o5m.WithComputedBoundary(o.boundary)); err != nil {
		_ = os.Remove(j.out.Path)
		return err
	}

	return nil
}
