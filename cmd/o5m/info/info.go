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

package info

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"m4o.io/o5m/cmd/o5m/cli"
	"m4o.io/o5m/model"
)

var out io.Writer = os.Stdout

type summary struct {
	Format        string          `json:"format"`
	Compression   string          `json:"compression"`
	Boundary      *model.Boundary `json:"boundary,omitempty"`
	NodeCount     int64           `json:"nodeCount"`
	WayCount      int64           `json:"wayCount"`
	RelationCount int64           `json:"relationCount"`
	TagCount      int64           `json:"tagCount"`
	UserCount     int64           `json:"userCount"`
	LastModified  int64           `json:"lastModified,omitempty"`
}

func init() {
	cli.RootCmd.AddCommand(infoCmd)

	flags := infoCmd.Flags()
	flags.BoolP("json", "j", false, "format information in JSON")
	flags.BoolP("progress", "p", false, "show a progress bar while reading")
}

var infoCmd = &cobra.Command{
	Use:   "info <OSM file>",
	Short: "Print information about an OSM file",
	Long:  "Print information about an O5M or OSM XML file, possibly compressed",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		flags := cmd.Flags()

		progress, err := flags.GetBool("progress")
		if err != nil {
			log.Fatal(err)
		}

		jsonfmt, err := flags.GetBool("json")
		if err != nil {
			log.Fatal(err)
		}

		file, err := cli.NewFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		m, err := cli.ReadMap(file, progress)
		if err != nil {
			log.Fatal(err)
		}

		info := summarize(file, m)

		if jsonfmt {
			renderJSON(info)
		} else {
			renderTxt(info)
		}
	},
}

func summarize(file cli.File, m *model.Map) *summary {
	s := &summary{
		Format:        file.Format.String(),
		Compression:   file.Compression.String(),
		Boundary:      m.Boundary,
		NodeCount:     int64(len(m.Nodes)),
		WayCount:      int64(len(m.Ways)),
		RelationCount: int64(len(m.Relations)),
	}

	if s.Boundary == nil {
		s.Boundary = m.CalcBoundary()
	}

	users := make(map[uint64]struct{})

	for e := range m.Entities() {
		meta := e.GetMeta()
		s.TagCount += int64(len(meta.Tags))

		if a := meta.Author; a != nil {
			users[a.UID] = struct{}{}
			s.LastModified = max(s.LastModified, a.Created)
		}
	}

	s.UserCount = int64(len(users))

	return s
}

func renderJSON(info *summary) {
	b, err := json.Marshal(info)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Fprint(out, string(b))
}

func renderTxt(info *summary) {
	fmt.Fprintf(out, "Format: %s\n", info.Format)
	fmt.Fprintf(out, "Compression: %s\n", info.Compression)

	if info.Boundary != nil {
		fmt.Fprintf(out, "Boundary: %s\n", info.Boundary)
	} else {
		fmt.Fprintln(out, "Boundary: none")
	}

	fmt.Fprintf(out, "NodeCount: %s\n", humanize.Comma(info.NodeCount))
	fmt.Fprintf(out, "WayCount: %s\n", humanize.Comma(info.WayCount))
	fmt.Fprintf(out, "RelationCount: %s\n", humanize.Comma(info.RelationCount))
	fmt.Fprintf(out, "TagCount: %s\n", humanize.Comma(info.TagCount))
	fmt.Fprintf(out, "UserCount: %s\n", humanize.Comma(info.UserCount))

	if info.LastModified != 0 {
		a := model.Author{Created: info.LastModified}
		fmt.Fprintf(out, "LastModified: %s\n", a.Time().Format("2006-01-02T15:04:05Z07:00"))
	}
}
