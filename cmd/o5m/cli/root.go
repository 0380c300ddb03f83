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
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd is the o5m command; subcommands register themselves with it.
var RootCmd = &cobra.Command{
	Use:   "o5m",
	Short: "Inspect and convert OpenStreetMap O5M and OSM XML files",
	Long: `Inspect and convert OpenStreetMap O5M and OSM XML files.

The format of a file is taken from its extension (.o5m, .o5c, .osm) and may
be followed by a compression suffix (.gz, .zst, .lz4, .xz, .lzma, .bz2).`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		level := slog.LevelWarn
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			level = slog.LevelDebug
		}

		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "log decoding and encoding progress")
}

// Execute runs the command line.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
