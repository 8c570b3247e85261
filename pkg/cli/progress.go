// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/ai102-labs/command-center/pkg/config"
	"github.com/ai102-labs/command-center/pkg/header"
	"github.com/ai102-labs/command-center/pkg/progress"
)

func dbFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "db",
		Value:   config.DefaultProgressDB,
		Usage:   "path to the progress database",
		Sources: cli.EnvVars(config.EnvProgressDB),
	}
}

func progressCmd() *cli.Command {
	return &cli.Command{
		Name:  "progress",
		Usage: "Inspect or change local lab progress",
		Description: `Read and update the progress database the API server uses to track
completed lab layers.

# Examples

  ccctl progress show --format table
  ccctl progress complete 05 3
  ccctl progress reset`,
		Commands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Print completed layers per lab",
				Flags: []cli.Flag{dbFlag(), outputFlag(), formatFlag()},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withStore(cmd, func(s *progress.Store) error {
						p, err := s.Get(ctx)
						if err != nil {
							return err
						}
						p.Init(header.KindProgressReport, header.APIVersionV1, version)
						return writeOutput(ctx, cmd, p)
					})
				},
			},
			{
				Name:      "complete",
				Usage:     "Mark a layer of a lab as completed",
				ArgsUsage: "LAB LAYER",
				Flags:     []cli.Flag{dbFlag()},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					lab, layer, err := parseLabLayer(cmd.Args().Get(0), cmd.Args().Get(1))
					if err != nil {
						return err
					}
					return withStore(cmd, func(s *progress.Store) error {
						layers, err := s.Complete(ctx, lab, layer)
						if err != nil {
							return err
						}
						slog.Info("layer completed", "lab", lab, "layer", layer, "completed", layers)
						return nil
					})
				},
			},
			{
				Name:  "reset",
				Usage: "Delete all recorded progress",
				Flags: []cli.Flag{dbFlag()},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withStore(cmd, func(s *progress.Store) error {
						if err := s.Reset(ctx); err != nil {
							return err
						}
						slog.Info("progress reset", "db", s.Path())
						return nil
					})
				},
			},
		},
	}
}

// parseLabLayer checks positional LAB LAYER arguments.
func parseLabLayer(lab, layerArg string) (string, int, error) {
	if lab == "" || layerArg == "" {
		return "", 0, errors.New("expected arguments: LAB LAYER")
	}
	layer, err := strconv.Atoi(layerArg)
	if err != nil {
		return "", 0, fmt.Errorf("invalid layer %q: %w", layerArg, err)
	}
	if err := progress.Validate(lab, layer); err != nil {
		return "", 0, err
	}
	return lab, layer, nil
}

func withStore(cmd *cli.Command, fn func(*progress.Store) error) error {
	s, err := progress.Open(cmd.String("db"))
	if err != nil {
		return err
	}
	defer func() {
		if err := s.Close(); err != nil {
			slog.Warn("failed to close progress store", "error", err)
		}
	}()
	return fn(s)
}
