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
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/ai102-labs/command-center/pkg/catalog"
	"github.com/ai102-labs/command-center/pkg/header"
)

// catalogReport is the catalog with a report envelope.
type catalogReport struct {
	header.Header    `json:",inline" yaml:",inline"`
	catalog.Document `json:",inline" yaml:",inline"`
}

func labsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "labs",
		EnableShellCompletion: true,
		Usage:                 "Print the lab catalog",
		Description: `Print every lab with its ordered layers. Conceptual layers have no code
and are never probed; the others name the capability function their probe calls.

# Examples

Print the built-in catalog as a table:
  ccctl labs --format table

Check a custom catalog file for integrity errors:
  ccctl labs --catalog labs.yaml`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "catalog",
				Aliases: []string{"c"},
				Usage:   "path to a catalog YAML file (default: built-in catalog)",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cat, err := loadCatalog(cmd.String("catalog"))
			if err != nil {
				return err
			}

			r := catalogReport{Document: cat.Document()}
			r.Init(header.KindLabCatalog, header.APIVersionV1, version)

			slog.Debug("catalog loaded", "labs", cat.Len())
			return writeOutput(ctx, cmd, r)
		},
	}
}

// loadCatalog parses path, or returns the built-in catalog when path is empty.
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %q: %w", path, err)
	}

	cat, err := catalog.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog %q: %w", path, err)
	}
	return cat, nil
}
