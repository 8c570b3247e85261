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
	"time"

	"github.com/urfave/cli/v3"

	"github.com/ai102-labs/command-center/pkg/config"
	"github.com/ai102-labs/command-center/pkg/header"
	"github.com/ai102-labs/command-center/pkg/labs"
	"github.com/ai102-labs/command-center/pkg/validator"
)

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "validate",
		EnableShellCompletion: true,
		Usage:                 "Run the lab validation harness",
		Description: `Probe every non-conceptual layer of one lab, or of all labs, and report a
status per layer:

  conceptual       - no code to validate
  pass             - the capability ran successfully
  not_implemented  - the capability is still a stub
  implemented      - the code is written but Azure credentials are missing
  error            - anything else

Configuration is read from the --env-file (default .env) and the environment,
the same way the API server reads it.

# Examples

Validate every lab:
  ccctl validate

Validate lab 05 and print a table:
  ccctl validate --lab 05 --format table

Fail a CI job when any layer errors:
  ccctl validate --fail-on-error`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "lab",
				Aliases: []string{"l"},
				Usage:   "validate a single lab by id (e.g. 05)",
			},
			&cli.BoolFlag{
				Name:  "demo",
				Usage: "use canned responses instead of Azure services",
			},
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Usage: "exit with non-zero status if any layer reports an error",
			},
			&cli.StringFlag{
				Name:  "env-file",
				Value: ".env",
				Usage: "dotenv file to load before reading the environment",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			cfg, err := config.Load(cmd.String("env-file"))
			if err != nil {
				return err
			}
			if cmd.Bool("demo") {
				cfg.DemoMode = true
			}

			v, err := newValidator(cfg)
			if err != nil {
				return err
			}

			var report *validator.Report
			if lab := cmd.String("lab"); lab != "" {
				report, err = labReport(ctx, v, lab)
				if err != nil {
					return err
				}
			} else {
				report = v.NewReport(ctx)
			}

			if err := writeOutput(ctx, cmd, report); err != nil {
				return err
			}

			s := report.Summary
			slog.Info("validation completed",
				"labs", s.Labs,
				"layers", s.Layers,
				"pass", s.Counts[validator.StatusPass],
				"implemented", s.Counts[validator.StatusImplemented],
				"not_implemented", s.Counts[validator.StatusNotImplemented],
				"error", s.Counts[validator.StatusError],
				"duration", s.Duration)

			if n := s.Counts[validator.StatusError]; cmd.Bool("fail-on-error") && n > 0 {
				return fmt.Errorf("validation failed: %d layer(s) reported an error", n)
			}
			return nil
		},
	}
}

func newValidator(cfg *config.Settings) (*validator.Validator, error) {
	cat, err := loadCatalog("")
	if err != nil {
		return nil, err
	}
	return validator.New(cat, labs.Registry(labs.NewServices(cfg)), validator.WithVersion(version))
}

// labReport validates a single lab into an enveloped report.
func labReport(ctx context.Context, v *validator.Validator, lab string) (*validator.Report, error) {
	start := time.Now()

	res := v.ValidateLab(ctx, lab)
	if !res.Known() {
		return nil, fmt.Errorf("unknown lab %q, known labs: %v", lab, v.Catalog().SortedLabs())
	}

	report := &validator.Report{Labs: map[string][]validator.LayerResult{lab: res.Layers}}
	report.Init(header.KindValidationReport, header.APIVersionV1, version)
	s := report.Summarize(time.Since(start))
	report.Summary = &s
	return report, nil
}
