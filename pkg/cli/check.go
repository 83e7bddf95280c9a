/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/vercheck/pkg/checker"
	"github.com/NVIDIA/vercheck/pkg/command"
	"github.com/NVIDIA/vercheck/pkg/defaults"
	"github.com/NVIDIA/vercheck/pkg/extractor"
	"github.com/NVIDIA/vercheck/pkg/serializer"
)

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:                  "check",
		EnableShellCompletion: true,
		Usage:                 "Run a command and compare its reported version against a desired version",
		Description: `Run the given command, extract a version token from its combined
stdout/stderr output using a regular expression, and compare it against the
desired version.

The result carries one of six outcomes with a stable numeric code:

   0  desired version equals the installed version
   2  desired version is greater than the installed version
  -2  desired version is less than the installed version
   3  the command executable is not installed
   1  no version token could be extracted from the command output
  -1  the desired version does not match the extraction pattern

# Version Comparison

Versions are split into segments on any run of non-alphanumeric characters.
Numeric segments compare by value (1.10 is newer than 1.9), text segments
compare lexically, and a shorter version is padded with zeros (1.2 equals
1.2.0).

# Examples

Check that bash 5.2.21 is installed:
  vercheck check --command "bash --version" --desired-version 5.2.21

Select the second version token in the output (python version in ansible output):
  vercheck check -c "ansible --version" -d 3.11.9 --index 1

Use a custom extraction pattern for two-segment versions:
  vercheck check -c "lsb_release -r" -d 24.04 --pattern '\d+\.\d+'

Fail the command for CI gating when versions diverge:
  vercheck check -c "kubectl version --client" -d 1.32.4 --fail-on-mismatch

Write the result as JSON to a file:
  vercheck check -c "bash --version" -d 5.2.21 -t json -o result.json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "command",
				Aliases:  []string{"c"},
				Required: true,
				Sources:  cli.EnvVars("VERCHECK_COMMAND"),
				Usage:    "Command to run, with arguments (parsed with shell quoting rules)",
			},
			&cli.StringFlag{
				Name:     "desired-version",
				Aliases:  []string{"d"},
				Required: true,
				Sources:  cli.EnvVars("VERCHECK_DESIRED_VERSION"),
				Usage:    "Version to compare the command output against",
			},
			&cli.StringFlag{
				Name:    "pattern",
				Aliases: []string{"p"},
				Value:   extractor.DefaultPattern,
				Sources: cli.EnvVars("VERCHECK_PATTERN"),
				Usage:   "Regular expression used to extract version tokens from the command output",
			},
			&cli.IntFlag{
				Name:    "index",
				Aliases: []string{"i"},
				Value:   0,
				Usage:   "Zero-based index of the version token to compare when multiple match",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: defaults.CommandTimeout,
				Usage: "Maximum time to wait for the command to complete",
			},
			&cli.BoolFlag{
				Name:  "fail-on-mismatch",
				Usage: "Exit with the outcome code when the versions do not match (useful for CI/CD)",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			spec, err := command.Parse(cmd.String("command"))
			if err != nil {
				return fmt.Errorf("invalid command: %w", err)
			}

			chk, err := checker.New(spec, cmd.String("desired-version"),
				checker.WithPattern(cmd.String("pattern")),
				checker.WithIndex(int(cmd.Int("index"))),
				checker.WithToolVersion(version),
			)
			if err != nil {
				return err
			}

			slog.Info("checking version",
				"command", spec.String(),
				"desired", cmd.String("desired-version"),
				"timeout", cmd.Duration("timeout"))

			checkCtx, cancel := context.WithTimeout(ctx, cmd.Duration("timeout"))
			defer cancel()

			res, err := chk.Check(checkCtx)
			if err != nil {
				return fmt.Errorf("check failed: %w", err)
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			if err := ser.Serialize(ctx, res); err != nil {
				return fmt.Errorf("failed to serialize check result: %w", err)
			}

			slog.Info("check completed",
				"outcome", res.Outcome,
				"code", res.Code,
				"selected", res.VersionSelected)

			if cmd.Bool("fail-on-mismatch") && res.Code != checker.CodeEqual {
				return cli.Exit(res.Message, res.Code)
			}

			return nil
		},
	}
}
