/*
Copyright © 2025 Microsoft Corporation
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
)

// version is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/deads2k/ARO-RP/pkg/cli.version=1.0.0'"
var version = "dev"

// New constructs the root aro command.
func New() *cli.Command {
	return &cli.Command{
		Name:                  "aro",
		Usage:                 "Validate and stage Azure Red Hat OpenShift cluster requests",
		Version:               version,
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Sources: cli.EnvVars("LOG_LEVEL"),
				Usage:   "Logging verbosity (debug, info, warn, error)",
			},
			&cli.BoolFlag{
				Name:  "log-json",
				Usage: "Output logs in JSON format",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if err := setupLogging(cmd.String("log-level"), cmd.Bool("log-json")); err != nil {
				return ctx, err
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			createCmd(),
			updateCmd(),
		},
	}
}

// setupLogging configures the default slog logger from the global flags.
func setupLogging(level string, logJSON bool) error {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	opts := &slog.HandlerOptions{Level: l}
	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if logJSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
	return nil
}
