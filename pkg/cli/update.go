/*
Copyright © 2025 Microsoft Corporation
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/deads2k/ARO-RP/pkg/serializer"
	"github.com/deads2k/ARO-RP/pkg/validate"
)

func updateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "update",
		EnableShellCompletion: true,
		Usage:                 "Validate a cluster update request and emit the request document",
		Description: `Validates the arguments of a cluster update request. Updates cover
credential rotation and workload-identity changes; cluster topology is
immutable after creation.

# Examples

Rotate the service principal credentials:
  aro update --resource-group my-rg \
    --client-id 00000000-0000-0000-0000-000000000000 \
    --client-secret <secret>

Refresh the cluster's credentials in place:
  aro update --resource-group my-rg --refresh-credentials

Declare an upgrade target for workload-identity clusters:
  aro update --resource-group my-rg --upgradeable-to 4.15.3`,
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:  "refresh-credentials",
				Usage: "Refresh the cluster's service principal credentials",
			},
			&cli.StringFlag{
				Name:  "upgradeable-to",
				Usage: "Version the cluster may be upgraded to (minimum minor 14)",
			},
			&cli.BoolFlag{
				Name:  "delete-identities",
				Usage: "Delete the platform workload identities being removed",
			},
		}, sharedClusterFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			args, err := clusterArgsFromFlags(cmd, false)
			if err != nil {
				return err
			}

			v := validate.New(validate.WithSubscriptionID(cmd.String("subscription")))

			slog.Info("validating cluster update request",
				slog.String("resource_group", args.ResourceGroupName),
				slog.String("subscription", cmd.String("subscription")),
			)
			if err := v.Run(ctx, v.UpdateRules(), args); err != nil {
				return err
			}

			w, err := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			if err != nil {
				return err
			}
			return w.Serialize(args)
		},
	}
}
