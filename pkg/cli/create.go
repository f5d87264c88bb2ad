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
)

func createCmd() *cli.Command {
	return &cli.Command{
		Name:                  "create",
		EnableShellCompletion: true,
		Usage:                 "Validate a cluster create request and emit the request document",
		Description: `Validates the arguments of a cluster create request the way the resource
provider will, then emits the canonicalized request document. Bare resource
names (vnet, subnets, identities) are expanded into full ARM resource IDs.

# Examples

Validate a basic create request:
  aro create --resource-group my-rg --vnet my-vnet \
    --master-subnet master --worker-subnet worker

Validate a managed-identity cluster:
  aro create --resource-group my-rg --vnet my-vnet \
    --master-subnet master --worker-subnet worker \
    --enable-managed-identity \
    --assign-cluster-identity cluster-id \
    --assign-platform-workload-identity cloud-controller-manager=ccm-id

Write the request document to a file as YAML:
  aro create --resource-group my-rg --vnet my-vnet \
    --master-subnet master --worker-subnet worker \
    --format yaml --output request.yaml`,
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:  "vnet-resource-group",
				Usage: "Resource group of the virtual network (default: --resource-group)",
			},
			&cli.StringFlag{
				Name:  "vnet",
				Usage: "Virtual network name or resource ID",
			},
			&cli.StringFlag{
				Name:  "master-subnet",
				Usage: "Control plane subnet name or resource ID",
			},
			&cli.StringFlag{
				Name:  "worker-subnet",
				Usage: "Worker subnet name or resource ID",
			},
			&cli.StringFlag{
				Name:  "pod-cidr",
				Usage: "IPv4 CIDR for pod addresses",
			},
			&cli.StringFlag{
				Name:  "service-cidr",
				Usage: "IPv4 CIDR for service addresses",
			},
			&cli.StringFlag{
				Name:  "cluster-resource-group",
				Usage: "Name of the managed resource group the cluster will own (must not exist)",
			},
			&cli.StringFlag{
				Name:  "disk-encryption-set",
				Usage: "Resource ID of the disk encryption set for cluster disks",
			},
			&cli.StringFlag{
				Name:  "domain",
				Usage: "Custom cluster domain",
			},
			&cli.StringFlag{
				Name:  "pull-secret",
				Usage: "Red Hat pull secret, or a path to a file containing it",
			},
			&cli.StringFlag{
				Name:  "outbound-type",
				Usage: "Egress routing strategy: Loadbalancer or UserDefinedRouting",
			},
			&cli.StringFlag{
				Name:  "apiserver-visibility",
				Usage: "API server visibility: Private or Public",
			},
			&cli.StringFlag{
				Name:  "ingress-visibility",
				Usage: "Default ingress visibility: Private or Public",
			},
			&cli.Int32Flag{
				Name:  "worker-count",
				Usage: "Number of worker nodes (minimum 3)",
			},
			&cli.Int32Flag{
				Name:  "worker-vm-disk-size-gb",
				Usage: "Worker OS disk size in GiB (minimum 128)",
			},
			&cli.StringFlag{
				Name:  "version",
				Usage: "OpenShift version to install (e.g. 4.14.2)",
			},
			&cli.BoolFlag{
				Name:  "enable-managed-identity",
				Usage: "Create the cluster with managed identities instead of a service principal",
			},
			&cli.StringFlag{
				Name:  "assign-cluster-identity",
				Usage: "User-assigned identity for the cluster, as a name or resource ID",
			},
		}, sharedClusterFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			args, err := clusterArgsFromFlags(cmd, true)
			if err != nil {
				return err
			}

			v, err := newValidator(cmd)
			if err != nil {
				return err
			}

			slog.Info("validating cluster create request",
				slog.String("resource_group", args.ResourceGroupName),
				slog.String("subscription", cmd.String("subscription")),
			)
			if err := v.Run(ctx, v.CreateRules(), args); err != nil {
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
