/*
Copyright © 2025 Microsoft Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/urfave/cli/v3"

	"github.com/deads2k/ARO-RP/pkg/azure"
	"github.com/deads2k/ARO-RP/pkg/serializer"
	"github.com/deads2k/ARO-RP/pkg/validate"
)

// sharedClusterFlags returns the flags common to create and update.
func sharedClusterFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "subscription",
			Required: true,
			Sources:  cli.EnvVars("AZURE_SUBSCRIPTION_ID"),
			Usage:    "Azure subscription ID",
		},
		&cli.StringFlag{
			Name:     "resource-group",
			Aliases:  []string{"g"},
			Required: true,
			Usage:    "Resource group of the cluster resource",
		},
		&cli.StringFlag{
			Name:  "client-id",
			Usage: "Client ID of the cluster service principal",
		},
		&cli.StringFlag{
			Name:  "client-secret",
			Usage: "Client secret of the cluster service principal",
		},
		&cli.StringSliceFlag{
			Name:  "assign-platform-workload-identity",
			Usage: "Identity for an in-cluster operator (format: OPERATOR=IDENTITY, can be repeated; IDENTITY is a name or resource ID)",
		},
		&cli.Int32Flag{
			Name:  "load-balancer-managed-outbound-ip-count",
			Usage: "Number of managed outbound IPs on the public load balancer (1-20)",
		},
		&cli.BoolFlag{
			Name:  "no-wait",
			Usage: "Do not wait for the operation to complete",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Value:   serializer.StdoutPath,
			Usage:   "Output file path for the request document (default: stdout)",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"t"},
			Value:   string(serializer.FormatJSON),
			Usage:   "Output format (json, yaml)",
		},
	}
}

// parseOutputFormat extracts and validates the output format from CLI flags.
// Returns the validated format or an error if the format is unknown.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, valid formats are: yaml, json", outFormat)
	}
	return outFormat, nil
}

// parseWorkloadIdentities parses repeated OPERATOR=IDENTITY flag values.
func parseWorkloadIdentities(values []string) ([]validate.PlatformWorkloadIdentity, error) {
	if len(values) == 0 {
		return nil, nil
	}
	identities := make([]validate.PlatformWorkloadIdentity, 0, len(values))
	for _, value := range values {
		name, resourceID, ok := strings.Cut(value, "=")
		if !ok || name == "" || resourceID == "" {
			return nil, fmt.Errorf("invalid --assign-platform-workload-identity %q (format: OPERATOR=IDENTITY)", value)
		}
		identities = append(identities, validate.PlatformWorkloadIdentity{
			Name:       name,
			ResourceID: resourceID,
		})
	}
	return identities, nil
}

// clusterArgsFromFlags builds the argument namespace from the command's
// flags. A flag the user did not set stays nil so rules can distinguish
// absent from zero.
func clusterArgsFromFlags(cmd *cli.Command, isCreate bool) (*validate.ClusterArgs, error) {
	args := &validate.ClusterArgs{
		ResourceGroupName:     cmd.String("resource-group"),
		VnetResourceGroupName: cmd.String("vnet-resource-group"),

		Vnet:         optString(cmd, "vnet"),
		MasterSubnet: optString(cmd, "master-subnet"),
		WorkerSubnet: optString(cmd, "worker-subnet"),
		PodCIDR:      optString(cmd, "pod-cidr"),
		ServiceCIDR:  optString(cmd, "service-cidr"),

		ClientID:     optString(cmd, "client-id"),
		ClientSecret: optString(cmd, "client-secret"),

		ClusterResourceGroup: optString(cmd, "cluster-resource-group"),
		DiskEncryptionSet:    optString(cmd, "disk-encryption-set"),
		Domain:               optString(cmd, "domain"),
		PullSecret:           optString(cmd, "pull-secret"),

		OutboundType:        optString(cmd, "outbound-type"),
		APIServerVisibility: optString(cmd, "apiserver-visibility"),
		IngressVisibility:   optString(cmd, "ingress-visibility"),

		WorkerCount:                        optInt32(cmd, "worker-count"),
		WorkerVMDiskSizeGB:                 optInt32(cmd, "worker-vm-disk-size-gb"),
		LoadBalancerManagedOutboundIPCount: optInt32(cmd, "load-balancer-managed-outbound-ip-count"),

		EnableManagedIdentity: cmd.Bool("enable-managed-identity"),
		ClusterIdentity:       optString(cmd, "assign-cluster-identity"),

		Version: optString(cmd, "version"),

		NoWait: cmd.Bool("no-wait"),
	}

	identities, err := parseWorkloadIdentities(cmd.StringSlice("assign-platform-workload-identity"))
	if err != nil {
		return nil, err
	}
	args.PlatformWorkloadIdentities = identities

	if !isCreate {
		args.UpgradeableTo = optString(cmd, "upgradeable-to")
		args.RefreshClusterCredentials = cmd.Bool("refresh-credentials")
		args.DeleteIdentities = optBool(cmd, "delete-identities")
	}
	return args, nil
}

// newValidator builds a validator backed by ARM clients authenticated with
// the ambient Azure credential chain.
func newValidator(cmd *cli.Command) (*validate.Validator, error) {
	subscriptionID := cmd.String("subscription")

	credential, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to obtain Azure credential: %w", err)
	}
	clients, err := azure.NewClients(subscriptionID, credential, nil)
	if err != nil {
		return nil, err
	}
	return validate.New(
		validate.WithSubscriptionID(subscriptionID),
		validate.WithClients(clients),
	), nil
}

func optString(cmd *cli.Command, name string) *string {
	if !cmd.IsSet(name) {
		return nil
	}
	v := cmd.String(name)
	return &v
}

func optInt32(cmd *cli.Command, name string) *int32 {
	if !cmd.IsSet(name) {
		return nil
	}
	v := cmd.Int32(name)
	return &v
}

func optBool(cmd *cli.Command, name string) *bool {
	if !cmd.IsSet(name) {
		return nil
	}
	v := cmd.Bool(name)
	return &v
}
