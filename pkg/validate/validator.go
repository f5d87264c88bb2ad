/*
Copyright © 2025 Microsoft Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validate

import (
	"context"
	"log/slog"
	"time"

	"github.com/deads2k/ARO-RP/pkg/azure"
)

// Validator evaluates argument-validation rules against a ClusterArgs
// namespace. Rules needing the management plane use the configured clients;
// everything else is pure.
type Validator struct {
	subscriptionID     string
	resourceGroups     azure.ResourceGroupsClient
	subnets            azure.SubnetsClient
	diskEncryptionSets azure.DiskEncryptionSetsClient
}

// Option is a functional option for configuring Validator instances.
type Option func(*Validator)

// WithSubscriptionID returns an Option that sets the subscription the
// cluster is created in.
func WithSubscriptionID(id string) Option {
	return func(v *Validator) {
		v.subscriptionID = id
	}
}

// WithClients returns an Option that sets all management clients at once.
func WithClients(c *azure.Clients) Option {
	return func(v *Validator) {
		v.resourceGroups = c.ResourceGroups
		v.subnets = c.Subnets
		v.diskEncryptionSets = c.DiskEncryptionSets
	}
}

// WithResourceGroupsClient returns an Option that sets the resource-group
// existence client.
func WithResourceGroupsClient(c azure.ResourceGroupsClient) Option {
	return func(v *Validator) {
		v.resourceGroups = c
	}
}

// WithSubnetsClient returns an Option that sets the subnet lookup client.
func WithSubnetsClient(c azure.SubnetsClient) Option {
	return func(v *Validator) {
		v.subnets = c
	}
}

// WithDiskEncryptionSetsClient returns an Option that sets the disk
// encryption set lookup client.
func WithDiskEncryptionSetsClient(c azure.DiskEncryptionSetsClient) Option {
	return func(v *Validator) {
		v.diskEncryptionSets = c
	}
}

// New creates a new Validator with the provided options.
func New(opts ...Option) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Rule is one named entry in a validation pipeline.
type Rule struct {
	Name  string
	Check func(ctx context.Context, args *ClusterArgs) error
}

// Run evaluates rules in order against args, stopping at the first
// failure. The returned error is one of the kinds in pkg/errors.
func (v *Validator) Run(ctx context.Context, rules []Rule, args *ClusterArgs) error {
	start := time.Now()

	for _, rule := range rules {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := rule.Check(ctx, args); err != nil {
			ruleFailureTotal.WithLabelValues(rule.Name).Inc()
			slog.Debug("validation rule failed", "rule", rule.Name, "error", err)
			return err
		}
		slog.Debug("validation rule passed", "rule", rule.Name)
	}

	validationDuration.Observe(time.Since(start).Seconds())
	slog.Debug("validation completed", "rules", len(rules), "duration", time.Since(start))
	return nil
}

// CreateRules returns the ordered rule set for cluster creation. Ordering
// matters: the vnet resource group is resolved before the vnet, the vnet
// before either subnet, and both subnets before their relative placement
// is checked.
func (v *Validator) CreateRules() []Rule {
	return []Rule{
		{Name: "vnet-resource-group", Check: func(_ context.Context, args *ClusterArgs) error {
			ResolveVnetResourceGroup(args)
			return nil
		}},
		{Name: "pull-secret", Check: func(_ context.Context, args *ClusterArgs) error {
			return ValidatePullSecret(args)
		}},
		{Name: "domain", Check: func(_ context.Context, args *ClusterArgs) error {
			return ValidateDomain(args)
		}},
		{Name: "client-id", Check: func(_ context.Context, args *ClusterArgs) error {
			return ValidateClientID(args, true)
		}},
		{Name: "client-secret", Check: func(_ context.Context, args *ClusterArgs) error {
			return ValidateClientSecret(args, true)
		}},
		{Name: "enable-managed-identity", Check: func(_ context.Context, args *ClusterArgs) error {
			return ValidateEnableManagedIdentity(args)
		}},
		{Name: "platform-workload-identities", Check: func(_ context.Context, args *ClusterArgs) error {
			return v.ValidatePlatformWorkloadIdentities(args, true)
		}},
		{Name: "cluster-identity", Check: func(_ context.Context, args *ClusterArgs) error {
			return v.ValidateClusterIdentity(args)
		}},
		{Name: "cluster-resource-group", Check: func(ctx context.Context, args *ClusterArgs) error {
			return v.ValidateClusterResourceGroup(ctx, args)
		}},
		{Name: "vnet", Check: func(_ context.Context, args *ClusterArgs) error {
			v.ResolveVnet(args)
			return nil
		}},
		{Name: "master-subnet", Check: func(ctx context.Context, args *ClusterArgs) error {
			return v.ValidateSubnet(ctx, args, MasterSubnetKey)
		}},
		{Name: "worker-subnet", Check: func(ctx context.Context, args *ClusterArgs) error {
			return v.ValidateSubnet(ctx, args, WorkerSubnetKey)
		}},
		{Name: "subnet-placement", Check: func(_ context.Context, args *ClusterArgs) error {
			if args.MasterSubnet == nil || args.WorkerSubnet == nil {
				return nil
			}
			return ValidateSubnetPlacement(*args.MasterSubnet, *args.WorkerSubnet)
		}},
		{Name: "pod-cidr", Check: func(_ context.Context, args *ClusterArgs) error {
			return ValidateCIDR("pod-cidr", args.PodCIDR)
		}},
		{Name: "service-cidr", Check: func(_ context.Context, args *ClusterArgs) error {
			return ValidateCIDR("service-cidr", args.ServiceCIDR)
		}},
		{Name: "apiserver-visibility", Check: func(_ context.Context, args *ClusterArgs) error {
			return ValidateVisibility("apiserver-visibility", args.APIServerVisibility)
		}},
		{Name: "ingress-visibility", Check: func(_ context.Context, args *ClusterArgs) error {
			return ValidateVisibility("ingress-visibility", args.IngressVisibility)
		}},
		{Name: "outbound-type", Check: func(_ context.Context, args *ClusterArgs) error {
			return ValidateOutboundType(args)
		}},
		{Name: "worker-count", Check: func(_ context.Context, args *ClusterArgs) error {
			return ValidateWorkerCount(args)
		}},
		{Name: "worker-vm-disk-size-gb", Check: func(_ context.Context, args *ClusterArgs) error {
			return ValidateWorkerVMDiskSizeGB(args)
		}},
		{Name: "load-balancer-managed-outbound-ip-count", Check: func(_ context.Context, args *ClusterArgs) error {
			return ValidateLoadBalancerManagedOutboundIPCount(args)
		}},
		{Name: "disk-encryption-set", Check: func(ctx context.Context, args *ClusterArgs) error {
			return v.ValidateDiskEncryptionSet(ctx, args)
		}},
		{Name: "version", Check: func(_ context.Context, args *ClusterArgs) error {
			return ValidateVersionFormat(args)
		}},
	}
}

// UpdateRules returns the ordered rule set for cluster update. Update
// validates credential rotation and workload-identity changes; topology is
// immutable after creation and is not re-validated.
func (v *Validator) UpdateRules() []Rule {
	return []Rule{
		{Name: "client-id", Check: func(_ context.Context, args *ClusterArgs) error {
			return ValidateClientID(args, false)
		}},
		{Name: "client-secret", Check: func(_ context.Context, args *ClusterArgs) error {
			return ValidateClientSecret(args, false)
		}},
		{Name: "refresh-cluster-credentials", Check: func(_ context.Context, args *ClusterArgs) error {
			return ValidateRefreshClusterCredentials(args)
		}},
		{Name: "platform-workload-identities", Check: func(_ context.Context, args *ClusterArgs) error {
			return v.ValidatePlatformWorkloadIdentities(args, false)
		}},
		{Name: "upgradeable-to", Check: func(_ context.Context, args *ClusterArgs) error {
			return ValidateUpgradeableToFormat(args)
		}},
		{Name: "load-balancer-managed-outbound-ip-count", Check: func(_ context.Context, args *ClusterArgs) error {
			return ValidateLoadBalancerManagedOutboundIPCount(args)
		}},
		{Name: "delete-identities", Check: func(_ context.Context, args *ClusterArgs) error {
			return ValidateDeleteIdentities(args)
		}},
	}
}
