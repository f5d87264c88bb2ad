/*
Copyright © 2025 Microsoft Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validate

import (
	"context"
	"strings"

	"github.com/deads2k/ARO-RP/pkg/azure"
	aroerrors "github.com/deads2k/ARO-RP/pkg/errors"
)

// ResolveVnetResourceGroup defaults the vnet resource group to the cluster
// resource group when not provided.
func ResolveVnetResourceGroup(args *ClusterArgs) {
	if args.VnetResourceGroupName == "" {
		args.VnetResourceGroupName = args.ResourceGroupName
	}
}

// ResolveVnet canonicalizes a bare vnet name into a full resource ID in the
// vnet resource group.
func (v *Validator) ResolveVnet(args *ClusterArgs) {
	if args.Vnet == nil || azure.IsResourceID(*args.Vnet) {
		return
	}
	id := azure.ResourceID(v.subscriptionID, args.VnetResourceGroupName,
		azure.NetworkNamespace, azure.VirtualNetworksType, *args.Vnet)
	args.Vnet = &id
}

// ValidateSubnet checks the subnet selected by key. A bare subnet name is
// canonicalized against the vnet, the resulting ID is checked segment by
// segment, and the subnet's existence is confirmed against the management
// plane. The vnet must already be resolved.
func (v *Validator) ValidateSubnet(ctx context.Context, args *ClusterArgs, key SubnetKey) error {
	subnet := args.subnet(key)
	if subnet == nil {
		return nil
	}

	if !azure.IsResourceID(*subnet) {
		if args.Vnet == nil {
			return aroerrors.RequiredArgumentMissingf("Must specify --vnet if --%s is not an id.", key)
		}
		id := azure.SubnetID(*args.Vnet, *subnet)
		args.setSubnet(key, id)
		subnet = &id
	}

	parts, err := azure.ParseChildResource(*subnet)
	if err != nil {
		return aroerrors.WrapInvalidArgumentValue(err, "Invalid --%s '%s'.", key, *subnet)
	}

	if !strings.EqualFold(parts.SubscriptionID, v.subscriptionID) {
		return aroerrors.InvalidArgumentValuef("--%s subscription '%s' must equal cluster subscription.", key, parts.SubscriptionID)
	}
	if !strings.EqualFold(parts.Namespace, azure.NetworkNamespace) {
		return aroerrors.InvalidArgumentValuef("--%s namespace '%s' must equal Microsoft.Network.", key, parts.Namespace)
	}
	if !strings.EqualFold(parts.Type, azure.VirtualNetworksType) {
		return aroerrors.InvalidArgumentValuef("--%s type '%s' must equal virtualNetworks.", key, parts.Type)
	}
	if parts.ChildCount != 1 {
		return aroerrors.InvalidArgumentValuef("--%s '%s' must have one child.", key, *subnet)
	}
	if parts.ChildNamespace != "" {
		return aroerrors.InvalidArgumentValuef("--%s '%s' must not have child namespace.", key, *subnet)
	}
	if !strings.EqualFold(parts.ChildType, azure.SubnetsType) {
		return aroerrors.InvalidArgumentValuef("--%s child type '%s' must equal subnets.", key, parts.ChildType)
	}

	if v.subnets != nil {
		if err := v.subnets.Get(ctx, parts.ResourceGroup, parts.Name, parts.ChildName); err != nil {
			if azure.IsNotFound(err) {
				return aroerrors.WrapInvalidArgumentValue(err, "Invalid --%s, error when getting '%s': %v", key, *subnet, err)
			}
			return aroerrors.WrapInternal(err, "Unexpected error when getting subnet '%s': %v", *subnet, err)
		}
	}
	return nil
}

// ValidateSubnetPlacement checks the relative placement of the two subnets:
// they must share a vnet but be distinct subnets.
func ValidateSubnetPlacement(masterSubnet, workerSubnet string) error {
	master, err := azure.ParseChildResource(masterSubnet)
	if err != nil {
		return nil // a prior rule reports the malformed ID
	}
	worker, err := azure.ParseChildResource(workerSubnet)
	if err != nil {
		return nil
	}

	if !strings.EqualFold(master.ResourceGroup, worker.ResourceGroup) {
		return aroerrors.InvalidArgumentValuef("--master-subnet resource group '%s' must equal --worker-subnet resource group '%s'.",
			master.ResourceGroup, worker.ResourceGroup)
	}
	if !strings.EqualFold(master.Name, worker.Name) {
		return aroerrors.InvalidArgumentValuef("--master-subnet vnet name '%s' must equal --worker-subnet vnet name '%s'.",
			master.Name, worker.Name)
	}
	if strings.EqualFold(master.ChildName, worker.ChildName) {
		return aroerrors.InvalidArgumentValuef("--master-subnet name '%s' must not equal --worker-subnet name '%s'.",
			master.ChildName, worker.ChildName)
	}
	return nil
}
