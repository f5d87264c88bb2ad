/*
Copyright © 2025 Microsoft Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validate

import (
	"context"

	"github.com/deads2k/ARO-RP/pkg/azure"
	aroerrors "github.com/deads2k/ARO-RP/pkg/errors"
)

// ValidateClusterResourceGroup checks that the managed resource group the
// cluster will own does not already exist.
func (v *Validator) ValidateClusterResourceGroup(ctx context.Context, args *ClusterArgs) error {
	if args.ClusterResourceGroup == nil || v.resourceGroups == nil {
		return nil
	}
	exists, err := v.resourceGroups.CheckExistence(ctx, *args.ClusterResourceGroup)
	if err != nil {
		return aroerrors.WrapInternal(err, "Unexpected error when checking resource group '%s': %v", *args.ClusterResourceGroup, err)
	}
	if exists {
		return aroerrors.InvalidArgumentValuef("Invalid --cluster-resource-group '%s': resource group must not exist.", *args.ClusterResourceGroup)
	}
	return nil
}

// ValidateDiskEncryptionSet checks that the disk encryption set is a full
// resource ID naming an existing set. Any lookup failure, not-found
// included, is reported as invalid input.
func (v *Validator) ValidateDiskEncryptionSet(ctx context.Context, args *ClusterArgs) error {
	if args.DiskEncryptionSet == nil {
		return nil
	}
	if !azure.IsResourceID(*args.DiskEncryptionSet) {
		return aroerrors.InvalidArgumentValuef("Invalid --disk-encryption-set '%s', has to be a resource ID.", *args.DiskEncryptionSet)
	}
	parts, err := azure.ParseChildResource(*args.DiskEncryptionSet)
	if err != nil {
		return aroerrors.WrapInvalidArgumentValue(err, "Invalid --disk-encryption-set '%s', has to be a resource ID.", *args.DiskEncryptionSet)
	}
	if v.diskEncryptionSets == nil {
		return nil
	}
	if err := v.diskEncryptionSets.Get(ctx, parts.ResourceGroup, parts.Name); err != nil {
		return aroerrors.WrapInvalidArgumentValue(err, "Invalid --disk-encryption-set, error when getting '%s': %v", *args.DiskEncryptionSet, err)
	}
	return nil
}
