/*
Copyright © 2025 Microsoft Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validate

import (
	"github.com/google/uuid"

	"github.com/deads2k/ARO-RP/pkg/azure"
	aroerrors "github.com/deads2k/ARO-RP/pkg/errors"
)

// ValidateClientID checks the service principal client ID. It must be a
// UUID, requires a client secret, and is mutually exclusive with managed
// identity, workload identities and (on update) an upgrade target.
func ValidateClientID(args *ClusterArgs, isCreate bool) error {
	if args.ClientID == nil {
		return nil
	}
	if args.EnableManagedIdentity {
		return aroerrors.MutuallyExclusivef("Must not specify --client-id when --enable-managed-identity is True")
	}
	if args.PlatformWorkloadIdentities != nil {
		return aroerrors.MutuallyExclusivef("Must not specify --client-id when --assign-platform-workload-identity is used")
	}
	if _, err := uuid.Parse(*args.ClientID); err != nil {
		return aroerrors.WrapInvalidArgumentValue(err, "Invalid --client-id '%s'.", *args.ClientID)
	}
	if args.ClientSecret == nil || *args.ClientSecret == "" {
		return aroerrors.RequiredArgumentMissingf("Must specify --client-secret with --client-id.")
	}
	if !isCreate && args.UpgradeableTo != nil {
		return aroerrors.MutuallyExclusivef("Must not specify --client-id when --upgradeable-to is used.")
	}
	return nil
}

// ValidateClientSecret mirrors ValidateClientID for the secret half of the
// credential pair.
func ValidateClientSecret(args *ClusterArgs, isCreate bool) error {
	if args.ClientSecret == nil {
		return nil
	}
	if args.EnableManagedIdentity {
		return aroerrors.MutuallyExclusivef("Must not specify --client-secret when --enable-managed-identity is True")
	}
	if args.PlatformWorkloadIdentities != nil {
		return aroerrors.MutuallyExclusivef("Must not specify --client-secret when --assign-platform-workload-identity is used")
	}
	if isCreate && (args.ClientID == nil || *args.ClientID == "") {
		return aroerrors.RequiredArgumentMissingf("Must specify --client-id with --client-secret.")
	}
	if !isCreate && args.UpgradeableTo != nil {
		return aroerrors.MutuallyExclusivef("Must not specify --client-secret when --upgradeable-to is used.")
	}
	return nil
}

// ValidateEnableManagedIdentity checks that enabling managed identity
// excludes client credentials and that both workload identities and a
// cluster identity are provided.
func ValidateEnableManagedIdentity(args *ClusterArgs) error {
	if !args.EnableManagedIdentity {
		return nil
	}
	if args.ClientID != nil {
		return aroerrors.MutuallyExclusivef("Must not specify --client-id when --enable-managed-identity is True")
	}
	if args.ClientSecret != nil {
		return aroerrors.MutuallyExclusivef("Must not specify --client-secret when --enable-managed-identity is True")
	}
	if len(args.PlatformWorkloadIdentities) == 0 {
		return aroerrors.RequiredArgumentMissingf("Enabling managed identity requires platform workload identities to be provided")
	}
	if args.ClusterIdentity == nil || *args.ClusterIdentity == "" {
		return aroerrors.RequiredArgumentMissingf("Enabling managed identity requires cluster identity to be provided")
	}
	return nil
}

// ValidatePlatformWorkloadIdentities checks the operator identity list:
// names must be unique, and each identity is canonicalized to a full
// user-assigned identity resource ID in the cluster subscription and
// resource group.
func (v *Validator) ValidatePlatformWorkloadIdentities(args *ClusterArgs, isCreate bool) error {
	if args.PlatformWorkloadIdentities == nil {
		return nil
	}
	if isCreate && !args.EnableManagedIdentity {
		return aroerrors.RequiredArgumentMissingf("Must set --enable-managed-identity when providing platform workload identities")
	}

	counts := make(map[string]int, len(args.PlatformWorkloadIdentities))
	for _, identity := range args.PlatformWorkloadIdentities {
		counts[identity.Name]++
	}
	var duplicates []string
	for _, identity := range args.PlatformWorkloadIdentities {
		if counts[identity.Name] > 1 {
			duplicates = append(duplicates, identity.Name)
			counts[identity.Name] = 0 // report each duplicate once
		}
	}
	if len(duplicates) > 0 {
		return aroerrors.InvalidArgumentValuef("Platform workload identities %v were provided multiple times", duplicates)
	}

	for i := range args.PlatformWorkloadIdentities {
		identity := &args.PlatformWorkloadIdentities[i]
		if !azure.IsResourceID(identity.ResourceID) {
			identity.ResourceID = v.identityResourceID(args, identity.ResourceID)
		}
		if !azure.IsUserAssignedIdentity(identity.ResourceID) {
			return aroerrors.InvalidArgumentValuef("Resource %s used for platform workload identity %s is not a valid userAssignedIdentity",
				identity.ResourceID, identity.Name)
		}
	}
	return nil
}

// ValidateClusterIdentity checks the user-assigned cluster identity,
// canonicalizing a bare name to a full resource ID.
func (v *Validator) ValidateClusterIdentity(args *ClusterArgs) error {
	if args.ClusterIdentity == nil {
		return nil
	}
	if !args.EnableManagedIdentity {
		return aroerrors.RequiredArgumentMissingf("Must set --enable-managed-identity when providing a cluster identity")
	}
	if !azure.IsResourceID(*args.ClusterIdentity) {
		id := v.identityResourceID(args, *args.ClusterIdentity)
		args.ClusterIdentity = &id
	}
	if !azure.IsUserAssignedIdentity(*args.ClusterIdentity) {
		return aroerrors.InvalidArgumentValuef("Resource %s used for cluster user assigned identity is not a valid userAssignedIdentity",
			*args.ClusterIdentity)
	}
	return nil
}

// ValidateRefreshClusterCredentials checks that a credential refresh is
// not combined with explicit credentials, workload identities or an
// upgrade target.
func ValidateRefreshClusterCredentials(args *ClusterArgs) error {
	if !args.RefreshClusterCredentials {
		return nil
	}
	if args.ClientSecret != nil || args.ClientID != nil {
		return aroerrors.RequiredArgumentMissingf("--client-id and --client-secret must be not set with --refresh-credentials.")
	}
	if args.PlatformWorkloadIdentities != nil {
		return aroerrors.MutuallyExclusivef("--platform-workload-identities must be not set with --refresh-credentials.")
	}
	if args.UpgradeableTo != nil {
		return aroerrors.MutuallyExclusivef("Must not specify --refresh-credentials when --upgradeable-to is used.")
	}
	return nil
}

// ValidateDeleteIdentities checks that identity deletion is not combined
// with --no-wait; the deletion must be observed to completion.
func ValidateDeleteIdentities(args *ClusterArgs) error {
	if args.DeleteIdentities == nil {
		return nil
	}
	if *args.DeleteIdentities && args.NoWait {
		return aroerrors.MutuallyExclusivef("Must not specify --no-wait when --delete-identities is used")
	}
	return nil
}

// identityResourceID expands a bare identity name into a full resource ID
// scoped to the cluster subscription and resource group.
func (v *Validator) identityResourceID(args *ClusterArgs, name string) string {
	return azure.ResourceID(v.subscriptionID, args.ResourceGroupName,
		azure.ManagedIdentityNamespace, azure.UserAssignedIdentitiesType, name)
}
