/*
Copyright © 2025 Microsoft Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validate

import (
	"context"
	"errors"
	"testing"

	"github.com/deads2k/ARO-RP/pkg/azure"
	aroerrors "github.com/deads2k/ARO-RP/pkg/errors"
)

// fakeResourceGroups reports configured existence results.
type fakeResourceGroups struct {
	exists bool
	err    error
	calls  []string
}

func (f *fakeResourceGroups) CheckExistence(_ context.Context, name string) (bool, error) {
	f.calls = append(f.calls, name)
	return f.exists, f.err
}

// fakeDiskEncryptionSets records lookups and returns a configured error.
type fakeDiskEncryptionSets struct {
	err   error
	calls []string
}

func (f *fakeDiskEncryptionSets) Get(_ context.Context, resourceGroup, name string) error {
	f.calls = append(f.calls, resourceGroup+"/"+name)
	return f.err
}

func TestValidateClusterResourceGroup(t *testing.T) {
	ctx := context.Background()

	t.Run("absent", func(t *testing.T) {
		groups := &fakeResourceGroups{exists: true}
		v := New(WithResourceGroupsClient(groups))
		if err := v.ValidateClusterResourceGroup(ctx, &ClusterArgs{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(groups.calls) != 0 {
			t.Fatalf("absent flag should not reach the management plane, got %v", groups.calls)
		}
	})

	t.Run("does not exist", func(t *testing.T) {
		groups := &fakeResourceGroups{exists: false}
		v := New(WithResourceGroupsClient(groups))
		args := &ClusterArgs{ClusterResourceGroup: strptr("aro-managed")}
		if err := v.ValidateClusterResourceGroup(ctx, args); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(groups.calls) != 1 || groups.calls[0] != "aro-managed" {
			t.Fatalf("existence checks = %v, want [aro-managed]", groups.calls)
		}
	})

	t.Run("already exists", func(t *testing.T) {
		groups := &fakeResourceGroups{exists: true}
		v := New(WithResourceGroupsClient(groups))
		args := &ClusterArgs{ClusterResourceGroup: strptr("aro-managed")}
		err := v.ValidateClusterResourceGroup(ctx, args)
		checkErrorKind(t, err, &aroerrors.InvalidArgumentValueError{})
	})

	t.Run("remote failure", func(t *testing.T) {
		groups := &fakeResourceGroups{err: errors.New("throttled")}
		v := New(WithResourceGroupsClient(groups))
		args := &ClusterArgs{ClusterResourceGroup: strptr("aro-managed")}
		err := v.ValidateClusterResourceGroup(ctx, args)
		checkErrorKind(t, err, &aroerrors.InternalError{})
	})
}

func TestValidateDiskEncryptionSet(t *testing.T) {
	ctx := context.Background()
	desID := azure.ResourceID(testSubscription, "des-rg", "Microsoft.Compute", "diskEncryptionSets", "cluster-des")

	t.Run("absent", func(t *testing.T) {
		v := New()
		if err := v.ValidateDiskEncryptionSet(ctx, &ClusterArgs{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not a resource id", func(t *testing.T) {
		sets := &fakeDiskEncryptionSets{}
		v := New(WithDiskEncryptionSetsClient(sets))
		args := &ClusterArgs{DiskEncryptionSet: strptr("cluster-des")}
		err := v.ValidateDiskEncryptionSet(ctx, args)
		checkErrorKind(t, err, &aroerrors.InvalidArgumentValueError{})
		if len(sets.calls) != 0 {
			t.Fatalf("malformed ID should not reach the management plane, got %v", sets.calls)
		}
	})

	t.Run("exists", func(t *testing.T) {
		sets := &fakeDiskEncryptionSets{}
		v := New(WithDiskEncryptionSetsClient(sets))
		args := &ClusterArgs{DiskEncryptionSet: &desID}
		if err := v.ValidateDiskEncryptionSet(ctx, args); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sets.calls) != 1 || sets.calls[0] != "des-rg/cluster-des" {
			t.Fatalf("lookups = %v, want [des-rg/cluster-des]", sets.calls)
		}
	})

	t.Run("not found", func(t *testing.T) {
		sets := &fakeDiskEncryptionSets{err: notFoundError()}
		v := New(WithDiskEncryptionSetsClient(sets))
		args := &ClusterArgs{DiskEncryptionSet: &desID}
		err := v.ValidateDiskEncryptionSet(ctx, args)
		checkErrorKind(t, err, &aroerrors.InvalidArgumentValueError{})
	})

	t.Run("remote failure also rejects the value", func(t *testing.T) {
		sets := &fakeDiskEncryptionSets{err: errors.New("forbidden")}
		v := New(WithDiskEncryptionSetsClient(sets))
		args := &ClusterArgs{DiskEncryptionSet: &desID}
		err := v.ValidateDiskEncryptionSet(ctx, args)
		checkErrorKind(t, err, &aroerrors.InvalidArgumentValueError{})
	})
}
