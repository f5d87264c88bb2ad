/*
Copyright © 2025 Microsoft Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validate

import (
	"regexp"

	aroerrors "github.com/deads2k/ARO-RP/pkg/errors"
)

// Bounds on numeric cluster parameters.
const (
	minWorkerCount                        = 3
	minWorkerVMDiskSizeGB                 = 128
	minLoadBalancerManagedOutboundIPCount = 1
	maxLoadBalancerManagedOutboundIPCount = 20
)

var (
	// versionRegexp matches an OpenShift release version, major 4 or above.
	versionRegexp = regexp.MustCompile(`^[4-9]\.[0-9]{1,2}\.[0-9]{1,2}$`)

	// upgradeableToRegexp matches an upgrade target; minimum minor is 14.
	upgradeableToRegexp = regexp.MustCompile(`^[4-9]\.(1[4-9]|[1-9][0-9])\.[0-9]{1,2}$`)
)

// ValidateWorkerCount checks the worker node count against the supported
// minimum.
func ValidateWorkerCount(args *ClusterArgs) error {
	if args.WorkerCount == nil {
		return nil
	}
	if *args.WorkerCount < minWorkerCount {
		return aroerrors.InvalidArgumentValuef("Invalid --worker-count '%d': count must be at least %d.", *args.WorkerCount, minWorkerCount)
	}
	return nil
}

// ValidateWorkerVMDiskSizeGB checks the worker OS disk size against the
// supported minimum.
func ValidateWorkerVMDiskSizeGB(args *ClusterArgs) error {
	if args.WorkerVMDiskSizeGB == nil {
		return nil
	}
	if *args.WorkerVMDiskSizeGB < minWorkerVMDiskSizeGB {
		return aroerrors.InvalidArgumentValuef("Invalid --worker-vm-disk-size-gb '%d': size must be at least %d.", *args.WorkerVMDiskSizeGB, minWorkerVMDiskSizeGB)
	}
	return nil
}

// ValidateLoadBalancerManagedOutboundIPCount checks the managed outbound IP
// count against its inclusive range.
func ValidateLoadBalancerManagedOutboundIPCount(args *ClusterArgs) error {
	if args.LoadBalancerManagedOutboundIPCount == nil {
		return nil
	}
	count := *args.LoadBalancerManagedOutboundIPCount
	if count < minLoadBalancerManagedOutboundIPCount || count > maxLoadBalancerManagedOutboundIPCount {
		return aroerrors.InvalidArgumentValuef("Invalid --load-balancer-managed-outbound-ip-count '%d': count must be between %d and %d.",
			count, minLoadBalancerManagedOutboundIPCount, maxLoadBalancerManagedOutboundIPCount)
	}
	return nil
}

// ValidateVersionFormat checks the requested install version string.
func ValidateVersionFormat(args *ClusterArgs) error {
	if args.Version == nil {
		return nil
	}
	if !versionRegexp.MatchString(*args.Version) {
		return aroerrors.InvalidArgumentValuef("Invalid --version '%s'.", *args.Version)
	}
	return nil
}

// ValidateUpgradeableToFormat checks the requested upgrade target version
// string.
func ValidateUpgradeableToFormat(args *ClusterArgs) error {
	if args.UpgradeableTo == nil {
		return nil
	}
	if !upgradeableToRegexp.MatchString(*args.UpgradeableTo) {
		return aroerrors.InvalidArgumentValuef("Invalid --upgradeable-to '%s'.", *args.UpgradeableTo)
	}
	return nil
}
