/*
Copyright © 2025 Microsoft Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validate

// ClusterArgs is the mutable argument namespace for a cluster create or
// update invocation. Optional fields are pointers; nil means the flag was
// not provided. Several rules canonicalize fields in place, rewriting bare
// resource names into full ARM resource IDs.
//
// Secret-bearing fields are excluded from the emitted request document.
type ClusterArgs struct {
	ResourceGroupName     string  `json:"resourceGroupName" yaml:"resourceGroupName"`
	VnetResourceGroupName string  `json:"vnetResourceGroupName,omitempty" yaml:"vnetResourceGroupName,omitempty"`
	Vnet                  *string `json:"vnet,omitempty" yaml:"vnet,omitempty"`
	MasterSubnet          *string `json:"masterSubnet,omitempty" yaml:"masterSubnet,omitempty"`
	WorkerSubnet          *string `json:"workerSubnet,omitempty" yaml:"workerSubnet,omitempty"`

	PodCIDR     *string `json:"podCidr,omitempty" yaml:"podCidr,omitempty"`
	ServiceCIDR *string `json:"serviceCidr,omitempty" yaml:"serviceCidr,omitempty"`

	ClientID     *string `json:"clientId,omitempty" yaml:"clientId,omitempty"`
	ClientSecret *string `json:"-" yaml:"-"`

	ClusterResourceGroup *string `json:"clusterResourceGroup,omitempty" yaml:"clusterResourceGroup,omitempty"`
	DiskEncryptionSet    *string `json:"diskEncryptionSet,omitempty" yaml:"diskEncryptionSet,omitempty"`
	Domain               *string `json:"domain,omitempty" yaml:"domain,omitempty"`
	PullSecret           *string `json:"-" yaml:"-"`

	OutboundType        *string `json:"outboundType,omitempty" yaml:"outboundType,omitempty"`
	APIServerVisibility *string `json:"apiserverVisibility,omitempty" yaml:"apiserverVisibility,omitempty"`
	IngressVisibility   *string `json:"ingressVisibility,omitempty" yaml:"ingressVisibility,omitempty"`

	WorkerCount                        *int32 `json:"workerCount,omitempty" yaml:"workerCount,omitempty"`
	WorkerVMDiskSizeGB                 *int32 `json:"workerVmDiskSizeGb,omitempty" yaml:"workerVmDiskSizeGb,omitempty"`
	LoadBalancerManagedOutboundIPCount *int32 `json:"loadBalancerManagedOutboundIpCount,omitempty" yaml:"loadBalancerManagedOutboundIpCount,omitempty"`

	EnableManagedIdentity      bool                       `json:"enableManagedIdentity,omitempty" yaml:"enableManagedIdentity,omitempty"`
	ClusterIdentity            *string                    `json:"clusterIdentity,omitempty" yaml:"clusterIdentity,omitempty"`
	PlatformWorkloadIdentities []PlatformWorkloadIdentity `json:"platformWorkloadIdentities,omitempty" yaml:"platformWorkloadIdentities,omitempty"`

	Version       *string `json:"version,omitempty" yaml:"version,omitempty"`
	UpgradeableTo *string `json:"upgradeableTo,omitempty" yaml:"upgradeableTo,omitempty"`

	RefreshClusterCredentials bool  `json:"refreshClusterCredentials,omitempty" yaml:"refreshClusterCredentials,omitempty"`
	DeleteIdentities          *bool `json:"deleteIdentities,omitempty" yaml:"deleteIdentities,omitempty"`
	NoWait                    bool  `json:"noWait,omitempty" yaml:"noWait,omitempty"`
}

// PlatformWorkloadIdentity names a managed identity assigned to a specific
// in-cluster operator. ResourceID may arrive as a bare identity name and is
// canonicalized to a full resource ID during validation.
type PlatformWorkloadIdentity struct {
	Name       string `json:"name" yaml:"name"`
	ResourceID string `json:"resourceId" yaml:"resourceId"`
}

// SubnetKey selects which subnet field a parameterized rule operates on.
// Its value is the flag name used in error messages.
type SubnetKey string

const (
	MasterSubnetKey SubnetKey = "master-subnet"
	WorkerSubnetKey SubnetKey = "worker-subnet"
)

func (a *ClusterArgs) subnet(key SubnetKey) *string {
	if key == WorkerSubnetKey {
		return a.WorkerSubnet
	}
	return a.MasterSubnet
}

func (a *ClusterArgs) setSubnet(key SubnetKey, id string) {
	if key == WorkerSubnetKey {
		a.WorkerSubnet = &id
		return
	}
	a.MasterSubnet = &id
}
