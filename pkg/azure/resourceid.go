/*
Copyright © 2025 Microsoft Corporation
SPDX-License-Identifier: Apache-2.0
*/

package azure

import (
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
)

// Provider namespaces and resource types used across validation.
const (
	NetworkNamespace           = "Microsoft.Network"
	VirtualNetworksType        = "virtualNetworks"
	SubnetsType                = "subnets"
	ManagedIdentityNamespace   = "Microsoft.ManagedIdentity"
	UserAssignedIdentitiesType = "userAssignedIdentities"

	// resourcesNamespace is the implicit provider of subscription and
	// resource-group scopes; an ID that resolves to it names no resource.
	resourcesNamespace = "Microsoft.Resources"
)

// IsResourceID reports whether s is a full ARM resource ID naming a
// provider resource. Bare names and subscription or resource-group scoped
// paths are not resource IDs.
func IsResourceID(s string) bool {
	id, err := arm.ParseResourceID(s)
	return err == nil && !strings.EqualFold(id.ResourceType.Namespace, resourcesNamespace)
}

// ResourceID constructs a full ARM resource ID from its parts.
func ResourceID(subscriptionID, resourceGroup, provider, resourceType, name string) string {
	return fmt.Sprintf("/subscriptions/%s/resourceGroups/%s/providers/%s/%s/%s",
		subscriptionID, resourceGroup, provider, resourceType, name)
}

// SubnetID constructs a subnet resource ID under the given virtual network.
func SubnetID(vnetID, name string) string {
	return vnetID + "/" + SubnetsType + "/" + name
}

// ChildResource is the decomposition of a resource ID into its top-level
// resource and child segments. ChildNamespace is set only when a child is
// declared under a nested provider differing from the top-level one.
type ChildResource struct {
	SubscriptionID string
	ResourceGroup  string
	Namespace      string
	Type           string
	Name           string
	ChildCount     int
	ChildNamespace string
	ChildType      string
	ChildName      string
}

// ParseChildResource decomposes a resource ID into its top-level resource
// and child segments. It fails when the ID does not name a provider
// resource (for example a bare resource-group path).
func ParseChildResource(id string) (*ChildResource, error) {
	rid, err := arm.ParseResourceID(id)
	if err != nil {
		return nil, err
	}

	// Walk from the leaf up to the top-level provider resource.
	var chain []*arm.ResourceID
	for cur := rid; cur != nil && !strings.EqualFold(cur.ResourceType.Namespace, resourcesNamespace); cur = cur.Parent {
		chain = append(chain, cur)
	}
	if len(chain) == 0 {
		return nil, fmt.Errorf("resource ID %q does not name a provider resource", id)
	}

	root := chain[len(chain)-1]
	cr := &ChildResource{
		SubscriptionID: rid.SubscriptionID,
		ResourceGroup:  rid.ResourceGroupName,
		Namespace:      root.ResourceType.Namespace,
		Type:           root.ResourceType.Type,
		Name:           root.Name,
		ChildCount:     len(chain) - 1,
	}
	if cr.ChildCount > 0 {
		leaf := chain[0]
		segments := strings.Split(leaf.ResourceType.Type, "/")
		cr.ChildType = segments[len(segments)-1]
		cr.ChildName = leaf.Name
		if !strings.EqualFold(leaf.ResourceType.Namespace, root.ResourceType.Namespace) {
			cr.ChildNamespace = leaf.ResourceType.Namespace
		}
	}
	return cr, nil
}

// IsUserAssignedIdentity reports whether id names a user-assigned managed
// identity. The provider namespace and type must match exactly.
func IsUserAssignedIdentity(id string) bool {
	rid, err := arm.ParseResourceID(id)
	return err == nil &&
		rid.ResourceType.Namespace == ManagedIdentityNamespace &&
		rid.ResourceType.Type == UserAssignedIdentitiesType
}
