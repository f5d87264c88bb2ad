/*
Copyright © 2025 Microsoft Corporation
SPDX-License-Identifier: Apache-2.0
*/

package azure

import "testing"

const (
	testSubscription = "00000000-0000-0000-0000-000000000000"

	vnetID   = "/subscriptions/" + testSubscription + "/resourceGroups/net-rg/providers/Microsoft.Network/virtualNetworks/dev-vnet"
	subnetID = vnetID + "/subnets/master"
)

func TestIsResourceID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"full provider resource", vnetID, true},
		{"child resource", subnetID, true},
		{"bare name", "dev-vnet", false},
		{"empty", "", false},
		{"resource group path", "/subscriptions/" + testSubscription + "/resourceGroups/net-rg", false},
		{"subscription path", "/subscriptions/" + testSubscription, false},
		{"relative path", "resourceGroups/net-rg/providers/Microsoft.Network/virtualNetworks/dev-vnet", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsResourceID(tt.id); got != tt.want {
				t.Fatalf("IsResourceID(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestResourceID(t *testing.T) {
	got := ResourceID(testSubscription, "net-rg", NetworkNamespace, VirtualNetworksType, "dev-vnet")
	if got != vnetID {
		t.Fatalf("ResourceID() = %q, want %q", got, vnetID)
	}
}

func TestSubnetID(t *testing.T) {
	if got := SubnetID(vnetID, "master"); got != subnetID {
		t.Fatalf("SubnetID() = %q, want %q", got, subnetID)
	}
}

func TestParseChildResource(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		want    ChildResource
		wantErr bool
	}{
		{
			name: "top-level resource",
			id:   vnetID,
			want: ChildResource{
				SubscriptionID: testSubscription,
				ResourceGroup:  "net-rg",
				Namespace:      "Microsoft.Network",
				Type:           "virtualNetworks",
				Name:           "dev-vnet",
				ChildCount:     0,
			},
		},
		{
			name: "one child",
			id:   subnetID,
			want: ChildResource{
				SubscriptionID: testSubscription,
				ResourceGroup:  "net-rg",
				Namespace:      "Microsoft.Network",
				Type:           "virtualNetworks",
				Name:           "dev-vnet",
				ChildCount:     1,
				ChildType:      "subnets",
				ChildName:      "master",
			},
		},
		{
			name: "two children",
			id:   subnetID + "/deeper/leaf",
			want: ChildResource{
				SubscriptionID: testSubscription,
				ResourceGroup:  "net-rg",
				Namespace:      "Microsoft.Network",
				Type:           "virtualNetworks",
				Name:           "dev-vnet",
				ChildCount:     2,
				ChildType:      "deeper",
				ChildName:      "leaf",
			},
		},
		{
			name: "nested provider child",
			id:   vnetID + "/providers/Microsoft.Other/widgets/w1",
			want: ChildResource{
				SubscriptionID: testSubscription,
				ResourceGroup:  "net-rg",
				Namespace:      "Microsoft.Network",
				Type:           "virtualNetworks",
				Name:           "dev-vnet",
				ChildCount:     1,
				ChildNamespace: "Microsoft.Other",
				ChildType:      "widgets",
				ChildName:      "w1",
			},
		},
		{
			name:    "resource group path has no provider resource",
			id:      "/subscriptions/" + testSubscription + "/resourceGroups/net-rg",
			wantErr: true,
		},
		{
			name:    "malformed",
			id:      "not-an-id",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseChildResource(tt.id)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseChildResource(%q) expected error, got %+v", tt.id, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseChildResource(%q) unexpected error: %v", tt.id, err)
			}
			if *got != tt.want {
				t.Fatalf("ParseChildResource(%q) = %+v, want %+v", tt.id, *got, tt.want)
			}
		})
	}
}

func TestIsUserAssignedIdentity(t *testing.T) {
	identityID := ResourceID(testSubscription, "id-rg", ManagedIdentityNamespace, UserAssignedIdentitiesType, "aro-cluster")

	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"user assigned identity", identityID, true},
		{"wrong namespace", vnetID, false},
		{"wrong case", ResourceID(testSubscription, "id-rg", "microsoft.managedidentity", "userassignedidentities", "aro-cluster"), false},
		{"bare name", "aro-cluster", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUserAssignedIdentity(tt.id); got != tt.want {
				t.Fatalf("IsUserAssignedIdentity(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}
