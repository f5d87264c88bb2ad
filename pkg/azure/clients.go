/*
Copyright © 2025 Microsoft Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package azure provides the management-plane collaborators used by
// argument validation: resource-ID decomposition and construction, and
// thin client interfaces over the ARM SDK for the handful of lookups the
// rules perform. Each lookup is attempted exactly once; retry and timeout
// policy belongs to the underlying SDK pipeline.
package azure

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v6"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
)

// ResourceGroupsClient checks resource-group existence.
type ResourceGroupsClient interface {
	CheckExistence(ctx context.Context, name string) (bool, error)
}

// SubnetsClient fetches a subnet within a virtual network.
type SubnetsClient interface {
	Get(ctx context.Context, resourceGroup, virtualNetwork, subnet string) error
}

// DiskEncryptionSetsClient fetches a disk encryption set.
type DiskEncryptionSetsClient interface {
	Get(ctx context.Context, resourceGroup, name string) error
}

// Clients bundles the management clients validation needs.
type Clients struct {
	ResourceGroups     ResourceGroupsClient
	Subnets            SubnetsClient
	DiskEncryptionSets DiskEncryptionSetsClient
}

// NewClients constructs ARM-backed management clients for the given
// subscription.
func NewClients(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (*Clients, error) {
	resourceGroups, err := armresources.NewResourceGroupsClient(subscriptionID, credential, options)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource groups client: %w", err)
	}
	subnets, err := armnetwork.NewSubnetsClient(subscriptionID, credential, options)
	if err != nil {
		return nil, fmt.Errorf("failed to create subnets client: %w", err)
	}
	diskEncryptionSets, err := armcompute.NewDiskEncryptionSetsClient(subscriptionID, credential, options)
	if err != nil {
		return nil, fmt.Errorf("failed to create disk encryption sets client: %w", err)
	}
	return &Clients{
		ResourceGroups:     &armResourceGroups{client: resourceGroups},
		Subnets:            &armSubnets{client: subnets},
		DiskEncryptionSets: &armDiskEncryptionSets{client: diskEncryptionSets},
	}, nil
}

// IsNotFound reports whether err is a management-plane 404. A not-found
// outcome is user input error; everything else from the management plane
// is unexpected.
func IsNotFound(err error) bool {
	var respErr *azcore.ResponseError
	return errors.As(err, &respErr) && respErr.StatusCode == http.StatusNotFound
}

type armResourceGroups struct {
	client *armresources.ResourceGroupsClient
}

func (c *armResourceGroups) CheckExistence(ctx context.Context, name string) (bool, error) {
	resp, err := c.client.CheckExistence(ctx, name, nil)
	if err != nil {
		return false, err
	}
	return resp.Success, nil
}

type armSubnets struct {
	client *armnetwork.SubnetsClient
}

func (c *armSubnets) Get(ctx context.Context, resourceGroup, virtualNetwork, subnet string) error {
	_, err := c.client.Get(ctx, resourceGroup, virtualNetwork, subnet, nil)
	return err
}

type armDiskEncryptionSets struct {
	client *armcompute.DiskEncryptionSetsClient
}

func (c *armDiskEncryptionSets) Get(ctx context.Context, resourceGroup, name string) error {
	_, err := c.client.Get(ctx, resourceGroup, name, nil)
	return err
}
