/*
Copyright © 2025 Microsoft Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package validate checks the argument namespace of a cluster create or
// update request before anything is sent to the resource provider.
//
// # Overview
//
// Validation is organized as an ordered pipeline of named rules evaluated
// against a ClusterArgs value. The pipeline fails fast: the first rule that
// rejects its input stops the run, and the returned error is one of the
// kinds defined in pkg/errors. Rules both check and canonicalize — bare
// resource names are rewritten in place into full ARM resource IDs, and
// enum values are normalized to their canonical spelling — so a successful
// run leaves ClusterArgs ready to serialize into a request document.
//
// # Rule Sets
//
// CreateRules returns the pipeline for cluster creation, covering network
// topology, identity configuration, resource references, numeric bounds and
// version formats. UpdateRules returns the smaller pipeline for cluster
// update, covering credential rotation and workload-identity changes;
// topology is immutable after creation and is not re-validated.
//
// # Remote Lookups
//
// A handful of rules confirm that referenced resources exist (subnets, disk
// encryption sets) or do not exist (the managed cluster resource group).
// These use the client interfaces in pkg/azure and distinguish a remote
// "not found", which is user input error, from transport or authorization
// failures, which surface as InternalError.
//
// # Usage
//
//	v := validate.New(
//	    validate.WithSubscriptionID(subscriptionID),
//	    validate.WithClients(clients),
//	)
//	if err := v.Run(ctx, v.CreateRules(), args); err != nil {
//	    return err
//	}
package validate
