/*
Copyright © 2025 Microsoft Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package cli implements the command-line interface for the aro tool.
//
// # Overview
//
// The aro CLI validates the arguments of Azure Red Hat OpenShift cluster
// create and update requests the way the resource provider will, then emits
// the canonicalized request document. It is designed to catch malformed,
// inconsistent or dangling arguments before any long-running operation
// starts.
//
// # Commands
//
// create - Validate a cluster create request:
//
//	aro create --resource-group my-rg --vnet my-vnet \
//	  --master-subnet master --worker-subnet worker
//
// Validates network topology, identity configuration, resource references,
// numeric bounds and version formats. Bare resource names are expanded to
// full ARM resource IDs in the emitted document.
//
// update - Validate a cluster update request:
//
//	aro update --resource-group my-rg --refresh-credentials
//
// Validates credential rotation and workload-identity changes; topology is
// immutable after creation.
//
// # Global Flags
//
//	--log-level    Logging verbosity: debug, info, warn, error (default: info)
//	--log-json     Output logs in JSON format
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Output Formats
//
// The request document is emitted as JSON (default) or YAML, to stdout or a
// file via --output. Secret-bearing arguments (client secret, pull secret)
// never appear in the document.
//
// # Environment Variables
//
//	AZURE_SUBSCRIPTION_ID  Subscription ID (fallback for --subscription)
//	LOG_LEVEL              Logging verbosity (fallback for --log-level)
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages:
//   - pkg/validate - Argument validation rule pipelines
//   - pkg/azure - Resource-ID handling and ARM client interfaces
//   - pkg/serializer - Request document output
//   - pkg/errors - Validation error kinds
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/deads2k/ARO-RP/pkg/cli.version=1.0.0'"
package cli
