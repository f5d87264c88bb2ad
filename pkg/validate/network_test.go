/*
Copyright © 2025 Microsoft Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validate

import (
	"errors"
	"strings"
	"testing"

	aroerrors "github.com/deads2k/ARO-RP/pkg/errors"
)

func strptr(s string) *string { return &s }

func int32ptr(i int32) *int32 { return &i }

func boolptr(b bool) *bool { return &b }

func TestValidateCIDR(t *testing.T) {
	tests := []struct {
		name    string
		cidr    *string
		wantErr bool
	}{
		{"absent", nil, false},
		{"valid", strptr("10.128.0.0/14"), false},
		{"valid single host", strptr("192.168.1.0/24"), false},
		{"host bits set", strptr("10.128.0.1/14"), true},
		{"not a cidr", strptr("10.128.0.0"), true},
		{"ipv6", strptr("fd00::/48"), true},
		{"garbage", strptr("banana"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCIDR("pod-cidr", tt.cidr)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateCIDR() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var invalid *aroerrors.InvalidArgumentValueError
				if !errors.As(err, &invalid) {
					t.Fatalf("ValidateCIDR() error kind = %T, want InvalidArgumentValueError", err)
				}
			}
		})
	}
}

func TestValidateDomain(t *testing.T) {
	tests := []struct {
		name    string
		domain  *string
		wantErr bool
	}{
		{"absent", nil, false},
		{"single label", strptr("cluster"), false},
		{"multi label", strptr("my-cluster.example.com"), false},
		{"digits", strptr("c1.example2.io"), false},
		{"uppercase", strptr("Cluster.example.com"), true},
		{"leading hyphen", strptr("-cluster.example.com"), true},
		{"trailing dot", strptr("cluster."), true},
		{"empty label", strptr("cluster..example"), true},
		{"label too long", strptr(strings.Repeat("a", 64) + ".example"), true},
		{"label at limit", strptr(strings.Repeat("a", 63) + ".example"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := &ClusterArgs{Domain: tt.domain}
			err := ValidateDomain(args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateDomain() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateVisibility(t *testing.T) {
	tests := []struct {
		name    string
		value   *string
		want    string
		wantErr bool
	}{
		{"absent", nil, "", false},
		{"canonical private", strptr("Private"), VisibilityPrivate, false},
		{"canonical public", strptr("Public"), VisibilityPublic, false},
		{"lowercase", strptr("private"), VisibilityPrivate, false},
		{"uppercase", strptr("PUBLIC"), VisibilityPublic, false},
		{"mixed case", strptr("pRiVaTe"), VisibilityPrivate, false},
		{"unknown", strptr("internal"), "", true},
		{"empty", strptr(""), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVisibility("apiserver-visibility", tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateVisibility() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && tt.value != nil && *tt.value != tt.want {
				t.Fatalf("ValidateVisibility() canonicalized to %q, want %q", *tt.value, tt.want)
			}
		})
	}
}

func TestValidateVisibilitySuggestion(t *testing.T) {
	value := strptr("Pubic")
	err := ValidateVisibility("ingress-visibility", value)
	if err == nil {
		t.Fatal("ValidateVisibility() expected error for near-miss value")
	}
	if !strings.Contains(err.Error(), "Did you mean 'Public'?") {
		t.Fatalf("ValidateVisibility() error %q should carry a suggestion", err)
	}
}

func TestValidateOutboundType(t *testing.T) {
	tests := []struct {
		name      string
		outbound  *string
		apiserver *string
		ingress   *string
		wantErr   bool
	}{
		{"absent", nil, nil, nil, false},
		{"loadbalancer", strptr(OutboundTypeLoadbalancer), nil, nil, false},
		{"udr both private", strptr(OutboundTypeUserDefinedRouting), strptr(VisibilityPrivate), strptr(VisibilityPrivate), false},
		{"udr apiserver public", strptr(OutboundTypeUserDefinedRouting), strptr(VisibilityPublic), strptr(VisibilityPrivate), true},
		{"udr ingress public", strptr(OutboundTypeUserDefinedRouting), strptr(VisibilityPrivate), strptr(VisibilityPublic), true},
		{"udr visibilities unset", strptr(OutboundTypeUserDefinedRouting), nil, nil, true},
		{"unknown value", strptr("NatGateway"), nil, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := &ClusterArgs{
				OutboundType:        tt.outbound,
				APIServerVisibility: tt.apiserver,
				IngressVisibility:   tt.ingress,
			}
			err := ValidateOutboundType(args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateOutboundType() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateOutboundTypeSuggestion(t *testing.T) {
	args := &ClusterArgs{OutboundType: strptr("loadbalancer")}
	err := ValidateOutboundType(args)
	if err == nil {
		t.Fatal("ValidateOutboundType() expected error for non-canonical spelling")
	}
	if !strings.Contains(err.Error(), "Did you mean 'Loadbalancer'?") {
		t.Fatalf("ValidateOutboundType() error %q should carry a suggestion", err)
	}
}
