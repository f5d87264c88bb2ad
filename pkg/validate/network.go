/*
Copyright © 2025 Microsoft Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validate

import (
	"fmt"
	"net"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	aroerrors "github.com/deads2k/ARO-RP/pkg/errors"
)

// Visibility of the API server and default ingress controller.
const (
	VisibilityPrivate = "Private"
	VisibilityPublic  = "Public"
)

// Egress routing strategies.
const (
	OutboundTypeLoadbalancer       = "Loadbalancer"
	OutboundTypeUserDefinedRouting = "UserDefinedRouting"
)

// domainRegexp matches a sequence of dot-separated DNS labels, each 1-63
// characters of lowercase alphanumerics with internal hyphens.
var domainRegexp = regexp.MustCompile(`^([a-z0-9]|[a-z0-9][-a-z0-9]{0,61}[a-z0-9])(\.([a-z0-9]|[a-z0-9][-a-z0-9]{0,61}[a-z0-9]))*$`)

var titleCaser = cases.Title(language.English)

// ValidateCIDR checks that the value of the named flag, if present, is an
// IPv4 network in CIDR notation. Host bits set below the mask are
// rejected.
func ValidateCIDR(flag string, cidr *string) error {
	if cidr == nil {
		return nil
	}
	ip, network, err := net.ParseCIDR(*cidr)
	if err != nil || ip.To4() == nil || !ip.Equal(network.IP) {
		return aroerrors.InvalidArgumentValuef("Invalid --%s '%s'.", flag, *cidr)
	}
	return nil
}

// ValidateDomain checks that the cluster domain, if present, is a valid
// DNS-label sequence.
func ValidateDomain(args *ClusterArgs) error {
	if args.Domain == nil {
		return nil
	}
	if !domainRegexp.MatchString(*args.Domain) {
		return aroerrors.InvalidArgumentValuef("Invalid --domain '%s'.", *args.Domain)
	}
	return nil
}

// ValidateVisibility checks the named visibility flag and canonicalizes
// its value in place to "Private" or "Public".
func ValidateVisibility(flag string, visibility *string) error {
	if visibility == nil {
		return nil
	}
	normalized := titleCaser.String(strings.ToLower(*visibility))
	if normalized != VisibilityPrivate && normalized != VisibilityPublic {
		msg := fmt.Sprintf("Invalid --%s '%s'.", flag, *visibility)
		if suggestion, ok := closestTerm(*visibility, []string{VisibilityPrivate, VisibilityPublic}); ok {
			msg += fmt.Sprintf(" Did you mean '%s'?", suggestion)
		}
		return aroerrors.InvalidArgumentValuef("%s", msg)
	}
	*visibility = normalized
	return nil
}

// ValidateOutboundType checks the egress routing strategy. UserDefinedRouting
// requires both the API server and ingress visibilities to be explicitly
// Private; an unset visibility defaults to Public and disqualifies it.
func ValidateOutboundType(args *ClusterArgs) error {
	if args.OutboundType != nil &&
		*args.OutboundType != OutboundTypeUserDefinedRouting &&
		*args.OutboundType != OutboundTypeLoadbalancer {
		msg := fmt.Sprintf("Invalid --outbound-type '%s': must be %q or %q.",
			*args.OutboundType, OutboundTypeUserDefinedRouting, OutboundTypeLoadbalancer)
		if suggestion, ok := closestTerm(*args.OutboundType, []string{OutboundTypeUserDefinedRouting, OutboundTypeLoadbalancer}); ok {
			msg += fmt.Sprintf(" Did you mean '%s'?", suggestion)
		}
		return aroerrors.InvalidArgumentValuef("%s", msg)
	}

	if args.OutboundType != nil && *args.OutboundType == OutboundTypeUserDefinedRouting &&
		(isVisibilityPublic(args.IngressVisibility) || isVisibilityPublic(args.APIServerVisibility)) {
		return aroerrors.InvalidArgumentValuef("Invalid --outbound-type: cannot use UserDefinedRouting when " +
			"either --apiserver-visibility or --ingress-visibility is set to Public or not defined")
	}
	return nil
}

func isVisibilityPublic(visibility *string) bool {
	return visibility == nil || *visibility == VisibilityPublic
}
