/*
Copyright © 2025 Microsoft Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validate

import (
	"encoding/json"
	"log/slog"
	"os"
	"strings"

	aroerrors "github.com/deads2k/ARO-RP/pkg/errors"
)

// pullSecretWarning is logged once when no pull secret is provided; the
// cluster still installs but without Red Hat content entitlements.
const pullSecretWarning = "No --pull-secret provided: cluster will not include samples or operators from Red Hat or from certified partners."

// ValidatePullSecret checks the Red Hat pull secret. The value may be the
// secret itself or a path to a file containing it; either way it must be a
// JSON object. The secret value never appears in the error.
func ValidatePullSecret(args *ClusterArgs) error {
	if args.PullSecret == nil {
		slog.Warn(pullSecretWarning)
		return nil
	}

	raw := *args.PullSecret
	if info, err := os.Stat(raw); err == nil && info.Mode().IsRegular() {
		contents, err := os.ReadFile(raw)
		if err != nil {
			return aroerrors.WrapInvalidArgumentValue(err, "Invalid --pull-secret.")
		}
		raw = strings.TrimRight(string(contents), "\n")
	}

	var secret map[string]any
	if err := json.Unmarshal([]byte(raw), &secret); err != nil || secret == nil {
		return aroerrors.InvalidArgumentValuef("Invalid --pull-secret.")
	}

	args.PullSecret = &raw
	return nil
}
