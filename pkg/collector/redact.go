package collector

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/openshift/managed-resources/pkg/defaults"
	"github.com/openshift/managed-resources/pkg/oc"
	"github.com/openshift/managed-resources/pkg/report"
)

// BackplaneServiceAccountID returns the part of identity after the last colon.
// For "system:serviceaccount:openshift-backplane-srep:abcd1234" that is "abcd1234".
func BackplaneServiceAccountID(identity string) string {
	identity = strings.TrimSpace(identity)
	if i := strings.LastIndex(identity, ":"); i >= 0 {
		return identity[i+1:]
	}
	return identity
}

// RedactBackplaneServiceAccount replaces the generated service account of the
// current backplane session with a fixed placeholder, so the report does not
// depend on who generated it. Reports without service accounts are left
// untouched and no identity lookup is made.
func RedactBackplaneServiceAccount(ctx context.Context, client oc.ClusterClient, rep *report.Report) error {
	if !rep.Has(defaults.ServiceAccountKind) {
		return nil
	}

	identity, err := client.WhoAmI(ctx)
	if err != nil {
		return fmt.Errorf("failed to get backplane service account: %w", err)
	}

	session := report.Record{
		Namespace: defaults.BackplaneNamespace,
		Name:      BackplaneServiceAccountID(identity),
	}
	if !rep.Remove(defaults.ServiceAccountKind, session) {
		slog.Debug("no backplane service account to redact", "identity", identity)
		return nil
	}

	rep.Append(defaults.ServiceAccountKind, report.Record{
		Namespace: defaults.BackplaneNamespace,
		Name:      defaults.BackplaneServiceAccountPlaceholder,
	})
	redactionTotal.Inc()

	slog.Debug("redacted backplane service account", "name", session.Name)
	return nil
}
