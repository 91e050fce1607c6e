package collector

import (
	"context"

	"github.com/openshift/managed-resources/pkg/report"
)

// Interface gathers managed resources from a cluster.
// Implementations must query kinds sequentially, in the order given.
type Interface interface {
	// Kinds returns the kinds to scan. Without all, only namespaces are scanned.
	Kinds(ctx context.Context, all bool) ([]string, error)
	// Collect queries every kind and returns the post-processed report.
	Collect(ctx context.Context, kinds []string) (*report.Report, error)
}
