// Package collector gathers hive-managed resources from a cluster.
//
// # Overview
//
// Collection is a strictly sequential walk over resource kinds. For each kind
// the labeled query is issued through an oc.ClusterClient, the returned items
// are reduced to namespace/name records and stored in a report.Report keyed by
// the canonical kind of the first item.
//
// After the walk two fixed post-processing steps run:
//
//   - RedactBackplaneServiceAccount replaces the session specific backplane
//     service account with a placeholder.
//   - The namespaces in defaults.AdditionalManagedNamespaces are appended to
//     the Namespace entry, which is created when no namespace was collected.
//
// # Usage
//
//	c := collector.New(oc.New(), collector.WithProgress(os.Stdout))
//
//	kinds, err := c.Kinds(ctx, all)
//	if err != nil {
//	    return err
//	}
//
//	rep, err := c.Collect(ctx, kinds)
//
// # Metrics
//
// Query durations and outcomes are recorded on the default Prometheus
// registry and can be written out with the reporter's metrics file option.
package collector
