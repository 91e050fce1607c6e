// Package cli implements the command-line interface for the managed-resources tool.
//
// # Overview
//
// managed-resources lists every resource of a cluster labeled
// hive.openshift.io/managed=true, grouped by kind, and writes the listing as
// plain YAML or wrapped in a ConfigMap manifest. It is a one-shot command for
// SREs: it runs once against the cluster the local oc client is logged into,
// writes a file and exits.
//
// # Usage
//
//	managed-resources --path FILE --output yaml|configmap [--all]
//	    [--namespace NS] [--name NAME]
//
// Plain listing of managed namespaces:
//
//	managed-resources -p managed.yaml -o yaml
//
// ConfigMap listing every managed resource kind:
//
//	managed-resources -p cm.yaml -o configmap --all -ns openshift-monitoring --name managed-namespaces
//
// # Flags
//
//	--path, -p       Output file path ("-" for stdout), required
//	--output, -o     Output format: yaml, configmap, required
//	--all            Scan every resource kind instead of only namespaces
//	--namespace, -ns ConfigMap namespace (default: openshift-monitoring)
//	--name           ConfigMap name (default: managed-namespaces)
//	--kubeconfig     Kubeconfig passed to oc (env: KUBECONFIG)
//	--oc             Cluster client binary (default: oc)
//	--qps            Maximum kind queries per second (default: unlimited)
//	--metrics-file   Write run metrics in Prometheus text format
//	--debug          Enable debug logging
//	--log-json       Output logs in JSON format
//	--help, -h       Show command help
//	--version, -v    Show version information
//
// # Output
//
// YAML:
//
//	Resources:
//	  Namespace:
//	  - name: openshift-config
//	  - name: openshift-monitoring
//
// ConfigMap: the YAML above embedded under data.managed_namespaces.yaml of a
// v1 ConfigMap named by --name in --namespace.
//
// # Environment Variables
//
//	LOG_LEVEL   Set logging verbosity (debug, info, warn, error)
//	KUBECONFIG  Path to kubeconfig file
//
// # Exit Codes
//
//	0  Success
//	1  General error (not logged in, discovery, parse or write failure)
//	2  Context canceled or timeout
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized packages:
//   - pkg/reporter - Identity check and run orchestration
//   - pkg/collector - Kind discovery, collection and redaction
//   - pkg/oc - oc command execution
//   - pkg/serializer - YAML and ConfigMap output
//   - pkg/logging - Structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/openshift/managed-resources/pkg/cli.version=1.0.0'"
package cli
