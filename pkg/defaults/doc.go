// Package defaults provides centralized configuration constants for the
// managed-resources tool.
//
// This package defines the label that marks a resource as managed, the
// redaction values applied to the backplane service account, the namespaces
// that are always reported, and the defaults of the generated ConfigMap.
// Centralizing these values keeps the collector, the serializer and the CLI
// in agreement.
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/openshift/managed-resources/pkg/defaults"
//
//	selector := defaults.ManagedSelector()
package defaults
