// Package oc wraps the pre-authenticated cluster command line client.
//
// The tool never talks to the API server itself. Every cluster interaction is
// an invocation of the client binary (oc by default) through the
// ClusterClient interface, so collection logic can be exercised against a
// scripted executor in tests.
//
// Three calls are used:
//
//	oc whoami
//	oc api-resources -o name
//	oc get --ignore-not-found <kind> -A -o json -l <selector>
//
// A kind query that exits non-zero or prints nothing yields ErrNoData. Callers
// treat that as "no managed resources of this kind", distinct from a
// successful but malformed response.
package oc
