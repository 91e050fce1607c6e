// Package reporter produces the managed resource report in one pass.
//
// # Overview
//
// Reporter.Run is the whole program flow:
//
//  1. Identity check: the cluster client must have a logged-in session,
//     otherwise ErrNotLoggedIn is returned before any other call.
//  2. Kind discovery: every kind when All is set, only namespaces otherwise.
//  3. Collection, redaction and the static namespace append (see collector).
//  4. Emission: the report is written as YAML or wrapped in a ConfigMap.
//
// Every step is sequential and blocking. Failures abort the run; a kind with
// no managed resources is not a failure.
//
// # Usage
//
//	r := &reporter.Reporter{
//	    Client: oc.New(),
//	    All:    true,
//	    Format: serializer.FormatConfigMap,
//	    Path:   "managed.yaml",
//	    ConfigMap: serializer.ConfigMapMeta{
//	        Name:      "managed-namespaces",
//	        Namespace: "openshift-monitoring",
//	    },
//	}
//	if _, err := r.Run(ctx); err != nil {
//	    return err
//	}
package reporter
