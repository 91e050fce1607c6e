package defaults

import "k8s.io/apimachinery/pkg/labels"

// Managed label.
const (
	// ManagedLabelKey is the label set by hive on every resource it manages.
	ManagedLabelKey = "hive.openshift.io/managed"

	// ManagedLabelValue is the value ManagedLabelKey carries on managed resources.
	ManagedLabelValue = "true"
)

// Kinds with special handling in the report.
const (
	// NamespaceKind is the canonical kind of namespaces; it is always present in a report.
	NamespaceKind = "Namespace"

	// ServiceAccountKind is the canonical kind the backplane redaction applies to.
	ServiceAccountKind = "ServiceAccount"

	// DefaultKind is the only kind scanned when a full scan is not requested.
	DefaultKind = "namespaces"
)

// Backplane redaction.
const (
	// BackplaneNamespace holds the per-session backplane service accounts.
	BackplaneNamespace = "openshift-backplane-srep"

	// BackplaneServiceAccountPlaceholder replaces the generated service account name.
	BackplaneServiceAccountPlaceholder = "UNIQUE_BACKPLANE_SERVICEACCOUNT_ID"
)

// Generated ConfigMap.
const (
	// ConfigMapName is the default name of the generated ConfigMap.
	ConfigMapName = "managed-namespaces"

	// ConfigMapNamespace is the default namespace of the generated ConfigMap.
	ConfigMapNamespace = "openshift-monitoring"

	// ConfigMapDataKey is the data key holding the serialized report.
	ConfigMapDataKey = "managed_namespaces.yaml"
)

// ClientBinary is the cluster client invoked when none is configured.
const ClientBinary = "oc"

// AdditionalManagedNamespaces lists namespaces that do not carry the managed
// label but are still managed by SRE-P. They are appended to every report.
var AdditionalManagedNamespaces = []string{
	"openshift-monitoring",
}

// ManagedSelector returns the label selector matching managed resources.
func ManagedSelector() labels.Selector {
	return labels.SelectorFromSet(labels.Set{ManagedLabelKey: ManagedLabelValue})
}
