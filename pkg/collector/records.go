package collector

import (
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"

	"github.com/openshift/managed-resources/pkg/report"
)

// RecordsFromList reduces list to namespace/name records.
// The returned kind is the first item's own kind, which is the canonical
// spelling regardless of how the kind was requested. An empty list yields an
// empty kind and no records.
func RecordsFromList(list *unstructured.UnstructuredList) (string, []report.Record) {
	if list == nil || len(list.Items) == 0 {
		return "", nil
	}

	records := make([]report.Record, 0, len(list.Items))
	for _, item := range list.Items {
		records = append(records, report.Record{
			Namespace: item.GetNamespace(),
			Name:      item.GetName(),
		})
	}

	return list.Items[0].GetKind(), records
}
