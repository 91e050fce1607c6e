package reporter

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/labels"

	"github.com/openshift/managed-resources/pkg/oc"
	"github.com/openshift/managed-resources/pkg/report"
	"github.com/openshift/managed-resources/pkg/serializer"
)

type fakeClient struct {
	identityErr error
	lists       map[string]*unstructured.UnstructuredList
	calls       []string
}

func (f *fakeClient) WhoAmI(_ context.Context) (string, error) {
	f.calls = append(f.calls, "whoami")
	if f.identityErr != nil {
		return "", f.identityErr
	}
	return "system:serviceaccount:openshift-backplane-srep:abc123", nil
}

func (f *fakeClient) ListKinds(_ context.Context) ([]string, error) {
	f.calls = append(f.calls, "api-resources")
	return []string{"namespaces", "serviceaccounts"}, nil
}

func (f *fakeClient) ListLabeled(_ context.Context, kind string, _ labels.Selector) (*unstructured.UnstructuredList, error) {
	f.calls = append(f.calls, "get "+kind)
	list, ok := f.lists[kind]
	if !ok {
		return nil, oc.ErrNoData
	}
	return list, nil
}

func list(kind string, namespace string, names ...string) *unstructured.UnstructuredList {
	l := &unstructured.UnstructuredList{}
	for _, name := range names {
		u := unstructured.Unstructured{}
		u.SetKind(kind)
		u.SetAPIVersion("v1")
		u.SetName(name)
		if namespace != "" {
			u.SetNamespace(namespace)
		}
		l.Items = append(l.Items, u)
	}
	return l
}

type fakeCollector struct {
	calls int
}

func (f *fakeCollector) Kinds(_ context.Context, _ bool) ([]string, error) {
	f.calls++
	return nil, nil
}

func (f *fakeCollector) Collect(_ context.Context, _ []string) (*report.Report, error) {
	f.calls++
	return report.New(), nil
}

type captureSerializer struct {
	got *report.Report
}

func (c *captureSerializer) Serialize(_ context.Context, rep *report.Report) error {
	c.got = rep
	return nil
}

func TestReporter_NotLoggedIn(t *testing.T) {
	client := &fakeClient{identityErr: errors.New("exit status 1")}
	coll := &fakeCollector{}
	var progress bytes.Buffer
	path := filepath.Join(t.TempDir(), "out.yaml")

	before := testutil.ToFloat64(reportRunTotal.WithLabelValues("unauthenticated"))

	r := &Reporter{
		Client:    client,
		Collector: coll,
		Format:    serializer.FormatYAML,
		Path:      path,
		Progress:  &progress,
	}
	_, err := r.Run(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	assert.Equal(t, []string{"whoami"}, client.calls)
	assert.Zero(t, coll.calls, "nothing may be collected without a session")
	assert.Empty(t, progress.String())
	assert.NoFileExists(t, path)
	assert.Equal(t, before+1, testutil.ToFloat64(reportRunTotal.WithLabelValues("unauthenticated")))
}

func TestReporter_WritesYAML(t *testing.T) {
	client := &fakeClient{lists: map[string]*unstructured.UnstructuredList{
		"namespaces": list("Namespace", "", "openshift-config"),
	}}
	var progress bytes.Buffer
	path := filepath.Join(t.TempDir(), "out.yaml")

	r := &Reporter{
		Client:   client,
		Format:   serializer.FormatYAML,
		Path:     path,
		Progress: &progress,
	}
	rep, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"whoami", "get namespaces"}, client.calls)
	assert.Equal(t, []string{"Namespace"}, rep.Kinds())

	assert.Equal(t, introMessage+"\nCollecting namespaces...\n", progress.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	want := "Resources:\n" +
		"  Namespace:\n" +
		"  - name: openshift-config\n" +
		"  - name: openshift-monitoring\n"
	assert.Equal(t, want, string(data))
}

func TestReporter_AllWithConfigMap(t *testing.T) {
	client := &fakeClient{lists: map[string]*unstructured.UnstructuredList{
		"serviceaccounts": list("ServiceAccount", "openshift-backplane-srep", "abc123"),
	}}
	path := filepath.Join(t.TempDir(), "cm.yaml")

	r := &Reporter{
		Client:    client,
		All:       true,
		Format:    serializer.FormatConfigMap,
		Path:      path,
		ConfigMap: serializer.ConfigMapMeta{Name: "foo", Namespace: "bar"},
		Progress:  &bytes.Buffer{},
	}
	rep, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"whoami", "api-resources", "get namespaces", "get serviceaccounts", "whoami"}, client.calls)
	assert.Equal(t, []report.Record{{Namespace: "openshift-backplane-srep", Name: "UNIQUE_BACKPLANE_SERVICEACCOUNT_ID"}},
		rep.Get("ServiceAccount"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.True(t, strings.HasPrefix(out, "apiVersion: v1\nkind: ConfigMap\nmetadata:\n  name: foo\n  namespace: bar\n"), out)
	assert.Contains(t, out, "      - namespace: openshift-backplane-srep\n        name: UNIQUE_BACKPLANE_SERVICEACCOUNT_ID\n")
	assert.NotContains(t, out, "abc123")
}

func TestReporter_SerializerOverride(t *testing.T) {
	client := &fakeClient{}
	capture := &captureSerializer{}

	r := &Reporter{
		Client:     client,
		Serializer: capture,
		Path:       filepath.Join(t.TempDir(), "unused.yaml"),
		Progress:   &bytes.Buffer{},
	}
	rep, err := r.Run(context.Background())
	require.NoError(t, err)

	require.NotNil(t, capture.got)
	assert.Same(t, rep, capture.got)
	assert.NoFileExists(t, r.Path)
}

func TestReporter_WriteFailure(t *testing.T) {
	r := &Reporter{
		Client:   &fakeClient{},
		Format:   serializer.FormatYAML,
		Path:     filepath.Join(t.TempDir(), "missing", "out.yaml"),
		Progress: &bytes.Buffer{},
	}
	_, err := r.Run(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotLoggedIn)
}

func TestReporter_RequiresClient(t *testing.T) {
	_, err := (&Reporter{}).Run(context.Background())
	assert.Error(t, err)
}

func TestReporter_MetricsFile(t *testing.T) {
	metrics := filepath.Join(t.TempDir(), "metrics.prom")

	r := &Reporter{
		Client:      &fakeClient{},
		Serializer:  &captureSerializer{},
		Progress:    &bytes.Buffer{},
		MetricsFile: metrics,
	}
	_, err := r.Run(context.Background())
	require.NoError(t, err)

	data, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(data), "managed_resources_report_total")
	assert.Contains(t, string(data), "managed_resources_report_kinds 1")
}
