package collector

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openshift/managed-resources/pkg/report"
)

func TestBackplaneServiceAccountID(t *testing.T) {
	tests := []struct {
		identity string
		want     string
	}{
		{identity: "system:serviceaccount:openshift-backplane-srep:abcd1234", want: "abcd1234"},
		{identity: "system:serviceaccount:openshift-backplane-srep:abcd1234\n", want: "abcd1234"},
		{identity: "kube:admin", want: "admin"},
		{identity: "plain-user", want: "plain-user"},
		{identity: "trailing:", want: ""},
		{identity: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.identity, func(t *testing.T) {
			assert.Equal(t, tt.want, BackplaneServiceAccountID(tt.identity))
		})
	}
}

func serviceAccounts(records ...report.Record) *report.Report {
	rep := report.New()
	rep.Set("ServiceAccount", records)
	return rep
}

func TestRedactBackplaneServiceAccount(t *testing.T) {
	session := report.Record{Namespace: "openshift-backplane-srep", Name: "abcd1234"}
	placeholder := report.Record{Namespace: "openshift-backplane-srep", Name: "UNIQUE_BACKPLANE_SERVICEACCOUNT_ID"}
	other := report.Record{Namespace: "openshift-backplane-srep", Name: "cee"}

	tests := []struct {
		name     string
		identity string
		input    []report.Record
		want     []report.Record
	}{
		{
			name:     "session account replaced",
			identity: "system:serviceaccount:openshift-backplane-srep:abcd1234",
			input:    []report.Record{other, session},
			want:     []report.Record{other, placeholder},
		},
		{
			name:     "only the first occurrence is replaced",
			identity: "system:serviceaccount:openshift-backplane-srep:abcd1234",
			input:    []report.Record{session, other, session},
			want:     []report.Record{other, session, placeholder},
		},
		{
			name:     "identity of another user",
			identity: "kube:admin",
			input:    []report.Record{other, session},
			want:     []report.Record{other, session},
		},
		{
			name:     "same name in another namespace",
			identity: "system:serviceaccount:openshift-backplane-srep:abcd1234",
			input:    []report.Record{{Namespace: "default", Name: "abcd1234"}},
			want:     []report.Record{{Namespace: "default", Name: "abcd1234"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeClient{identity: tt.identity}
			rep := serviceAccounts(tt.input...)

			require.NoError(t, RedactBackplaneServiceAccount(context.Background(), f, rep))
			assert.Equal(t, tt.want, rep.Get("ServiceAccount"))
			assert.Equal(t, []string{"whoami"}, f.calls)
		})
	}
}

func TestRedactBackplaneServiceAccount_NoServiceAccounts(t *testing.T) {
	f := &fakeClient{identityErr: errors.New("must not be called")}
	rep := report.New()
	rep.Set("Namespace", []report.Record{{Name: "a"}})

	require.NoError(t, RedactBackplaneServiceAccount(context.Background(), f, rep))
	assert.Empty(t, f.calls)
	assert.Equal(t, []string{"Namespace"}, rep.Kinds())
}

func TestRedactBackplaneServiceAccount_WhoAmIFailure(t *testing.T) {
	f := &fakeClient{identityErr: errors.New("exit status 1")}
	rep := serviceAccounts(report.Record{Namespace: "openshift-backplane-srep", Name: "abcd1234"})

	err := RedactBackplaneServiceAccount(context.Background(), f, rep)
	assert.Error(t, err)
}
