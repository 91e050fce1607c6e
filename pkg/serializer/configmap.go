package serializer

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"k8s.io/apimachinery/pkg/util/validation"

	"github.com/openshift/managed-resources/pkg/defaults"
)

// ConfigMapIndent is the margin the report is indented by inside the ConfigMap data block.
const ConfigMapIndent = "    "

//go:embed templates/configmap.yaml.tmpl
var configMapTemplate string

var configMap = template.Must(template.New("configmap").Parse(configMapTemplate))

// ConfigMapMeta names the generated ConfigMap.
type ConfigMapMeta struct {
	Name      string
	Namespace string
}

// DefaultConfigMapMeta returns the name and namespace used when none are given.
func DefaultConfigMapMeta() ConfigMapMeta {
	return ConfigMapMeta{
		Name:      defaults.ConfigMapName,
		Namespace: defaults.ConfigMapNamespace,
	}
}

// Validate checks that the name and namespace are valid object names.
// Both are substituted verbatim into the manifest.
func (m ConfigMapMeta) Validate() error {
	if errs := validation.IsDNS1123Subdomain(m.Name); len(errs) > 0 {
		return fmt.Errorf("invalid ConfigMap name %q: %s", m.Name, strings.Join(errs, "; "))
	}
	if errs := validation.IsDNS1123Label(m.Namespace); len(errs) > 0 {
		return fmt.Errorf("invalid ConfigMap namespace %q: %s", m.Namespace, strings.Join(errs, "; "))
	}
	return nil
}

// WrapConfigMap renders body as the single data entry of a ConfigMap manifest.
// Every line of body is indented by ConfigMapIndent under a block literal.
func WrapConfigMap(meta ConfigMapMeta, body []byte) ([]byte, error) {
	if err := meta.Validate(); err != nil {
		return nil, err
	}

	data := map[string]interface{}{
		"Name":      meta.Name,
		"Namespace": meta.Namespace,
		"DataKey":   defaults.ConfigMapDataKey,
		"Body":      strings.TrimRight(Indent(string(body), ConfigMapIndent), "\n"),
	}

	var buf bytes.Buffer
	if err := configMap.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute configmap template: %w", err)
	}
	return buf.Bytes(), nil
}

// Indent adds prefix to the beginning of every line of text that is not
// whitespace only. Line endings are preserved.
func Indent(text, prefix string) string {
	var b strings.Builder
	b.Grow(len(text) + strings.Count(text, "\n")*len(prefix))
	for _, line := range strings.SplitAfter(text, "\n") {
		if strings.TrimSpace(line) != "" {
			b.WriteString(prefix)
		}
		b.WriteString(line)
	}
	return b.String()
}
