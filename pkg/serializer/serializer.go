package serializer

import (
	"bytes"
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/openshift/managed-resources/pkg/report"
)

// Serializer writes a report to its destination.
type Serializer interface {
	Serialize(ctx context.Context, rep *report.Report) error
}

// Closer releases the destination of a Serializer.
type Closer interface {
	Close() error
}

// yamlIndent is the indentation of the report listing.
const yamlIndent = 2

// Marshal renders rep as YAML. Kinds appear in the order they were collected,
// so equal reports always produce identical bytes. Record sequences are written
// indentless, with the dash at the indentation of their kind:
//
//	Resources:
//	  Namespace:
//	  - name: openshift-monitoring
func Marshal(rep *report.Report) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(yamlIndent)

	if err := enc.Encode(rep); err != nil {
		return nil, fmt.Errorf("failed to serialize to yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to flush yaml encoder: %w", err)
	}

	return indentlessSequences(buf.Bytes()), nil
}

// indentlessSequences moves every line nested below a kind left by one
// indentation step. Records only hold single-line scalars, so anything at
// two steps or deeper belongs to a record sequence.
func indentlessSequences(b []byte) []byte {
	nested := bytes.Repeat([]byte(" "), 2*yamlIndent)

	var out bytes.Buffer
	out.Grow(len(b))
	for _, line := range bytes.SplitAfter(b, []byte("\n")) {
		if bytes.HasPrefix(line, nested) {
			line = line[yamlIndent:]
		}
		out.Write(line)
	}
	return out.Bytes()
}

// Render produces the bytes written for rep in the given format.
func Render(format Format, rep *report.Report, meta ConfigMapMeta) ([]byte, error) {
	body, err := Marshal(rep)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatYAML:
		return body, nil
	case FormatConfigMap:
		return WrapConfigMap(meta, body)
	default:
		return nil, fmt.Errorf("unknown output format: %q", format)
	}
}
