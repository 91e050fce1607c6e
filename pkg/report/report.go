// Package report holds the in-memory listing of managed resources grouped by kind.
//
// A Report keeps kinds in the order they were first added so the serialized
// output is stable across runs against the same cluster state.
package report

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// RootKey is the top-level key the report is serialized under.
const RootKey = "Resources"

// Record identifies one managed resource. The kind is not repeated here,
// it is the key the record is stored under.
type Record struct {
	Namespace string `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	Name      string `json:"name,omitempty" yaml:"name,omitempty"`
}

// String returns the namespace/name form of the record.
func (r Record) String() string {
	if r.Namespace == "" {
		return r.Name
	}
	return r.Namespace + "/" + r.Name
}

// Report maps kind names to their records, preserving insertion order of kinds.
// The zero value is not usable, use New.
type Report struct {
	kinds   []string
	records map[string][]Record
}

// New returns an empty report.
func New() *Report {
	return &Report{
		records: make(map[string][]Record),
	}
}

// Set stores records under kind. An existing kind keeps its position.
func (r *Report) Set(kind string, records []Record) {
	if _, ok := r.records[kind]; !ok {
		r.kinds = append(r.kinds, kind)
	}
	r.records[kind] = records
}

// Ensure makes kind present in the report with an empty list if it is missing.
func (r *Report) Ensure(kind string) {
	if _, ok := r.records[kind]; ok {
		return
	}
	r.Set(kind, []Record{})
}

// Append adds records to kind, creating the kind first when needed.
func (r *Report) Append(kind string, records ...Record) {
	r.Ensure(kind)
	r.records[kind] = append(r.records[kind], records...)
}

// Remove deletes the first occurrence of rec under kind.
// It reports whether a record was removed.
func (r *Report) Remove(kind string, rec Record) bool {
	list, ok := r.records[kind]
	if !ok {
		return false
	}
	i := slices.Index(list, rec)
	if i < 0 {
		return false
	}
	r.records[kind] = slices.Delete(list, i, i+1)
	return true
}

// Contains reports whether rec is stored under kind.
func (r *Report) Contains(kind string, rec Record) bool {
	return slices.Contains(r.records[kind], rec)
}

// Has reports whether kind is present, even with no records.
func (r *Report) Has(kind string) bool {
	_, ok := r.records[kind]
	return ok
}

// Get returns the records stored under kind.
func (r *Report) Get(kind string) []Record {
	return r.records[kind]
}

// Kinds returns the kinds in insertion order.
func (r *Report) Kinds() []string {
	return slices.Clone(r.kinds)
}

// Len returns the number of kinds in the report.
func (r *Report) Len() int {
	return len(r.kinds)
}

// Count returns the total number of records across all kinds.
func (r *Report) Count() int {
	n := 0
	for _, list := range r.records {
		n += len(list)
	}
	return n
}

// MarshalYAML renders the report as a Resources mapping with kinds in insertion order.
func (r *Report) MarshalYAML() (interface{}, error) {
	kinds := &yaml.Node{Kind: yaml.MappingNode}
	for _, kind := range r.kinds {
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, rec := range r.records[kind] {
			item := &yaml.Node{}
			if err := item.Encode(rec); err != nil {
				return nil, fmt.Errorf("failed to encode %s %s: %w", kind, rec, err)
			}
			seq.Content = append(seq.Content, item)
		}
		kinds.Content = append(kinds.Content, scalar(kind), seq)
	}

	return &yaml.Node{
		Kind:    yaml.MappingNode,
		Content: []*yaml.Node{scalar(RootKey), kinds},
	}, nil
}

// UnmarshalYAML reads a report written by MarshalYAML, keeping the document's kind order.
func (r *Report) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.DocumentNode && len(value.Content) > 0 {
		value = value.Content[0]
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("report must be a mapping, got line %d", value.Line)
	}

	r.kinds = nil
	r.records = make(map[string][]Record)

	for i := 0; i+1 < len(value.Content); i += 2 {
		if value.Content[i].Value != RootKey {
			continue
		}
		kinds := value.Content[i+1]
		if kinds.Tag == "!!null" {
			return nil
		}
		if kinds.Kind != yaml.MappingNode {
			return fmt.Errorf("%s must be a mapping, got line %d", RootKey, kinds.Line)
		}
		for j := 0; j+1 < len(kinds.Content); j += 2 {
			var list []Record
			if err := kinds.Content[j+1].Decode(&list); err != nil {
				return fmt.Errorf("failed to decode kind %q: %w", kinds.Content[j].Value, err)
			}
			if list == nil {
				list = []Record{}
			}
			r.Set(kinds.Content[j].Value, list)
		}
		return nil
	}

	return fmt.Errorf("report has no %s key", RootKey)
}

func scalar(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}
