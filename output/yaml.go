package output

import (
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/vegasq/csvcat/dataset"
	"github.com/vegasq/csvcat/query"
)

// YAMLFormatter outputs rows as a YAML sequence of mappings
type YAMLFormatter struct {
	writer io.Writer
}

// NewYAMLFormatter creates a new YAML formatter
func NewYAMLFormatter(w io.Writer) *YAMLFormatter {
	return &YAMLFormatter{writer: w}
}

// SetOutput sets the output writer
func (y *YAMLFormatter) SetOutput(w io.Writer) {
	y.writer = w
}

// Format writes the rows as a sequence. Mapping keys keep the header order
// and values are always strings, so "007" stays "007".
func (y *YAMLFormatter) Format(ds *dataset.Dataset) error {
	header := ds.Header()
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, row := range ds.Rows {
		mapping := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for i, value := range row.Values() {
			mapping.Content = append(mapping.Content, stringNode(header[i]), stringNode(value))
		}
		seq.Content = append(seq.Content, mapping)
	}
	if len(seq.Content) == 0 {
		seq.Style = yaml.FlowStyle
	}
	return y.encode(seq)
}

// FormatAggregate writes a single mapping of label to the result, or null
func (y *YAMLFormatter) FormatAggregate(label string, r query.Result) error {
	value := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	if r.Valid {
		value = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: r.String()}
		if math.IsInf(r.Value, 0) || math.IsNaN(r.Value) {
			value = stringNode(r.String())
		}
	}
	mapping := &yaml.Node{
		Kind:    yaml.MappingNode,
		Tag:     "!!map",
		Content: []*yaml.Node{stringNode(label), value},
	}
	return y.encode(mapping)
}

func (y *YAMLFormatter) encode(node *yaml.Node) error {
	enc := yaml.NewEncoder(y.writer)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}

func stringNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
