package output

import (
	"bytes"
	"io"
	"math"

	"github.com/segmentio/encoding/json"

	"github.com/vegasq/csvcat/dataset"
	"github.com/vegasq/csvcat/query"
)

// JSONFormatter outputs rows as JSON Lines format
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes rows as JSON Lines (one JSON object per line). Object keys
// follow the header order and every value is a string.
func (j *JSONFormatter) Format(ds *dataset.Dataset) error {
	header := ds.Header()
	var buf bytes.Buffer
	for _, row := range ds.Rows {
		buf.Reset()
		if err := writeObject(&buf, header, row.Values()); err != nil {
			return err
		}
		if _, err := j.writer.Write(buf.Bytes()); err != nil {
			return err
		}
	}
	return nil
}

// FormatAggregate writes {"label": value}, with null when there is no value
func (j *JSONFormatter) FormatAggregate(label string, r query.Result) error {
	var value interface{}
	switch {
	case !r.Valid:
		value = nil
	case math.IsInf(r.Value, 0) || math.IsNaN(r.Value):
		// JSON has no literal for these
		value = r.String()
	default:
		value = r.Value
	}

	line, err := json.Marshal(map[string]interface{}{label: value})
	if err != nil {
		return err
	}
	_, err = j.writer.Write(append(line, '\n'))
	return err
}

// writeObject encodes keys and values as one JSON object followed by a newline
func writeObject(buf *bytes.Buffer, keys, values []string) error {
	buf.WriteByte('{')
	for i, key := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return err
		}
		v, err := json.Marshal(values[i])
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteString("}\n")
	return nil
}
