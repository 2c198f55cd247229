package reader

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"

	"github.com/vegasq/csvcat/dataset"
)

// readJSON loads a JSON document. The records are the array at the root,
// or the values selected by a JSONPath expression when one is given. A
// single object is read as a one-row table.
func readJSON(r io.Reader, path string) (*dataset.Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read json: %w", err)
	}

	doc, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse json: %w", err)
	}

	var records []interface{}
	if path != "" {
		x, err := jp.ParseString(path)
		if err != nil {
			return nil, fmt.Errorf("invalid JSONPath %q: %w", path, err)
		}
		records = x.Get(doc)
		// a path that selects one array means its elements
		if len(records) == 1 {
			if arr, ok := records[0].([]interface{}); ok {
				records = arr
			}
		}
	} else {
		switch v := doc.(type) {
		case []interface{}:
			records = v
		case map[string]interface{}:
			records = []interface{}{v}
		default:
			return nil, fmt.Errorf("json root must be an array or object, got %T", doc)
		}
	}

	return recordsToDataset(records)
}

// readJSONLines loads newline-delimited JSON objects. Blank lines are skipped.
func readJSONLines(r io.Reader) (*dataset.Dataset, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var records []interface{}
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		v, err := oj.ParseString(text)
		if err != nil {
			return nil, fmt.Errorf("failed to parse json at line %d: %w", line, err)
		}
		records = append(records, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read json lines: %w", err)
	}

	return recordsToDataset(records)
}

// recordsToDataset flattens JSON objects into rows. The header is the
// sorted union of all keys; a key missing from an object becomes an empty
// cell.
func recordsToDataset(records []interface{}) (*dataset.Dataset, error) {
	objects := make([]map[string]interface{}, 0, len(records))
	seen := make(map[string]bool)
	var header []string

	for i, rec := range records {
		obj, ok := rec.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("json record %d is %T, want object", i+1, rec)
		}
		for key := range obj {
			if !seen[key] {
				seen[key] = true
				header = append(header, key)
			}
		}
		objects = append(objects, obj)
	}
	sort.Strings(header)

	ds, err := dataset.New(header)
	if err != nil {
		return nil, err
	}

	for _, obj := range objects {
		values := make([]string, len(header))
		for i, col := range header {
			values[i] = formatCell(obj[col])
		}
		if err := ds.Append(values); err != nil {
			return nil, err
		}
	}

	return ds, nil
}
