package reader

import (
	"strconv"

	"github.com/vegasq/csvcat/dataset"
	"github.com/vegasq/csvcat/query"
)

// Column type names reported by DescribeColumns
const (
	TypeNumber = "number"
	TypeText   = "text"
	TypeMixed  = "mixed"
	TypeEmpty  = "empty"
)

// ColumnInfo summarizes the cells of one column.
type ColumnInfo struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	NonEmpty int    `json:"non_empty"`
	Numeric  int    `json:"numeric"`
}

// DescribeColumns infers a type for each column of ds, in header order.
//
// A column is a number when every non-empty cell parses as one, text when
// none does, and mixed otherwise. Filters compare mixed columns per row,
// numerically only where both sides are numbers.
func DescribeColumns(ds *dataset.Dataset) []ColumnInfo {
	header := ds.Header()
	infos := make([]ColumnInfo, len(header))
	for i, name := range header {
		infos[i].Name = name
	}

	for _, row := range ds.Rows {
		for i, cell := range row.Values() {
			if cell == "" {
				continue
			}
			infos[i].NonEmpty++
			if query.ParseValue(cell).Kind == query.KindNumber {
				infos[i].Numeric++
			}
		}
	}

	for i := range infos {
		infos[i].Type = columnType(infos[i])
	}
	return infos
}

func columnType(info ColumnInfo) string {
	switch {
	case info.NonEmpty == 0:
		return TypeEmpty
	case info.Numeric == info.NonEmpty:
		return TypeNumber
	case info.Numeric == 0:
		return TypeText
	default:
		return TypeMixed
	}
}

// SchemaDataset lays out column infos as a table so any output format can
// render them.
func SchemaDataset(infos []ColumnInfo) (*dataset.Dataset, error) {
	ds, err := dataset.New([]string{"name", "type", "non_empty", "numeric"})
	if err != nil {
		return nil, err
	}
	for _, info := range infos {
		record := []string{
			info.Name,
			info.Type,
			strconv.Itoa(info.NonEmpty),
			strconv.Itoa(info.Numeric),
		}
		if err := ds.Append(record); err != nil {
			return nil, err
		}
	}
	return ds, nil
}
