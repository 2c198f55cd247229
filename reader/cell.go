package reader

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ohler55/ojg/oj"
)

// formatCell converts a typed value from a structured source (parquet,
// json, xlsx) to the raw text csvcat works with
func formatCell(v interface{}) string {
	if v == nil {
		return ""
	}

	switch val := v.(type) {
	case string:
		return val
	case []byte:
		return string(val)
	case int:
		return strconv.Itoa(val)
	case int8, int16, int32, int64:
		return fmt.Sprintf("%d", val)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", val)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case time.Time:
		return val.Format(time.RFC3339Nano)
	case map[string]interface{}, []interface{}:
		// nested values keep their JSON form
		return oj.JSON(val, &oj.Options{Sort: true})
	default:
		return fmt.Sprintf("%v", val)
	}
}
