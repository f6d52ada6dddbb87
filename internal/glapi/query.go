package glapi

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// CleanQuery builds query parameters for list endpoints, keeping only
// entries that carry meaning: nil values and empty or whitespace-only
// strings are dropped, while zero ints and false bools are kept. Values
// are passed through unmodified otherwise. Pure function; never used for
// write-request bodies.
func CleanQuery(params map[string]any) url.Values {
	values := url.Values{}
	for key, value := range params {
		switch v := value.(type) {
		case nil:
			continue
		case string:
			if strings.TrimSpace(v) == "" {
				continue
			}
			values.Set(key, v)
		case int:
			values.Set(key, strconv.Itoa(v))
		case int64:
			values.Set(key, strconv.FormatInt(v, 10))
		case bool:
			values.Set(key, strconv.FormatBool(v))
		default:
			values.Set(key, fmt.Sprint(v))
		}
	}
	return values
}
