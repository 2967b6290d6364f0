package payload

import (
	"encoding/json"
	"fmt"
	"strings"
)

// NormalizeList converts a request field of unknown shape into an ordered
// list of string tokens. Clients send reference lists in three shapes:
// a native JSON array, a JSON-encoded array inside a string, or a
// comma-separated string (typical for multipart form fields).
//
// The tie-breaks mirror each other deliberately:
//   - a string that fails to parse as JSON is comma-split;
//   - a string that parses as JSON but is NOT an array is kept verbatim
//     as a single token (the original string, not the parsed value);
//   - anything else degrades to an empty list.
//
// NormalizeList never fails; an unrecognized shape is an empty list.
func NormalizeList(value interface{}) []string {
	switch v := value.(type) {
	case nil:
		return []string{}
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, el := range v {
			out = append(out, stringify(el))
		}
		return out
	case string:
		var parsed interface{}
		if err := json.Unmarshal([]byte(v), &parsed); err != nil {
			parts := strings.Split(v, ",")
			out := make([]string, 0, len(parts))
			for _, p := range parts {
				if p = strings.TrimSpace(p); p != "" {
					out = append(out, p)
				}
			}
			return out
		}
		if arr, ok := parsed.([]interface{}); ok {
			out := make([]string, 0, len(arr))
			for _, el := range arr {
				out = append(out, stringify(el))
			}
			return out
		}
		return []string{v}
	default:
		return []string{}
	}
}

func stringify(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case json.Number:
		return s.String()
	case float64:
		// JSON numbers decode as float64; keep integers integral.
		if s == float64(int64(s)) {
			return fmt.Sprintf("%d", int64(s))
		}
		return fmt.Sprintf("%g", s)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// List is the request-side representation of a reference list. It accepts
// any of the shapes NormalizeList understands, so DTO fields declared as
// List decode heterogeneous client payloads into a canonical []string.
// The zero value means the field was absent from the request.
type List []string

func (l *List) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		// Not valid JSON at all cannot happen for a well-formed body;
		// degrade to empty rather than failing the whole request.
		*l = List{}
		return nil
	}
	*l = List(NormalizeList(raw))
	return nil
}

// Present reports whether the field carried at least one token.
func (l List) Present() bool {
	return len(l) > 0
}
