package admin

import "fmt"

// Item is one record of a resource family in the wire shape the backend
// returns. The backend surfaces IDs as "_id".
type Item map[string]any

func (it Item) ID() string {
	for _, key := range []string{"_id", "id"} {
		if v, ok := it[key]; ok {
			if s, ok := v.(string); ok {
				return s
			}
		}
	}
	return ""
}

// Get returns the field value rendered as a string; numbers come back
// without a decimal point when they are whole.
func (it Item) Get(field string) string {
	v, ok := it[field]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%g", t)
	case []any:
		out := ""
		for i, e := range t {
			if i > 0 {
				out += ", "
			}
			out += fmt.Sprintf("%v", e)
		}
		return out
	default:
		return fmt.Sprintf("%v", t)
	}
}
