package entity

import (
	"strings"
	"unicode"
)

// toColumns maps the API's camelCase payload keys onto snake_case column
// names for partial updates.
func toColumns(fields map[string]any) map[string]any {
	cols := make(map[string]any, len(fields))
	for k, v := range fields {
		cols[camelToSnake(k)] = v
	}
	return cols
}

func camelToSnake(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
