package shared

import (
	"docai/shared/dto"
	"strings"
)

const cacheKeySeparator = ":"

// BuildCacheKey joins the non-empty parts into a single redis key.
func BuildCacheKey(parts ...string) string {
	keys := make([]string, 0, len(parts))

	for _, part := range parts {
		if part == "" {
			continue
		}

		keys = append(keys, part)
	}

	return strings.Join(keys, cacheKeySeparator)
}

// SplitAndTrim splits value on sep, trims every element and drops the empty ones.
func SplitAndTrim(value, sep string) []string {
	result := []string{}

	for _, item := range strings.Split(value, sep) {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		result = append(result, item)
	}

	return result
}

func FilterByField(field string, value any, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    field,
				Value:    value,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}
