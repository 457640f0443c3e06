package shared

import (
	"encoding/json"
	"fmt"
	"reflect"
	"slices"

	"comfort/shared/constant"
	"comfort/shared/dto"
	"comfort/shared/timezone"
)

// UpdateFields converts a full-record update request into a column map,
// stamping updated_at/updated_by. Every db-tagged field is included, zero or
// not: a full update overwrites the whole record.
func UpdateFields(data interface{}, username string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" {
			continue
		}

		updatedFields[fieldName] = val.Field(index).Interface()
	}

	updatedFields[constant.FieldUpdatedAt] = timezone.Now()
	updatedFields[constant.FieldUpdatedBy] = username

	return updatedFields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// ProjectFields reduces a slice of response payloads to the requested JSON
// fields. The identifier is always kept, matching the store behavior where a
// projection implicitly returns the id.
func ProjectFields(payload any, fields []string) ([]map[string]any, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload for projection: %w", err)
	}

	var items []map[string]any
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload for projection: %w", err)
	}

	keep := append(slices.Clone(fields), "id")

	for _, item := range items {
		for key := range item {
			if !slices.Contains(keep, key) {
				delete(item, key)
			}
		}
	}

	return items, nil
}
