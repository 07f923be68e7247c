package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringSet is a set of string tags stored as a JSON array in a text column.
type StringSet []string

// Contains reports whether v is a member of the set.
func (s StringSet) Contains(v string) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}
	return false
}

// Value implements driver.Valuer for GORM serialization.
func (s StringSet) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal([]string(s))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal string set: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner for GORM deserialization.
func (s *StringSet) Scan(src interface{}) error {
	if src == nil {
		*s = nil
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for string set", src)
	}
	if len(data) == 0 {
		*s = nil
		return nil
	}
	var out []string
	if err := json.Unmarshal(data, &out); err != nil {
		return fmt.Errorf("failed to unmarshal string set: %w", err)
	}
	*s = out
	return nil
}
