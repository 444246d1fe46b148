package topology

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// requireFields walks raw alongside t and reports the first required field
// that is missing or null. Pointer fields are optional; every other struct
// field, slice element, and scalar must carry a value.
func requireFields(path string, raw json.RawMessage, t reflect.Type) error {
	if isNull(raw) {
		if path == "" {
			return fmt.Errorf("topology document is null")
		}
		return fmt.Errorf("field %q is null", path)
	}

	switch t.Kind() {
	case reflect.Pointer:
		return requireFields(path, raw, t.Elem())
	case reflect.Struct:
		var members map[string]json.RawMessage
		if err := json.Unmarshal(raw, &members); err != nil {
			return fmt.Errorf("parse topology: %s: %w", describe(path), err)
		}
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				continue
			}
			child := join(path, name)
			value, ok := members[name]
			optional := field.Type.Kind() == reflect.Pointer
			switch {
			case !ok && optional:
				continue
			case !ok:
				return fmt.Errorf("missing field %q", child)
			case optional && isNull(value):
				continue
			}
			if err := requireFields(child, value, field.Type); err != nil {
				return err
			}
		}
	case reflect.Slice:
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return fmt.Errorf("parse topology: %s: %w", describe(path), err)
		}
		for i, item := range items {
			if err := requireFields(fmt.Sprintf("%s[%d]", path, i), item, t.Elem()); err != nil {
				return err
			}
		}
	}
	return nil
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func describe(path string) string {
	if path == "" {
		return "document"
	}
	return fmt.Sprintf("field %q", path)
}
