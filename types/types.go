// Package types contains loose type helpers used when reading configuration.
package types

import "reflect"

// IsNil reports whether v is nil, including typed nils such as a nil map
// stored in an interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}

	value := reflect.ValueOf(v)
	switch value.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return value.IsNil()
	}

	return false
}
