// Copyright (c) 2025-2026 Prepwise
// Author: Prepwise Engineering <engineering@prepwise.app>
//
// Licensed under the MIT License.
// See LICENSE.md for details.

package utils

import (
	"fmt"
	"strconv"
)

// Option is a loose bag of provider options (voice ids, languages, models)
// keyed by dotted paths, e.g. "speak.voice.id".
type Option map[string]interface{}

// GetString returns the option as a string, or an error when absent or empty.
func (o Option) GetString(key string) (string, error) {
	v, ok := o[key]
	if !ok {
		return "", fmt.Errorf("option %q not set", key)
	}
	s, ok := v.(string)
	if !ok || IsEmpty(s) {
		return "", fmt.Errorf("option %q is not a non-empty string", key)
	}
	return s, nil
}

// GetFloat returns the option as a float64, accepting numeric strings.
func (o Option) GetFloat(key string) (float64, error) {
	v, ok := o[key]
	if !ok {
		return 0, fmt.Errorf("option %q not set", key)
	}
	switch t := v.(type) {
	case float64:
		return t, nil
	case float32:
		return float64(t), nil
	case int:
		return float64(t), nil
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, fmt.Errorf("option %q is not numeric: %w", key, err)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("option %q is not numeric", key)
	}
}

// GetBool returns the option as a bool, accepting "true"/"false" strings.
func (o Option) GetBool(key string) (bool, error) {
	v, ok := o[key]
	if !ok {
		return false, fmt.Errorf("option %q not set", key)
	}
	switch t := v.(type) {
	case bool:
		return t, nil
	case string:
		b, err := strconv.ParseBool(t)
		if err != nil {
			return false, fmt.Errorf("option %q is not boolean: %w", key, err)
		}
		return b, nil
	default:
		return false, fmt.Errorf("option %q is not boolean", key)
	}
}
